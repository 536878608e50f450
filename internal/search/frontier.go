package search

import "sync"

// Frontier is the shared set of directories that have been discovered but not
// yet expanded. It also tracks how many popped directories are still being
// expanded, so that an empty frontier is only reported as exhausted once no
// worker can push more work into it.
//
// Pop order is LIFO and carries no meaning.
type Frontier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	pending  []string
	inFlight int
	closed   bool
}

// NewFrontier creates a frontier seeded with the given directories.
func NewFrontier(roots ...string) *Frontier {
	f := &Frontier{
		pending: append([]string(nil), roots...),
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Push adds a directory to the frontier. It never blocks on capacity.
func (f *Frontier) Push(path string) {
	f.mu.Lock()
	f.pending = append(f.pending, path)
	f.mu.Unlock()
	f.cond.Signal()
}

// Pop removes one directory and marks it in flight. The caller must call Done
// once every child of that directory has been pushed.
//
// When the frontier is empty but other directories are still in flight, Pop
// waits for either new work or for the last in-flight expansion to finish.
// It returns false once the frontier is empty and nothing is in flight.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.pending) == 0 && f.inFlight > 0 && !f.closed {
		f.cond.Wait()
	}

	if len(f.pending) == 0 {
		if !f.closed {
			f.closed = true
			f.cond.Broadcast()
		}
		return "", false
	}

	last := len(f.pending) - 1
	path := f.pending[last]
	f.pending[last] = ""
	f.pending = f.pending[:last]
	f.inFlight++
	return path, true
}

// Done marks one popped directory as fully expanded.
func (f *Frontier) Done() {
	f.mu.Lock()
	if f.inFlight == 0 {
		f.mu.Unlock()
		panic("search: Frontier.Done called without a matching Pop")
	}
	f.inFlight--
	idle := f.inFlight == 0 && len(f.pending) == 0
	f.mu.Unlock()

	// Waiters only need waking when the walk may have ended; new work already
	// signals through Push.
	if idle {
		f.cond.Broadcast()
	}
}

// Len returns the number of directories waiting to be expanded.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// InFlight returns the number of directories currently being expanded.
func (f *Frontier) InFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

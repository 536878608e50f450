package search

import (
	"fmt"
	"os"
	"strings"
)

// work drains the frontier until it reports exhaustion.
func (p *Pool) work(id int, frontier *Frontier) {
	p.logger.LogDebug(fmt.Sprintf("worker %d started", id))
	expanded := 0
	for {
		dir, ok := frontier.Pop()
		if !ok {
			break
		}
		p.expandGuarded(id, dir, frontier.Push, frontier.Done)
		expanded++
	}
	p.logger.LogDebug(fmt.Sprintf("worker %d finished after %d directories", id, expanded))
}

// expandGuarded runs expand and always calls done afterwards. A panic that
// escapes expand's own recovery, such as one raised by the sink while a crash
// is being reported, is recorded without going through the sink again.
func (p *Pool) expandGuarded(worker int, dir string, push func(string), done func()) {
	defer done()
	defer func() {
		if r := recover(); r != nil {
			p.recordEscapedCrash(worker, dir, r)
		}
	}()
	p.expand(worker, dir, push)
}

// expand lists dir, emits matches and hands every child directory to push.
// A panic while expanding is recovered and reported so the caller can always
// mark dir as done.
func (p *Pool) expand(worker int, dir string, push func(string)) {
	defer func() {
		if r := recover(); r != nil {
			p.recordCrash(worker, dir, r)
		}
	}()

	p.logger.LogTrace(fmt.Sprintf("worker %d expanding %s", worker, dir))
	entries, err := p.readDir(dir)
	if err != nil {
		p.stats.readErrors.Inc()
		p.sink.Emit(Event{Kind: EventReadError, Path: dir, Err: err, Worker: worker})
	} else {
		p.stats.dirs.Inc()
	}

	// os.ReadDir returns whatever it managed to read before failing.
	for _, entry := range entries {
		p.stats.entries.Inc()
		path := joinPath(dir, entry.Name())

		if p.matcher.Match(path) {
			p.stats.matches.Inc()
			p.sink.Emit(Event{Kind: EventMatch, Path: path, Worker: worker})
		}

		// Type bits come from the directory listing, so symlinks to
		// directories are reported but never followed.
		if entry.IsDir() {
			push(path)
		}
	}
}

// joinPath appends name to dir without cleaning dir, so every reported path
// keeps the root exactly as the user spelled it.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

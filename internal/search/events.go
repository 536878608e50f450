package search

import (
	"fmt"
)

// EventKind identifies what a worker observed.
type EventKind int

const (
	// EventMatch reports an entry whose full path contains the target.
	EventMatch EventKind = iota
	// EventReadError reports a directory that could not be listed.
	EventReadError
	// EventWorkerCrash reports a recovered panic while expanding a directory.
	EventWorkerCrash
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	switch k {
	case EventMatch:
		return "match"
	case EventReadError:
		return "read-error"
	case EventWorkerCrash:
		return "worker-crash"
	default:
		return "unknown"
	}
}

// Event is a single message sent from a worker to the output consumer.
type Event struct {
	Kind   EventKind
	Path   string
	Err    error
	Worker int
}

// Sink receives events from concurrently running workers. Implementations
// must be safe for concurrent use; each Emit is one atomic unit of output.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) {
	f(ev)
}

// Logger is the diagnostic logging surface used by the pool.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// CrashError describes a panic recovered while a worker expanded a directory.
type CrashError struct {
	Worker int
	Path   string
	Value  interface{}
}

// Error implements the error interface for CrashError.
func (e *CrashError) Error() string {
	return fmt.Sprintf("worker %d crashed while expanding %s: %v", e.Worker, e.Path, e.Value)
}

// Unwrap returns the panic value when it was itself an error.
func (e *CrashError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

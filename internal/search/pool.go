package search

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// DefaultStagger is the pause between worker spawns. It only smooths the
// initial burst on the frontier lock; correctness does not depend on it.
const DefaultStagger = 5 * time.Millisecond

// ErrNoTarget is returned when Options.Target is empty.
var ErrNoTarget = errors.New("search target cannot be empty")

// Options is the resolved, immutable configuration of one search.
type Options struct {
	// Target is the substring searched for in every entry's full path.
	Target string
	// Root is the directory the walk starts from.
	Root string
	// IgnoreCase lower-cases paths and target before comparing.
	IgnoreCase bool
	// Workers is the number of concurrent workers (>= 1).
	Workers int
	// Stagger is the delay between consecutive worker spawns.
	Stagger time.Duration
}

// Validate checks that the options describe a runnable search.
func (o Options) Validate() error {
	if o.Target == "" {
		return ErrNoTarget
	}
	if o.Root == "" {
		return fmt.Errorf("search root cannot be empty")
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", o.Workers)
	}
	if o.Stagger < 0 {
		return fmt.Errorf("stagger must be >= 0, got %v", o.Stagger)
	}
	return nil
}

// Pool runs a fixed number of workers over a shared Frontier.
type Pool struct {
	opts    Options
	matcher Matcher
	sink    Sink
	logger  Logger
	stats   *Stats

	// readDir lists a directory; replaced in tests to inject failures.
	readDir func(string) ([]os.DirEntry, error)

	crashMu sync.Mutex
	crashes *multierror.Error
}

// NewPool constructs a Pool. The logger parameter is optional and can be nil
// to disable diagnostic logging.
func NewPool(opts Options, sink Sink, logger Logger) (*Pool, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search options: %w", err)
	}
	if sink == nil {
		return nil, fmt.Errorf("event sink is required")
	}
	if logger == nil {
		logger = nopLogger{}
	}

	return &Pool{
		opts:    opts,
		matcher: NewMatcher(opts.Target, opts.IgnoreCase),
		sink:    sink,
		logger:  logger,
		stats:   newStats(),
		readDir: os.ReadDir,
	}, nil
}

// Run walks the tree from Options.Root and blocks until every worker has
// returned. Worker crashes do not stop the walk; they are reported as events
// and collected in Summary.CrashErrors.
func (p *Pool) Run() *Summary {
	start := time.Now()
	p.logger.LogDebug(fmt.Sprintf("searching %s for %q with %d worker(s)", p.opts.Root, p.opts.Target, p.opts.Workers))

	if p.opts.Workers == 1 {
		p.runSerial()
	} else {
		p.runConcurrent()
	}

	p.crashMu.Lock()
	crashErr := p.crashes.ErrorOrNil()
	p.crashMu.Unlock()

	summary := p.stats.snapshot(p.opts.Workers, time.Since(start), crashErr)
	p.logger.LogDebug(fmt.Sprintf("search finished: %s", summary))
	return summary
}

// runSerial is the single-worker walk: same expansion, private stack, no
// locking.
func (p *Pool) runSerial() {
	stack := []string{p.opts.Root}
	push := func(dir string) {
		stack = append(stack, dir)
	}

	for len(stack) > 0 {
		last := len(stack) - 1
		dir := stack[last]
		stack = stack[:last]
		p.expandGuarded(1, dir, push, func() {})
	}
}

func (p *Pool) runConcurrent() {
	frontier := NewFrontier(p.opts.Root)

	var g errgroup.Group
	for i := range p.opts.Workers {
		if i > 0 && p.opts.Stagger > 0 {
			time.Sleep(p.opts.Stagger)
		}

		id := i + 1
		g.Go(func() (err error) {
			// Expansion panics are handled per directory; anything reaching
			// here escaped the worker loop itself.
			defer func() {
				if r := recover(); r != nil {
					err = &CrashError{Worker: id, Value: r}
				}
			}()
			p.work(id, frontier)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.LogError(fmt.Sprintf("worker pool: %v", err))
		p.crashMu.Lock()
		p.crashes = multierror.Append(p.crashes, err)
		p.crashMu.Unlock()
	}
}

// recordCrash turns a recovered panic into a counted error. Logging is left
// to the sink so the report goes through the single output consumer.
func (p *Pool) recordCrash(worker int, dir string, value interface{}) {
	crash := &CrashError{Worker: worker, Path: dir, Value: value}

	p.stats.crashes.Inc()
	p.crashMu.Lock()
	p.crashes = multierror.Append(p.crashes, crash)
	p.crashMu.Unlock()

	p.sink.Emit(Event{Kind: EventWorkerCrash, Path: dir, Err: crash, Worker: worker})
}

// recordEscapedCrash records a panic that escaped expand. The sink is not
// used since it may be the source of the panic.
func (p *Pool) recordEscapedCrash(worker int, dir string, value interface{}) {
	crash := &CrashError{Worker: worker, Path: dir, Value: value}

	p.stats.crashes.Inc()
	p.crashMu.Lock()
	p.crashes = multierror.Append(p.crashes, crash)
	p.crashMu.Unlock()

	p.logger.LogError(crash.Error())
}

// Search is a convenience wrapper that builds a Pool and runs it.
func Search(opts Options, sink Sink, logger Logger) (*Summary, error) {
	pool, err := NewPool(opts, sink, logger)
	if err != nil {
		return nil, err
	}
	return pool.Run(), nil
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}
func (nopLogger) LogWarn(string)  {}
func (nopLogger) LogError(string) {}

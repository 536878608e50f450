package display

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/harrison/pathseek/internal/search"
)

// FinishedMessage is printed once a search has run to completion.
const FinishedMessage = "Finished Searching"

const eventBuffer = 256

// PrinterOptions configures a Printer.
type PrinterOptions struct {
	// Target is highlighted inside matched paths when colors are on.
	Target string
	// IgnoreCase highlights the target regardless of case.
	IgnoreCase bool
	// Color decides whether stdout and stderr lines are colored.
	Color ColorMode
	// Collect keeps every match in memory for Matches.
	Collect bool
}

// Printer is the single consumer of search events. Workers call Emit from any
// goroutine; one goroutine started by Start writes every event as exactly one
// line, matches to out and unreadable directories to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	logger search.Logger
	opts   PrinterOptions

	// matcher supplies the folded target used for highlighting.
	matcher search.Matcher

	matchColor *color.Color
	errColor   *color.Color
	doneColor  *color.Color
	colorOut   bool
	colorErr   bool

	events    chan search.Event
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once

	matches []string
}

// NewPrinter creates a Printer. The logger receives worker crash reports and
// may be nil.
func NewPrinter(out, errOut io.Writer, logger search.Logger, opts PrinterOptions) *Printer {
	if opts.Color == "" {
		opts.Color = ColorAuto
	}

	p := &Printer{
		out:        out,
		errOut:     errOut,
		logger:     logger,
		opts:       opts,
		matcher:    search.NewMatcher(opts.Target, opts.IgnoreCase),
		matchColor: color.New(color.FgRed, color.Bold),
		errColor:   color.New(color.FgYellow),
		doneColor:  color.New(color.FgGreen),
		colorOut:   opts.Color.Enabled(out),
		colorErr:   opts.Color.Enabled(errOut),
		events:     make(chan search.Event, eventBuffer),
		done:       make(chan struct{}),
	}

	// The mode has already been resolved per writer; stop fatih/color from
	// second-guessing it with its own global TTY check.
	p.matchColor.EnableColor()
	p.errColor.EnableColor()
	p.doneColor.EnableColor()

	return p
}

// Start launches the consumer goroutine. Calling it more than once is a no-op.
func (p *Printer) Start() {
	p.startOnce.Do(func() {
		go p.consume()
	})
}

// Emit queues an event for printing. It implements search.Sink and must not
// be called after Close.
func (p *Printer) Emit(ev search.Event) {
	p.events <- ev
}

// Close stops accepting events and blocks until every queued event has been
// written.
func (p *Printer) Close() {
	p.Start()
	p.closeOnce.Do(func() {
		close(p.events)
	})
	<-p.done
}

// Finish writes the completion line. Call it after Close.
func (p *Printer) Finish() {
	line := FinishedMessage
	if p.colorOut {
		line = p.doneColor.Sprint(line)
	}
	fmt.Fprintln(p.out, line)
}

// Matches returns the collected matches sorted lexically. It is only
// populated when PrinterOptions.Collect is set and is safe to call after
// Close.
func (p *Printer) Matches() []string {
	out := append([]string(nil), p.matches...)
	sort.Strings(out)
	return out
}

func (p *Printer) consume() {
	defer close(p.done)

	for ev := range p.events {
		switch ev.Kind {
		case search.EventMatch:
			if p.opts.Collect {
				p.matches = append(p.matches, ev.Path)
			}
			fmt.Fprintln(p.out, p.formatMatch(ev.Path))
		case search.EventReadError:
			line := fmt.Sprintf("Unable to read directory %s: %v", ev.Path, ev.Err)
			if p.colorErr {
				line = p.errColor.Sprint(line)
			}
			fmt.Fprintln(p.errOut, line)
		case search.EventWorkerCrash:
			if p.logger != nil {
				p.logger.LogError(fmt.Sprintf("skipped %s: %v", ev.Path, ev.Err))
			}
		}
	}
}

// formatMatch highlights the first occurrence of the target in path.
func (p *Printer) formatMatch(path string) string {
	if !p.colorOut || p.matcher.Target() == "" {
		return path
	}

	haystack, needle := path, p.matcher.Target()
	if p.matcher.IgnoreCase() {
		haystack = strings.ToLower(path)
		// Folding changed byte offsets; highlighting would cut a rune.
		if len(haystack) != len(path) {
			return path
		}
	}

	i := strings.Index(haystack, needle)
	if i < 0 {
		return path
	}
	end := i + len(needle)
	return path[:i] + p.matchColor.Sprint(path[i:end]) + path[end:]
}

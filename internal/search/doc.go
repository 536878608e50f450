// Package search implements the concurrent directory walk behind pathseek.
//
// A Pool starts a fixed number of workers that share one Frontier of pending
// directories. Each worker pops a directory, lists it, tests every child's
// full path against the target and pushes child directories back onto the
// Frontier. The Frontier counts directories that are popped but not yet fully
// expanded, so workers only stop once no pending work exists and no other
// worker can still produce any.
//
// # Output
//
// Workers never write to stdout or stderr themselves. Matches, unreadable
// directories and recovered worker panics are sent as Events to a Sink, which
// is expected to serialise them through a single consumer:
//
//	printer := display.NewPrinter(os.Stdout, os.Stderr, log, display.PrinterOptions{
//	    Target:     opts.Target,
//	    IgnoreCase: opts.IgnoreCase,
//	})
//	printer.Start()
//	summary, err := search.Search(opts, printer, log)
//	printer.Close()
//	printer.Finish()
//
// # Ordering
//
// Neither the order in which directories are expanded nor the order of
// emitted matches is stable between runs. The set of matches is.
package search

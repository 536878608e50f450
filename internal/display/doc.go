// Package display renders search events for the terminal.
//
// All user-facing output of a search run goes through a single Printer. Workers
// hand it events through its Emit method and one consumer goroutine writes
// them, so lines from concurrent workers are never interleaved.
//
// # Output streams
//
// Matches go to the output writer, one path per line. Directories that could
// not be listed are reported on the error writer as
//
//	Unable to read directory <path>: <cause>
//
// Worker crashes are handed to the logger instead of either stream.
//
//	printer := display.NewPrinter(os.Stdout, os.Stderr, log, display.PrinterOptions{
//	    Target: "report",
//	    Color:  display.ColorAuto,
//	})
//	printer.Start()
//	summary, err := search.Search(opts, printer, log)
//	printer.Close()
//	printer.Finish()
//
// # Colors
//
// ColorMode decides per writer whether ANSI colors are used. ColorAuto only
// colors terminals and honors NO_COLOR. When enabled, the first occurrence
// of the target in each matched path is highlighted.
package display

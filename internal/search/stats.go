package search

import (
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// Stats holds run counters updated by every worker.
type Stats struct {
	dirs       *xsync.Counter
	entries    *xsync.Counter
	matches    *xsync.Counter
	readErrors *xsync.Counter
	crashes    *xsync.Counter
}

func newStats() *Stats {
	return &Stats{
		dirs:       xsync.NewCounter(),
		entries:    xsync.NewCounter(),
		matches:    xsync.NewCounter(),
		readErrors: xsync.NewCounter(),
		crashes:    xsync.NewCounter(),
	}
}

// Summary is a snapshot of a finished run.
type Summary struct {
	Workers     int
	Directories int64
	Entries     int64
	Matches     int64
	ReadErrors  int64
	Crashes     int64
	Duration    time.Duration
	CrashErrors error // *multierror.Error when any worker crashed
}

func (s *Stats) snapshot(workers int, duration time.Duration, crashErr error) *Summary {
	return &Summary{
		Workers:     workers,
		Directories: s.dirs.Value(),
		Entries:     s.entries.Value(),
		Matches:     s.matches.Value(),
		ReadErrors:  s.readErrors.Value(),
		Crashes:     s.crashes.Value(),
		Duration:    duration,
		CrashErrors: crashErr,
	}
}

// String renders the summary as a single log line.
func (s *Summary) String() string {
	return fmt.Sprintf("workers=%d dirs=%d entries=%d matches=%d read_errors=%d crashes=%d duration=%s",
		s.Workers, s.Directories, s.Entries, s.Matches, s.ReadErrors, s.Crashes, s.Duration.Round(time.Millisecond))
}

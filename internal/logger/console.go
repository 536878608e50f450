// Package logger provides diagnostic logging for pathseek runs.
//
// Loggers never carry search results; matches go to stdout through the
// display package. Loggers report what the tool is doing (configuration,
// worker lifecycle, crashes, run summaries) and are safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/pathseek/internal/display"
	"github.com/harrison/pathseek/internal/search"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger writes levelled diagnostics to a writer with timestamps.
// All output is prefixed with [HH:MM:SS] [LEVEL].
// Color output is enabled when the writer itself is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors. The
// writer's own descriptor is checked, so redirecting stdout leaves stderr
// colored.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	return display.ColorAuto.Enabled(w)
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// IsValidLevel reports whether level is one of trace, debug, info, warn, error.
func IsValidLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// levelColors are forced on; callers only use them once isTerminal agreed.
var levelColors = map[string]*color.Color{
	"TRACE": forced(color.FgHiBlack),
	"DEBUG": forced(color.FgCyan),
	"INFO":  forced(color.FgBlue),
	"WARN":  forced(color.FgYellow),
	"ERROR": forced(color.FgRed),
}

func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

func colorLevel(level string) string {
	if c, ok := levelColors[level]; ok {
		return c.Sprint(level)
	}
	return level
}

// LogSummary logs the run summary at DEBUG level.
// Format: "[HH:MM:SS] Searched <dirs> directories (<entries> entries) in <duration>: <matches> matches"
// followed by an error count line when directories could not be read.
func (cl *ConsoleLogger) LogSummary(summary *search.Summary) {
	if cl.writer == nil || summary == nil {
		return
	}
	if !cl.shouldLog("debug") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	output := fmt.Sprintf("[%s] Searched %d directories (%d entries) in %s: %d matches\n",
		ts, summary.Directories, summary.Entries, formatDuration(summary.Duration), summary.Matches)

	if summary.ReadErrors > 0 || summary.Crashes > 0 {
		line := fmt.Sprintf("Unreadable directories: %d, worker crashes: %d", summary.ReadErrors, summary.Crashes)
		if cl.colorOutput {
			line = levelColors["WARN"].Sprint(line)
		}
		output += fmt.Sprintf("[%s] %s\n", ts, line)
	}

	cl.writer.Write([]byte(output))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a short human-readable string.
// Examples: "850ms", "5s", "1m30s"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

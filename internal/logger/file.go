package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/pathseek/internal/search"
)

// FileLogger writes a per-run log file into a log directory and keeps a
// latest.log symlink pointing at the most recent run. Each run is tagged with
// a random run ID so several runs sharing a directory can be told apart.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLoggerWithDirAndLevel creates a FileLogger in logDir.
// The directory is created if it doesn't exist.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.New().String()

	// run-YYYYMMDD-HHMMSS-<short id>.log; the id suffix keeps runs started in
	// the same second apart.
	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", ts, runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== pathseek run log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// RunID returns the identifier written in the log header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// RunFile returns the path of the run log file.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSummary writes the run summary, including every collected crash, at
// INFO level.
func (fl *FileLogger) LogSummary(summary *search.Summary) {
	if summary == nil || !fl.shouldLog("info") {
		return
	}

	var sb strings.Builder
	sb.WriteString("\n=== Search Summary ===\n")
	sb.WriteString(fmt.Sprintf("Workers: %d\n", summary.Workers))
	sb.WriteString(fmt.Sprintf("Directories: %d\n", summary.Directories))
	sb.WriteString(fmt.Sprintf("Entries: %d\n", summary.Entries))
	sb.WriteString(fmt.Sprintf("Matches: %d\n", summary.Matches))
	sb.WriteString(fmt.Sprintf("Unreadable directories: %d\n", summary.ReadErrors))
	sb.WriteString(fmt.Sprintf("Worker crashes: %d\n", summary.Crashes))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", summary.Duration.Round(time.Millisecond)))
	if summary.CrashErrors != nil {
		sb.WriteString(fmt.Sprintf("Crash details: %v\n", summary.CrashErrors))
	}

	fl.writeRunLog(sb.String())
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}

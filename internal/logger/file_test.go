package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/pathseek/internal/search"
)

// TestFileLoggerCreatesRunLog verifies the log directory, run file and latest.log symlink.
func TestFileLoggerCreatesRunLog(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewFileLoggerWithDirAndLevel(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logger.RunFile()); err != nil {
		t.Fatalf("expected run log %s to exist: %v", logger.RunFile(), err)
	}
	if !strings.HasPrefix(filepath.Base(logger.RunFile()), "run-") {
		t.Errorf("unexpected run log name %s", logger.RunFile())
	}

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("expected latest.log symlink: %v", err)
	}
	if target != filepath.Base(logger.RunFile()) {
		t.Errorf("latest.log -> %s, want %s", target, filepath.Base(logger.RunFile()))
	}
}

// TestFileLoggerHeaderCarriesRunID verifies the run ID is a UUID written to the header.
func TestFileLoggerHeaderCarriesRunID(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel() error = %v", err)
	}

	if _, err := uuid.Parse(logger.RunID()); err != nil {
		t.Errorf("RunID() = %q is not a UUID: %v", logger.RunID(), err)
	}
	if !strings.Contains(logger.RunFile(), logger.RunID()[:8]) {
		t.Errorf("run file %s does not carry the run ID prefix", logger.RunFile())
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logger.RunFile())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	if !strings.Contains(string(data), "Run ID: "+logger.RunID()) {
		t.Errorf("run log header missing run ID:\n%s", data)
	}
}

// TestFileLoggerLatestSymlinkMovesToNewRun verifies a second run replaces latest.log.
func TestFileLoggerLatestSymlinkMovesToNewRun(t *testing.T) {
	logDir := t.TempDir()

	first, err := NewFileLoggerWithDirAndLevel(logDir, "info")
	if err != nil {
		t.Fatalf("first logger: %v", err)
	}
	first.Close()

	second, err := NewFileLoggerWithDirAndLevel(logDir, "info")
	if err != nil {
		t.Fatalf("second logger: %v", err)
	}
	defer second.Close()

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("Readlink: %v", err)
	}
	if target != filepath.Base(second.RunFile()) {
		t.Errorf("latest.log -> %s, want %s", target, filepath.Base(second.RunFile()))
	}
}

// TestFileLoggerLevelsAndSummary verifies filtering and the summary block.
func TestFileLoggerLevelsAndSummary(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "warn")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel() error = %v", err)
	}

	logger.LogDebug("debug-message")
	logger.LogInfo("info-message")
	logger.LogWarn("warn-message")
	logger.LogError("error-message")
	// Summary is INFO level and therefore filtered at warn.
	logger.LogSummary(&search.Summary{Matches: 99})

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Writes after Close are dropped, not panics.
	logger.LogError("after-close")

	data, err := os.ReadFile(logger.RunFile())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	content := string(data)

	for _, unwanted := range []string{"debug-message", "info-message", "Search Summary", "after-close"} {
		if strings.Contains(content, unwanted) {
			t.Errorf("run log should not contain %q:\n%s", unwanted, content)
		}
	}
	for _, wanted := range []string{"[WARN] warn-message", "[ERROR] error-message"} {
		if !strings.Contains(content, wanted) {
			t.Errorf("run log missing %q:\n%s", wanted, content)
		}
	}
}

func TestFileLoggerSummaryIncludesCrashes(t *testing.T) {
	logger, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel() error = %v", err)
	}

	logger.LogSummary(&search.Summary{
		Workers:     2,
		Directories: 5,
		Entries:     17,
		Matches:     4,
		ReadErrors:  1,
		Crashes:     1,
		Duration:    20 * time.Millisecond,
		CrashErrors: errors.New("worker 2 crashed while expanding root/x: boom"),
	})
	logger.Close()

	data, err := os.ReadFile(logger.RunFile())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	for _, wanted := range []string{
		"=== Search Summary ===",
		"Workers: 2",
		"Matches: 4",
		"Unreadable directories: 1",
		"Worker crashes: 1",
		"Crash details: worker 2 crashed while expanding root/x: boom",
	} {
		if !strings.Contains(string(data), wanted) {
			t.Errorf("run log missing %q:\n%s", wanted, data)
		}
	}
}

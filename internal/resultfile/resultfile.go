// Package resultfile writes the matches of a search to a file so that
// concurrent pathseek runs targeting the same file never interleave and
// readers never observe a half-written list.
package resultfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// LockPath returns the lock file guarding path.
// Example: writing to "matches.txt" uses lock file "matches.txt.lock"
func LockPath(path string) string {
	return path + ".lock"
}

// Write stores one match per line in path. It takes an exclusive lock on
// LockPath(path) for the duration of the write and replaces the file
// atomically.
func Write(path string, matches []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", lock.Path(), err)
	}
	defer lock.Unlock()

	var content strings.Builder
	for _, m := range matches {
		content.WriteString(m)
		content.WriteByte('\n')
	}

	return atomicWrite(path, []byte(content.String()))
}

// atomicWrite writes data to a temp file in the target's directory and
// renames it over the target, so readers see either the old or the new file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, ".pathseek-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Cleared on success once the rename has consumed the temp file.
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrRootNotFound is returned when the search directory does not exist
	// or cannot be stat'ed.
	ErrRootNotFound = errors.New("can not find specified search directory")
	// ErrRootNotDirectory is returned when the search directory is not a
	// directory.
	ErrRootNotDirectory = errors.New("search directory is not a directory")
)

// ValidateRoot checks that dir exists and is a directory. Symlinks are
// resolved, so a link to a directory is accepted as the root.
func ValidateRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRootNotFound, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, dir)
	}
	return nil
}

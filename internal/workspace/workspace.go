// Package workspace provides the directory clearing utility used to reset an
// output directory between materializer runs.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ErrBusy is wrapped by Clear when an entry is locked by another process.
var ErrBusy = errors.New("directory or file is busy or locked")

// Clear removes every entry inside dir, leaving dir itself in place. It
// stops at the first entry that cannot be removed.
func Clear(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(p); err != nil {
			if errors.Is(err, syscall.EBUSY) {
				return fmt.Errorf("%w: %s; ensure no other process is using it and try again", ErrBusy, p)
			}
			return fmt.Errorf("deleting %s: %w", p, err)
		}
	}
	return nil
}

// IsEmpty reports whether dir has no entries. A missing dir counts as empty.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	return len(entries) == 0, nil
}

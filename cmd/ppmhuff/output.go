package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// writeFileAtomic calls fn with a temporary file next to path
// and renames it to path once fn returns successfully.
//
// If fn or any later step fails, the temporary file is removed
// and whatever was at path is left untouched.
func writeFileAtomic(path string, fn func(io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(f.Name()))
		}
	}()

	if err := fn(f); err != nil {
		return multierr.Append(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return err
	}

	// CreateTemp creates files readable only by the owner.
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

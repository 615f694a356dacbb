package ppm

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// ReadFile decodes the PPM image stored at path.
func ReadFile(path string) (_ *Image, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return Decode(f)
}

// WriteFile writes img to path as a PPM image,
// truncating the file if it already exists.
func WriteFile(path string, img *Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return Encode(f, img)
}

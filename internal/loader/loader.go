// Package loader handles object file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/lc3disasm/internal/object"
	"github.com/retroenv/lc3disasm/internal/options"
)

// Loader handles loading object files from disk.
type Loader struct{}

// New creates a new object file loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses the object file of the input option.
// If the file extends beyond the end of the address space, the truncated
// memory image is returned together with an error that wraps a
// *object.TruncatedInputError.
func (l *Loader) Load(opts options.Program) (*object.MemoryImage, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	image, err := object.Read(file)
	switch {
	case errors.Is(err, object.ErrTruncated):
		return image, fmt.Errorf("loading object %s: %w", opts.Input, err)
	case err != nil:
		return nil, fmt.Errorf("loading object %s: %w", opts.Input, err)
	}

	return image, nil
}

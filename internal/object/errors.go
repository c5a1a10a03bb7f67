package object

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is wrapped by FormatError.
	ErrFormat = errors.New("invalid object format")
	// ErrTruncated is wrapped by TruncatedInputError.
	ErrTruncated = errors.New("object truncated at address space boundary")
)

// FormatError is returned when the input is too short to contain the origin word.
type FormatError struct {
	Size int // number of bytes available
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %d bytes available, origin word needs %d", ErrFormat, e.Size, wordSize)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// TruncatedInputError is returned together with a usable image when the
// instruction stream declared by the input does not fit between the origin
// and the end of the address space.
type TruncatedInputError struct {
	Origin   uint16
	Declared int // words present in the input after the origin
	Loaded   int // words stored in the image
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("%s: origin $%04X, loaded %d of %d words", ErrTruncated, e.Origin, e.Loaded, e.Declared)
}

func (e *TruncatedInputError) Unwrap() error {
	return ErrTruncated
}

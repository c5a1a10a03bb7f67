// Package writer implements the listing file writing functionality.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/lc3disasm/internal/program"
)

// label comment kinds of referenced offsets.
const (
	subroutineLabel = "subroutine"
	branchLabel     = "label"
	dataLabel       = "data"
)

// Writer writes a disassembled program as listing lines.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Header bool // write a comment header with checksum and address range
	Xref   bool // write a label comment before every referenced offset
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the optional header followed by one line per offset in
// ascending address order.
func (w Writer) Write() error {
	if w.options.Header {
		if err := w.WriteCommentHeader(); err != nil {
			return err
		}
	}

	for i, offset := range w.app.Offsets {
		if err := w.writeLabel(i, offset); err != nil {
			return fmt.Errorf("writing label at 0x%04X: %w", offset.Address, err)
		}
		if err := w.writeCodeLine(offset); err != nil {
			return fmt.Errorf("writing code line at 0x%04X: %w", offset.Address, err)
		}
	}
	return nil
}

// WriteCommentHeader writes the CRC32 checksum and address range of the
// object as comments to the output.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; Disassembly of LC-3 object\n"); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Origin: 0x%04x\n", w.app.Origin); err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}
	if len(w.app.Offsets) > 0 {
		if _, err := fmt.Fprintf(w.writer, "; End: 0x%04x\n", w.app.End); err != nil {
			return fmt.Errorf("writing end address: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "; Words: %d\n\n", len(w.app.Offsets)); err != nil {
		return fmt.Errorf("writing word count: %w", err)
	}
	return nil
}

// writeLabel writes a comment line naming the kind of a referenced offset,
// separated by an empty line from the previous code. A subroutine entry
// takes precedence over a branch destination, which takes precedence over
// a data reference.
func (w Writer) writeLabel(index int, offset program.Offset) error {
	if !w.options.Xref || !offset.IsReferenced() {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	kind := dataLabel
	switch {
	case offset.IsType(program.CallDestination):
		kind = subroutineLabel
	case offset.IsType(program.BranchDestination):
		kind = branchLabel
	}

	if _, err := fmt.Fprintf(w.writer, "; %s 0x%04x\n", kind, offset.Address); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(offset program.Offset) error {
	line := fmt.Sprintf("0x%04X: %s", offset.Address, offset.Code)

	var err error
	if offset.Comment == "" {
		_, err = fmt.Fprintf(w.writer, "%s\n", line)
	} else {
		_, err = fmt.Fprintf(w.writer, "%-30s ; %s\n", line, offset.Comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

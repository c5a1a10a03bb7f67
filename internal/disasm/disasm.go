// Package disasm implements the LC-3 object disassembler.
package disasm

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/retroenv/lc3disasm/internal/arch/lc3"
	"github.com/retroenv/lc3disasm/internal/object"
	"github.com/retroenv/lc3disasm/internal/options"
	"github.com/retroenv/lc3disasm/internal/program"
	"github.com/retroenv/lc3disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	decoder lc3.Decoder

	image *object.MemoryImage
	words []uint16

	instructions []lc3.Instruction // decoded instruction per loaded word
}

// New creates a new disassembler for the given memory image.
func New(logger *log.Logger, image *object.MemoryImage, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		decoder: lc3.Decoder{Extensions: options.Extensions},
		image:   image,
	}
}

// Process disassembles the memory image and writes the listing to the writer.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) (*program.Program, error) {
	if err := dis.decode(ctx); err != nil {
		return nil, err
	}

	app := dis.convertToProgram()

	fileWriter := writer.New(app, mainWriter, writer.Options{
		Header: dis.options.Header,
		Xref:   dis.options.Xref,
	})
	if err := fileWriter.Write(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	return app, nil
}

// converts the decoded instructions to a program type that will be used by
// the writer to generate the listing.
func (dis *Disasm) convertToProgram() *program.Program {
	app := program.New(dis.image.Origin(), dis.image.Len())

	for i, ins := range dis.instructions {
		offset := &app.Offsets[i]
		offset.Word = dis.words[i]
		offset.Code = lc3.Format(offset.Address, ins)
	}

	dis.processReferences(app)
	dis.processComments(app)

	crc32q := crc32.MakeTable(crc32.IEEE)
	app.Checksum = crc32.Checksum(dis.image.Bytes(), crc32q)

	dis.logger.Debug("Program converted",
		log.Hex("origin", app.Origin),
		log.Hex("end", app.End),
		log.Int("words", len(app.Offsets)))

	return app
}

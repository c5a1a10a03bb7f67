// Package verification verifies that a written listing matches its input object.
package verification

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/lc3disasm/internal/arch/lc3"
	"github.com/retroenv/lc3disasm/internal/object"
	"github.com/retroenv/lc3disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// maxLoggedMismatches limits the number of logged mismatching lines.
const maxLoggedMismatches = 10

var (
	errConsoleOutput     = errors.New("can not verify console output")
	errHighlightedOutput = errors.New("can not verify highlighted output")
)

// VerifyOutput verifies that the output file lists every loaded word of the
// input object file in address order, as rendered by the decoder.
func VerifyOutput(logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	if opts.Output == "" {
		return errConsoleOutput
	}
	if disasmOptions.Color {
		return errHighlightedOutput
	}

	source, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading source file for comparison: %w", err)
	}
	image, err := object.Load(source)
	if err != nil && !errors.Is(err, object.ErrTruncated) {
		return fmt.Errorf("loading source object: %w", err)
	}

	destination, err := os.ReadFile(opts.Output)
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}
	lines, err := listingLines(destination)
	if err != nil {
		return err
	}

	decoder := lc3.Decoder{Extensions: disasmOptions.Extensions}
	return checkLines(logger, decoder, image, lines)
}

// listingLines returns the instruction lines of a listing without their
// comments. Comment lines and empty lines are skipped.
func listingLines(listing []byte) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(listing))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		code, _, _ := strings.Cut(line, " ;")
		lines = append(lines, strings.TrimRight(code, " "))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning listing: %w", err)
	}
	return lines, nil
}

func checkLines(logger *log.Logger, decoder lc3.Decoder, image *object.MemoryImage, lines []string) error {
	if len(lines) != image.Len() {
		return fmt.Errorf("mismatched line count, %d lines for %d words", len(lines), image.Len())
	}

	var diffs uint64
	for i, line := range lines {
		address := image.Origin() + uint16(i)
		word, _ := image.Word(address)

		expected := decoder.Disassemble(address, word)
		if line == expected {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Line mismatch",
				log.Hex("address", address),
				log.String("expected", expected),
				log.String("got", line))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d line mismatches", diffs)
}

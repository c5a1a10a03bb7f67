// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/lc3disasm/internal/colorize"
	"github.com/retroenv/lc3disasm/internal/disasm"
	"github.com/retroenv/lc3disasm/internal/loader"
	"github.com/retroenv/lc3disasm/internal/object"
	"github.com/retroenv/lc3disasm/internal/options"
	"github.com/retroenv/lc3disasm/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

var errOutputIsInput = errors.New("output file would overwrite input file")

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	image, err := loadImage(logger, opts)
	if err != nil {
		return err
	}

	if opts.Output != "" && filepath.Clean(opts.Output) == filepath.Clean(opts.Input) {
		return fmt.Errorf("%w: %s", errOutputIsInput, opts.Input)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	if writer != os.Stdout {
		defer func() { _ = writer.Close() }()
	}

	disasmOptions.Color = colorize.Enabled(opts.Color, writer)

	if err := writeListing(ctx, logger, image, writer, disasmOptions); err != nil {
		return err
	}

	if opts.Verify {
		if err := verification.VerifyOutput(logger, opts, disasmOptions); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful", log.String("file", opts.Output))
	}
	return nil
}

// writeListing disassembles the image and writes the listing, highlighted
// if color is enabled.
func writeListing(ctx context.Context, logger *log.Logger, image *object.MemoryImage,
	writer io.Writer, disasmOptions options.Disassembler) error {

	dis := disasm.New(logger, image, disasmOptions)

	if !disasmOptions.Color {
		if _, err := dis.Process(ctx, writer); err != nil {
			return fmt.Errorf("disassembling: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if _, err := dis.Process(ctx, &buf); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	if err := colorize.Highlight(writer, buf.String()); err != nil {
		return fmt.Errorf("highlighting listing: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// In batch mode, matches that are the output file of any match are skipped,
// this excludes listings of a previous run and inputs with the listing
// extension that would be overwritten by their own output.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}

		outputs := set.New[string]()
		for _, match := range matches {
			outputs.Add(GenerateOutputFilename(match))
		}

		files := make([]string, 0, len(matches))
		for _, match := range matches {
			if outputs.Contains(match) {
				continue
			}
			files = append(files, match)
		}
		return files, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

// loadImage loads the object file. A truncated object is not fatal, the
// truncation is logged as a warning and the loaded part is returned.
func loadImage(logger *log.Logger, opts options.Program) (*object.MemoryImage, error) {
	image, err := loader.New().Load(opts)
	if err == nil {
		logger.Debug("Object loaded",
			log.String("file", opts.Input),
			log.Hex("origin", image.Origin()),
			log.Int("words", image.Len()))
		return image, nil
	}

	var truncated *object.TruncatedInputError
	if !errors.As(err, &truncated) {
		return nil, fmt.Errorf("loading object file: %w", err)
	}

	logger.Warn("Object exceeds the address space, ignoring words past the end",
		log.String("file", opts.Input),
		log.Hex("origin", truncated.Origin),
		log.Int("declared", truncated.Declared),
		log.Int("loaded", truncated.Loaded))
	return image, nil
}

func createWriter(opts options.Program) (*os.File, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("lc3disasm", log.String("version", buildinfo.Version(version, commit, date)))
}

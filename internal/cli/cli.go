// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/lc3disasm/internal/options"
)

var (
	errBatchOutput   = errors.New("output file option can not be combined with batch processing")
	errVerifyConsole = errors.New("verification requires an output file or batch processing")
	errVerifyColor   = errors.New("verification can not be combined with forced highlighting")
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	disasmOptions := options.NewDisassembler(opts)
	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the error message if set, followed by the usage information.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: lc3disasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Color = strings.ToLower(strings.TrimSpace(opts.Color))
	if opts.Color == "" {
		opts.Color = options.ColorAuto
	}

	validColors := []string{options.ColorAuto, options.ColorAlways, options.ColorNever}
	if !slices.Contains(validColors, opts.Color) {
		return fmt.Errorf("unsupported color mode: %s. Valid options: %s",
			opts.Color, strings.Join(validColors, ", "))
	}

	if opts.Workers < 0 {
		return fmt.Errorf("invalid worker count %d: must not be negative", opts.Workers)
	}
	return nil
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.Batch != "" && opts.Output != "" {
		return errBatchOutput
	}
	if opts.Verify && opts.Batch == "" && opts.Output == "" {
		return errVerifyConsole
	}
	if opts.Verify && opts.Color == options.ColorAlways {
		return errVerifyColor
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input object file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.obj")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Extensions, "ext", false, "decode the NOP, CLR, INC and DEC extension instructions of the RES opcode")
	flags.IntVar(&opts.Workers, "j", 0, "number of decoding workers, 0 uses the number of CPUs")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the generated output lists every word of the input")

	flags.BoolVar(&opts.Header, "header", false, "output a comment header with checksum and address range")
	flags.BoolVar(&opts.HexComments, "hexcomments", false, "output the raw instruction word as hex value in comments")
	flags.BoolVar(&opts.Xref, "xref", false, "output the addresses of referencing instructions in comments")
	flags.BoolVar(&opts.Traps, "traps", false, "output the trap service routine names in comments")
	flags.StringVar(&opts.Color, "color", options.ColorAuto, "highlight the output (auto/always/never)")
}

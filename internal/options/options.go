// Package options contains the program options.
package options

// Color modes of the listing output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input object file"`
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.obj)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug      bool `flag:"debug" usage:"enable debug logging"`
	Quiet      bool `flag:"q" usage:"quiet mode"`
	Extensions bool `flag:"ext" usage:"decode the NOP, CLR, INC and DEC extension instructions"`
	Workers    int  `flag:"j" usage:"number of decoding workers (default: number of CPUs)"`
	Verify     bool `flag:"verify" usage:"verify that the output file lists every word of the input"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Header      bool   `flag:"header" usage:"output a comment header with checksum and address range"`
	HexComments bool   `flag:"hexcomments" usage:"output the raw instruction word in comments"`
	Xref        bool   `flag:"xref" usage:"output the referencing addresses in comments"`
	Traps       bool   `flag:"traps" usage:"output trap service routine names in comments"`
	Color       string `flag:"color" usage:"highlight the output: auto, always, never" default:"auto"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Extensions bool // decode extension instructions in the RES opcode slot
	Workers    int  // decoding workers, 0 uses the number of CPUs

	Header      bool
	HexComments bool
	Xref        bool
	Traps       bool
	Color       bool // highlight the written listing
}

// NewDisassembler returns a new options instance based on the program options.
// The color mode needs to be resolved by the caller as it depends on the output.
func NewDisassembler(opts Program) Disassembler {
	return Disassembler{
		Extensions:  opts.Extensions,
		Workers:     opts.Workers,
		Header:      opts.Header,
		HexComments: opts.HexComments,
		Xref:        opts.Xref,
		Traps:       opts.Traps,
		Color:       opts.Color == ColorAlways,
	}
}

package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/lc3disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlags_DisasmOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Disassembler
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.obj"},
			want: options.Disassembler{},
		},
		{
			name: "extension flag",
			args: []string{"prog", "-ext", "test.obj"},
			want: options.Disassembler{Extensions: true},
		},
		{
			name: "comment flags",
			args: []string{"prog", "-hexcomments", "-xref", "-traps", "test.obj"},
			want: options.Disassembler{HexComments: true, Xref: true, Traps: true},
		},
		{
			name: "header and workers",
			args: []string{"prog", "-header", "-j", "4", "test.obj"},
			want: options.Disassembler{Header: true, Workers: 4},
		},
		{
			name: "forced color",
			args: []string{"prog", "-color", "ALWAYS", "test.obj"},
			want: options.Disassembler{Color: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			opts, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, "test.obj", opts.Input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Program(t *testing.T) {
	setArgs(t, "prog", "-q", "-debug", "-o", "out.asm", "test.obj")

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.True(t, opts.Quiet)
	assert.True(t, opts.Debug)
	assert.Equal(t, "out.asm", opts.Output)
	assert.Equal(t, options.ColorAuto, opts.Color)
}

func TestParseFlags_Usage(t *testing.T) {
	setArgs(t, "prog")

	_, _, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlags_InputFlag(t *testing.T) {
	setArgs(t, "prog", "-i", "test.obj")

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "test.obj", opts.Input)
}

func TestParseFlags_ArgumentAfterFile(t *testing.T) {
	setArgs(t, "prog", "test.obj", "-xref")

	_, _, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-xref")
}

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		color       string
		expectError bool
	}{
		{
			name:  "empty color defaults to auto",
			opts:  options.Program{},
			color: options.ColorAuto,
		},
		{
			name:  "color is lowercased",
			opts:  options.Program{OutputFlags: options.OutputFlags{Color: " Never "}},
			color: options.ColorNever,
		},
		{
			name:        "unknown color",
			opts:        options.Program{OutputFlags: options.OutputFlags{Color: "sometimes"}},
			expectError: true,
		},
		{
			name:        "negative workers",
			opts:        options.Program{Flags: options.Flags{Workers: -1}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeOptions(&tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.color, tt.opts.Color)
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name: "no conflict",
			opts: options.Program{},
		},
		{
			name: "batch only",
			opts: options.Program{Parameters: options.Parameters{Batch: "*.obj"}},
		},
		{
			name: "batch and output conflict",
			opts: options.Program{
				Parameters: options.Parameters{Batch: "*.obj", Output: "out.asm"},
			},
			expectError: true,
		},
		{
			name: "verify with output file",
			opts: options.Program{
				Parameters: options.Parameters{Output: "out.asm"},
				Flags:      options.Flags{Verify: true},
			},
		},
		{
			name:        "verify console output",
			opts:        options.Program{Flags: options.Flags{Verify: true}},
			expectError: true,
		},
		{
			name: "verify forced color",
			opts: options.Program{
				Parameters:  options.Parameters{Batch: "*.obj"},
				Flags:       options.Flags{Verify: true},
				OutputFlags: options.OutputFlags{Color: options.ColorAlways},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

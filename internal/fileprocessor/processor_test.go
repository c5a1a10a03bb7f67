package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/lc3disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeObject(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func processToFile(t *testing.T, input string, opts options.Program) string {
	t.Helper()

	opts.Input = input
	opts.Output = GenerateOutputFilename(input)
	opts.Color = options.ColorNever

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler(opts))
	assert.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	return string(data)
}

func TestProcessFile(t *testing.T) {
	input := writeObject(t, t.TempDir(), "halt.obj", []byte{0x30, 0x00, 0x10, 0x66, 0xF0, 0x25})

	output := processToFile(t, input, options.Program{})
	expected := "0x3000: ADD R0, R1, #6\n" +
		"0x3001: TRAP 0x25\n"
	assert.Equal(t, expected, output)
}

func TestProcessFile_Options(t *testing.T) {
	input := writeObject(t, t.TempDir(), "halt.obj", []byte{0x30, 0x00, 0x0F, 0xFF, 0xF0, 0x25})

	opts := options.Program{
		OutputFlags: options.OutputFlags{Header: true, Xref: true, Traps: true},
	}
	output := processToFile(t, input, opts)

	assert.True(t, strings.HasPrefix(output, "; Disassembly of LC-3 object\n"))
	assert.Contains(t, output, "\n; label 0x3000\n0x3000: BRnzp 0x3000           ; ref 0x3000\n")
	assert.Contains(t, output, "0x3001: TRAP 0x25              ; HALT\n")
	assert.False(t, strings.Contains(output, "\x1b["))
}

func TestProcessFile_Verify(t *testing.T) {
	input := writeObject(t, t.TempDir(), "halt.obj", []byte{0x30, 0x00, 0x10, 0x66, 0xF0, 0x25})

	opts := options.Program{
		Flags:       options.Flags{Verify: true},
		OutputFlags: options.OutputFlags{Header: true, HexComments: true, Traps: true},
	}
	output := processToFile(t, input, opts)
	assert.Contains(t, output, "0x3001: TRAP 0x25              ; F025  HALT\n")
}

func TestProcessFile_Truncated(t *testing.T) {
	input := writeObject(t, t.TempDir(), "wrap.obj", []byte{0xFF, 0xFF, 0xF0, 0x25, 0x10, 0x66})

	output := processToFile(t, input, options.Program{})
	assert.Equal(t, "0xFFFF: TRAP 0x25\n", output)
}

func TestProcessFile_InvalidObject(t *testing.T) {
	dir := t.TempDir()
	input := writeObject(t, dir, "short.obj", []byte{0x30})

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: filepath.Join(dir, "short.asm")},
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler(opts))
	assert.ErrorContains(t, err, "loading object file")

	_, err = os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	first := writeObject(t, dir, "a.obj", []byte{0x30, 0x00})
	second := writeObject(t, dir, "b.obj", []byte{0x30, 0x00})
	writeObject(t, dir, "notes.txt", nil)

	files, err := GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.obj")},
	})
	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, first, files[0])
	assert.Equal(t, second, files[1])

	files, err = GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Input: first},
	})
	assert.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, first, files[0])

	_, err = GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: "[invalid"},
	})
	assert.Error(t, err)
}

func TestGetFilesToProcess_SkipsOutputs(t *testing.T) {
	dir := t.TempDir()
	source := writeObject(t, dir, "prog.obj", []byte{0x30, 0x00, 0xF0, 0x25})
	listing := filepath.Join(dir, "prog.asm")
	assert.NoError(t, os.WriteFile(listing, []byte("0x3000: TRAP 0x25\n"), 0o600))
	standalone := filepath.Join(dir, "other.asm")
	assert.NoError(t, os.WriteFile(standalone, []byte{0x30, 0x00}, 0o600))

	files, err := GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*")},
	})
	assert.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, source, files[0])
}

func TestProcessFile_OutputIsInput(t *testing.T) {
	dir := t.TempDir()
	input := writeObject(t, dir, "prog.asm", []byte{0x30, 0x00, 0xF0, 0x25})
	before, err := os.ReadFile(input)
	assert.NoError(t, err)

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: GenerateOutputFilename(input)},
	}
	err = ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
	assert.True(t, errors.Is(err, errOutputIsInput))

	after, err := os.ReadFile(input)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(before, after))
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "prog.asm", GenerateOutputFilename("prog.obj"))
	assert.Equal(t, filepath.Join("dir", "prog.asm"), GenerateOutputFilename(filepath.Join("dir", "prog")))
}

package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/lc3disasm/internal/program"
	"github.com/retroenv/retrogolib/assert"
)

func testProgram() *program.Program {
	app := program.New(0x3000, 2)
	app.Checksum = 0xdeadbeef
	app.Offsets[0].Code = "ADD R0, R1, #6"
	app.Offsets[1].Code = "TRAP 0x25"
	app.Offsets[1].Comment = "HALT"
	return app
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := New(testProgram(), &buf, Options{})
	assert.NoError(t, w.Write())

	expected := "0x3000: ADD R0, R1, #6\n" +
		"0x3001: TRAP 0x25              ; HALT\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_WriteCommentHeader(t *testing.T) {
	var buf bytes.Buffer
	w := New(testProgram(), &buf, Options{Header: true})
	assert.NoError(t, w.Write())

	expected := "; Disassembly of LC-3 object\n" +
		"; CRC32 checksum: deadbeef\n" +
		"; Origin: 0x3000\n" +
		"; End: 0x3001\n" +
		"; Words: 2\n" +
		"\n" +
		"0x3000: ADD R0, R1, #6\n" +
		"0x3001: TRAP 0x25              ; HALT\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_EmptyProgram(t *testing.T) {
	var buf bytes.Buffer
	w := New(program.New(0x3000, 0), &buf, Options{Header: true})
	assert.NoError(t, w.Write())

	expected := "; Disassembly of LC-3 object\n" +
		"; CRC32 checksum: 00000000\n" +
		"; Origin: 0x3000\n" +
		"; Words: 0\n" +
		"\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_XrefLabels(t *testing.T) {
	app := program.New(0x3000, 4)
	for i, code := range []string{"LEA R0, 0x3003", "JSR 0x3002", "BRnzp 0x3002", "BRz 0x3001"} {
		app.Offsets[i].Code = code
	}
	app.Offsets[1].SetType(program.BranchDestination)
	app.Offsets[2].SetType(program.BranchDestination | program.CallDestination)
	app.Offsets[3].SetType(program.DataReference)

	var buf bytes.Buffer
	assert.NoError(t, New(app, &buf, Options{Xref: true}).Write())

	expected := "0x3000: LEA R0, 0x3003\n" +
		"\n" +
		"; label 0x3001\n" +
		"0x3001: JSR 0x3002\n" +
		"\n" +
		"; subroutine 0x3002\n" +
		"0x3002: BRnzp 0x3002\n" +
		"\n" +
		"; data 0x3003\n" +
		"0x3003: BRz 0x3001\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	assert.NoError(t, New(app, &buf, Options{}).Write())
	assert.False(t, strings.Contains(buf.String(), ";"))
}

func TestWriter_XrefLabelFirstLine(t *testing.T) {
	app := program.New(0x3000, 1)
	app.Offsets[0].Code = "BRnzp 0x3000"
	app.Offsets[0].SetType(program.BranchDestination)

	var buf bytes.Buffer
	assert.NoError(t, New(app, &buf, Options{Xref: true}).Write())
	assert.Equal(t, "; label 0x3000\n0x3000: BRnzp 0x3000\n", buf.String())
}

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriter_WriteError(t *testing.T) {
	w := New(testProgram(), failingWriter{}, Options{})
	err := w.Write()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errWrite))
	assert.ErrorContains(t, err, "0x3000")

	w = New(testProgram(), failingWriter{}, Options{Header: true})
	assert.ErrorContains(t, w.Write(), "writing title")
}

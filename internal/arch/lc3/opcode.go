package lc3

import "fmt"

// Opcode identifies an instruction class.
type Opcode uint8

// Base opcodes, encoded in bits 15-12 of an instruction word.
const (
	BR   Opcode = 0b0000
	ADD  Opcode = 0b0001
	LD   Opcode = 0b0010
	ST   Opcode = 0b0011
	JSR  Opcode = 0b0100
	AND  Opcode = 0b0101
	LDR  Opcode = 0b0110
	STR  Opcode = 0b0111
	RTI  Opcode = 0b1000
	NOT  Opcode = 0b1001
	LDI  Opcode = 0b1010
	STI  Opcode = 0b1011
	JMP  Opcode = 0b1100
	RES  Opcode = 0b1101
	LEA  Opcode = 0b1110
	TRAP Opcode = 0b1111
)

// Extension opcodes keep the vendor numbering. They can not be encoded in the
// 4 bit opcode field and are decoded from the RES slot instead, see Extended.
const (
	NOP Opcode = 0xE8
	CLR Opcode = 0xE9
	INC Opcode = 0xEA
	DEC Opcode = 0xEB
)

var opcodeNames = map[Opcode]string{
	BR:   "BR",
	ADD:  "ADD",
	LD:   "LD",
	ST:   "ST",
	JSR:  "JSR",
	AND:  "AND",
	LDR:  "LDR",
	STR:  "STR",
	RTI:  "RTI",
	NOT:  "NOT",
	LDI:  "LDI",
	STI:  "STI",
	JMP:  "JMP",
	RES:  "RES",
	LEA:  "LEA",
	TRAP: "TRAP",
	NOP:  "NOP",
	CLR:  "CLR",
	INC:  "INC",
	DEC:  "DEC",
}

// String returns the mnemonic of the opcode.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// IsExtension returns whether the opcode is one of the vendor extension opcodes.
func (o Opcode) IsExtension() bool {
	return o >= NOP && o <= DEC
}

// opcodeOf returns the base opcode of an instruction word.
func opcodeOf(word uint16) Opcode {
	return Opcode(word >> 12)
}

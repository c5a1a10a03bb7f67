// Package lc3 provides LC-3 instruction decoding and disassembly formatting.
//
// # Instruction Encoding
//
// LC-3 is a 16-bit word addressed architecture with 8 general-purpose
// registers R0-R7:
//   - All instructions are one word (16 bits)
//   - Bits 15-12 select one of 16 opcodes
//   - Operand fields are register indices (3 bits) or sign extended
//     immediates and offsets of 5, 6, 9 or 11 bits
//   - PC-relative offsets are relative to the address following the
//     instruction
//
// # Decoding
//
// Decode never fails, every 16-bit word maps to exactly one Instruction
// variant:
//
//	Operate     ADD, AND
//	Not         NOT
//	Branch      BR with n, z, p condition flags
//	Jump        JMP, RET
//	Subroutine  JSR, JSRR
//	PCRelative  LD, LDI, ST, STI, LEA
//	BaseOffset  LDR, STR
//	Trap        TRAP
//	Bare        RTI, RES
//	Extended    NOP, CLR, INC, DEC (Decoder.Extensions only)
//
// # Output Format
//
//	0x3000: ADD R0, R1, #6
//	0x3001: BRnz 0x2fff
//	0x3002: TRAP 0x25
//
// Line addresses use uppercase hex digits, target addresses lowercase hex
// digits and immediates signed decimal values.
//
// # Extension Instructions
//
// The NOP, CLR, INC and DEC extension instructions can not be encoded in the
// 4 bit opcode field. When enabled, they are decoded from the otherwise
// unused RES opcode with bits 8-2 clear and the operation in bits 1-0.
package lc3

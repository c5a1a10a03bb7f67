package lc3

import "fmt"

// Disassemble returns the disassembly line of a base instruction set word
// located at the given address.
func Disassemble(address, word uint16) string {
	return baseDecoder.Disassemble(address, word)
}

// Disassemble returns the disassembly line of a word located at the given address.
func (d Decoder) Disassemble(address, word uint16) string {
	return FormatLine(address, d.Decode(word))
}

// FormatLine returns the instruction prefixed by its address.
func FormatLine(address uint16, ins Instruction) string {
	return fmt.Sprintf("0x%04X: %s", address, Format(address, ins))
}

// FormatAddress returns the listing notation of a target address.
func FormatAddress(address uint16) string {
	return fmt.Sprintf("0x%04x", address)
}

// Format returns the assembly text of an instruction located at the given
// address. The address is used to resolve PC-relative operands.
func Format(address uint16, ins Instruction) string {
	switch i := ins.(type) {
	case Operate:
		if i.Immediate {
			return fmt.Sprintf("%s %s, %s, #%d", i.Op, i.DR, i.SR1, i.Imm5)
		}
		return fmt.Sprintf("%s %s, %s, %s", i.Op, i.DR, i.SR1, i.SR2)

	case Not:
		return fmt.Sprintf("NOT %s, %s", i.DR, i.SR)

	case Branch:
		target, _ := i.Target(address)
		return fmt.Sprintf("BR%s %s", i.Conditions(), FormatAddress(target))

	case Jump:
		if i.IsReturn() {
			return "RET"
		}
		return fmt.Sprintf("JMP %s", i.BaseR)

	case Subroutine:
		if !i.Long {
			return fmt.Sprintf("JSRR %s", i.BaseR)
		}
		target, _ := i.Target(address)
		return fmt.Sprintf("JSR %s", FormatAddress(target))

	case PCRelative:
		target, _ := i.Target(address)
		return fmt.Sprintf("%s %s, %s", i.Op, i.Reg, FormatAddress(target))

	case BaseOffset:
		return fmt.Sprintf("%s %s, %s, #%d", i.Op, i.Reg, i.BaseR, i.Offset)

	case Trap:
		return fmt.Sprintf("TRAP 0x%02x", i.Vector)

	case Bare:
		return i.Op.String()

	case Extended:
		if i.Op == NOP {
			return "NOP"
		}
		return fmt.Sprintf("%s %s", i.Op, i.Reg)

	default:
		return RES.String()
	}
}

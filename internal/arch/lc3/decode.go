package lc3

// Decoder decodes instruction words. The zero value decodes the base
// instruction set.
type Decoder struct {
	// Extensions enables decoding of the NOP, CLR, INC and DEC extension
	// instructions from the RES opcode slot.
	Extensions bool
}

var baseDecoder Decoder

// Decode decodes an instruction word of the base instruction set.
func Decode(word uint16) Instruction {
	return baseDecoder.Decode(word)
}

// SignExtend extends the sign bit of a value of bitCount bits to 16 bits.
func SignExtend(value uint16, bitCount uint16) uint16 {
	if (value>>(bitCount-1))&0x1 == 1 {
		value |= 0xFFFF << bitCount
	}
	return value
}

// signedField returns the sign extended field of bitCount bits starting at bit 0.
func signedField(word uint16, bitCount uint16) int16 {
	mask := uint16(1)<<bitCount - 1
	return int16(SignExtend(word&mask, bitCount))
}

func register(word uint16, shift uint16) Register {
	return Register((word >> shift) & 0x7)
}

// Decode decodes an instruction word. Every word decodes to an instruction.
func (d Decoder) Decode(word uint16) Instruction {
	op := opcodeOf(word)

	switch op {
	case ADD, AND:
		ins := Operate{
			Op:  op,
			DR:  register(word, 9),
			SR1: register(word, 6),
		}
		if (word>>5)&0x1 == 1 {
			ins.Immediate = true
			ins.Imm5 = signedField(word, 5)
		} else {
			ins.SR2 = register(word, 0)
		}
		return ins

	case NOT:
		return Not{
			DR: register(word, 9),
			SR: register(word, 6),
		}

	case BR:
		return Branch{
			N:      word&(1<<11) != 0,
			Z:      word&(1<<10) != 0,
			P:      word&(1<<9) != 0,
			Offset: signedField(word, 9),
		}

	case JMP:
		return Jump{BaseR: register(word, 6)}

	case JSR:
		if (word>>11)&0x1 == 1 {
			return Subroutine{
				Long:   true,
				Offset: signedField(word, 11),
			}
		}
		return Subroutine{BaseR: register(word, 6)}

	case LD, LDI, ST, STI, LEA:
		return PCRelative{
			Op:     op,
			Reg:    register(word, 9),
			Offset: signedField(word, 9),
		}

	case LDR, STR:
		return BaseOffset{
			Op:     op,
			Reg:    register(word, 9),
			BaseR:  register(word, 6),
			Offset: signedField(word, 6),
		}

	case TRAP:
		return Trap{Vector: uint8(word & 0xFF)}

	case RES:
		if d.Extensions {
			if ins, ok := decodeExtended(word); ok {
				return ins
			}
		}
		return Bare{Op: RES}

	default: // RTI
		return Bare{Op: op}
	}
}

// decodeExtended decodes an extension instruction from a RES word. Bits 8-2
// have to be clear, a NOP also requires a clear register field.
func decodeExtended(word uint16) (Extended, bool) {
	if word&0x01FC != 0 {
		return Extended{}, false
	}

	reg := register(word, 9)
	var op Opcode
	switch word & 0x3 {
	case 0b00:
		if reg != 0 {
			return Extended{}, false
		}
		return Extended{Op: NOP}, true
	case 0b01:
		op = CLR
	case 0b10:
		op = INC
	default:
		op = DEC
	}
	return Extended{Op: op, Reg: reg}, true
}

package lc3

import "fmt"

// Register is a general purpose register index 0-7.
type Register uint8

// LinkRegister receives the return address of JSR, JSRR and TRAP.
const LinkRegister Register = 7

func (r Register) String() string {
	return fmt.Sprintf("R%d", uint8(r))
}

// Reference describes how an instruction uses the address that it references.
type Reference uint8

const (
	NoReference     Reference = iota
	BranchReference           // conditional branch destination
	CallReference             // subroutine entry
	DataReference             // loaded, stored or address taken
)

// Instruction is a decoded instruction word. The set of implementations is
// closed, every type in this package that implements it is listed in Format.
type Instruction interface {
	// Opcode returns the opcode class of the instruction.
	Opcode() Opcode
	// Target returns the PC-relative address referenced by the instruction
	// when it is located at the given address.
	Target(address uint16) (uint16, Reference)

	isInstruction()
}

// pcRelative returns the address of an offset relative to the incremented
// program counter. Arithmetic wraps at the address space boundary.
func pcRelative(address uint16, offset int16) uint16 {
	return address + 1 + uint16(offset)
}

// ADD  |0001    |DR   |SR1  |0|00 |SR2   |
// ADD  |0001    |DR   |SR1  |1|imm5      |
// AND  |0101    |DR   |SR1  |0|00 |SR2   |
// AND  |0101    |DR   |SR1  |1|imm5      |

// Operate is an ADD or AND instruction.
type Operate struct {
	Op        Opcode
	DR        Register
	SR1       Register
	Immediate bool
	SR2       Register // set if Immediate is false
	Imm5      int16    // set if Immediate is true
}

// NOT  |1001    |DR   |SR   |1|11111     |

// Not is a bitwise complement instruction.
type Not struct {
	DR Register
	SR Register
}

// BR   |0000    |N|Z|P|PCoffset9         |

// Branch is a conditional branch.
type Branch struct {
	N, Z, P bool
	Offset  int16
}

// JMP  |1100    |000  |BaseR|000000      |
// RET  |1100    |000  |111  |000000      |

// Jump is a register indirect jump. A jump through the link register is a
// subroutine return.
type Jump struct {
	BaseR Register
}

// JSR  |0100    |1|PCoffset11            |
// JSRR |0100    |0|00 |BaseR|000000      |

// Subroutine is a JSR or JSRR subroutine call.
type Subroutine struct {
	Long   bool
	Offset int16    // set if Long is true
	BaseR  Register // set if Long is false
}

// LD   |0010    |DR   |PCoffset9         |
// LDI  |1010    |DR   |PCoffset9         |
// LEA  |1110    |DR   |PCoffset9         |
// ST   |0011    |SR   |PCoffset9         |
// STI  |1011    |SR   |PCoffset9         |

// PCRelative is a load, store or address computation using a PC-relative offset.
type PCRelative struct {
	Op     Opcode
	Reg    Register
	Offset int16
}

// LDR  |0110    |DR   |BaseR|offset6     |
// STR  |0111    |SR   |BaseR|offset6     |

// BaseOffset is a load or store relative to a base register.
type BaseOffset struct {
	Op     Opcode
	Reg    Register
	BaseR  Register
	Offset int16
}

// TRAP |1111    |0000   |trapvect8       |

// Trap is a service routine call.
type Trap struct {
	Vector uint8
}

// RTI  |1000    |000000000000            |
// RES  |1101    |                        |

// Bare is an instruction without operands.
type Bare struct {
	Op Opcode
}

// NOP  |1101    |000  |0000000     |00|
// CLR  |1101    |DR   |0000000     |01|
// INC  |1101    |DR   |0000000     |10|
// DEC  |1101    |DR   |0000000     |11|

// Extended is a vendor extension instruction, encoded in the RES slot.
type Extended struct {
	Op  Opcode
	Reg Register
}

func (i Operate) Opcode() Opcode    { return i.Op }
func (i Not) Opcode() Opcode        { return NOT }
func (i Branch) Opcode() Opcode     { return BR }
func (i Jump) Opcode() Opcode       { return JMP }
func (i Subroutine) Opcode() Opcode { return JSR }
func (i PCRelative) Opcode() Opcode { return i.Op }
func (i BaseOffset) Opcode() Opcode { return i.Op }
func (i Trap) Opcode() Opcode       { return TRAP }
func (i Bare) Opcode() Opcode       { return i.Op }
func (i Extended) Opcode() Opcode   { return i.Op }

func (i Operate) Target(uint16) (uint16, Reference)    { return 0, NoReference }
func (i Not) Target(uint16) (uint16, Reference)        { return 0, NoReference }
func (i Jump) Target(uint16) (uint16, Reference)       { return 0, NoReference }
func (i BaseOffset) Target(uint16) (uint16, Reference) { return 0, NoReference }
func (i Trap) Target(uint16) (uint16, Reference)       { return 0, NoReference }
func (i Bare) Target(uint16) (uint16, Reference)       { return 0, NoReference }
func (i Extended) Target(uint16) (uint16, Reference)   { return 0, NoReference }

// Target returns the branch destination.
func (i Branch) Target(address uint16) (uint16, Reference) {
	return pcRelative(address, i.Offset), BranchReference
}

// Target returns the subroutine address of a JSR, a JSRR has no static target.
func (i Subroutine) Target(address uint16) (uint16, Reference) {
	if !i.Long {
		return 0, NoReference
	}
	return pcRelative(address, i.Offset), CallReference
}

// Target returns the referenced data address.
func (i PCRelative) Target(address uint16) (uint16, Reference) {
	return pcRelative(address, i.Offset), DataReference
}

// IsReturn returns whether the jump returns from a subroutine.
func (i Jump) IsReturn() bool {
	return i.BaseR == LinkRegister
}

// Conditions returns the mnemonic suffix for the branch condition flags.
func (i Branch) Conditions() string {
	var s string
	if i.N {
		s += "n"
	}
	if i.Z {
		s += "z"
	}
	if i.P {
		s += "p"
	}
	return s
}

func (Operate) isInstruction()    {}
func (Not) isInstruction()        {}
func (Branch) isInstruction()     {}
func (Jump) isInstruction()       {}
func (Subroutine) isInstruction() {}
func (PCRelative) isInstruction() {}
func (BaseOffset) isInstruction() {}
func (Trap) isInstruction()       {}
func (Bare) isInstruction()       {}
func (Extended) isInstruction()   {}

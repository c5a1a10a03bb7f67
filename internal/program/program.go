// Package program represents a disassembled LC-3 object image.
package program

// Offset defines the content of a single word address of the listing.
type Offset struct {
	Address uint16
	Word    uint16 // raw instruction word

	Type OffsetType

	Code       string   // asm output of this instruction
	Comment    string   // combined comment parts, without the leading ';'
	References []uint16 // addresses of instructions that reference this offset
}

// Program defines a disassembled object image.
type Program struct {
	Origin   uint16
	End      uint16 // address of the last loaded word
	Checksum uint32 // CRC32 of the object file contents

	Offsets []Offset
}

// New creates a new program with an offset slot for every loaded word.
func New(origin uint16, count int) *Program {
	offsets := make([]Offset, count)
	for i := range offsets {
		offsets[i].Address = origin + uint16(i)
	}

	end := origin
	if count > 0 {
		end = origin + uint16(count-1)
	}

	return &Program{
		Origin:  origin,
		End:     end,
		Offsets: offsets,
	}
}

// OffsetInfo returns the offset of the given address or nil if the address
// is not part of the program.
func (p *Program) OffsetInfo(address uint16) *Offset {
	if address < p.Origin {
		return nil
	}
	index := int(address - p.Origin)
	if index >= len(p.Offsets) {
		return nil
	}
	return &p.Offsets[index]
}

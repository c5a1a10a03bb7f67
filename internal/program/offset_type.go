package program

// OffsetType defines the type of a program offset.
type OffsetType uint8

// offset types, an offset can be of multiple types.
const (
	UnknownOffset     OffsetType = 0
	BranchDestination OffsetType = 1 << iota // target of a conditional branch
	CallDestination                          // target of a JSR, indicating a subroutine
	DataReference                            // target of a PC-relative load, store or LEA
)

// IsType returns whether the offset is of given type.
func (o *Offset) IsType(typ OffsetType) bool {
	return o.Type&typ != 0
}

// SetType sets the type of the offset.
func (o *Offset) SetType(typ OffsetType) {
	o.Type |= typ
}

// IsReferenced returns whether any instruction references the offset.
func (o *Offset) IsReferenced() bool {
	return o.IsType(BranchDestination | CallDestination | DataReference)
}

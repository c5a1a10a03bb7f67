package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/lc3disasm/internal/arch/lc3"
	"github.com/retroenv/lc3disasm/internal/program"
)

// processReferences marks all offsets that are the target of a PC-relative
// instruction and records the referencing addresses. Targets outside of the
// loaded image are ignored. Instructions are processed in ascending address
// order and have a single target, the reference lists are therefore sorted
// and free of duplicates.
func (dis *Disasm) processReferences(app *program.Program) {
	for i, ins := range dis.instructions {
		address := app.Offsets[i].Address

		target, ref := ins.Target(address)
		offsetInfo := app.OffsetInfo(target)
		if ref == lc3.NoReference || offsetInfo == nil {
			continue
		}

		switch ref {
		case lc3.BranchReference:
			offsetInfo.SetType(program.BranchDestination)
		case lc3.CallReference:
			offsetInfo.SetType(program.CallDestination)
		case lc3.DataReference:
			offsetInfo.SetType(program.DataReference)
		}

		offsetInfo.References = append(offsetInfo.References, address)
	}
}

// processComments builds the line comments of all offsets based on the
// enabled comment options.
func (dis *Disasm) processComments(app *program.Program) {
	for i, ins := range dis.instructions {
		offset := &app.Offsets[i]

		var parts []string
		if dis.options.HexComments {
			parts = append(parts, fmt.Sprintf("%04X", offset.Word))
		}
		if dis.options.Traps {
			if trap, ok := ins.(lc3.Trap); ok {
				if name, ok := lc3.TrapName(trap.Vector); ok {
					parts = append(parts, name)
				}
			}
		}
		if dis.options.Xref && len(offset.References) > 0 {
			parts = append(parts, referenceComment(offset.References))
		}

		offset.Comment = strings.Join(parts, "  ")
	}
}

// referenceComment returns the comment listing the referencing addresses.
func referenceComment(references []uint16) string {
	addresses := make([]string, len(references))
	for i, address := range references {
		addresses[i] = lc3.FormatAddress(address)
	}
	return "ref " + strings.Join(addresses, ", ")
}

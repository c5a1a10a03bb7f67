package lc3

// Trap service routine vectors.
const (
	TrapGETC  uint8 = 0x20 // read a character, no echo
	TrapOUT   uint8 = 0x21 // write a character
	TrapPUTS  uint8 = 0x22 // write a word string
	TrapIN    uint8 = 0x23 // read a character with prompt and echo
	TrapPUTSP uint8 = 0x24 // write a byte string
	TrapHALT  uint8 = 0x25

	// extension vectors
	TrapPUTHEX uint8 = 0x26 // write a number in hex
	TrapRND    uint8 = 0x27 // random number
	TrapGETSTR uint8 = 0x28 // read a line
	TrapSLEEP  uint8 = 0x29
)

var trapNames = map[uint8]string{
	TrapGETC:   "GETC",
	TrapOUT:    "OUT",
	TrapPUTS:   "PUTS",
	TrapIN:     "IN",
	TrapPUTSP:  "PUTSP",
	TrapHALT:   "HALT",
	TrapPUTHEX: "PUTHEX",
	TrapRND:    "RND",
	TrapGETSTR: "GETSTR",
	TrapSLEEP:  "SLEEP",
}

// TrapName returns the name of the service routine for a trap vector.
func TrapName(vector uint8) (string, bool) {
	name, ok := trapNames[vector]
	return name, ok
}

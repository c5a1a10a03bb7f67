// Package object loads LC-3 object files into an address indexed memory image.
//
// An object file is a sequence of big-endian 16-bit words. The first word is
// the origin, every following word is placed at the next address starting at
// the origin.
package object

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	wordSize = 2

	// AddressSpace is the number of addressable words.
	AddressSpace = 1 << 16
)

// MemoryImage contains the words of a loaded object file. It is read-only
// after loading.
type MemoryImage struct {
	origin uint16
	words  []uint16
}

// NewMemoryImage returns an image of the given words placed at origin.
// Words that would exceed the address space are dropped.
func NewMemoryImage(origin uint16, words []uint16) *MemoryImage {
	limit := AddressSpace - int(origin)
	if len(words) > limit {
		words = words[:limit]
	}
	return &MemoryImage{
		origin: origin,
		words:  append([]uint16(nil), words...),
	}
}

// Load parses the object data. A TruncatedInputError is returned together
// with the image if words had to be dropped at the address space boundary,
// any other error is returned without an image.
func Load(data []byte) (*MemoryImage, error) {
	if len(data) < wordSize {
		return nil, &FormatError{Size: len(data)}
	}

	origin := binary.BigEndian.Uint16(data)
	data = data[wordSize:]

	declared := len(data) / wordSize // a trailing odd byte is not a word
	count := min(declared, AddressSpace-int(origin))

	img := &MemoryImage{
		origin: origin,
		words:  make([]uint16, count),
	}
	for i := range count {
		img.words[i] = binary.BigEndian.Uint16(data[i*wordSize:])
	}

	if count < declared {
		return img, &TruncatedInputError{
			Origin:   origin,
			Declared: declared,
			Loaded:   count,
		}
	}
	return img, nil
}

// Read reads all object data from the reader and loads it.
func Read(reader io.Reader) (*MemoryImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading object data: %w", err)
	}
	return Load(data)
}

// Origin returns the address of the first word.
func (m *MemoryImage) Origin() uint16 {
	return m.origin
}

// Len returns the number of loaded words.
func (m *MemoryImage) Len() int {
	return len(m.words)
}

// End returns the address of the last loaded word. For an empty image the
// origin is returned.
func (m *MemoryImage) End() uint16 {
	if len(m.words) == 0 {
		return m.origin
	}
	return m.origin + uint16(len(m.words)-1)
}

// Contains returns whether a word is loaded at the given address.
func (m *MemoryImage) Contains(address uint16) bool {
	return address >= m.origin && int(address-m.origin) < len(m.words)
}

// Word returns the word loaded at the given address.
func (m *MemoryImage) Word(address uint16) (uint16, bool) {
	if !m.Contains(address) {
		return 0, false
	}
	return m.words[address-m.origin], true
}

// Words returns a copy of all loaded words in address order.
func (m *MemoryImage) Words() []uint16 {
	return append([]uint16(nil), m.words...)
}

// Bytes returns the image encoded as object file data, including the origin.
func (m *MemoryImage) Bytes() []byte {
	data := make([]byte, wordSize*(len(m.words)+1))
	binary.BigEndian.PutUint16(data, m.origin)
	for i, w := range m.words {
		binary.BigEndian.PutUint16(data[wordSize*(i+1):], w)
	}
	return data
}

// Package opcode recovers RISC-V instruction words from hex text and raw byte streams.
package opcode

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrMalformedByteStream = errors.New("malformed byte stream")
	ErrMalformedWord       = errors.New("malformed word")
)

// lengthMask selects the two bits that tell a compressed instruction from a full-width one.
const lengthMask = 0b11

// Width is the encoded size of an instruction in bits.
type Width int

const (
	Width16 Width = 16
	Width32 Width = 32
)

// Word is a single instruction word together with its encoded width.
type Word struct {
	Value uint32 `json:"value"`
	Width Width  `json:"width"`
}

// String returns the canonical text form: 0x followed by lowercase hex,
// zero-padded to 4 digits for 16-bit words and 8 digits for 32-bit words.
func (w Word) String() string {
	if w.Width == Width32 {
		return fmt.Sprintf("0x%08x", w.Value)
	}
	return fmt.Sprintf("0x%04x", w.Value)
}

// Size returns the number of bytes the word occupies in memory.
func (w Word) Size() int {
	return int(w.Width) / 8
}

// Fits reports whether the value can be encoded in the tagged width.
func (w Word) Fits() bool {
	return w.Width == Width32 || w.Value <= 0xffff
}

// Bytes returns the little-endian memory image of the word.
func (w Word) Bytes() []byte {
	if w.Width == Width32 {
		return binary.LittleEndian.AppendUint32(nil, w.Value)
	}
	return binary.LittleEndian.AppendUint16(nil, uint16(w.Value))
}

// file: pkg/basic/preamble.go

package basic

import "encoding/binary"

const preambleSize = 5

// Preamble is the optional 5-byte machine-language header some binary
// BASIC dumps carry: a marker byte followed by a big-endian load address
// and a big-endian length.
type Preamble struct {
	LoadAddress uint16
	Length      uint16
}

// HasPreamble reports whether data begins with the 0xFF preamble marker.
func HasPreamble(data []byte) bool {
	return len(data) > 0 && data[0] == 0xFF
}

// DecodePreamble reads the preamble from the front of data and returns it
// alongside the byte offset where the program body begins. ok is false if
// data is too short or does not start with the marker.
func DecodePreamble(data []byte) (p Preamble, offset int, ok bool) {
	if !HasPreamble(data) || len(data) < preambleSize {
		return Preamble{}, 0, false
	}
	p.LoadAddress = binary.BigEndian.Uint16(data[1:3])
	p.Length = binary.BigEndian.Uint16(data[3:5])
	return p, preambleSize, true
}

// Encode renders the 5-byte preamble: marker, load address, length.
func (p Preamble) Encode() [preambleSize]byte {
	var buf [preambleSize]byte
	buf[0] = 0xFF
	binary.BigEndian.PutUint16(buf[1:3], p.LoadAddress)
	binary.BigEndian.PutUint16(buf[3:5], p.Length)
	return buf
}

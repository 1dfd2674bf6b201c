/*
Package xdr reads the big-endian, word-padded primitives that RFC 4506
(External Data Representation) defines and that the XTC trajectory format
is framed in.
*/
package xdr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader reads XDR primitives from a fixed byte buffer, advancing an
// internal cursor.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential XDR reads starting at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadI32 reads a signed big-endian 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("xdr: unexpected end of data reading i32")
	}
	v := int32(binary.BigEndian.Uint32(r.data[r.pos : r.pos+4]))
	r.pos += 4
	return v, nil
}

// ReadU32 reads an unsigned big-endian 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	v, err := r.ReadI32()
	return uint32(v), err
}

// ReadF32 reads a big-endian IEEE-754 32-bit float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadOpaque returns the next n bytes and advances the cursor by
// ceil(n/4)*4, per XDR's 4-byte opaque padding rule.
func (r *Reader) ReadOpaque(n int) ([]byte, error) {
	padded := (n + 3) &^ 3
	if r.pos+padded > len(r.data) {
		return nil, fmt.Errorf("xdr: unexpected end of data reading opaque of %d bytes", n)
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += padded
	return out, nil
}

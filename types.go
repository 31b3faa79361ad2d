// Package bitblock declares fixed-or-variable-length bit-block records —
// contiguous bit-aligned segments — and encodes/decodes them to and from
// raw bit sequences.
//
// A block is declared once via NewBlock and is immutable thereafter; the
// resulting *Block exposes Encode, Decode/DecodeStatic, and a read-only
// reflection surface (Segments/SegmentInfo). The heavy lifting — the
// per-type encode/decode cross product and the bit cursor beneath it —
// lives in internal/primitive and internal/bitio; this package supplies
// the segment/block data model and the resolver-driven decode protocol
// on top of it.
package bitblock

import "github.com/halfbit/bitblock/internal/common"

// Type is a segment's base element type.
type Type = common.Type

const (
	Integer   = common.Integer
	Float     = common.Float
	Bitstring = common.Bitstring
	Bits      = common.Bitstring // alias, per spec §3
	Binary    = common.Binary
	Bytes     = common.Binary // alias, per spec §3
	UTF8      = common.UTF8
	UTF16     = common.UTF16
	UTF32     = common.UTF32
)

// Sign controls two's-complement interpretation of Integer segments.
type Sign = common.Sign

const (
	Unsigned = common.Unsigned
	Signed   = common.Signed
)

// Endian controls byte order for Integer, Float, UTF16 and UTF32 segments.
type Endian = common.Endian

const (
	Big    = common.Big
	Little = common.Little
)

// BitString is an arbitrary-length bit sequence: not constrained to a
// multiple of 8. A Bits whose length is a multiple of 8 is a "binary"
// per the codec's terminology (IsBinary reports this).
type BitString = common.Bits

// NewBits wraps already-packed (MSB-first) bytes as a byte-aligned
// bitstring of length len(data)*8.
func NewBits(data []byte) BitString { return common.BitsFromBytes(data) }

// EmptyBits is the zero-length bitstring.
func EmptyBits() BitString { return common.EmptyBits() }

// DynamicSegment is the envelope every dynamic-sized segment's field
// carries on both encode input and decode output: the value together
// with its on-wire size, in the segment's size unit (bits, except bytes
// for Binary/Bytes segments; see SizeSpec).
type DynamicSegment struct {
	Value any
	Size  int
}

// Record is a bit-block value: one entry per declared segment, keyed by
// name, plus the reserved "leftover" key holding the unconsumed suffix
// after decode (empty on a fresh record and on encode input). Fields
// backing a dynamic segment hold a DynamicSegment, never a bare scalar.
type Record map[string]any

const leftoverKey = "leftover"

// Leftover returns the record's leftover bitstring, or the empty
// bitstring if the key is unset.
func (r Record) Leftover() BitString {
	if v, ok := r[leftoverKey]; ok {
		if b, ok := v.(BitString); ok {
			return b
		}
	}
	return EmptyBits()
}

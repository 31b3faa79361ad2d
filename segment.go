package bitblock

import "github.com/halfbit/bitblock/internal/common"

// SizeSpec is a segment's declared size: a fixed count (unit depends on
// Type — bytes for Binary/Bytes, bits otherwise, see internal/primitive's
// package doc), the Dynamic sentinel resolved at decode time, or Absent
// ("skip": the segment carries no bits at all, only its Default).
type SizeSpec = common.SizeSpec

// FixedSize declares a fixed-size segment of n units (bits, except for
// Binary/Bytes segments where it is bytes).
func FixedSize(n int) SizeSpec { return common.Fixed(n) }

// DynamicSize declares a segment whose wire size is supplied by a
// Resolver at decode time.
func DynamicSize() SizeSpec { return common.Dynamic() }

// AbsentSize declares a "skip" segment: never encoded nor decoded, its
// struct field always carries Default.
func AbsentSize() SizeSpec { return common.Absent() }

// Segment is one named field of a block: its size, base type,
// signedness, endianness and default. Segment values are immutable once
// built by NewSegment/NewArray and returned by SegmentInfo.
type Segment struct {
	Name        string
	Size        SizeSpec
	Type        Type
	Sign        Sign
	Endian      Endian
	Default     any
	Array       bool
	ElementSize int
}

// SegOption mutates a Segment under construction. Options compose in the
// order passed to NewSegment/NewArray.
type SegOption func(*Segment)

func WithType(t Type) SegOption     { return func(s *Segment) { s.Type = t } }
func WithSign(sg Sign) SegOption    { return func(s *Segment) { s.Sign = sg } }
func WithEndian(e Endian) SegOption { return func(s *Segment) { s.Endian = e } }
func WithDefault(v any) SegOption   { return func(s *Segment) { s.Default = v } }

// WithElementSize sets the per-element bit width of an array segment
// (see NewArray). It has no effect on a scalar segment.
func WithElementSize(n int) SegOption { return func(s *Segment) { s.ElementSize = n } }

// NewSegment declares one scalar segment. Defaults absent options
// per spec.md §4.1: Type=Integer, Sign=Unsigned, Endian=Big.
func NewSegment(name string, size SizeSpec, opts ...SegOption) Segment {
	s := Segment{Name: name, Size: size, Type: Integer, Sign: Unsigned, Endian: Big}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewArray declares an array segment: a sequence of Type values, each
// ElementSize bits, packed contiguously with no separator or length
// prefix. Per spec.md §4.5 this desugars to a segment with Array=true
// and Size forced to Dynamic — arrays are always dynamic at the block
// level, per spec.md §4.2. ElementSize defaults to 8.
func NewArray(name string, opts ...SegOption) Segment {
	s := Segment{Name: name, Size: DynamicSize(), Type: Integer, Sign: Unsigned, Endian: Big, Array: true, ElementSize: 8}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

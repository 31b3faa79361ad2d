package common

import "github.com/halfbit/bitblock/internal/bitio"

// Bits is an arbitrary-length bit sequence: Data holds ceil(Len/8)
// bytes, packed most-significant-bit first, with any unused low bits of
// the final byte held at zero. A Bits whose Len is a multiple of 8 is a
// "binary" per the codec's terminology.
type Bits struct {
	Data []byte
	Len  int
}

func EmptyBits() Bits { return Bits{} }

func BitsFromBytes(b []byte) Bits { return Bits{Data: b, Len: len(b) * 8} }

func (b Bits) IsBinary() bool { return b.Len%8 == 0 }

// Bytes returns b's underlying bytes. It panics if b is not
// byte-aligned; callers must check IsBinary first when alignment isn't
// already known from context.
func (b Bits) Bytes() []byte {
	if !b.IsBinary() {
		panic("bitblock: Bytes called on a non-byte-aligned bitstring")
	}
	return b.Data
}

// Concat joins bitstrings bit-exactly, in order.
func Concat(parts ...Bits) Bits {
	w := bitio.NewWriter()
	for _, p := range parts {
		w.WriteBits(p.Data, p.Len)
	}
	return Bits{Data: w.Bytes(), Len: w.Len()}
}

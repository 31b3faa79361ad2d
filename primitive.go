package bitblock

import "github.com/halfbit/bitblock/internal/primitive"

// PrimitiveOptions configures a single scalar EncodePrimitive/
// DecodePrimitive call: opts ⊇ {size, type, sign, endian} per spec.md §6.
type PrimitiveOptions struct {
	Size    int
	Type    Type
	Sign    Sign
	Endian  Endian
	Default any
}

func toInternal(o PrimitiveOptions) primitive.Options {
	return primitive.Options{Size: o.Size, Type: o.Type, Sign: o.Sign, Endian: o.Endian, Default: o.Default}
}

// EncodePrimitive encodes a single value of a base type at a given
// bit-size, signedness and endianness, per spec.md §4.1.
func EncodePrimitive(value any, opts PrimitiveOptions) (BitString, error) {
	return primitive.Encode(value, toInternal(opts))
}

// DecodePrimitive consumes opts.Size bits (or bytes, for Binary/Bytes;
// see the internal/primitive package doc) from the front of bits,
// interprets them per opts, and returns the decoded value together with
// the unconsumed suffix.
func DecodePrimitive(bits BitString, opts PrimitiveOptions) (any, BitString, error) {
	return primitive.Decode(bits, toInternal(opts))
}

// CountOnes returns the Hamming weight of n, via Brian Kernighan's
// bit-clearing loop (n &= n-1 each iteration until zero), per spec.md
// §6 — used by resolvers that size a dynamic segment from a popcount of
// already-decoded fields (see examples/ipv4).
func CountOnes(n uint64) int {
	count := 0
	for n != 0 {
		n &= n - 1
		count++
	}
	return count
}

// Package primitive implements the per-segment encode/decode cross
// product of base type, signedness, endianness and size, plus the array
// codec layered on top of it.
//
// Size units: Options.Size is always bits for Integer, Float and
// Bitstring. For Binary it is BYTES — a segment declared with size 5 and
// type Binary produces a 5-byte field, not 5 bits. That unit
// inconsistency is intentional and preserved rather than normalized; see
// DESIGN.md. UTF8/UTF16/UTF32 ignore Size entirely: encode emits exactly
// as many bits as the value needs, and decode either consumes one
// codepoint or the whole remaining input (selected by Options.Default,
// see decodeUTF).
package primitive

import (
	"fmt"

	"github.com/halfbit/bitblock/internal/bitio"
	"github.com/halfbit/bitblock/internal/common"
)

// Options configures a single scalar encode/decode call.
type Options struct {
	Size    int
	Type    common.Type
	Sign    common.Sign
	Endian  common.Endian
	Default any
}

func Encode(value any, opts Options) (common.Bits, error) {
	switch opts.Type {
	case common.Integer:
		return encodeInteger(value, opts.Size, opts.Endian)
	case common.Float:
		return encodeFloat(value, opts.Size, opts.Endian)
	case common.Binary, common.Bitstring:
		return encodeRaw(value)
	case common.UTF8, common.UTF16, common.UTF32:
		return encodeUTF(value, opts.Type, opts.Endian)
	default:
		return common.Bits{}, fmt.Errorf("%w: unknown type %v", common.ErrTypeMismatch, opts.Type)
	}
}

func Decode(b common.Bits, opts Options) (any, common.Bits, error) {
	switch opts.Type {
	case common.Integer:
		return decodeInteger(b, opts.Size, opts.Sign, opts.Endian)
	case common.Float:
		return decodeFloat(b, opts.Size, opts.Endian)
	case common.Binary:
		return decodeRaw(b, opts.Size*8)
	case common.Bitstring:
		return decodeRaw(b, opts.Size)
	case common.UTF8, common.UTF16, common.UTF32:
		_, isString := opts.Default.(string)
		return decodeUTF(b, opts.Type, opts.Endian, isString)
	default:
		return nil, common.Bits{}, fmt.Errorf("%w: unknown type %v", common.ErrTypeMismatch, opts.Type)
	}
}

func encodeRaw(value any) (common.Bits, error) {
	switch v := value.(type) {
	case common.Bits:
		return v, nil
	case []byte:
		return common.BitsFromBytes(v), nil
	default:
		return common.Bits{}, fmt.Errorf("%w: binary/bitstring segment requires a Bits or []byte value, got %T", common.ErrTypeMismatch, value)
	}
}

func decodeRaw(b common.Bits, nbits int) (any, common.Bits, error) {
	if nbits < 0 {
		return nil, common.Bits{}, fmt.Errorf("%w: negative size", common.ErrInvalidSize)
	}
	r := bitio.NewReader(b.Data, b.Len)
	data, err := r.ReadBits(nbits)
	if err != nil {
		return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
	}
	restData, restLen := r.RemainingBits()
	return common.Bits{Data: data, Len: nbits}, common.Bits{Data: restData, Len: restLen}, nil
}

package primitive

import (
	"fmt"
	"reflect"

	"github.com/halfbit/bitblock/internal/bitio"
	"github.com/halfbit/bitblock/internal/common"
)

// ArrayOptions configures the array codec: a contiguous run of
// ElementSize-bit elements of the same base Type, with no separator and
// no length prefix (the element count is implicit in the total bit size
// divided by ElementSize).
type ArrayOptions struct {
	ElementSize int
	Type        common.Type
	Sign        common.Sign
	Endian      common.Endian
}

// EncodeArray accepts any slice or array value via reflection — []int64,
// []uint64, []float64, []any and so on — so callers aren't forced into a
// single concrete element type.
func EncodeArray(value any, opts ArrayOptions) (common.Bits, error) {
	if opts.ElementSize <= 0 {
		return common.Bits{}, fmt.Errorf("%w: array element_size must be positive", common.ErrInvalidSize)
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return common.Bits{}, nil
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return common.Bits{}, fmt.Errorf("%w: array segment requires a slice value, got %T", common.ErrTypeMismatch, value)
	}
	w := bitio.NewWriter()
	elemOpts := Options{Size: opts.ElementSize, Type: opts.Type, Sign: opts.Sign, Endian: opts.Endian}
	for i := 0; i < v.Len(); i++ {
		enc, err := Encode(v.Index(i).Interface(), elemOpts)
		if err != nil {
			return common.Bits{}, fmt.Errorf("element %d: %w", i, err)
		}
		w.WriteBits(enc.Data, enc.Len)
	}
	return common.Bits{Data: w.Bytes(), Len: w.Len()}, nil
}

// DecodeArray splits size bits into size/ElementSize contiguous
// elements and decodes each with the primitive scalar codec.
func DecodeArray(b common.Bits, size int, opts ArrayOptions) ([]any, common.Bits, error) {
	if opts.ElementSize <= 0 {
		return nil, common.Bits{}, fmt.Errorf("%w: array element_size must be positive", common.ErrInvalidSize)
	}
	if size < 0 {
		return nil, common.Bits{}, fmt.Errorf("%w: negative array size", common.ErrInvalidSize)
	}
	if size%opts.ElementSize != 0 {
		return nil, common.Bits{}, fmt.Errorf("%w: array size %d is not a multiple of element_size %d", common.ErrInvalidSize, size, opts.ElementSize)
	}
	n := size / opts.ElementSize
	elemOpts := Options{Size: opts.ElementSize, Type: opts.Type, Sign: opts.Sign, Endian: opts.Endian}

	out := make([]any, 0, n)
	remaining := b
	for i := 0; i < n; i++ {
		value, rest, err := Decode(remaining, elemOpts)
		if err != nil {
			return nil, common.Bits{}, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, value)
		remaining = rest
	}
	return out, remaining, nil
}

package primitive

import (
	"fmt"

	"github.com/halfbit/bitblock/internal/bitio"
	"github.com/halfbit/bitblock/internal/common"
)

// chunkWidths returns the little-endian byte-group bit widths for an
// n-bit field: groups of 8 bits starting from the least-significant
// end, with any remainder in the final (most-significant) group. E.g.
// chunkWidths(12) = [8, 4]; chunkWidths(20) = [8, 8, 4].
func chunkWidths(n int) []int {
	var widths []int
	remaining := n
	for remaining > 0 {
		w := remaining
		if w > 8 {
			w = 8
		}
		widths = append(widths, w)
		remaining -= w
	}
	return widths
}

func writeUintSized(w *bitio.Writer, x uint64, n int, endian common.Endian) {
	if endian == common.Big || n <= 8 {
		w.WriteUint(x, n)
		return
	}
	shift := 0
	for _, width := range chunkWidths(n) {
		chunk := (x >> uint(shift)) & ((uint64(1) << uint(width)) - 1)
		w.WriteUint(chunk, width)
		shift += width
	}
}

func readUintSized(r *bitio.Reader, n int, endian common.Endian) (uint64, error) {
	if endian == common.Big || n <= 8 {
		return r.ReadUint(n)
	}
	var x uint64
	shift := 0
	for _, width := range chunkWidths(n) {
		chunk, err := r.ReadUint(width)
		if err != nil {
			return 0, err
		}
		x |= chunk << uint(shift)
		shift += width
	}
	return x, nil
}

func toUint64(value any) (uint64, error) {
	switch v := value.(type) {
	case int:
		return uint64(int64(v)), nil
	case int8:
		return uint64(int64(v)), nil
	case int16:
		return uint64(int64(v)), nil
	case int32:
		return uint64(int64(v)), nil
	case int64:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: unsupported integer value type %T", common.ErrTypeMismatch, value)
	}
}

func encodeInteger(value any, size int, endian common.Endian) (common.Bits, error) {
	if size < 0 {
		return common.Bits{}, fmt.Errorf("%w: negative integer size", common.ErrInvalidSize)
	}
	raw, err := toUint64(value)
	if err != nil {
		return common.Bits{}, err
	}
	if size < 64 {
		raw &= (uint64(1) << uint(size)) - 1
	}
	w := bitio.NewWriter()
	writeUintSized(w, raw, size, endian)
	return common.Bits{Data: w.Bytes(), Len: w.Len()}, nil
}

func decodeInteger(b common.Bits, size int, sign common.Sign, endian common.Endian) (any, common.Bits, error) {
	if size < 0 {
		return nil, common.Bits{}, fmt.Errorf("%w: negative integer size", common.ErrInvalidSize)
	}
	r := bitio.NewReader(b.Data, b.Len)
	raw, err := readUintSized(r, size, endian)
	if err != nil {
		return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
	}
	restData, restLen := r.RemainingBits()
	rest := common.Bits{Data: restData, Len: restLen}

	if sign == common.Signed && size > 0 {
		if size < 64 {
			signBit := uint64(1) << uint(size-1)
			if raw&signBit != 0 {
				raw |= ^uint64(0) << uint(size)
			}
		}
		return int64(raw), rest, nil
	}
	return raw, rest, nil
}

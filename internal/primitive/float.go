package primitive

import (
	"fmt"
	"math"

	"github.com/halfbit/bitblock/internal/bitio"
	"github.com/halfbit/bitblock/internal/common"
)

func toFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: unsupported float value type %T", common.ErrTypeMismatch, value)
	}
}

func encodeFloat(value any, size int, endian common.Endian) (common.Bits, error) {
	f, err := toFloat64(value)
	if err != nil {
		return common.Bits{}, err
	}
	var raw uint64
	switch size {
	case 16:
		raw = uint64(float64ToFloat16Bits(f))
	case 32:
		raw = uint64(math.Float32bits(float32(f)))
	case 64:
		raw = math.Float64bits(f)
	default:
		return common.Bits{}, fmt.Errorf("%w: float size must be 16, 32 or 64, got %d", common.ErrInvalidSize, size)
	}
	w := bitio.NewWriter()
	writeUintSized(w, raw, size, endian)
	return common.Bits{Data: w.Bytes(), Len: w.Len()}, nil
}

func decodeFloat(b common.Bits, size int, endian common.Endian) (any, common.Bits, error) {
	if size != 16 && size != 32 && size != 64 {
		return nil, common.Bits{}, fmt.Errorf("%w: float size must be 16, 32 or 64, got %d", common.ErrInvalidSize, size)
	}
	r := bitio.NewReader(b.Data, b.Len)
	raw, err := readUintSized(r, size, endian)
	if err != nil {
		return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
	}
	restData, restLen := r.RemainingBits()
	rest := common.Bits{Data: restData, Len: restLen}

	var f float64
	switch size {
	case 16:
		f = float16BitsToFloat64(uint16(raw))
	case 32:
		f = float64(math.Float32frombits(uint32(raw)))
	case 64:
		f = math.Float64frombits(raw)
	}
	return f, rest, nil
}

// float64ToFloat16Bits converts via the intermediate float32 bit layout,
// matching the standard IEEE-754 binary16 representation. Subnormal and
// overflow ranges are handled; rounding truncates rather than rounding
// to nearest.
func float64ToFloat16Bits(f float64) uint16 {
	bits := math.Float32bits(float32(f))
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case (bits>>23)&0xFF == 0xFF:
		if mant != 0 {
			return sign | 0x7E00
		}
		return sign | 0x7C00
	case exp >= 0x1F:
		return sign | 0x7C00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		shift := uint(14 - exp)
		return sign | uint16(mant>>shift)
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}

func float16BitsToFloat64(h uint16) float64 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h & 0x3FF)

	var bits32 uint32
	switch {
	case exp == 0:
		if mant == 0 {
			bits32 = sign
		} else {
			exp32 := uint32(127 - 15 + 1)
			for mant&0x400 == 0 {
				mant <<= 1
				exp32--
			}
			mant &= 0x3FF
			bits32 = sign | (exp32 << 23) | (mant << 13)
		}
	case exp == 0x1F:
		if mant == 0 {
			bits32 = sign | 0x7F800000
		} else {
			bits32 = sign | 0x7F800000 | (mant << 13)
		}
	default:
		bits32 = sign | ((exp - 15 + 127) << 23) | (mant << 13)
	}
	return float64(math.Float32frombits(bits32))
}

package primitive

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/halfbit/bitblock/internal/common"
)

func encodeUTF(value any, typ common.Type, endian common.Endian) (common.Bits, error) {
	switch v := value.(type) {
	case string:
		data, err := utfStringBytes(v, typ, endian)
		if err != nil {
			return common.Bits{}, err
		}
		return common.BitsFromBytes(data), nil
	case rune:
		return encodeUTFCodepoint(v, typ, endian)
	case int:
		return encodeUTFCodepoint(rune(v), typ, endian)
	case int64:
		return encodeUTFCodepoint(rune(v), typ, endian)
	case uint64:
		return encodeUTFCodepoint(rune(v), typ, endian)
	default:
		return common.Bits{}, fmt.Errorf("%w: utf segment requires a string or codepoint value, got %T", common.ErrTypeMismatch, value)
	}
}

func encodeUTFCodepoint(r rune, typ common.Type, endian common.Endian) (common.Bits, error) {
	data, err := utfStringBytes(string(r), typ, endian)
	if err != nil {
		return common.Bits{}, err
	}
	return common.BitsFromBytes(data), nil
}

func utfStringBytes(s string, typ common.Type, endian common.Endian) ([]byte, error) {
	switch typ {
	case common.UTF8:
		return []byte(s), nil
	case common.UTF16:
		units := utf16.Encode([]rune(s))
		out := make([]byte, 0, len(units)*2)
		for _, u := range units {
			out = append(out, packUint(uint64(u), 2, endian)...)
		}
		return out, nil
	case common.UTF32:
		runes := []rune(s)
		out := make([]byte, 0, len(runes)*4)
		for _, r := range runes {
			out = append(out, packUint(uint64(uint32(r)), 4, endian)...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: not a utf type", common.ErrTypeMismatch)
	}
}

func packUint(x uint64, nbytes int, endian common.Endian) []byte {
	out := make([]byte, nbytes)
	for i := 0; i < nbytes; i++ {
		shift := uint((nbytes - 1 - i) * 8)
		out[i] = byte(x >> shift)
	}
	if endian == common.Little {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func unpackUint(b []byte, endian common.Endian) uint64 {
	var x uint64
	if endian == common.Big {
		for _, c := range b {
			x = (x << 8) | uint64(c)
		}
	} else {
		for i := len(b) - 1; i >= 0; i-- {
			x = (x << 8) | uint64(b[i])
		}
	}
	return x
}

// decodeUTF implements the asymmetric decode mode: when isDefaultString
// is set (the segment's declared default is a string), the whole
// remaining input is consumed as a string; otherwise exactly one
// codepoint is decoded and the remainder returned. See DESIGN.md for why
// the segment's Default selects the mode.
func decodeUTF(b common.Bits, typ common.Type, endian common.Endian, isDefaultString bool) (any, common.Bits, error) {
	if isDefaultString {
		if !b.IsBinary() {
			return nil, common.Bits{}, fmt.Errorf("%w: utf string decode requires byte-aligned input", common.ErrTypeMismatch)
		}
		s, err := decodeUTFBytes(b.Data, typ, endian)
		if err != nil {
			return nil, common.Bits{}, err
		}
		return s, common.EmptyBits(), nil
	}
	return decodeUTFCodepoint(b, typ, endian)
}

func decodeUTFBytes(data []byte, typ common.Type, endian common.Endian) (string, error) {
	switch typ {
	case common.UTF8:
		return string(data), nil
	case common.UTF16:
		if len(data)%2 != 0 {
			return "", fmt.Errorf("%w: utf16 data length must be a multiple of 2", common.ErrInvalidSize)
		}
		units := make([]uint16, 0, len(data)/2)
		for i := 0; i < len(data); i += 2 {
			units = append(units, uint16(unpackUint(data[i:i+2], endian)))
		}
		return string(utf16.Decode(units)), nil
	case common.UTF32:
		if len(data)%4 != 0 {
			return "", fmt.Errorf("%w: utf32 data length must be a multiple of 4", common.ErrInvalidSize)
		}
		runes := make([]rune, 0, len(data)/4)
		for i := 0; i < len(data); i += 4 {
			runes = append(runes, rune(unpackUint(data[i:i+4], endian)))
		}
		return string(runes), nil
	default:
		return "", fmt.Errorf("%w: not a utf type", common.ErrTypeMismatch)
	}
}

func decodeUTFCodepoint(b common.Bits, typ common.Type, endian common.Endian) (any, common.Bits, error) {
	if !b.IsBinary() {
		return nil, common.Bits{}, fmt.Errorf("%w: utf codepoint decode requires byte-aligned input", common.ErrTypeMismatch)
	}
	data := b.Data
	switch typ {
	case common.UTF8:
		if len(data) == 0 {
			return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
		}
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return nil, common.Bits{}, fmt.Errorf("%w: invalid utf8 codepoint", common.ErrTypeMismatch)
		}
		return r, common.BitsFromBytes(data[size:]), nil
	case common.UTF16:
		if len(data) < 2 {
			return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
		}
		u0 := uint16(unpackUint(data[0:2], endian))
		if utf16.IsSurrogate(rune(u0)) {
			if len(data) < 4 {
				return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
			}
			u1 := uint16(unpackUint(data[2:4], endian))
			r := utf16.DecodeRune(rune(u0), rune(u1))
			return r, common.BitsFromBytes(data[4:]), nil
		}
		return rune(u0), common.BitsFromBytes(data[2:]), nil
	case common.UTF32:
		if len(data) < 4 {
			return nil, common.Bits{}, fmt.Errorf("%w", common.ErrSizeUnderflow)
		}
		r := rune(unpackUint(data[0:4], endian))
		return r, common.BitsFromBytes(data[4:]), nil
	default:
		return nil, common.Bits{}, fmt.Errorf("%w: not a utf type", common.ErrTypeMismatch)
	}
}

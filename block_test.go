package bitblock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticBlockRoundTrip(t *testing.T) {
	// spec.md §8 scenario 1.
	blk, err := NewBlock("demo",
		NewSegment("header", FixedSize(5), WithType(Binary)),
		NewSegment("s1", FixedSize(4)),
		NewSegment("s2", FixedSize(8), WithSign(Signed)),
		NewSegment("tail", FixedSize(3), WithType(Binary)),
	)
	require.NoError(t, err)

	rec := Record{
		"header": []byte("begin"),
		"s1":     uint64(3),
		"s2":     int64(-3),
		"tail":   []byte("end"),
	}
	enc, err := blk.Encode(rec)
	require.NoError(t, err)
	require.Equal(t, []byte{98, 101, 103, 105, 110, 63, 214, 86, 230}, enc.Data[:9])
	require.Equal(t, 9*8+4, enc.Len)

	dec, err := blk.DecodeStatic(enc)
	require.NoError(t, err)
	require.Equal(t, []byte("begin"), dec["header"].(BitString).Data)
	require.Equal(t, uint64(3), dec["s1"])
	require.Equal(t, int64(-3), dec["s2"])
	require.Equal(t, []byte("end"), dec["tail"].(BitString).Data)
	require.Equal(t, 0, dec.Leftover().Len)
}

func TestDuplicateSegmentNameRejected(t *testing.T) {
	_, err := NewBlock("dup", NewSegment("a", FixedSize(8)), NewSegment("a", FixedSize(8)))
	require.ErrorIs(t, err, ErrDuplicateSegment)
}

func TestMisplacedDynamicSegmentRejected(t *testing.T) {
	_, err := NewBlock("bad",
		NewSegment("d", DynamicSize()),
		NewSegment("f", FixedSize(8)),
	)
	require.ErrorIs(t, err, ErrMisplacedDynamicSegment)
}

func TestEncodeDynamicFieldTypeMismatch(t *testing.T) {
	blk, err := NewBlock("b", NewSegment("d", DynamicSize()))
	require.NoError(t, err)
	_, err = blk.Encode(Record{"d": "not a dynamic segment"})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestEncodeDynamicNilFieldEmitsZeroBits(t *testing.T) {
	blk, err := NewBlock("b",
		NewSegment("a", FixedSize(8)),
		NewSegment("d", DynamicSize()),
	)
	require.NoError(t, err)
	enc, err := blk.Encode(Record{"a": uint64(1)})
	require.NoError(t, err)
	require.Equal(t, 8, enc.Len)
}

// crossDependentResolver implements the spec.md §8 scenario 4 pattern:
// size(d) = popcount(a*b), size(e) = size(d)*4.
type crossDependentResolver struct{}

func (crossDependentResolver) Resolve(view RecordView, name string, acc any) (int, any, error) {
	a, _ := view.Get("a")
	b, _ := view.Get("b")
	switch name {
	case "d":
		product := a.(uint64) * b.(uint64)
		size := CountOnes(product)
		return size, size, nil
	case "e":
		dSize := acc.(int)
		return dSize * 4, acc, nil
	}
	return 0, acc, nil
}

func TestCrossDependentDynamicSizes(t *testing.T) {
	blk, err := NewBlock("cross",
		NewSegment("a", FixedSize(4)),
		NewSegment("b", FixedSize(8)),
		NewSegment("d", DynamicSize()),
		NewArray("e", WithElementSize(4), WithSign(Signed)),
	)
	require.NoError(t, err)

	for _, tc := range []struct{ a, b uint64 }{
		{1, 1}, {3, 5}, {15, 255}, {0, 0},
	} {
		product := tc.a * tc.b
		dSize := CountOnes(product)
		eSize := dSize * 4

		dVal := uint64(0)
		if dSize > 0 {
			dVal = product & ((uint64(1) << uint(dSize)) - 1)
		}
		eLen := eSize / 4
		eVals := make([]int64, eLen)
		for i := range eVals {
			eVals[i] = int64(i%3) - 1
		}

		rec := Record{
			"a": tc.a,
			"b": tc.b,
			"d": DynamicSegment{Value: dVal, Size: dSize},
			"e": DynamicSegment{Value: eVals, Size: eSize},
		}
		enc, err := blk.Encode(rec)
		require.NoError(t, err)

		dec, err := blk.Decode(enc, 0, crossDependentResolver{})
		require.NoError(t, err)
		require.Equal(t, tc.a, dec["a"])
		require.Equal(t, tc.b, dec["b"])
		require.Equal(t, dVal, dec["d"].(DynamicSegment).Value)
		require.Equal(t, dSize, dec["d"].(DynamicSegment).Size)
		require.Equal(t, 0, dec.Leftover().Len)
	}
}

func TestDynamicResolverZeroSizeYieldsEmptySegment(t *testing.T) {
	blk, err := NewBlock("b",
		NewSegment("a", FixedSize(8)),
		NewSegment("d", DynamicSize(), WithType(Bitstring)),
	)
	require.NoError(t, err)

	dec, err := blk.Decode(NewBits([]byte{0xAB}), nil, ResolverFunc(func(view RecordView, name string, acc any) (int, any, error) {
		return 0, acc, nil
	}))
	require.NoError(t, err)
	ds := dec["d"].(DynamicSegment)
	require.Equal(t, 0, ds.Size)
	require.Equal(t, 0, dec.Leftover().Len)
}

func TestReflection(t *testing.T) {
	// spec.md §8 scenario 6.
	blk, err := NewBlock("b",
		NewSegment("a", FixedSize(8)),
		NewSegment("c", DynamicSize()),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "c"}, blk.Segments())

	_, ok := blk.SegmentInfo("nope")
	require.False(t, ok)

	info, ok := blk.SegmentInfo("a")
	require.True(t, ok)
	require.Equal(t, "a", info.Name)
	require.Equal(t, FixedSize(8), info.Size)
}

func TestCountOnes(t *testing.T) {
	// spec.md §8 scenario 5.
	require.Equal(t, 0, CountOnes(0))
	require.Equal(t, 1, CountOnes(1))
	require.Equal(t, 2, CountOnes(3))
	require.Equal(t, 4, CountOnes(15))
	require.Equal(t, 8, CountOnes(255))
}

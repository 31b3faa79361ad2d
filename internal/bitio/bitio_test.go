package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteUintReadUintRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0b1011, 4)
	w.WriteUint(0xFF, 8)
	require.Equal(t, 12, w.Len())

	r := NewReader(w.Bytes(), w.Len())
	v, err := r.ReadUint(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1011), v)

	v, err = r.ReadUint(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), v)

	require.Equal(t, 0, r.Remaining())
}

func TestWriteBitsReadBitsRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBits([]byte{0xF0}, 4) // 1111
	w.WriteBits([]byte("hi"), 16)
	require.Equal(t, 20, w.Len())

	r := NewReader(w.Bytes(), w.Len())
	head, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, byte(0xF0), head[0])

	rest, n := r.RemainingBits()
	require.Equal(t, 16, n)
	require.Equal(t, []byte("hi"), rest)
}

func TestReadUnderflow(t *testing.T) {
	r := NewReader([]byte{0xFF}, 4)
	_, err := r.ReadUint(8)
	require.ErrorIs(t, err, ErrUnderflow)

	_, err = r.ReadBits(8)
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestZeroWidthIsNoop(t *testing.T) {
	w := NewWriter()
	w.WriteUint(5, 0)
	require.Equal(t, 0, w.Len())

	r := NewReader(nil, 0)
	v, err := r.ReadUint(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
}

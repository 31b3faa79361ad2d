package bitblock

import (
	"fmt"

	"github.com/halfbit/bitblock/internal/bitio"
	"github.com/halfbit/bitblock/internal/common"
	"github.com/halfbit/bitblock/internal/primitive"
)

// Block is an ordered, immutable-after-construction sequence of segment
// descriptors plus a name. NewBlock precomputes the indices of the
// dynamic tail (iterated by the decoder under the resolver protocol)
// once, so every Decode/DecodeStatic call on the resulting *Block reuses
// them rather than recomputing them — the same once-per-descriptor
// plan-caching idiom the teacher applies per reflect.Type in FieldPlan,
// simplified here because a *Block never changes shape after
// construction. Encode and the static-prefix decode walk every segment
// and switch on its size kind.
type Block struct {
	name       string
	segments   []Segment
	dynamicIdx []int // indices into segments, in declaration order
}

// NewBlock declares a block. It fails with ErrDuplicateSegment if two
// segments share a name, and with ErrMisplacedDynamicSegment if a
// dynamic segment precedes a later fixed-size segment — the reference
// design's precondition (spec.md §3) that all dynamic segments follow
// the last fixed-size one.
func NewBlock(name string, segments ...Segment) (*Block, error) {
	seen := make(map[string]struct{}, len(segments))
	var dynamicIdx []int
	sawDynamic := false
	for i, s := range segments {
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", common.ErrDuplicateSegment, s.Name)
		}
		seen[s.Name] = struct{}{}

		switch s.Size.Kind {
		case common.SizeDynamic:
			dynamicIdx = append(dynamicIdx, i)
			sawDynamic = true
		default:
			if sawDynamic {
				return nil, fmt.Errorf("%w: %q follows a dynamic segment", common.ErrMisplacedDynamicSegment, s.Name)
			}
		}
	}
	return &Block{name: name, segments: append([]Segment(nil), segments...), dynamicIdx: dynamicIdx}, nil
}

// Name returns the block's declared name.
func (b *Block) Name() string { return b.name }

func segOptions(s Segment) primitive.Options {
	return primitive.Options{Size: 0, Type: s.Type, Sign: s.Sign, Endian: s.Endian, Default: s.Default}
}

func arrayOptions(s Segment) primitive.ArrayOptions {
	return primitive.ArrayOptions{ElementSize: s.ElementSize, Type: s.Type, Sign: s.Sign, Endian: s.Endian}
}

// encodeSegmentValue dispatches a single segment's value to the scalar
// or array primitive codec, at the given resolved size.
func encodeSegmentValue(s Segment, value any, size int) (common.Bits, error) {
	if s.Array {
		return primitive.EncodeArray(value, arrayOptions(s))
	}
	opts := segOptions(s)
	opts.Size = size
	return primitive.Encode(value, opts)
}

func decodeSegmentValue(bits common.Bits, s Segment, size int) (any, common.Bits, error) {
	if s.Array {
		return primitive.DecodeArray(bits, size, arrayOptions(s))
	}
	opts := segOptions(s)
	opts.Size = size
	return primitive.Decode(bits, opts)
}

// Encode walks the block's segments in declaration order and
// concatenates their encoded bits, per spec.md §4.3. It never inspects
// r's "leftover" key.
func (b *Block) Encode(r Record) (BitString, error) {
	w := bitio.NewWriter()
	for _, s := range b.segments {
		switch s.Size.Kind {
		case common.SizeAbsent:
			continue
		case common.SizeFixed:
			value, ok := r[s.Name]
			if !ok {
				value = s.Default
			}
			enc, err := encodeSegmentValue(s, value, s.Size.Bits)
			if err != nil {
				return common.Bits{}, fmt.Errorf("segment %q: %w", s.Name, err)
			}
			w.WriteBits(enc.Data, enc.Len)
		case common.SizeDynamic:
			raw, ok := r[s.Name]
			if !ok || raw == nil {
				continue // nil dynamic field: emit zero bits
			}
			ds, ok := raw.(DynamicSegment)
			if !ok {
				return common.Bits{}, fmt.Errorf("segment %q: %w: expected DynamicSegment, got %T", s.Name, common.ErrTypeMismatch, raw)
			}
			enc, err := encodeSegmentValue(s, ds.Value, ds.Size)
			if err != nil {
				return common.Bits{}, fmt.Errorf("segment %q: %w", s.Name, err)
			}
			w.WriteBits(enc.Data, enc.Len)
		}
	}
	return common.Bits{Data: w.Bytes(), Len: w.Len()}, nil
}

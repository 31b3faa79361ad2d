package bitblock

import (
	"fmt"

	"github.com/halfbit/bitblock/internal/common"
)

// decodeStaticPrefix extracts every fixed-size and skipped segment in
// order, per spec.md §4.4 step 1, leaving the block's dynamic segments
// (if any) untouched in the returned record and the unconsumed suffix in
// "leftover".
func (b *Block) decodeStaticPrefix(bits BitString) (Record, error) {
	r := make(Record, len(b.segments)+1)
	remaining := bits
	for _, s := range b.segments {
		switch s.Size.Kind {
		case common.SizeAbsent:
			r[s.Name] = s.Default
		case common.SizeFixed:
			value, rest, err := decodeSegmentValue(remaining, s, s.Size.Bits)
			if err != nil {
				return nil, fmt.Errorf("segment %q: %w", s.Name, err)
			}
			r[s.Name] = value
			remaining = rest
		case common.SizeDynamic:
			// left for the dynamic pass; nothing consumed here.
		}
	}
	r[leftoverKey] = remaining
	return r, nil
}

// DecodeStatic decodes a block with no dynamic segments; SizeUnderflow,
// TypeMismatch or InvalidSize propagate from the underlying primitive
// codec unchanged. It returns an error if the block does declare
// dynamic segments — use Decode for those.
func (b *Block) DecodeStatic(bits BitString) (Record, error) {
	if len(b.dynamicIdx) > 0 {
		return nil, fmt.Errorf("bitblock: block %q has dynamic segments, use Decode", b.name)
	}
	return b.decodeStaticPrefix(bits)
}

// Decode decodes a block, resolving each dynamic segment's wire size via
// resolver, per spec.md §4.4. acc0 seeds the resolver's accumulator. For
// a block with no dynamic segments this is equivalent to DecodeStatic
// and resolver may be nil.
func (b *Block) Decode(bits BitString, acc0 any, resolver Resolver) (Record, error) {
	r, err := b.decodeStaticPrefix(bits)
	if err != nil {
		return nil, err
	}
	if len(b.dynamicIdx) == 0 {
		return r, nil
	}
	if resolver == nil {
		return nil, fmt.Errorf("bitblock: block %q declares dynamic segments, resolver must not be nil", b.name)
	}

	acc := acc0
	for _, idx := range b.dynamicIdx {
		s := b.segments[idx]
		view := RecordView{record: r}
		size, newAcc, err := resolver.Resolve(view, s.Name, acc)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q: %w", common.ErrResolverFailure, s.Name, err)
		}
		if size < 0 {
			return nil, fmt.Errorf("segment %q: %w: resolver returned negative size", s.Name, common.ErrInvalidSize)
		}
		value, rest, err := decodeSegmentValue(r.Leftover(), s, size)
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", s.Name, err)
		}
		r[s.Name] = DynamicSegment{Value: value, Size: size}
		r[leftoverKey] = rest
		acc = newAcc
	}
	return r, nil
}

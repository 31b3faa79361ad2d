package bitblock

// Segments returns the block's segment names in declaration order.
// "leftover" is never included.
func (b *Block) Segments() []string {
	names := make([]string, len(b.segments))
	for i, s := range b.segments {
		names[i] = s.Name
	}
	return names
}

// SegmentInfo returns the named segment's descriptor, or ok=false if the
// block has no segment by that name.
func (b *Block) SegmentInfo(name string) (Segment, bool) {
	for _, s := range b.segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

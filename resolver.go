package bitblock

// RecordView is the read-only snapshot of a record's already-decoded
// fields, as seen by a Resolver mid-decode (spec.md §9: "record_view is
// the immutable snapshot of already-decoded fields"). It wraps the
// partially-populated Record rather than exposing it directly so a
// resolver cannot mutate decode state out from under the decoder.
type RecordView struct {
	record Record
}

// Get returns the named field's current value and whether it is set.
// Segments not yet reached by the decoder (later dynamic segments) are
// reported as not set.
func (v RecordView) Get(name string) (any, bool) {
	val, ok := v.record[name]
	return val, ok
}

// Leftover returns the bitstring not yet consumed by any segment.
func (v RecordView) Leftover() BitString { return v.record.Leftover() }

// Resolver supplies the wire size of each dynamic segment at decode
// time, per spec.md §4.4. It is invoked strictly in the declaration
// order of a block's dynamic segments, each call after the previous
// dynamic segment has been fully decoded. The accumulator acc is an
// opaque value threaded across calls to carry cross-segment state (a
// running budget, a count, ...); the core imposes no type on it.
//
// Grounded on the single-method codec-interface shape of the Packer
// interface in other_examples/metallb-metallb__packer.go, narrowed from
// Pack/Unpack/Sizeof to the one method the spec calls for.
type Resolver interface {
	Resolve(view RecordView, name string, acc any) (size int, newAcc any, err error)
}

// ResolverFunc adapts a plain function to the Resolver interface, in the
// http.HandlerFunc idiom, so callers can pass a closure instead of
// defining a named type.
type ResolverFunc func(view RecordView, name string, acc any) (size int, newAcc any, err error)

func (f ResolverFunc) Resolve(view RecordView, name string, acc any) (int, any, error) {
	return f(view, name, acc)
}

package hitset

import "sort"

// Hit is a single wire-plane hit: a plane index, an ordering key along
// the wire/position axis, and the resolution of that measurement. It is
// shared by the hitmerge package's merge iterator and this package's
// set-similarity test.
type Hit struct {
	Plane      int
	Key        float64
	Resolution float64
}

// Comparator returns -1 if a strictly precedes b beyond maxdist, +1 if
// a strictly follows b beyond maxdist, or 0 if a and b are within
// maxdist of each other (a match).
type Comparator func(a, b Hit, maxdist float64) int

// DefaultComparator compares two hits by the signed difference of their
// ordering keys against maxdist.
func DefaultComparator(a, b Hit, maxdist float64) int {
	d := a.Key - b.Key
	switch {
	case d < -maxdist:
		return -1
	case d > maxdist:
		return 1
	default:
		return 0
	}
}

// Set is an ordered collection of hits plus its precomputed plane
// pattern: a bitmask with bit p set iff some hit in the set lies in
// plane p.
type Set struct {
	hits    []Hit
	pattern uint32
	cmp     Comparator
}

// Option configures a Set.
type Option func(*Set)

// WithComparator overrides the default key-distance comparator used to
// compare hits in IsSimilarTo. It does not affect ordering: NewSet
// always sorts by Key.
func WithComparator(cmp Comparator) Option {
	return func(s *Set) { s.cmp = cmp }
}

// NewSet builds a Set from hits, sorted by ordering key, with its plane
// pattern precomputed.
func NewSet(hits []Hit, opts ...Option) *Set {
	s := &Set{
		hits: append([]Hit(nil), hits...),
		cmp:  DefaultComparator,
	}
	for _, opt := range opts {
		opt(s)
	}
	sort.Slice(s.hits, func(i, j int) bool { return s.hits[i].Key < s.hits[j].Key })
	for _, h := range s.hits {
		s.pattern |= 1 << uint(h.Plane)
	}
	return s
}

// Hits returns a read-only view of the set's ordered hits.
func (s *Set) Hits() []Hit { return s.hits }

// PlanePattern returns the set's plane-occupancy bitmask.
func (s *Set) PlanePattern() uint32 { return s.pattern }

package hitmerge

import "github.com/katalvlaran/patterntree/hitset"

// Hit is the wire-plane hit type the merge iterator walks; it is the
// same value hitset.Set orders and compares.
type Hit = hitset.Hit

// Comparator returns -1 if a strictly precedes b beyond maxdist, +1 if
// a strictly follows b beyond maxdist, or 0 if a and b are within
// maxdist of each other (a match).
type Comparator = hitset.Comparator

// DefaultComparator compares two hits by the signed difference of
// their ordering keys against maxdist.
var DefaultComparator = hitset.DefaultComparator

// Pair is one element of the merged output: at least one of A or B is
// non-nil, except for the terminal pair that signals exhaustion.
type Pair struct {
	A *Hit
	B *Hit
}

// Done reports whether p is the terminal, both-exhausted pair.
func (p Pair) Done() bool { return p.A == nil && p.B == nil }

// Option configures an Iterator.
type Option func(*options)

type options struct {
	cmp Comparator
}

func defaultOptions() options {
	return options{cmp: DefaultComparator}
}

// WithComparator overrides the default key-distance comparator.
func WithComparator(cmp Comparator) Option {
	return func(o *options) { o.cmp = cmp }
}

// cursor walks a hit sequence, returning a stable pointer into the
// owning slice for each element so that identity comparisons (used by
// the rescan logic in Next) are meaningful across calls.
type cursor struct {
	seq []Hit
	idx int
}

func (c *cursor) next() *Hit {
	if c.idx >= len(c.seq) {
		c.idx++
		return nil
	}
	h := &c.seq[c.idx]
	c.idx++
	return h
}

func (c cursor) clone() cursor { return c }

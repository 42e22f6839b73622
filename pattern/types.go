package pattern

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Transform names the operation that recovers a normalized child
// pattern from one of the 2^N raw bit-doubled candidates: identity (no
// adjustment needed), shifted (every bin decremented by one because the
// raw candidate's minimum bin was 1, not 0), or mirrored (bins reflected
// around the raw maximum because the raw candidate's bin[0] was its
// maximum rather than its minimum). Value 3 (shifted and mirrored at
// once) never occurs: mirroring only ever happens at the root, and a
// candidate is given exactly one transform (see
// patterngen.ChildIterator).
type Transform int8

const (
	// TransformIdentity marks a child pattern that needed no shift.
	TransformIdentity Transform = iota
	// TransformShifted marks a child pattern whose raw bins all had to
	// be decremented by one to reach bins[0]==0.
	TransformShifted
	// TransformMirrored marks a child pattern produced by mirroring,
	// which by construction only ever occurs on links out of the root.
	TransformMirrored
)

// String renders the transform tag for diagnostics.
func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformShifted:
		return "shifted"
	case TransformMirrored:
		return "mirrored"
	default:
		return "invalid"
	}
}

// unsetDepth is the sentinel MinDepth value for a Pattern that has not
// yet been referenced anywhere in the build.
const unsetDepth = math.MaxInt32

// UnsetRefIndex marks a Pattern's reference index as not yet assigned by
// a serialization pass. Exported so collaborators resetting/assigning
// indices have a named value to compare against instead of a magic -1.
const UnsetRefIndex = int32(-1)

// Pattern is an immutable-by-convention, normalized bin vector: one bin
// index per detection plane. Once stored in an Index, its bins never
// change; MinDepth (UsedAtDepth), RefIndex (SetRefIndex/ResetRefIndex)
// and the child list (AddChild) are the only parts that change after
// construction.
type Pattern struct {
	bins         []int32
	magnitude    int32 // max(bins) - min(bins) + 1; always >= 1
	mirrored     bool
	minDepth     int32
	refIndex     int32
	children     *Link
	childrenTail *Link
}

// NewRootPattern returns the trivial all-zero pattern for nplanes
// planes: every bin is 0, magnitude (and hence width) is 1.
func NewRootPattern(nplanes int) *Pattern {
	return &Pattern{
		bins:      make([]int32, nplanes),
		magnitude: 1,
		minDepth:  unsetDepth,
		refIndex:  UnsetRefIndex,
	}
}

// Validate checks that bins satisfies the normalization invariant every
// stored Pattern must hold: at least one plane, bins[0] == 0, and
// bins[0] equal to the minimum of the whole vector. It returns
// ErrEmptyBins or ErrNotNormalized on violation, nil otherwise.
func Validate(bins []int32) error {
	if len(bins) == 0 {
		return ErrEmptyBins
	}
	min := bins[0]
	for _, b := range bins {
		if b < min {
			min = b
		}
	}
	if bins[0] != 0 || bins[0] != min {
		return ErrNotNormalized
	}
	return nil
}

// newNormalized builds a Pattern from already-normalized bins (bins[0]
// == 0, min(bins) == 0) plus the magnitude/mirrored pair describing its
// signed width. Used internally by the child iterator, and by
// NewPattern after it has run Validate. Not exported itself because it
// performs no validation of its own.
func newNormalized(bins []int32, mirrored bool) *Pattern {
	minb, maxb := bins[0], bins[0]
	for _, b := range bins {
		if b < minb {
			minb = b
		}
		if b > maxb {
			maxb = b
		}
	}
	return &Pattern{
		bins:      append([]int32(nil), bins...),
		magnitude: maxb - minb + 1,
		mirrored:  mirrored,
		minDepth:  unsetDepth,
		refIndex:  UnsetRefIndex,
	}
}

// NewPattern builds a normalized Pattern from bins, as produced by
// patterngen.ChildIterator, and a mirrored flag recording whether the
// transform that produced it was patterngen's mirror tag. It is the
// generator driver's way of turning an accepted child-iterator
// candidate into a storable Pattern, both as an ephemeral lookup key
// for Index.Find and, on a miss, as the node Index.Insert stores.
// Returns ErrEmptyBins or ErrNotNormalized if bins fails Validate.
func NewPattern(bins []int32, mirrored bool) (*Pattern, error) {
	if err := Validate(bins); err != nil {
		return nil, err
	}
	return newNormalized(bins, mirrored), nil
}

// NPlanes returns the number of planes (bins) in the pattern.
func (p *Pattern) NPlanes() int { return len(p.bins) }

// Bin returns the bin index in plane i.
func (p *Pattern) Bin(i int) int32 { return p.bins[i] }

// Bins returns a read-only view of the full bin vector. Callers must
// not mutate the returned slice.
func (p *Pattern) Bins() []int32 { return p.bins }

// Magnitude returns the unsigned span of the pattern:
// max(bins) - min(bins) + 1.
func (p *Pattern) Magnitude() int32 { return p.magnitude }

// Mirrored reports whether this pattern was created from a candidate
// with tag TransformMirrored. The flag is not inherited by the
// pattern's own children.
func (p *Pattern) Mirrored() bool { return p.mirrored }

// Width returns the signed width: Magnitude with a negative sign when
// the pattern is mirrored, per the spec's historical sign convention.
// New code should prefer Magnitude()/Mirrored() directly; Width exists
// for call sites that need the single signed quantity (e.g. the slope
// predicate, which is defined in terms of |width|).
func (p *Pattern) Width() int32 {
	if p.mirrored {
		return -p.magnitude
	}
	return p.magnitude
}

// MinDepth returns the shallowest recursion depth at which this pattern
// has been referenced so far.
func (p *Pattern) MinDepth() int32 { return p.minDepth }

// UsedAtDepth records that the pattern is in use at the given depth,
// lowering MinDepth if depth is smaller than the current value.
func (p *Pattern) UsedAtDepth(depth int32) {
	if depth < p.minDepth {
		p.minDepth = depth
	}
}

// RefIndex returns the pattern's serialization reference index, or
// UnsetRefIndex if it has not been assigned (or has been reset).
func (p *Pattern) RefIndex() int32 { return p.refIndex }

// SetRefIndex assigns a serialization reference index.
func (p *Pattern) SetRefIndex(idx int32) { p.refIndex = idx }

// ResetRefIndex clears the serialization reference index back to
// UnsetRefIndex. Used by Index.ResetRefIndex's full-tree walk.
func (p *Pattern) ResetRefIndex() { p.refIndex = UnsetRefIndex }

// Children returns the head of this pattern's child-link list, or nil
// if no children have been generated yet.
func (p *Pattern) Children() *Link { return p.children }

// AddChild appends a new Link to the tail of the pattern's child list,
// referencing node with the given transform tag. The child iterator
// yields candidates in descending-k order and makeChildren calls
// AddChild once per yielded candidate in that order, so appending (not
// prepending) is what keeps the stored list in the same descending-k
// order the spec requires for downstream traversal.
func (p *Pattern) AddChild(node *Pattern, tag Transform) {
	link := &Link{pat: node, tag: tag}
	if p.childrenTail == nil {
		p.children = link
	} else {
		p.childrenTail.next = link
	}
	p.childrenTail = link
}

// HasChildren reports whether child links have been generated yet.
func (p *Pattern) HasChildren() bool { return p.children != nil }

// Hash returns a fingerprint of the pattern's bin vector, suitable for
// routing into an Index bucket. It depends on every bin and is stable
// across runs (xxhash has no process-randomized seed).
func (p *Pattern) Hash() uint64 {
	var buf [4]byte
	d := xxhash.New()
	for _, b := range p.bins {
		buf[0] = byte(b)
		buf[1] = byte(b >> 8)
		buf[2] = byte(b >> 16)
		buf[3] = byte(b >> 24)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Equal reports whether p and other have identical bin vectors,
// bin-by-bin. This is the authoritative dedup check; Hash is only used
// to pick a bucket.
func (p *Pattern) Equal(other *Pattern) bool {
	if len(p.bins) != len(other.bins) {
		return false
	}
	for i, b := range p.bins {
		if b != other.bins[i] {
			return false
		}
	}
	return true
}

package patterngen

import "github.com/katalvlaran/patterntree/pattern"

// ChildIterator lazily enumerates the normalized children of a parent
// pattern, in descending order of the N-bit refinement counter k (from
// 2^N-1 down to 0), per §4.2. Each raw candidate bin is either
// 2*parent[i] or 2*parent[i]+1; the iterator rejects candidates whose
// span exceeds the parent's width and normalizes the rest so that
// bin[0] lands on 0: by shifting when raw bin[0] is the minimum of the
// raw vector, by mirroring when it is the maximum.
//
// A candidate whose raw bin[0] is neither the minimum nor the maximum
// of the raw vector is unrecoverable and is skipped: shifting by the
// minimum would leave bin[0] nonzero, and no single transform restores
// it. This happens at the root and at any parent whose plane 0 is not
// the strict minimum (for example parent [0,0,1] and raw candidate
// [1,0,2]); when plane 0 is the strict minimum of the parent, every
// candidate's raw bin[0] is the minimum and none are skipped.
//
// The mirror branch is reachable only from the root: raw bin[0] is at
// most 1, so it can be the maximum only if every parent bin is 0.
//
// Next must be called before the first Bins/Tag access. The returned
// Bins slice is reused across calls: copy it before advancing.
type ChildIterator struct {
	parent    *pattern.Pattern
	parentMag int32
	n         int
	k         int64
	raw       []int32
	bins      []int32
	tag       pattern.Transform
}

// NewChildIterator returns an iterator over parent's 2^N raw
// refinements, not yet positioned on a candidate.
func NewChildIterator(parent *pattern.Pattern) *ChildIterator {
	n := parent.NPlanes()
	return &ChildIterator{
		parent:    parent,
		parentMag: parent.Magnitude(),
		n:         n,
		k:         int64(1) << uint(n),
		raw:       make([]int32, n),
		bins:      make([]int32, n),
	}
}

// Next advances to the next accepted candidate and reports whether one
// was found. It skips raw combinations rejected by the width bound or
// left unrecoverable by normalization (see type doc).
func (it *ChildIterator) Next() bool {
	for it.k > 0 {
		it.k--
		k := it.k
		bit0 := it.parent.Bin(0) << 1
		if k&1 != 0 {
			bit0++
		}
		it.raw[0] = bit0
		minbit, maxbit := bit0, bit0
		for i := 1; i < it.n; i++ {
			bit := it.parent.Bin(i) << 1
			if k&(1<<uint(i)) != 0 {
				bit++
			}
			it.raw[i] = bit
			if bit < minbit {
				minbit = bit
			}
			if bit > maxbit {
				maxbit = bit
			}
		}
		if maxbit-minbit > it.parentMag {
			continue
		}
		switch it.raw[0] {
		case minbit:
			it.tag = pattern.TransformIdentity
			if minbit != 0 {
				it.tag = pattern.TransformShifted
			}
			for i := 0; i < it.n; i++ {
				it.bins[i] = it.raw[i] - minbit
			}
		case maxbit:
			it.tag = pattern.TransformMirrored
			for i := 0; i < it.n; i++ {
				it.bins[i] = maxbit - it.raw[i]
			}
		default:
			continue
		}
		return true
	}
	return false
}

// Bins returns the most recently yielded child's bin vector. The slice
// is owned by the iterator and is overwritten on the next call to Next.
func (it *ChildIterator) Bins() []int32 { return it.bins }

// Tag returns the transform that produced the most recently yielded
// child.
func (it *ChildIterator) Tag() pattern.Transform { return it.tag }

package pattern

// Index is the deduplicating hash table that owns every unique Pattern
// produced during a build. Bucket sizing is fixed at first insertion to
// 2^(nlevels-1), per the rationale that this caps average collision
// depth at about 2^(nplanes-2) for a well-dispersed hash — a pragmatic,
// not growable, trade (see spec's hash-table-sizing design note).
//
// Index is not safe for concurrent use; the generator that builds it is
// specified single-threaded and synchronous (see patterngen package).
type Index struct {
	nlevels  int
	buckets  []*Link
	nPattern int
}

// NewIndex returns an empty Index that will size its bucket array to
// 2^(nlevels-1) on first Insert.
func NewIndex(nlevels int) *Index {
	return &Index{nlevels: nlevels}
}

// Insert adds pat to the index, routed to bucket Hash()%len(buckets).
// The caller is responsible for having already established via Find
// that no equal pattern is present; Insert does not itself check for
// duplicates (Find-then-Insert is the atomic-by-convention dedup
// sequence the generator driver uses).
func (ix *Index) Insert(pat *Pattern) {
	if ix.buckets == nil {
		ix.buckets = make([]*Link, 1<<uint(ix.nlevels-1))
	}
	h := pat.Hash() % uint64(len(ix.buckets))
	ix.buckets[h] = &Link{pat: pat, next: ix.buckets[h]}
	ix.nPattern++
}

// Find returns the unique stored Pattern equal to pat, or nil if none
// has been inserted yet.
func (ix *Index) Find(pat *Pattern) *Pattern {
	if ix.buckets == nil {
		return nil
	}
	h := pat.Hash() % uint64(len(ix.buckets))
	for l := ix.buckets[h]; l != nil; l = l.next {
		if l.pat.Equal(pat) {
			return l.pat
		}
	}
	return nil
}

// Len returns the number of unique patterns currently stored.
func (ix *Index) Len() int { return ix.nPattern }

// ResetRefIndex walks every stored pattern exactly once, clearing its
// serialization reference index back to UnsetRefIndex.
func (ix *Index) ResetRefIndex() {
	for _, head := range ix.buckets {
		for l := head; l != nil; l = l.next {
			l.pat.ResetRefIndex()
		}
	}
}

// Destroy releases the index's references to every pattern and bucket
// link it holds. Because Go is garbage-collected there is nothing to
// explicitly free, but Destroy still clears the table so that
// a torn-down Index cannot be mistaken for a live one and so that the
// large backing arrays become collectible immediately rather than only
// when the Index itself is.
func (ix *Index) Destroy() {
	ix.buckets = nil
	ix.nPattern = 0
}

// Walk visits every unique stored Pattern exactly once, in bucket then
// collision-chain order, calling fn on each. It stops and returns fn's
// error at the first failure.
func (ix *Index) Walk(fn func(*Pattern) error) error {
	for _, head := range ix.buckets {
		for l := head; l != nil; l = l.next {
			if err := fn(l.pat); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats summarizes the shape of the pattern database (C7).
type Stats struct {
	NPatterns          int
	NLinks             int
	MaxChildListLength int
	MaxHashDepth       int
	NBytes             uint64
	NHashBytes         uint64
}

// patternBytes and linkBytes approximate the per-entity footprint of the
// reference C++ implementation's Pattern/Link structs, scaled by plane
// count for Pattern's variable-length bin vector. These are estimates
// for reporting purposes only, not used by any correctness check.
const (
	patternFixedBytes = 32 // magnitude, mirrored, minDepth, refIndex, children ptr
	binBytes          = 4  // int32 per plane
	linkFixedBytes    = 24 // pat ptr, tag, next ptr (padded)
)

// ComputeStats performs a single linear scan over the index, tallying
// pattern and link counts, the longest child list, the deepest hash
// bucket, and an estimated memory footprint.
func (ix *Index) ComputeStats(nplanes int) Stats {
	var st Stats
	for _, head := range ix.buckets {
		depth := 0
		for l := head; l != nil; l = l.next {
			depth++
			st.NPatterns++
			listLen := 0
			for c := l.pat.Children(); c != nil; c = c.Next() {
				st.NLinks++
				listLen++
			}
			if listLen > st.MaxChildListLength {
				st.MaxChildListLength = listLen
			}
		}
		if depth > st.MaxHashDepth {
			st.MaxHashDepth = depth
		}
	}
	st.NBytes = uint64(st.NPatterns)*(patternFixedBytes+uint64(nplanes)*binBytes) +
		uint64(st.NLinks)*linkFixedBytes
	st.NHashBytes = uint64(len(ix.buckets))*8 + uint64(st.NPatterns)*linkFixedBytes
	return st
}

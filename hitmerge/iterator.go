package hitmerge

// Iterator co-walks two ordered hit sequences (A and B), producing
// matched, and unmatched-singleton, pairs under a bounded-distance
// comparator. See the package doc for scanning-mode semantics.
type Iterator struct {
	a, b    []Hit
	maxdist float64
	cmp     Comparator

	ca, cb cursor

	saveCB  cursor
	saveHit *Hit

	current  Pair
	next     Pair
	started  bool
	scanning bool
}

// NewIterator returns an Iterator over a and b, primed to its first
// pair. maxdist is the match distance passed to the comparator.
func NewIterator(a, b []Hit, maxdist float64, opts ...Option) *Iterator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	it := &Iterator{
		a:       a,
		b:       b,
		maxdist: maxdist,
		cmp:     o.cmp,
		ca:      cursor{seq: a},
		cb:      cursor{seq: b},
	}
	it.saveCB = it.cb.clone()
	it.primeFirst()
	return it
}

// primeFirst fetches the very first pair, matching the reference
// implementation's "not started yet" branch at the top of Next.
func (it *Iterator) primeFirst() {
	it.next = Pair{A: it.ca.next(), B: it.cb.next()}
	it.started = true
}

// Reset rewinds both cursors to the beginning and re-primes the first
// pair; scanning state is cleared.
func (it *Iterator) Reset() {
	it.ca = cursor{seq: it.a}
	it.cb = cursor{seq: it.b}
	it.saveCB = it.cb.clone()
	it.saveHit = nil
	it.scanning = false
	it.started = false
	it.primeFirst()
}

// Copy returns an independent Iterator with its own deep-cloned cursors
// at the same position as it.
func (it *Iterator) Copy() *Iterator {
	cp := *it
	cp.ca = it.ca.clone()
	cp.cb = it.cb.clone()
	cp.saveCB = it.saveCB.clone()
	return &cp
}

// Next returns the next merged pair. The terminal (nil, nil) pair
// signals that both sequences are exhausted.
func (it *Iterator) Next() Pair {
	it.current = it.next
	hitA, hitB := it.current.A, it.current.B

	switch {
	case hitA != nil && hitB != nil:
		it.advanceMatch(hitA, hitB)
	case hitA != nil:
		it.next.A = it.ca.next()
	case hitB != nil:
		it.next.B = it.cb.next()
	}
	return it.current
}

// advanceMatch handles the case where both sides of the current pair
// are present, dispatching on the comparator's verdict.
func (it *Iterator) advanceMatch(hitA, hitB *Hit) {
	switch it.cmp(*hitA, *hitB, it.maxdist) {
	case -1:
		it.next.A = it.ca.next()
		it.current.B = nil
	case 1:
		it.next.B = it.cb.next()
		it.current.A = nil
	default:
		it.advanceOnMatch(hitA, hitB)
	}
}

// advanceOnMatch implements the "A == B" branch: decide whether this is
// the last B that pairs with hitA, and if not, enter or continue
// scanning mode.
func (it *Iterator) advanceOnMatch(hitA, hitB *Hit) {
	nextB := it.cb.next()
	if nextB == nil || it.cmp(*hitA, *nextB, it.maxdist) < 0 {
		if it.scanning {
			it.endScan(nextB)
		} else {
			it.next = Pair{A: it.ca.next(), B: nextB}
		}
		return
	}
	// A == B and A == nextB: more than one B matches this A.
	if !it.scanning {
		it.scanning = true
		it.saveCB = it.cb.clone()
		it.saveHit = hitB
	}
	it.next.B = nextB
}

// endScan leaves scanning mode: B is rewound to where the scan began,
// A advances by one, and B is walked forward past whatever was already
// paired with the previous A but lies strictly before the new A, so
// those hits are not re-emitted as unpaired.
func (it *Iterator) endScan(nextB *Hit) {
	it.scanning = false
	it.cb = it.saveCB
	hitB := it.saveHit
	hitA := it.ca.next()

	if hitA == nil {
		it.next = Pair{A: nil, B: nextB}
		return
	}
	for hitB != nextB && hitB != nil && it.cmp(*hitB, *hitA, it.maxdist) < 0 {
		hitB = it.cb.next()
	}
	it.next = Pair{A: hitA, B: hitB}
}

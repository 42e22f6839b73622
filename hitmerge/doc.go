// Package hitmerge implements the hit-pair merge iterator (C8): a
// stateful co-iteration of two ordered hit sequences under a
// bounded-distance comparator, used by downstream road building to pair
// hits across two wire planes.
//
// Scanning mode. When one hit in A matches several consecutive hits in
// B, the iterator holds A fixed and walks B, saving the cursor position
// where the scan began. On leaving scanning mode it restores B to that
// saved position, advances both A and B by one, then walks B forward
// past whatever was already paired with the previous A (and lies
// strictly before the new A) so those hits are never re-emitted as
// unpaired. This is the one genuinely subtle part of the package;
// Iterator.Next mirrors the control flow of the reference HitPairIter
// step by step rather than trying to simplify it, because the ordering
// of saves/restores is exactly what makes rescans correct.
//
// Options follow the functional-options pattern: NewIterator takes the
// two sequences and a match distance, with an optional custom
// Comparator for callers whose ordering key isn't a plain float64
// difference.
package hitmerge

// Package patterngen builds the shared pattern tree: the recursive,
// depth-first generator (C6) that refines an all-zero root Pattern
// through successive bit-doubling, deduplicating every node through a
// pattern.Index and pruning with the two geometric predicates (C5).
//
// 🌲 Build shape
//
//	Build(params) walks makeChildren(root, 1) to completion and returns
//	a read-only Tree snapshot: the parameters it was built from, node and
//	link counts, and a handle onto the root for traversal. A finished
//	Tree never mutates again.
//
// The child iterator (C4) lives in this package too (childiter.go)
// rather than in pattern, because enumerating raw refinements is a
// generation-time concern; the Pattern type itself only needs to know
// how to store and compare a normalized bin vector.
package patterngen

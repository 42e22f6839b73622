// Package pattern defines the core value types of a template-pattern
// database: Pattern (a normalized per-plane bin vector), Link (a
// reference to a Pattern tagged with the transform that produced it),
// and Index (the deduplicating hash table that owns every unique
// Pattern in a build).
//
// 🚀 What is a Pattern?
//
//	A Pattern records, for a stack of N detection planes, which bin a
//	straight track occupies in each plane. Patterns are normalized so
//	that plane 0 always sits in bin 0 (shift invariance); two tracks
//	that only differ by a constant transverse offset collapse onto the
//	same Pattern. Normalized patterns are assembled, generation by
//	generation, into a shared DAG rather than a tree, because the same
//	refined bin vector is frequently reachable from more than one
//	parent — Index is what makes that sharing possible.
//
// ✨ Key properties:
//
//   - bins[0] == 0 and min(bins) == 0 for every stored Pattern.
//   - Width is kept as a magnitude plus a mirrored flag rather than a
//     bare signed int, so the sign-overload the original C++ used is
//     visible as two separate, named fields (see Pattern.Width for the
//     signed view callers historically relied on).
//   - Hash()/Equal() are split: Hash only routes to a bucket, Equal is
//     the authoritative dedup check — any fingerprint with reasonable
//     dispersion over small-int vectors is fine for the former.
//   - MinDepth tracks the shallowest recursion depth at which a Pattern
//     has been referenced; it only ever decreases (UsedAtDepth).
//
// Ownership: Index is the sole owner of every Pattern it stores. A
// Pattern's child Links are a separate, non-owning structure — they
// merely reference Patterns that Index owns. Tearing down an Index
// (Destroy) is the only valid way to release a build's Patterns.
package pattern

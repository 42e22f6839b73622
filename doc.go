// Package patterntree is a template-pattern database generator for
// multi-plane wire-chamber tree-search tracking.
//
// A "pattern" is a normalized vector of per-plane bin offsets recorded
// at increasing tree depth; the generator recursively refines each
// pattern into its bit-doubled children, pruning candidates that can't
// correspond to a physically straight track and deduplicating the rest
// against a hash-indexed pool of already-seen patterns. Downstream road
// building consumes the resulting tree through two small iterators: one
// that pairs up hits recorded on two neighboring planes, and one that
// tests whether two sets of hits are similar enough to belong to the
// same road.
//
// Organized as:
//
//	pattern/    — Pattern/Link value types and the deduplicating hash index
//	patterngen/ — child iterator, geometric predicates, and the recursive build driver
//	hitmerge/   — hit-pair merge iterator across two planes
//	hitset/     — hit sets and plane-occupancy similarity
//
//	go get github.com/katalvlaran/patterntree
package patterntree

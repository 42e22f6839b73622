package pattern

import "errors"

// Sentinel errors for pattern construction and lookup.
var (
	// ErrEmptyBins indicates that NewPattern was called with zero planes.
	ErrEmptyBins = errors.New("pattern: bin vector must have at least one plane")

	// ErrNotNormalized indicates bins failed the bins[0]==0,
	// min(bins)==0 invariant checked by Validate, via NewPattern.
	ErrNotNormalized = errors.New("pattern: pattern is not normalized")
)

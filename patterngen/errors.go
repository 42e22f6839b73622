package patterngen

import "errors"

// Sentinel errors returned by Params.Normalize. A caller that gets one
// of these back gets no partial tree: Build returns a nil *Tree.
var (
	ErrEmptyZPos      = errors.New("patterngen: zpos must have at least two planes")
	ErrZPosNotZeroed  = errors.New("patterngen: zpos[0] must be 0")
	ErrZPosNotSorted  = errors.New("patterngen: zpos must be strictly increasing")
	ErrZPosOutOfRange = errors.New("patterngen: zpos values must lie in (0, 1] after the leading zero")
	ErrBadMaxSlope    = errors.New("patterngen: max_slope must be in (0, 1]")
	ErrBadDetectorW   = errors.New("patterngen: detector width must be positive")
	ErrBadMaxDepth    = errors.New("patterngen: maxdepth must be non-negative")
)

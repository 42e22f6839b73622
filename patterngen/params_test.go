package patterngen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterntree/patterngen"
)

func TestParams_Normalize_Valid(t *testing.T) {
	p := patterngen.Params{
		MaxDepth:      3,
		DetectorWidth: 1.0,
		ZPos:          []float64{0, 0.5, 1},
		MaxSlope:      0.3,
	}
	_, err := p.Normalize()
	require.NoError(t, err)
}

func TestParams_Normalize_Errors(t *testing.T) {
	base := patterngen.Params{
		MaxDepth:      3,
		DetectorWidth: 1.0,
		ZPos:          []float64{0, 0.5, 1},
		MaxSlope:      0.3,
	}

	t.Run("negative maxdepth", func(t *testing.T) {
		p := base
		p.MaxDepth = -1
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrBadMaxDepth)
	})

	t.Run("non-positive detector width", func(t *testing.T) {
		p := base
		p.DetectorWidth = 0
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrBadDetectorW)
	})

	t.Run("too few planes", func(t *testing.T) {
		p := base
		p.ZPos = []float64{0}
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrEmptyZPos)
	})

	t.Run("bad max slope zero", func(t *testing.T) {
		p := base
		p.MaxSlope = 0
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrBadMaxSlope)
	})

	t.Run("bad max slope over one", func(t *testing.T) {
		p := base
		p.MaxSlope = 1.5
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrBadMaxSlope)
	})

	t.Run("zpos not zeroed", func(t *testing.T) {
		p := base
		p.ZPos = []float64{0.1, 0.5, 1}
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrZPosNotZeroed)
	})

	t.Run("zpos not sorted", func(t *testing.T) {
		p := base
		p.ZPos = []float64{0, 0.5, 0.4}
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrZPosNotSorted)
	})

	t.Run("zpos duplicate", func(t *testing.T) {
		p := base
		p.ZPos = []float64{0, 0.5, 0.5}
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrZPosNotSorted)
	})

	t.Run("zpos out of range", func(t *testing.T) {
		p := base
		p.ZPos = []float64{0, 0.5, 1.5}
		_, err := p.Normalize()
		require.ErrorIs(t, err, patterngen.ErrZPosOutOfRange)
	})
}

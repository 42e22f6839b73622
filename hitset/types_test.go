package hitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterntree/hitset"
)

func TestNewSet_SortsAndComputesPattern(t *testing.T) {
	s := hitset.NewSet([]hitset.Hit{
		{Plane: 2, Key: 3.0},
		{Plane: 0, Key: 1.0},
		{Plane: 1, Key: 2.0},
	})

	hits := s.Hits()
	require.Len(t, hits, 3)
	require.Equal(t, 1.0, hits[0].Key)
	require.Equal(t, 2.0, hits[1].Key)
	require.Equal(t, 3.0, hits[2].Key)

	require.Equal(t, uint32(0b111), s.PlanePattern())
}

func TestDefaultComparator(t *testing.T) {
	a := hitset.Hit{Key: 1.0}
	b := hitset.Hit{Key: 1.05}

	require.Equal(t, 0, hitset.DefaultComparator(a, b, 0.1), "within maxdist is a match")
	require.Equal(t, -1, hitset.DefaultComparator(a, b, 0.01), "a strictly precedes b beyond maxdist")
	require.Equal(t, 1, hitset.DefaultComparator(b, a, 0.01), "b strictly follows a beyond maxdist")
}

func TestNewSet_WithComparator(t *testing.T) {
	calls := 0
	cmp := func(a, b hitset.Hit, maxdist float64) int {
		calls++
		return hitset.DefaultComparator(a, b, maxdist)
	}

	a := hitset.NewSet([]hitset.Hit{{Plane: 0, Key: 1.0}}, hitset.WithComparator(cmp))
	b := hitset.NewSet([]hitset.Hit{{Plane: 0, Key: 1.0}})

	require.True(t, a.IsSimilarTo(b))
	require.Greater(t, calls, 0, "custom comparator must actually be consulted")
}

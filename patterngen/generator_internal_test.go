package patterngen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterntree/pattern"
)

// TestBuild_SharedNodeReExtension pins the mandatory "shared-node
// re-extension" boundary scenario: a pattern P is first explored at
// depth 3 (and, at that depth, already has a child of its own that
// went unexpanded because it landed on the tree's terminal level).
// Later, a different parent rediscovers P as a direct child at the
// shallower depth 2. P's MinDepth must drop to 2, and its existing
// child — now reachable one level higher than before — must be
// re-expanded into its own subtree, which is exactly what considerChild
// and makeChildren's re-extension rule exist to guarantee (spec's
// "essential" re-extension case, generator.go's found-node branch).
func TestBuild_SharedNodeReExtension(t *testing.T) {
	np, err := Params{
		MaxDepth:      4,
		DetectorWidth: 1.0,
		ZPos:          []float64{0, 0.25, 0.5, 0.75, 1},
		MaxSlope:      1.0,
	}.Normalize()
	require.NoError(t, err)

	index := pattern.NewIndex(np.nlevels)
	b := &builder{params: np, index: index}

	// P: first explored at depth 3, magnitude 2 (comfortably passes
	// testSlope at any depth used here).
	p, err := pattern.NewPattern([]int32{0, 1, 1, 1, 1}, false)
	require.NoError(t, err)
	index.Insert(p)
	p.UsedAtDepth(3)

	// gc: one of P's children, discovered at P's original depth 4 and
	// never expanded further (depth 4 was the tree's terminal level).
	gc, err := pattern.NewPattern([]int32{0, 0, 0, 0, 0}, false)
	require.NoError(t, err)
	index.Insert(gc)
	p.AddChild(gc, pattern.TransformIdentity)
	gc.UsedAtDepth(4)
	require.False(t, gc.HasChildren())

	// A different parent rediscovers P as a child at depth 2.
	other := pattern.NewRootPattern(5)
	b.considerChild(other, p.Bins(), pattern.TransformIdentity, 2)
	require.True(t, other.HasChildren(), "P must link under its new, shallower parent")

	// Emulate makeChildren's own post-link decision: P already has
	// children and was previously only seen deeper than depth 2, so the
	// driver recurses into it one more time at the shallower depth.
	b.makeChildren(p, 3)

	require.Equal(t, int32(2), p.MinDepth(), "rediscovery at a shallower depth must lower MinDepth")
	require.Equal(t, int32(3), gc.MinDepth(), "P's existing child must be revisited at the new depth")
	require.True(t, gc.HasChildren(), "re-extension must grow the subtree beyond its original terminal depth")
}

// TestConsiderChild_RejectsStricterSlopeOnShallowerRediscovery pins the
// regression this package's found-node branch must not repeat: a node
// validated at a deep level, where a wide magnitude still satisfies the
// slope bound, must not be linked unconditionally when rediscovered at
// a shallower depth where the same magnitude violates the stricter
// bound there.
func TestConsiderChild_RejectsStricterSlopeOnShallowerRediscovery(t *testing.T) {
	np, err := Params{
		MaxDepth:      5,
		DetectorWidth: 1.0,
		ZPos:          []float64{0, 0.25, 0.5, 0.75, 1},
		MaxSlope:      1.0,
	}.Normalize()
	require.NoError(t, err)

	index := pattern.NewIndex(np.nlevels)
	b := &builder{params: np, index: index}

	// magnitude 10: (10-1)/2^5 = 0.28125 <= 1.0 passes at depth 5, but
	// (10-1)/2^2 = 2.25 > 1.0 fails at depth 2.
	node, err := pattern.NewPattern([]int32{0, 9, 9, 9, 9}, false)
	require.NoError(t, err)
	index.Insert(node)
	node.UsedAtDepth(5)

	parent := pattern.NewRootPattern(5)
	b.considerChild(parent, node.Bins(), pattern.TransformIdentity, 2)

	require.False(t, parent.HasChildren(),
		"a node valid only at its original, deeper depth must not be linked at a shallower depth that fails the re-tested slope bound")
}

// TestConsiderChild_LinksUnconditionallyAtEqualOrDeeperDepth confirms
// the companion branch: rediscovering a node at a depth at or below
// where it was already validated never re-tests slope, since the bound
// only gets looser as depth grows.
func TestConsiderChild_LinksUnconditionallyAtEqualOrDeeperDepth(t *testing.T) {
	np, err := Params{
		MaxDepth:      2,
		DetectorWidth: 1.0,
		ZPos:          []float64{0, 0.5, 1},
		MaxSlope:      1.0,
	}.Normalize()
	require.NoError(t, err)

	index := pattern.NewIndex(np.nlevels)
	b := &builder{params: np, index: index}

	// magnitude 10 fails testSlope at depth 1 for maxSlope 1.0
	// ((10-1)/2^1 = 4.5), which is exactly why this branch must not
	// re-test it.
	node, err := pattern.NewPattern([]int32{0, 9, 9}, false)
	require.NoError(t, err)
	index.Insert(node)
	node.UsedAtDepth(1)

	parent := pattern.NewRootPattern(3)
	b.considerChild(parent, node.Bins(), pattern.TransformIdentity, 1)

	require.True(t, parent.HasChildren(), "depth >= MinDepth must link unconditionally, without re-testing slope")
}

package patterngen

import (
	"time"

	"github.com/katalvlaran/patterntree/pattern"
)

// Tree is an immutable, read-only handle onto a finished pattern build:
// the parameters it was built from, its root, the index that owns
// every node, and the statistics collected once the recursion
// completed. A Tree is never mutated after Build returns it.
type Tree struct {
	params    normalized
	root      *pattern.Pattern
	index     *pattern.Index
	stats     Stats
	buildTime time.Duration
}

// Root returns the tree's all-zero root pattern.
func (t *Tree) Root() *pattern.Pattern { return t.root }

// NPatterns returns the number of unique patterns in the tree.
func (t *Tree) NPatterns() int { return t.index.Len() }

// Stats returns the statistics pass result computed when the build
// finished, including the wall-clock build time.
func (t *Tree) Stats() Stats { return t.stats }

// Destroy tears down the tree's hash index, releasing every Pattern and
// Link it owns. After Destroy, the Tree must not be used.
func (t *Tree) Destroy() { t.index.Destroy() }

// Build runs the recursive generator to completion for the given
// parameters and returns a read-only Tree snapshot. If params fails
// normalization, Build returns the normalization error and a nil Tree;
// no partial tree is retained.
func Build(p Params) (*Tree, error) {
	np, err := p.Normalize()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	idx := pattern.NewIndex(np.nlevels)
	root := pattern.NewRootPattern(np.NPlanes())
	idx.Insert(root)

	g := &builder{params: np, index: idx}
	g.makeChildren(root, 1)

	elapsed := time.Since(start)
	raw := idx.ComputeStats(np.NPlanes())

	return &Tree{
		params: np,
		root:   root,
		index:  idx,
		stats: Stats{
			NPatterns:          raw.NPatterns,
			NLinks:             raw.NLinks,
			MaxChildListLength: raw.MaxChildListLength,
			MaxHashDepth:       raw.MaxHashDepth,
			NBytes:             raw.NBytes,
			NHashBytes:         raw.NHashBytes,
			BuildTime:          elapsed,
		},
		buildTime: elapsed,
	}, nil
}

// builder holds the state shared across one recursive build: the
// normalized parameters and the index every discovered pattern is
// deduplicated through. It is not exported; Build is the only entry
// point a caller needs.
type builder struct {
	params normalized
	index  *pattern.Index
}

// makeChildren implements §4.4's recursive build exactly: it records
// parent's min-depth, enumerates (or reuses) its direct children via
// the child iterator and the hash index, then recurses into any child
// that either has no children yet or was previously discovered deeper
// than depth (the re-extension rule — see the package doc and the
// grounding ledger for why this rule cannot be dropped).
func (b *builder) makeChildren(parent *pattern.Pattern, depth int) {
	parent.UsedAtDepth(int32(depth - 1))
	if depth >= b.params.nlevels {
		return
	}

	if !parent.HasChildren() {
		it := NewChildIterator(parent)
		for it.Next() {
			b.considerChild(parent, it.Bins(), it.Tag(), depth)
		}
	}

	for l := parent.Children(); l != nil; l = l.Next() {
		child := l.Pattern()
		if !child.HasChildren() || child.MinDepth() > int32(depth) {
			b.makeChildren(child, depth+1)
		}
	}
}

// considerChild handles one accepted child-iterator candidate: dedup
// against the hash index, re-testing the slope predicate when a shared
// node is reached at a depth shallower than any it was previously
// validated at (the stricter bound of the new depth may no longer
// hold), or running both predicates fresh for a genuinely new pattern.
func (b *builder) considerChild(parent *pattern.Pattern, bins []int32, tag pattern.Transform, depth int) {
	// bins is always already normalized here: it comes straight from
	// ChildIterator, whose accept branches guarantee bins[0]==0. The
	// error return exists for NewPattern's external callers, not this
	// one, so it is discarded rather than threaded through makeChildren.
	cand, _ := pattern.NewPattern(bins, tag == pattern.TransformMirrored)

	if node := b.index.Find(cand); node != nil {
		if int32(depth) >= node.MinDepth() {
			parent.AddChild(node, tag)
			return
		}
		if testSlope(node.Width(), depth, b.params.maxSlope) {
			parent.AddChild(node, tag)
		}
		return
	}

	if !testSlope(cand.Width(), depth, b.params.maxSlope) {
		return
	}
	if !lineCheck(bins, b.params.zpos) {
		return
	}
	node, _ := pattern.NewPattern(bins, tag == pattern.TransformMirrored)
	b.index.Insert(node)
	parent.AddChild(node, tag)
}

package pattern

// Link is a singly-linked cell referencing a Pattern, tagged with the
// transform that recovers it from its parent's raw refinement. A Link
// is owned by exactly one of two structures: a Pattern's child list, or
// an Index bucket's collision chain. The Pattern it points to is never
// owned by the Link itself — Patterns live in, and are destroyed by,
// the Index.
type Link struct {
	pat  *Pattern
	tag  Transform
	next *Link
}

// Pattern returns the pattern this link refers to.
func (l *Link) Pattern() *Pattern { return l.pat }

// Tag returns the transform that recovers the referenced pattern from
// its source's raw refinement.
func (l *Link) Tag() Transform { return l.tag }

// Next returns the next link in the chain, or nil at the end.
func (l *Link) Next() *Link { return l.next }

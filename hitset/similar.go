package hitset

// IsSimilarTo reports whether s is similar to tryset: the
// plane-occupancy bitmask of their intersection equals tryset's own
// plane pattern. This is weaker than containment — tryset may carry an
// extra hit in a plane s already covers — so it is not the same as "s
// contains tryset". Ties are decided with s's own comparator (maxdist
// 0, so a custom Comparator installed via WithComparator still governs
// what counts as "the same hit"); both sets must already be ordered
// consistently with it. The merge walks them once, in
// O(len(s)+len(tryset)).
func (s *Set) IsSimilarTo(tryset *Set) bool {
	var intersection uint32
	i, j := 0, 0
	for i < len(s.hits) && j < len(tryset.hits) {
		a, b := s.hits[i], tryset.hits[j]
		switch s.cmp(b, a, 0) {
		case -1:
			j++
		case 1:
			i++
		default:
			intersection |= 1 << uint(b.Plane)
			i++
			j++
		}
	}
	return intersection == tryset.pattern
}

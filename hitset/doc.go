// Package hitset implements Hit-set similarity (C9): a plane-occupancy
// test over two ordered hit sets that is weaker than containment. A set
// S "is similar to" a try set T when the plane-occupancy bitmask of
// their intersection equals T's own plane pattern — T may
// carry an extra hit in a plane already covered, but not a whole extra
// plane.
package hitset

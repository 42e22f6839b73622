package patterngen

import "math"

// testSlope accepts a pattern of (unsigned) width w tested at recursion
// depth d: a degenerate single-column pattern (|w| < 2) always passes;
// otherwise the bound (|w|-1)/2^d <= maxSlope must hold. One bin unit
// at depth d corresponds to a transverse extent of detectorWidth*2^-d,
// so (|w|-1) bin units across the full z span is exactly (|w|-1)*2^-d
// in normalized slope units.
func testSlope(width int32, depth int, maxSlope float64) bool {
	w := width
	if w < 0 {
		w = -w
	}
	if w < 2 {
		return true
	}
	scale := math.Ldexp(1, -depth)
	return (float64(w-1))*scale <= maxSlope
}

// lineCheck determines whether some straight line can pass through
// every plane's bin of a normalized pattern (bins[0] == 0), given plane
// positions zpos in (0, 1]. It walks two candidate band edges inward
// from the last plane and rejects as soon as an intermediate plane
// falls outside the band by a full bin. Both z and bin values must be
// compared in double precision; the predicate is sensitive to rounding
// for certain z spacings (see the boundary scenarios this pins down).
func lineCheck(bins []int32, zpos []float64) bool {
	n := len(bins)
	if n < 2 {
		return true
	}
	xL := float64(bins[n-1])
	zL := zpos[n-1]
	xRm1 := xL
	zR := zL
	for i := n - 2; i >= 1; i-- {
		pi := float64(bins[i])
		zi := zpos[i]

		dL := xL*zi - pi*zL
		if math.Abs(dL) >= zL {
			return false
		}
		dR := xRm1*zi - pi*zR
		if math.Abs(dR) >= zR {
			return false
		}
		if i > 1 {
			if dL > 0 {
				xRm1, zR = pi, zi
			}
			if dR < 0 {
				xL, zL = pi, zi
			}
		}
	}
	return true
}

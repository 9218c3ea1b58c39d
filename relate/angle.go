package relate

import (
	"math"

	"github.com/katalvlaran/planar/line"
)

// Angle — acute angle between two intersecting lines, in degrees.
//
// Description:
//
//	Always reports the smaller of the two angles the lines form, so the
//	result lies in [0°, 90°].
//
// Algorithm Outline:
//  1. Neither line vertical: m1 = −A1/B1, m2 = −A2/B2.
//     |1 + m1·m2| ≤ Eps  → perpendicular → 90°.
//     Otherwise θ = atan(|m2 − m1| / |1 + m1·m2|).
//  2. Exactly one line vertical: the vertical line meets the x-axis at
//     90° while the other meets it at atan(|m|), hence θ = 90° − atan(|m|).
//  3. Both lines vertical: impossible for an intersecting pair (they
//     would be parallel or coincident) → ErrInvariant.
//
// The raw formula already yields the acute companion; the final value is
// still folded into [0°, 90°] as a guard.
//
// Precondition: Classify(l1, l2) == Intersect.
// Complexity: O(1).
func Angle(l1, l2 line.Line) (float64, error) {
	m1, ok1 := l1.Slope()
	m2, ok2 := l2.Slope()

	switch {
	case !ok1 && !ok2:
		return 0, ErrInvariant
	case !ok1:
		return clampAcute(90 - degrees(math.Atan(math.Abs(m2)))), nil
	case !ok2:
		return clampAcute(90 - degrees(math.Atan(math.Abs(m1)))), nil
	}

	denom := 1 + m1*m2
	if math.Abs(denom) <= line.Eps {
		return 90, nil
	}

	theta := degrees(math.Atan(math.Abs(m2-m1) / math.Abs(denom)))

	return clampAcute(theta), nil
}

// degrees converts radians to degrees.
func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// clampAcute folds an angle into [0°, 90°], replacing an obtuse value
// with its acute companion.
func clampAcute(deg float64) float64 {
	if deg < 0 {
		deg = -deg
	}
	if deg > 90 {
		deg = 180 - deg
	}

	return deg
}

package relate

import (
	"math"

	"github.com/katalvlaran/planar/line"
)

// Classify — pairwise relationship of two lines.
//
// Description:
//
//	Decides whether two valid lines intersect, run parallel, or coincide,
//	using only cross products of their coefficients. No division occurs,
//	so any mix of vertical, horizontal and sloped lines is safe.
//
// Algorithm Outline:
//  1. D = A1·B2 − A2·B1 (direction determinant).
//  2. |D| > Eps  → the directions are not proportional → Intersect.
//  3. Otherwise the directions are proportional; test the constant term
//     against each direction component:
//     crossC1 = A1·C2 − A2·C1
//     crossC2 = B1·C2 − B2·C1
//     Both within Eps → all three coefficients proportional → Coincident.
//     Either one outside Eps → same direction, shifted → Parallel.
//
// The constant-term cross products replace the naive ratio comparison
// C1/C2 ≈ A1/A2, which breaks down when a coefficient is zero.
//
// Complexity: O(1). Symmetric: Classify(a, b) == Classify(b, a).
func Classify(l1, l2 line.Line) Kind {
	d := l1.A*l2.B - l2.A*l1.B
	if math.Abs(d) > line.Eps {
		return Intersect
	}

	crossC1 := l1.A*l2.C - l2.A*l1.C
	crossC2 := l1.B*l2.C - l2.B*l1.C
	if math.Abs(crossC1) <= line.Eps && math.Abs(crossC2) <= line.Eps {
		return Coincident
	}

	return Parallel
}

package relate

import (
	"math"

	"github.com/katalvlaran/planar/line"
)

// Intersection — meeting point of two intersecting lines.
//
// Description:
//
//	Solves the 2×2 linear system
//	    A1·x + B1·y = −C1
//	    A2·x + B2·y = −C2
//	with Cramer's rule:
//	    D = A1·B2 − A2·B1
//	    x = (B1·C2 − B2·C1) / D
//	    y = (A2·C1 − A1·C2) / D
//
// Precondition:
//
//	Classify(l1, l2) == Intersect, i.e. |D| > Eps. Calling Intersection
//	on a parallel or coincident pair is a programming error and returns
//	ErrInvariant; it is never a user-facing failure.
//
// Complexity: O(1).
func Intersection(l1, l2 line.Line) (Point, error) {
	d := l1.A*l2.B - l2.A*l1.B
	if math.Abs(d) <= line.Eps {
		return Point{}, ErrInvariant
	}

	return Point{
		X: (l1.B*l2.C - l2.B*l1.C) / d,
		Y: (l2.A*l1.C - l1.A*l2.C) / d,
	}, nil
}

package line

import (
	"math"
	"strconv"
	"strings"
)

// Eps is the process-wide tolerance below which a floating-point quantity
// is treated as zero. Every comparison in this module is tolerance-based;
// exact float equality is never used.
const Eps = 1e-10

// Line is a straight line in general form A·x + B·y + C = 0.
//
// A Line is constructed once via New and is immutable thereafter; the
// invariant "not both A and B within Eps of zero" holds for every value
// that New returns.
type Line struct {
	A, B, C float64
}

// New validates the coefficient triple and returns the Line.
//
// Returns ErrNonFinite when any coefficient is NaN or ±Inf, and
// ErrDegenerate when both |A| ≤ Eps and |B| ≤ Eps.
func New(a, b, c float64) (Line, error) {
	for _, v := range [3]float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Line{}, ErrNonFinite
		}
	}
	if math.Abs(a) <= Eps && math.Abs(b) <= Eps {
		return Line{}, ErrDegenerate
	}

	return Line{A: a, B: b, C: c}, nil
}

// IsVertical reports whether the line is vertical (|B| ≤ Eps).
func (l Line) IsVertical() bool { return math.Abs(l.B) <= Eps }

// IsHorizontal reports whether the line is horizontal (|A| ≤ Eps).
func (l Line) IsHorizontal() bool { return math.Abs(l.A) <= Eps }

// Slope returns the slope m = −A/B and ok=true, or ok=false for a
// vertical line, whose slope is undefined.
func (l Line) Slope() (m float64, ok bool) {
	if l.IsVertical() {
		return 0, false
	}

	return -l.A / l.B, true
}

// Eval returns the signed residual A·x + B·y + C at the given point.
// A point lies on the line when |Eval| is within tolerance of zero.
func (l Line) Eval(x, y float64) float64 {
	return l.A*x + l.B*y + l.C
}

// String renders the line as a compact human-readable equation, e.g.
// "x + y - 2 = 0", "2x - 3y + 5 = 0" or "-x + 3 = 0". Coefficients with
// magnitude one are elided next to their variable.
func (l Line) String() string {
	var parts []string

	if math.Abs(l.A) > Eps {
		switch {
		case math.Abs(math.Abs(l.A)-1) <= Eps && l.A > 0:
			parts = append(parts, "x")
		case math.Abs(math.Abs(l.A)-1) <= Eps:
			parts = append(parts, "-x")
		default:
			parts = append(parts, fmtCoef(l.A)+"x")
		}
	}
	if math.Abs(l.B) > Eps {
		parts = append(parts, signedTerm(l.B, "y", len(parts) == 0))
	}
	if math.Abs(l.C) > Eps {
		parts = append(parts, signedTerm(l.C, "", len(parts) == 0))
	}
	if len(parts) == 0 {
		return "0 = 0"
	}

	return strings.Join(parts, " ") + " = 0"
}

// signedTerm renders one "± coef·var" chunk. Leading terms carry a bare
// minus instead of a spaced sign.
func signedTerm(v float64, variable string, leading bool) string {
	abs := math.Abs(v)
	body := variable
	if variable == "" || math.Abs(abs-1) > Eps {
		body = fmtCoef(abs) + variable
	}
	switch {
	case leading && v < 0:
		return "-" + body
	case leading:
		return body
	case v < 0:
		return "- " + body
	default:
		return "+ " + body
	}
}

// fmtCoef formats a coefficient using the shortest exact decimal form.
func fmtCoef(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

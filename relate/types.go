// Package relate: result and option types shared by the analysis routines.
package relate

// Kind is the three-way relationship verdict for a pair of lines.
// Exactly one of the three values holds for any pair of valid lines.
type Kind int

const (
	// Intersect — the lines meet in exactly one point.
	Intersect Kind = iota
	// Parallel — same direction, distinct point sets, no intersection.
	Parallel
	// Coincident — the two triples describe the identical set of points.
	Coincident
)

// String returns the lower-case label used in reports and CLI output.
func (k Kind) String() string {
	switch k {
	case Intersect:
		return "intersect"
	case Parallel:
		return "parallel"
	case Coincident:
		return "coincident"
	default:
		return "unknown"
	}
}

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Relationship is the analysis outcome for one unordered pair (I, J),
// I < J, of the input list.
//
// Point and Angle are set iff Kind == Intersect; for Parallel and
// Coincident pairs both stay nil, so an impossible combination (a point
// on a parallel pair) cannot be represented by accident.
type Relationship struct {
	I, J  int
	Kind  Kind
	Point *Point   // intersection point, Intersect only
	Angle *float64 // acute angle in degrees, Intersect only
}

// Report is the ordered outcome of a batch analysis: one Relationship per
// unordered pair, ascending by (I, J), exactly n·(n−1)/2 entries for n
// input lines.
type Report []Relationship

// Options configures Analyze.
//
// Fields:
//   - Workers — number of goroutines used for pair processing.
//     0 or 1 means sequential; values above the pair count are clamped.
//     Negative values are rejected with ErrBadOptions.
//
// Example:
//
//	opts := relate.DefaultOptions()
//	opts.Workers = 4
//	report, err := relate.Analyze(lines, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the documented defaults: sequential processing.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

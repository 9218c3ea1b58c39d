// Package relate classifies pairwise relationships between straight lines
// and derives intersection points, angles, and full batch reports.
//
// What:
//
//   - Classify: three-way verdict — Intersect, Parallel or Coincident —
//     from the direction determinant and constant-term cross products.
//   - Intersection: the meeting point of an intersecting pair, solved with
//     Cramer's rule on the 2×2 system.
//   - Angle: the acute angle between two intersecting lines in degrees,
//     with dedicated vertical-line and perpendicular branches.
//   - Analyze: every unordered pair (i, j), i < j, of an input list, in
//     ascending order, assembled into a Report. Pairs are independent, so
//     Options.Workers may fan the computation out across goroutines; the
//     Report order is canonical regardless of completion order.
//
// Why:
//
//   - Geometry homework & CAD-adjacent tooling: which lines meet, where,
//     and how steeply.
//   - Degenerate-input safety: the cross-product formulation never divides
//     by a possibly-zero coefficient, so vertical and horizontal lines are
//     first-class citizens.
//
// Complexity:
//
//   - Classify / Intersection / Angle: O(1).
//   - Analyze over n lines: O(n²) pairs, O(1) per pair; Memory O(n²) for
//     the report itself.
//
// Options:
//
//   - Options.Workers: number of goroutines Analyze may use (1 = sequential).
//
// Errors:
//
//   - ErrTooFewLines: Analyze needs at least two lines.
//   - ErrBadOptions: negative worker count.
//   - ErrInvariant: a solver was invoked outside its precondition (e.g.
//     Intersection on a parallel pair) — a programming defect upstream,
//     not a user-facing input error.
//
// All floating comparisons use the shared tolerance line.Eps.
package relate

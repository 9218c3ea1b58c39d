// Package line defines the Line value type for straight lines given in
// general form Ax + By + C = 0, with construction-time validation and
// tolerance-aware derived properties.
//
// What:
//
//   - Line wraps a coefficient triple (A, B, C); immutable once built.
//   - New rejects degenerate triples (A ≈ 0 and B ≈ 0) and non-finite input.
//   - Derived on demand: IsVertical (|B| ≤ Eps), IsHorizontal (|A| ≤ Eps),
//     Slope (−A/B, undefined for vertical lines), Eval (signed residual).
//   - String renders a human-readable equation such as "x + y - 2 = 0".
//
// Why:
//
//   - One validated type at the bottom of the stack lets every consumer
//     (classification, solving, plotting) assume a well-formed line.
//   - A single shared tolerance, Eps, keeps floating-point comparisons
//     consistent across the whole module — never exact equality.
//
// Errors:
//
//   - ErrDegenerate: both A and B are within Eps of zero.
//   - ErrNonFinite: a coefficient is NaN or ±Inf.
//
// See relate/ for pairwise analysis built on top of this type.
package line

// Package scenario loads named sets of lines from TOML files, so the CLI
// (and tests) can replay prepared inputs instead of typing coefficients.
//
// File layout:
//
//	name = "task example"
//	description = "three mutually intersecting lines"
//
//	[[line]]
//	a = 1.0
//	b = 1.0
//	c = -2.0
//
//	[[line]]
//	a = 1.0
//	b = -1.0
//	c = 0.0
//
// Decoding is strict: unknown keys are rejected, every triple goes through
// line.New, and a set with fewer than two lines is refused — the same
// validation boundary the engine itself enforces, just moved to load time.
//
// Errors:
//
//   - ErrTooFewLines: the file holds fewer than two [[line]] tables.
//   - line.ErrDegenerate / line.ErrNonFinite: wrapped with the 1-based
//     position of the offending [[line]] table.
package scenario

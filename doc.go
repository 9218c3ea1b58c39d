// Package planar is your toolbox for analyzing straight lines in the
// plane — from a single validated coefficient triple to full pairwise
// relationship reports with intersection points, angles and plots.
//
// 🚀 What is planar?
//
//	A small, focused library built around the general form Ax + By + C = 0:
//		• Line primitives: validated, immutable coefficient triples
//		• Classification: intersect / parallel / coincident, ε-tolerant
//		• Intersections: Cramer's rule on the 2×2 system
//		• Angles: acute angle in degrees, vertical & perpendicular aware
//		• Batch reports: every unordered pair, canonical order, optional workers
//		• Rendering: PNG plots of line sets and their intersections
//
// ✨ Why choose planar?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Numerically careful – one shared tolerance, no exact float equality
//   - Deterministic – reports come out in ascending (i, j) order, always
//   - Batteries included – TOML scenarios, a terminal front-end, plotting
//
// Under the hood, everything is organized into focused subpackages:
//
//	line/     — the Line value type, validation & equation formatting
//	relate/   — classification, intersection, angle & batch analysis
//	render/   — PNG plotting of line sets and intersection points
//	scenario/ — named line sets loaded from TOML files
//	cmd/      — the planar command-line front-end
//
// Quick ASCII example:
//
//	    \   │
//	     \  │        x + y − 2 = 0  and  x − y = 0
//	      \ │/       meet at (1, 1) under 90°.
//	    ───╳───
//	      /│\
//
// Dive into the per-package doc.go files for tutorials and the full
// error contracts.
//
//	go get github.com/katalvlaran/planar
package planar

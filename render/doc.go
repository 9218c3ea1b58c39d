// Package render draws line sets and their intersection points into
// raster images, mirroring what the interactive front-end displays.
//
// What:
//
//   - Plot: lines, optional grid, axes, intersection markers and equation
//     labels composed into an *image.RGBA.
//   - WritePNG: Plot encoded as PNG onto any io.Writer.
//   - View bounds are derived from the intersection cloud of the supplied
//     report (margin and minimum-span rules), falling back to a fixed
//     window when no pair intersects.
//
// Why:
//
//   - A picture settles "do these really meet there?" faster than a table;
//     the CLI plot subcommand and documentation screenshots both feed off
//     this package.
//
// Options:
//
//   - Width, Height — output size in pixels.
//   - Margin        — world-unit padding around the intersection cloud.
//   - MinSpan       — minimum world span per axis, keeps near-coincident
//     intersection clouds from collapsing the view.
//   - ShowGrid, ShowLabels — toggle the coordinate grid and the per-line
//     equation legend.
//
// Errors:
//
//   - ErrNoLines: nothing to draw.
//   - ErrBadSize: non-positive width or height.
package render

package render

import "github.com/katalvlaran/planar/relate"

// view is the world-coordinate window the plot covers.
type view struct {
	x0, x1, y0, y1 float64
}

// viewBounds derives the window from the intersection cloud of the
// report: bounding box plus margin, widened to at least minSpan per axis.
// With no intersections the window defaults to [-10, 10]².
func viewBounds(report relate.Report, margin, minSpan float64) view {
	var pts []relate.Point
	for _, rel := range report {
		if rel.Point != nil {
			pts = append(pts, *rel.Point)
		}
	}
	if len(pts) == 0 {
		return view{x0: -10, x1: 10, y0: -10, y1: 10}
	}

	v := view{x0: pts[0].X, x1: pts[0].X, y0: pts[0].Y, y1: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < v.x0 {
			v.x0 = p.X
		}
		if p.X > v.x1 {
			v.x1 = p.X
		}
		if p.Y < v.y0 {
			v.y0 = p.Y
		}
		if p.Y > v.y1 {
			v.y1 = p.Y
		}
	}
	v.x0 -= margin
	v.x1 += margin
	v.y0 -= margin
	v.y1 += margin

	if v.x1-v.x0 < minSpan {
		cx := (v.x0 + v.x1) / 2
		v.x0 = cx - minSpan/2
		v.x1 = cx + minSpan/2
	}
	if v.y1-v.y0 < minSpan {
		cy := (v.y0 + v.y1) / 2
		v.y0 = cy - minSpan/2
		v.y1 = cy + minSpan/2
	}

	return v
}

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/planar/line"
	"github.com/katalvlaran/planar/relate"
)

var (
	bgColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridColor   = color.RGBA{R: 0xe2, G: 0xe2, B: 0xe2, A: 0xff}
	axisColor   = color.RGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff}
	markerColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// Plot draws the line set into a fresh RGBA image. The report supplies
// the intersection points used for view bounds and markers; pass the
// output of relate.Analyze over the same lines, or nil to plot the lines
// alone in the default window.
func Plot(lines []line.Line, report relate.Report, opts *Options) (*image.RGBA, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, ErrBadSize
	}

	v := viewBounds(report, o.Margin, o.MinSpan)
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)

	c := canvas{img: img, v: v, w: o.Width, h: o.Height}
	if o.ShowGrid {
		c.drawGrid()
	}
	c.drawAxes()
	for i, l := range lines {
		c.drawLine(l, lineColor(i))
	}
	for _, rel := range report {
		if rel.Point != nil {
			c.drawMarker(rel.Point.X, rel.Point.Y)
		}
	}
	if o.ShowLabels {
		c.drawLegend(lines)
	}

	return img, nil
}

// WritePNG plots the line set and encodes the result as PNG.
func WritePNG(w io.Writer, lines []line.Line, report relate.Report, opts *Options) error {
	img, err := Plot(lines, report, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// canvas maps world coordinates onto image pixels.
type canvas struct {
	img  *image.RGBA
	v    view
	w, h int
}

// px converts a world x to a pixel column.
func (c canvas) px(x float64) int {
	return int(math.Round((x - c.v.x0) / (c.v.x1 - c.v.x0) * float64(c.w-1)))
}

// py converts a world y to a pixel row (image y grows downward).
func (c canvas) py(y float64) int {
	return int(math.Round((c.v.y1 - y) / (c.v.y1 - c.v.y0) * float64(c.h-1)))
}

// drawGrid draws vertical and horizontal rules at a step chosen so the
// view holds roughly ten of them per axis.
func (c canvas) drawGrid() {
	step := niceStep((c.v.x1 - c.v.x0) / 10)
	for x := math.Ceil(c.v.x0/step) * step; x <= c.v.x1; x += step {
		c.drawSegment(c.px(x), 0, c.px(x), c.h-1, gridColor)
	}
	step = niceStep((c.v.y1 - c.v.y0) / 10)
	for y := math.Ceil(c.v.y0/step) * step; y <= c.v.y1; y += step {
		c.drawSegment(0, c.py(y), c.w-1, c.py(y), gridColor)
	}
}

// drawAxes draws the x = 0 and y = 0 world axes when they fall inside the view.
func (c canvas) drawAxes() {
	if c.v.x0 <= 0 && c.v.x1 >= 0 {
		c.drawSegment(c.px(0), 0, c.px(0), c.h-1, axisColor)
	}
	if c.v.y0 <= 0 && c.v.y1 >= 0 {
		c.drawSegment(0, c.py(0), c.w-1, c.py(0), axisColor)
	}
}

// drawLine clips the infinite line against the view window and draws the
// visible segment.
func (c canvas) drawLine(l line.Line, col color.RGBA) {
	p0, p1, visible := clipToView(l, c.v)
	if !visible {
		return
	}
	c.drawSegment(c.px(p0.X), c.py(p0.Y), c.px(p1.X), c.py(p1.Y), col)
}

// clipToView intersects the infinite line with the view rectangle using a
// Liang-Barsky interval on the parametric form p(t) = base + t·(B, −A).
func clipToView(l line.Line, v view) (p0, p1 relate.Point, visible bool) {
	// Any point on the line serves as the base.
	var base relate.Point
	if math.Abs(l.B) > line.Eps {
		base = relate.Point{X: 0, Y: -l.C / l.B}
	} else {
		base = relate.Point{X: -l.C / l.A, Y: 0}
	}
	dx, dy := l.B, -l.A

	tMin, tMax := math.Inf(-1), math.Inf(1)
	clip := func(p, d, lo, hi float64) bool {
		if math.Abs(d) <= line.Eps {
			return p >= lo && p <= hi
		}
		t0, t1 := (lo-p)/d, (hi-p)/d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)

		return tMin <= tMax
	}
	if !clip(base.X, dx, v.x0, v.x1) || !clip(base.Y, dy, v.y0, v.y1) {
		return relate.Point{}, relate.Point{}, false
	}

	p0 = relate.Point{X: base.X + tMin*dx, Y: base.Y + tMin*dy}
	p1 = relate.Point{X: base.X + tMax*dx, Y: base.Y + tMax*dy}

	return p0, p1, true
}

// drawSegment rasterizes a pixel segment with Bresenham's algorithm.
func (c canvas) drawSegment(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawMarker draws a small filled disc at a world point, skipping points
// outside the view.
func (c canvas) drawMarker(x, y float64) {
	if x < c.v.x0 || x > c.v.x1 || y < c.v.y0 || y > c.v.y1 {
		return
	}
	cx, cy := c.px(x), c.py(y)
	const r = 4
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.setPixel(cx+dx, cy+dy, markerColor)
			}
		}
	}
}

// drawLegend stacks one "Ln: equation" label per line at the top left,
// each in its line's color.
func (c canvas) drawLegend(lines []line.Line) {
	for i, l := range lines {
		d := font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(lineColor(i)),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, 16+i*14),
		}
		d.DrawString(fmt.Sprintf("L%d: %s", i+1, l))
	}
}

// setPixel writes one pixel, ignoring out-of-canvas coordinates.
func (c canvas) setPixel(x, y int, col color.RGBA) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// niceStep rounds a raw step up to the nearest 1, 2 or 5 times a power
// of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

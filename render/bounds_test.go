package render

import (
	"testing"

	"github.com/katalvlaran/planar/line"
	"github.com/katalvlaran/planar/relate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ptReport builds a report carrying the given intersection points.
func ptReport(pts ...relate.Point) relate.Report {
	r := make(relate.Report, 0, len(pts))
	for i := range pts {
		r = append(r, relate.Relationship{Kind: relate.Intersect, Point: &pts[i]})
	}

	return r
}

// TestViewBounds_Default verifies the fallback window when no pair intersects.
func TestViewBounds_Default(t *testing.T) {
	v := viewBounds(nil, 2, 4)
	assert.Equal(t, view{x0: -10, x1: 10, y0: -10, y1: 10}, v)

	parallel := relate.Report{{Kind: relate.Parallel}}
	assert.Equal(t, v, viewBounds(parallel, 2, 4))
}

// TestViewBounds_MarginAroundCloud verifies the bounding box plus margin.
func TestViewBounds_MarginAroundCloud(t *testing.T) {
	v := viewBounds(ptReport(
		relate.Point{X: 1, Y: 1},
		relate.Point{X: 5, Y: -3},
	), 2, 4)

	assert.InDelta(t, -1, v.x0, 1e-12)
	assert.InDelta(t, 7, v.x1, 1e-12)
	assert.InDelta(t, -5, v.y0, 1e-12)
	assert.InDelta(t, 3, v.y1, 1e-12)
}

// TestViewBounds_MinSpan verifies a tight cloud is widened to the minimum
// span, centered on the cloud.
func TestViewBounds_MinSpan(t *testing.T) {
	v := viewBounds(ptReport(relate.Point{X: 3, Y: 2}), 0.5, 4)

	assert.InDelta(t, 4.0, v.x1-v.x0, 1e-12)
	assert.InDelta(t, 4.0, v.y1-v.y0, 1e-12)
	assert.InDelta(t, 3.0, (v.x0+v.x1)/2, 1e-12)
	assert.InDelta(t, 2.0, (v.y0+v.y1)/2, 1e-12)
}

// TestNiceStep verifies the 1-2-5 rounding of grid steps.
func TestNiceStep(t *testing.T) {
	cases := []struct{ raw, want float64 }{
		{0.8, 1},
		{1.5, 2},
		{3.0, 5},
		{7.0, 10},
		{0.12, 0.2},
		{25, 50},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, niceStep(tc.raw), 1e-12, "raw %v", tc.raw)
	}
}

// TestClipToView verifies a diagonal line is clipped to the window corners
// and an off-window line reports invisible.
func TestClipToView(t *testing.T) {
	v := view{x0: -10, x1: 10, y0: -10, y1: 10}

	diag, err := line.New(1, -1, 0) // y = x
	require.NoError(t, err)
	p0, p1, visible := clipToView(diag, v)
	require.True(t, visible)
	assert.InDelta(t, p0.X, p0.Y, 1e-9, "clip endpoints stay on the line")
	assert.InDelta(t, p1.X, p1.Y, 1e-9)
	assert.InDelta(t, 20.0, absFloat(p1.X-p0.X), 1e-9, "segment spans the window")

	far, err := line.New(1, 0, -100) // x = 100, right of the window
	require.NoError(t, err)
	_, _, visible = clipToView(far, v)
	assert.False(t, visible)

	vert, err := line.New(1, 0, -3) // x = 3
	require.NoError(t, err)
	p0, p1, visible = clipToView(vert, v)
	require.True(t, visible)
	assert.InDelta(t, 3.0, p0.X, 1e-9)
	assert.InDelta(t, 3.0, p1.X, 1e-9)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

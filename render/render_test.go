package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/katalvlaran/planar/line"
	"github.com/katalvlaran/planar/relate"
	"github.com/katalvlaran/planar/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plotInput returns two perpendicular lines plus their analysis report.
func plotInput(t *testing.T) ([]line.Line, relate.Report) {
	t.Helper()
	l1, err := line.New(1, 1, -2) // x + y - 2 = 0
	require.NoError(t, err)
	l2, err := line.New(1, -1, 0) // x - y = 0
	require.NoError(t, err)

	lines := []line.Line{l1, l2}
	report, err := relate.Analyze(lines, nil)
	require.NoError(t, err)

	return lines, report
}

// TestPlot_CanvasAndBackground verifies the image size and that the
// drawn geometry leaves most of the canvas as background.
func TestPlot_CanvasAndBackground(t *testing.T) {
	lines, report := plotInput(t)
	opts := render.DefaultOptions()
	opts.Width, opts.Height = 200, 150

	img, err := render.Plot(lines, report, &opts)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 200, b.Dx())
	assert.Equal(t, 150, b.Dy())

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	background := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == white {
				background++
			}
		}
	}
	assert.Greater(t, background, b.Dx()*b.Dy()/2, "most pixels stay background")
}

// TestPlot_DrawsEveryLineColor verifies each input line contributes pixels
// in its palette color.
func TestPlot_DrawsEveryLineColor(t *testing.T) {
	lines, report := plotInput(t)

	img, err := render.Plot(lines, report, nil)
	require.NoError(t, err)

	counts := make(map[color.RGBA]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			counts[img.RGBAAt(x, y)]++
		}
	}
	assert.Positive(t, counts[color.RGBA{R: 0xd6, G: 0x2a, B: 0x2a, A: 0xff}], "first line (red) pixels")
	assert.Positive(t, counts[color.RGBA{R: 0x1f, G: 0x4e, B: 0xd6, A: 0xff}], "second line (blue) pixels")
}

// TestPlot_NoLines verifies the empty-input sentinel.
func TestPlot_NoLines(t *testing.T) {
	_, err := render.Plot(nil, nil, nil)
	assert.ErrorIs(t, err, render.ErrNoLines)
}

// TestPlot_BadSize verifies the size sentinel.
func TestPlot_BadSize(t *testing.T) {
	lines, report := plotInput(t)
	opts := render.DefaultOptions()
	opts.Width = 0

	_, err := render.Plot(lines, report, &opts)
	assert.ErrorIs(t, err, render.ErrBadSize)
}

// TestPlot_NilReportUsesDefaultWindow verifies lines alone can be plotted.
func TestPlot_NilReportUsesDefaultWindow(t *testing.T) {
	l, err := line.New(1, -1, 0)
	require.NoError(t, err)

	img, err := render.Plot([]line.Line{l}, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

// TestWritePNG_RoundTrip verifies the encoded stream decodes back to an
// image of the configured size.
func TestWritePNG_RoundTrip(t *testing.T) {
	lines, report := plotInput(t)
	opts := render.DefaultOptions()
	opts.Width, opts.Height = 320, 240

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, lines, report, &opts))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 240, decoded.Bounds().Dy())
}

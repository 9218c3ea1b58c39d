package render

import (
	"errors"
	"image/color"
)

var (
	// ErrNoLines indicates Plot was called with an empty line set.
	ErrNoLines = errors.New("render: need at least one line")
	// ErrBadSize indicates a non-positive width or height.
	ErrBadSize = errors.New("render: width and height must be positive")
)

// Options configures Plot.
//
// Zero-value fields are not usable directly; start from DefaultOptions
// and override what you need.
type Options struct {
	Width, Height int
	Margin        float64
	MinSpan       float64
	ShowGrid      bool
	ShowLabels    bool
}

// DefaultOptions returns the documented defaults: a 960×720 canvas,
// margin 2, minimum span 4, grid and labels on.
func DefaultOptions() Options {
	return Options{
		Width:      960,
		Height:     720,
		Margin:     2,
		MinSpan:    4,
		ShowGrid:   true,
		ShowLabels: true,
	}
}

// palette cycles per line index, same eight hues the original tool used.
var palette = []color.RGBA{
	{R: 0xd6, G: 0x2a, B: 0x2a, A: 0xff}, // red
	{R: 0x1f, G: 0x4e, B: 0xd6, A: 0xff}, // blue
	{R: 0x1e, G: 0x8a, B: 0x3c, A: 0xff}, // green
	{R: 0xe8, G: 0x82, B: 0x1a, A: 0xff}, // orange
	{R: 0x7a, G: 0x2e, B: 0xb8, A: 0xff}, // purple
	{R: 0x7a, G: 0x4a, B: 0x2a, A: 0xff}, // brown
	{R: 0xd6, G: 0x5a, B: 0x9e, A: 0xff}, // pink
	{R: 0x6e, G: 0x6e, B: 0x6e, A: 0xff}, // gray
}

// lineColor returns the palette entry for a line index.
func lineColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

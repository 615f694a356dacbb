// Package histplot draws sample histograms as images.
package histplot

import (
	"image/color"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/huffman"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/ppm"
)

// DefaultHeight is the height of a chart when none is specified.
const DefaultHeight = 128

var (
	_background = color.RGBA{A: 0xff}
	_bar        = color.RGBA{R: 0xff, A: 0xff}
)

// Render draws a bar chart of h.
//
// The chart is 256 pixels wide, one column per value.
// Column v holds a bar whose height is proportional to h[v],
// with the most frequent value reaching the top.
// Any value with a positive count gets a bar at least one pixel tall.
// If height is not positive, DefaultHeight is used.
func Render(h *huffman.Histogram, height int) *ppm.Image {
	if height <= 0 {
		height = DefaultHeight
	}

	img := ppm.New(len(h), height)
	for x := range len(h) {
		for y := range height {
			img.Set(x, y, _background)
		}
	}

	most := h.Max()
	if most == 0 {
		return img
	}

	for v, count := range h {
		if count == 0 {
			continue
		}

		bar := max(1, count*height/most)
		for y := height - bar; y < height; y++ {
			img.Set(v, y, _bar)
		}
	}

	return img
}

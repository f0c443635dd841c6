// Package render draws bounding boxes and their legends onto a raster.
package render

import (
	"image"
	"image/color"

	"github.com/rmarques/bboxview/pkg/label"
)

// Padding in pixels between the legend text and its background edges.
const legendPad = 2

// Renderer draws canonical boxes with class legends. The zero value is
// not usable; construct with New.
type Renderer struct {
	stroke     int
	showLegend bool
}

// DefaultStroke is the outline width used when none is configured.
const DefaultStroke = 2

// New creates a Renderer with the given outline stroke width. A stroke
// below 1 falls back to DefaultStroke.
func New(stroke int, showLegend bool) *Renderer {
	if stroke < 1 {
		stroke = DefaultStroke
	}
	return &Renderer{stroke: stroke, showLegend: showLegend}
}

// DrawBox draws one box outline plus its legend onto c. Degenerate boxes
// (zero width or height after clipping) still produce a visible marker at
// least one pixel thick. legend may be empty to suppress the label.
func (r *Renderer) DrawBox(c Canvas, b label.Box, col color.NRGBA, legend string) {
	// The canonical box stores inclusive corner coordinates; the raster
	// rectangle is exclusive on the far side. A collapsed box becomes a
	// 1-pixel-wide outline this way instead of disappearing.
	rect := image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1)
	c.DrawRect(rect, col, r.stroke)

	if r.showLegend && legend != "" {
		r.drawLegend(c, rect, col, legend)
	}
}

// drawLegend draws the legend text in a filled background box anchored at
// the top-left corner of rect. If there is no room above the box the
// legend flips to just below the top edge; horizontally it is clamped to
// stay on-canvas.
func (r *Renderer) drawLegend(c Canvas, rect image.Rectangle, col color.NRGBA, legend string) {
	tw, th := c.TextSize(legend)
	bounds := c.Bounds()

	bgW := tw + 2*legendPad
	bgH := th + 2*legendPad
	if tw == 0 {
		// Text-less canvas: a small class color chip instead.
		bgW = 12
		bgH = 6
	}

	x := rect.Min.X
	if x+bgW > bounds.Max.X {
		x = bounds.Max.X - bgW
	}
	if x < bounds.Min.X {
		x = bounds.Min.X
	}

	y := rect.Min.Y - bgH
	if y < bounds.Min.Y {
		// No room above: flip below the top edge of the box.
		y = rect.Min.Y + r.stroke
	}

	bg := image.Rect(x, y, x+bgW, y+bgH)
	c.FillRect(bg, col)

	if tw > 0 {
		// Baseline sits a couple of pixels above the background bottom to
		// leave room for descenders.
		c.DrawText(image.Pt(x+legendPad, y+bgH-legendPad-2), legend, contrastColor(col))
	}
}

// DrawOverlayText draws informational text lines in the top-left corner,
// each rendered twice (shadow then foreground) for legibility on any
// background.
func (r *Renderer) DrawOverlayText(c Canvas, lines []string) {
	_, th := c.TextSize("M")
	if th == 0 {
		return
	}
	y := th + 8
	for _, line := range lines {
		c.DrawText(image.Pt(11, y+1), line, color.NRGBA{A: 255})
		c.DrawText(image.Pt(10, y), line, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		y += th + 6
	}
}

// contrastColor picks black or white text for legibility against bg,
// based on its relative luminance.
func contrastColor(bg color.NRGBA) color.NRGBA {
	lum := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if lum > 150 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

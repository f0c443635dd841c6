// Package pipeline orchestrates label parsing, coordinate normalization
// and box rendering for one (image, label text) pair.
package pipeline

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/rmarques/bboxview/pkg/label"
	"github.com/rmarques/bboxview/pkg/palette"
	"github.com/rmarques/bboxview/pkg/render"
)

// Options configure a Pipeline.
type Options struct {
	StrokeWidth int            // box outline width; <1 uses render.DefaultStroke
	ShowLegend  bool           // draw the class legend next to each box
	LegendText  bool           // text legends; false selects the text-less canvas
	ClassNames  map[int]string // optional class id -> display name
	OverlayText []string       // informational lines drawn in the top-left corner
}

// DefaultOptions are the options used by New.
func DefaultOptions() Options {
	return Options{
		StrokeWidth: render.DefaultStroke,
		ShowLegend:  true,
		LegendText:  true,
	}
}

// Pipeline annotates images with YOLO label boxes. The palette is the
// only state that outlives a single Annotate call, so a class keeps its
// color across every image of a session.
type Pipeline struct {
	opts     Options
	palette  *palette.Palette
	renderer *render.Renderer
}

// New creates a Pipeline with default options.
func New() *Pipeline {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Pipeline with custom options.
func NewWithOptions(opts Options) *Pipeline {
	return &Pipeline{
		opts:     opts,
		palette:  palette.New(),
		renderer: render.New(opts.StrokeWidth, opts.ShowLegend),
	}
}

// Palette exposes the session color table, e.g. to share it with a
// second pipeline or render a color key.
func (p *Pipeline) Palette() *palette.Palette { return p.palette }

// Annotate renders all boxes described by labelText onto a copy of img.
//
// The input image is never mutated. The returned raster always has the
// same dimensions as the input, even for empty or entirely malformed
// label text. Label problems are returned as warnings, never as errors;
// rendering proceeds with the valid subset.
func (p *Pipeline) Annotate(img image.Image, labelText string) (*image.NRGBA, []label.Warning) {
	out := imaging.Clone(img)
	bounds := out.Bounds()

	set, warnings := label.Parse(labelText)
	boxes, mode := label.Normalize(set, bounds.Dx(), bounds.Dy())

	canvas := p.newCanvas(out)
	for _, b := range boxes {
		col := p.palette.ColorFor(b.Class)
		p.renderer.DrawBox(canvas, b, col, p.legendFor(b.Class, mode))
	}

	if len(p.opts.OverlayText) > 0 {
		p.renderer.DrawOverlayText(canvas, p.opts.OverlayText)
	}

	return out, warnings
}

func (p *Pipeline) newCanvas(img *image.NRGBA) render.Canvas {
	if p.opts.LegendText {
		return render.NewFontCanvas(img)
	}
	return render.NewBlockCanvas(img)
}

// legendFor builds the legend label for a class: its configured name or
// numeric id, suffixed with the detected unit mode.
func (p *Pipeline) legendFor(class int, mode label.Mode) string {
	name, ok := p.opts.ClassNames[class]
	if !ok {
		name = fmt.Sprintf("%d", class)
	}
	if mode == label.ModeNormalized {
		return name + " (norm)"
	}
	return name + " (px)"
}

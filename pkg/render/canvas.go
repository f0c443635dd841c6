package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is the drawing capability the box renderer works against. All
// operations clip to the canvas bounds and act only on the raster the
// canvas wraps; there is no hidden drawing state.
type Canvas interface {
	Bounds() image.Rectangle
	// DrawRect draws a rectangle outline with the given stroke width,
	// growing inwards from the rectangle edges.
	DrawRect(r image.Rectangle, c color.NRGBA, stroke int)
	// FillRect fills a rectangle.
	FillRect(r image.Rectangle, c color.NRGBA)
	// DrawText draws a single line of text with its baseline-left origin
	// at pt. Canvases without a text capability are a no-op.
	DrawText(pt image.Point, text string, c color.NRGBA)
	// TextSize reports the pixel width and height of a line of text, or
	// (0, 0) when the canvas cannot draw text.
	TextSize(text string) (w, h int)
}

// FontCanvas draws on an NRGBA raster and renders text with a built-in
// fixed-size face. This is the default canvas.
type FontCanvas struct {
	img  *image.NRGBA
	face font.Face
}

// NewFontCanvas wraps img in a text-capable canvas.
func NewFontCanvas(img *image.NRGBA) *FontCanvas {
	return &FontCanvas{img: img, face: basicfont.Face7x13}
}

// Bounds returns the raster bounds.
func (fc *FontCanvas) Bounds() image.Rectangle { return fc.img.Bounds() }

// DrawRect draws a rectangle outline.
func (fc *FontCanvas) DrawRect(r image.Rectangle, c color.NRGBA, stroke int) {
	drawRect(fc.img, r, c, stroke)
}

// FillRect fills a rectangle.
func (fc *FontCanvas) FillRect(r image.Rectangle, c color.NRGBA) {
	fillRect(fc.img, r, c)
}

// DrawText draws one line of text at the given baseline origin.
func (fc *FontCanvas) DrawText(pt image.Point, text string, c color.NRGBA) {
	d := font.Drawer{
		Dst:  fc.img,
		Src:  image.NewUniform(c),
		Face: fc.face,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	d.DrawString(text)
}

// TextSize measures one line of text in the canvas face.
func (fc *FontCanvas) TextSize(text string) (w, h int) {
	adv := font.MeasureString(fc.face, text)
	m := fc.face.Metrics()
	return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
}

// BlockCanvas draws on an NRGBA raster without any text capability.
// Legends degrade to a bare color chip. Selected at startup when text
// rendering is unwanted (e.g. thumbnail-sized output).
type BlockCanvas struct {
	img *image.NRGBA
}

// NewBlockCanvas wraps img in a text-less canvas.
func NewBlockCanvas(img *image.NRGBA) *BlockCanvas {
	return &BlockCanvas{img: img}
}

// Bounds returns the raster bounds.
func (bc *BlockCanvas) Bounds() image.Rectangle { return bc.img.Bounds() }

// DrawRect draws a rectangle outline.
func (bc *BlockCanvas) DrawRect(r image.Rectangle, c color.NRGBA, stroke int) {
	drawRect(bc.img, r, c, stroke)
}

// FillRect fills a rectangle.
func (bc *BlockCanvas) FillRect(r image.Rectangle, c color.NRGBA) {
	fillRect(bc.img, r, c)
}

// DrawText is a no-op; BlockCanvas has no font.
func (bc *BlockCanvas) DrawText(pt image.Point, text string, c color.NRGBA) {}

// TextSize reports (0, 0); BlockCanvas has no font.
func (bc *BlockCanvas) TextSize(text string) (w, h int) { return 0, 0 }

func drawRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA, stroke int) {
	if stroke < 1 {
		stroke = 1
	}
	for s := 0; s < stroke; s++ {
		drawHLine(img, r.Min.Y+s, r.Min.X, r.Max.X, c)
		drawHLine(img, r.Max.Y-1-s, r.Min.X, r.Max.X, c)
		drawVLine(img, r.Min.X+s, r.Min.Y, r.Max.Y, c)
		drawVLine(img, r.Max.X-1-s, r.Min.Y, r.Max.Y, c)
	}
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		drawHLine(img, y, r.Min.X, r.Max.X, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= b.Min.X || x0 >= b.Max.X {
		return
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	i := img.PixOffset(x0, y)
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= b.Min.Y || y0 >= b.Max.Y {
		return
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	i := img.PixOffset(x, y0)
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}

// Package palette assigns stable display colors to object classes.
package palette

import (
	"image/color"
	"math"
	"sync"
)

// goldenAngle spreads consecutive class hues around the hue wheel so that
// small class counts stay visually distinct.
const goldenAngle = 137.50776405003785

// Saturation and value used for all generated colors. High enough to keep
// outlines visible on both light and dark images.
const (
	saturation = 0.85
	value      = 0.95
)

// Palette maps class ids to colors for the lifetime of one viewing
// session. Colors are assigned lazily on first lookup and never change
// afterwards. Safe for concurrent use.
type Palette struct {
	mu     sync.Mutex
	colors map[int]color.NRGBA
}

// New creates an empty session palette.
func New() *Palette {
	return &Palette{colors: make(map[int]color.NRGBA)}
}

// ColorFor returns the color assigned to class. The first call for a
// class derives its color from a golden-angle rotation on the hue wheel;
// every later call returns the identical value.
func (p *Palette) ColorFor(class int) color.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.colors[class]; ok {
		return c
	}

	hue := math.Mod(float64(class)*goldenAngle, 360)
	if hue < 0 {
		hue += 360
	}
	c := hsvToNRGBA(hue, saturation, value)
	p.colors[class] = c
	return c
}

// Len reports how many classes have been assigned a color so far.
func (p *Palette) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.colors)
}

// hsvToNRGBA converts hue in degrees [0, 360) with saturation and value
// in [0, 1] to an opaque NRGBA color.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

package label

import "math"

// Mode is the coordinate unit detected for a label set.
type Mode int

const (
	// ModeNormalized means geometry values are fractions of the image
	// dimensions in [0, 1].
	ModeNormalized Mode = iota
	// ModePixel means geometry values are absolute pixel coordinates.
	ModePixel
)

func (m Mode) String() string {
	if m == ModeNormalized {
		return "normalized"
	}
	return "pixel"
}

// Box is a record resolved to absolute pixel corner coordinates, clipped
// to the image bounds. Degenerate boxes (X0 == X1 or Y0 == Y1) are valid
// and must still be rendered as a minimal marker.
type Box struct {
	Class int
	X0    int
	Y0    int
	X1    int
	Y1    int
}

// DetectMode classifies a whole label set as normalized or pixel-space.
//
// The decision is holistic: the set is normalized only if every geometry
// value of every record lies within [0, 1]. A single out-of-range value
// anywhere flips the entire file to pixel-space. A file of pixel boxes
// that all happen to be <= 1 (tiny images) is therefore classified as
// normalized; this matches the behavior of the original viewer and is
// covered by a test rather than silently fixed.
func DetectMode(set Set) Mode {
	for _, r := range set {
		for _, v := range [4]float64{r.CX, r.CY, r.W, r.H} {
			if v < 0 || v > 1 {
				return ModePixel
			}
		}
	}
	return ModeNormalized
}

// Normalize converts every record to a canonical pixel-space Box for an
// image of the given dimensions, and reports the detected unit mode.
// An empty set is valid and yields no boxes.
func Normalize(set Set, width, height int) ([]Box, Mode) {
	mode := DetectMode(set)

	boxes := make([]Box, 0, len(set))
	for _, r := range set {
		cx, cy, w, h := r.CX, r.CY, r.W, r.H
		if mode == ModeNormalized {
			cx *= float64(width)
			cy *= float64(height)
			w *= float64(width)
			h *= float64(height)
		}

		b := Box{
			Class: r.Class,
			X0:    clampInt(int(math.Round(cx-w/2)), 0, width-1),
			Y0:    clampInt(int(math.Round(cy-h/2)), 0, height-1),
			X1:    clampInt(int(math.Round(cx+w/2)), 0, width-1),
			Y1:    clampInt(int(math.Round(cy+h/2)), 0, height-1),
		}
		boxes = append(boxes, b)
	}

	return boxes, mode
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

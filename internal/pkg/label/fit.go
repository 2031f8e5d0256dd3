package label

import (
	"math"

	"golang.org/x/image/font"
)

// SizeRange bounds the font size search of one text element, in points.
type SizeRange struct {
	Max float64
	Min float64
}

// Fit is the outcome of a shrink-to-fit search.
type Fit struct {
	Face     font.Face
	SizePt   float64
	Width    int
	Overflow bool // text is wider than allowed even at the minimum size
}

// FitText picks the largest size in r, stepping down by stepPt, at which text
// is no wider than maxWidth pixels. When nothing fits the minimum size is
// returned with Overflow set; the text is never truncated.
func FitText(f *Font, text string, maxWidth int, r SizeRange, stepPt, dpi float64) (*Fit, error) {
	if stepPt <= 0 {
		stepPt = 0.5
	}

	size := r.Max
	for {
		face, err := f.Face(size, dpi)
		if err != nil {
			return nil, err
		}

		width := font.MeasureString(face, text).Ceil()
		if width <= maxWidth {
			return &Fit{Face: face, SizePt: size, Width: width}, nil
		}
		if size <= r.Min {
			return &Fit{Face: face, SizePt: size, Width: width, Overflow: true}, nil
		}

		_ = face.Close()
		size = math.Max(r.Min, size-stepPt)
	}
}

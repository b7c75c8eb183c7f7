package render

import (
	"math"

	"honnef.co/go/kite"
)

// View maps drawing coordinates, which have y pointing up, onto an image of
// Width by Height pixels with y pointing down. Centre is the drawing point
// placed at the middle of the image and Scale the number of pixels per
// drawing unit.
type View struct {
	Width, Height int
	Centre        kite.Point
	Scale         float64
}

// NewView returns a view of the given size that shows drawing coordinates
// unscaled, with the drawing origin in the middle of the image.
func NewView(width, height int) View {
	return View{Width: width, Height: height, Scale: 1}
}

// FitView returns a view of the given size that shows all of bounds,
// keeping margin pixels free on every side.
func FitView(width, height int, bounds kite.Rect, margin float64) View {
	v := NewView(width, height)
	v.Centre = bounds.Center()
	bw, bh := bounds.Width(), bounds.Height()
	if bw <= 0 && bh <= 0 {
		return v
	}
	sx := (float64(width) - 2*margin) / bw
	sy := (float64(height) - 2*margin) / bh
	v.Scale = math.Min(sx, sy)
	if math.IsInf(v.Scale, 0) || v.Scale <= 0 {
		v.Scale = 1
	}
	return v
}

// Transform returns the affine transformation from drawing coordinates to
// pixel coordinates.
func (v View) Transform() kite.Affine {
	return kite.Translate(kite.Point{}.Sub(v.Centre)).
		ThenScale(v.Scale, -v.Scale).
		ThenTranslate(kite.Vec(float64(v.Width)/2, float64(v.Height)/2))
}

package kite

import "image/color"

// Surface is a turtle-like drawing target with a single pen.
//
// The pen has a position, a colour, a width and a fill colour. BeginFill
// starts recording a fill outline at the current position; every following
// MoveTo and LineTo extends the outline until EndFill fills it with the fill
// colour. Lines drawn while filling are painted above the fill.
//
// Implementations are not safe for concurrent use.
type Surface interface {
	// MoveTo moves the pen to p without drawing.
	MoveTo(p Point)
	// LineTo draws a line from the pen position to p.
	LineTo(p Point)

	PenColour() color.Color
	SetPenColour(c color.Color)
	PenWidth() float64
	SetPenWidth(w float64)
	FillColour() color.Color
	SetFillColour(c color.Color)

	BeginFill()
	EndFill()

	// Dot draws a filled circle of the given diameter at the pen position
	// using the pen colour.
	Dot(diameter float64)
}

// Style controls how a shape is traced.
type Style struct {
	// Colour of the outline. Nil draws black.
	Colour color.Color
	// Width of the outline. Zero keeps the current pen width.
	Width float64
	// Fill, if not nil, fills the traced outline with this colour.
	Fill color.Color
}

func (st Style) colour() color.Color {
	if st.Colour == nil {
		return color.Black
	}
	return st.Colour
}

// trace jumps to pts[start] and draws a line through every point in order.
// Pen colour, width and fill colour are restored afterwards.
func trace(s Surface, pts []Point, start int, st Style) {
	if len(pts) == 0 {
		return
	}
	pen, width := s.PenColour(), s.PenWidth()

	s.SetPenColour(st.colour())
	if st.Width > 0 {
		s.SetPenWidth(st.Width)
	}
	s.MoveTo(pts[start])

	var fill color.Color
	if st.Fill != nil {
		fill = s.FillColour()
		s.SetFillColour(st.Fill)
		s.BeginFill()
	}
	for _, p := range pts {
		s.LineTo(p)
	}
	if st.Fill != nil {
		s.EndFill()
		s.SetFillColour(fill)
	}

	s.SetPenColour(pen)
	s.SetPenWidth(width)
}

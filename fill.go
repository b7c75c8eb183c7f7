package kite

import "image/color"

// ConvexFiller fills convex shapes.
type ConvexFiller interface {
	FillConvex(s Surface, c Convex) error
}

// Filler fills arbitrary shapes.
type Filler interface {
	ConvexFiller
	Fill(s Surface, p Shape) error
}

var (
	_ Filler       = ColourFill{}
	_ ConvexFiller = HorizontalStripeFill{}
	_ ConvexFiller = VerticalStripeFill{}
	_ ConvexFiller = HashFill{}
)

// ColourFill fills the interior of a shape with a solid colour without
// drawing its outline.
type ColourFill struct {
	Colour color.Color
}

func (f ColourFill) Fill(s Surface, p Shape) error {
	pts := p.Vertices()
	if len(pts) == 0 {
		return nil
	}
	prev := s.FillColour()
	s.SetFillColour(f.Colour)
	s.MoveTo(pts[len(pts)-1])
	s.BeginFill()
	for _, v := range pts {
		s.MoveTo(v)
	}
	s.EndFill()
	s.SetFillColour(prev)
	return nil
}

func (f ColourFill) FillConvex(s Surface, c Convex) error {
	return f.Fill(s, c)
}

// StripeStyle configures stripe fills. Stripes are Gap units apart and
// aligned so that one would pass through Origin.
type StripeStyle struct {
	Gap    float64
	Origin float64
	Width  float64
	Colour color.Color
}

func (st StripeStyle) draw(s Surface, c Convex, axis Axis) error {
	lines, err := FillingLines(c, st.Origin, st.Gap, axis)
	if err != nil {
		return err
	}
	style := Style{Colour: st.Colour, Width: st.Width}
	for _, l := range lines {
		l.Draw(s, style)
	}
	return nil
}

// HorizontalStripeFill fills a convex shape with horizontal lines.
type HorizontalStripeFill StripeStyle

func (f HorizontalStripeFill) FillConvex(s Surface, c Convex) error {
	return StripeStyle(f).draw(s, c, AxisY)
}

// VerticalStripeFill fills a convex shape with vertical lines.
type VerticalStripeFill StripeStyle

func (f VerticalStripeFill) FillConvex(s Surface, c Convex) error {
	return StripeStyle(f).draw(s, c, AxisX)
}

// HashFill draws vertical stripes followed by horizontal ones.
type HashFill StripeStyle

func (f HashFill) FillConvex(s Surface, c Convex) error {
	if err := VerticalStripeFill(f).FillConvex(s, c); err != nil {
		return err
	}
	return HorizontalStripeFill(f).FillConvex(s, c)
}

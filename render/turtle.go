package render

import (
	"image/color"

	"honnef.co/go/kite"
)

// backend paints primitives given in drawing coordinates.
type backend interface {
	line(from, to kite.Point, c color.Color, width float64)
	polygon(pts []kite.Point, c color.Color)
	dot(at kite.Point, diameter float64, c color.Color)
}

type segment struct {
	from, to kite.Point
	colour   color.Color
	width    float64
}

// turtle implements the pen state machine of [kite.Surface] on top of a
// backend. While a fill is open, lines are held back and painted after the
// fill so that outlines stay visible.
type turtle struct {
	b       backend
	pos     kite.Point
	pen     color.Color
	fill    color.Color
	width   float64
	filling bool
	outline []kite.Point
	pending []segment
}

func newTurtle(b backend) turtle {
	return turtle{
		b:     b,
		pen:   color.Black,
		fill:  color.Black,
		width: 1,
	}
}

func (t *turtle) MoveTo(p kite.Point) {
	t.pos = p
	if t.filling {
		t.outline = append(t.outline, p)
	}
}

func (t *turtle) LineTo(p kite.Point) {
	if t.filling {
		t.outline = append(t.outline, p)
		t.pending = append(t.pending, segment{t.pos, p, t.pen, t.width})
	} else if p != t.pos {
		t.b.line(t.pos, p, t.pen, t.width)
	}
	t.pos = p
}

func (t *turtle) PenColour() color.Color      { return t.pen }
func (t *turtle) SetPenColour(c color.Color)  { t.pen = c }
func (t *turtle) PenWidth() float64           { return t.width }
func (t *turtle) SetPenWidth(w float64)       { t.width = w }
func (t *turtle) FillColour() color.Color     { return t.fill }
func (t *turtle) SetFillColour(c color.Color) { t.fill = c }

func (t *turtle) BeginFill() {
	t.filling = true
	t.outline = append(t.outline[:0], t.pos)
	t.pending = t.pending[:0]
}

func (t *turtle) EndFill() {
	if !t.filling {
		return
	}
	t.filling = false
	if len(t.outline) >= 3 {
		t.b.polygon(t.outline, t.fill)
	}
	for _, s := range t.pending {
		if s.from != s.to {
			t.b.line(s.from, s.to, s.colour, s.width)
		}
	}
	t.outline = t.outline[:0]
	t.pending = t.pending[:0]
}

func (t *turtle) Dot(diameter float64) {
	t.b.dot(t.pos, diameter, t.pen)
}

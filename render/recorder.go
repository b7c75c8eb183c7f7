package render

import (
	"fmt"
	"image/color"

	"github.com/paulmach/orb"

	"honnef.co/go/kite"
)

// OpKind identifies a recorded surface call.
type OpKind uint8

const (
	OpMove OpKind = iota
	OpLine
	OpPenColour
	OpPenWidth
	OpFillColour
	OpBeginFill
	OpEndFill
	OpDot
)

func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpLine:
		return "line"
	case OpPenColour:
		return "colour"
	case OpPenWidth:
		return "width"
	case OpFillColour:
		return "fill"
	case OpBeginFill:
		return "begin"
	case OpEndFill:
		return "end"
	case OpDot:
		return "dot"
	default:
		return fmt.Sprintf("OpKind(%d)", k)
	}
}

// Op is a single recorded call. P is set for moves and lines, Colour for
// colour changes and Value for widths and dot diameters.
type Op struct {
	Kind   OpKind
	P      kite.Point
	Colour color.Color
	Value  float64
}

func (op Op) String() string {
	switch op.Kind {
	case OpMove, OpLine:
		return fmt.Sprintf("%s %s", op.Kind, op.P)
	case OpPenColour, OpFillColour:
		return fmt.Sprintf("%s %s", op.Kind, hexColour(op.Colour))
	case OpPenWidth, OpDot:
		return fmt.Sprintf("%s %g", op.Kind, op.Value)
	default:
		return op.Kind.String()
	}
}

// Recorder is a [kite.Surface] that records every call. Recordings can be
// inspected, measured and replayed onto another surface, which allows
// sizing an image to fit a drawing before painting it.
type Recorder struct {
	ops   []Op
	pos   kite.Point
	pen   color.Color
	fill  color.Color
	width float64
}

var _ kite.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{pen: color.Black, fill: color.Black, width: 1}
}

func (r *Recorder) MoveTo(p kite.Point) {
	r.pos = p
	r.ops = append(r.ops, Op{Kind: OpMove, P: p})
}

func (r *Recorder) LineTo(p kite.Point) {
	r.pos = p
	r.ops = append(r.ops, Op{Kind: OpLine, P: p})
}

func (r *Recorder) PenColour() color.Color { return r.pen }

func (r *Recorder) SetPenColour(c color.Color) {
	r.pen = c
	r.ops = append(r.ops, Op{Kind: OpPenColour, Colour: c})
}

func (r *Recorder) PenWidth() float64 { return r.width }

func (r *Recorder) SetPenWidth(w float64) {
	r.width = w
	r.ops = append(r.ops, Op{Kind: OpPenWidth, Value: w})
}

func (r *Recorder) FillColour() color.Color { return r.fill }

func (r *Recorder) SetFillColour(c color.Color) {
	r.fill = c
	r.ops = append(r.ops, Op{Kind: OpFillColour, Colour: c})
}

func (r *Recorder) BeginFill() { r.ops = append(r.ops, Op{Kind: OpBeginFill}) }
func (r *Recorder) EndFill()   { r.ops = append(r.ops, Op{Kind: OpEndFill}) }

func (r *Recorder) Dot(diameter float64) {
	r.ops = append(r.ops, Op{Kind: OpDot, P: r.pos, Value: diameter})
}

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing every point the pen
// visited and every dot. It reports false if nothing was recorded.
func (r *Recorder) Bounds() (kite.Rect, bool) {
	var mp orb.MultiPoint
	var dots []orb.Bound
	for _, op := range r.ops {
		switch op.Kind {
		case OpMove, OpLine:
			mp = append(mp, orb.Point{op.P.X, op.P.Y})
		case OpDot:
			c := orb.Point{op.P.X, op.P.Y}
			dots = append(dots, orb.Bound{Min: c, Max: c}.Pad(op.Value/2))
		}
	}
	if len(mp) == 0 && len(dots) == 0 {
		return kite.Rect{}, false
	}
	var b orb.Bound
	if len(mp) > 0 {
		b = mp.Bound()
	} else {
		b, dots = dots[0], dots[1:]
	}
	for _, d := range dots {
		b = b.Union(d)
	}
	return kite.Rect{X0: b.Min[0], Y0: b.Min[1], X1: b.Max[0], Y1: b.Max[1]}, true
}

// Replay issues the recorded calls to s.
func (r *Recorder) Replay(s kite.Surface) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpMove:
			s.MoveTo(op.P)
		case OpLine:
			s.LineTo(op.P)
		case OpPenColour:
			s.SetPenColour(op.Colour)
		case OpPenWidth:
			s.SetPenWidth(op.Value)
		case OpFillColour:
			s.SetFillColour(op.Colour)
		case OpBeginFill:
			s.BeginFill()
		case OpEndFill:
			s.EndFill()
		case OpDot:
			s.Dot(op.Value)
		}
	}
}

// Package pinecone composes kites and curves into pine cone characters.
package pinecone

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"honnef.co/go/kite"
)

// outlineColour is drawn around eyes, mouths and outlined limbs so that
// they stand out against the black body.
var outlineColour color.Color = colornames.White

// A Part is a body part drawn before or after the body of a pine cone.
type Part interface {
	Draw(s kite.Surface) error
}

var (
	_ Part = Eyes{}
	_ Part = Mouth{}
	_ Part = Limb{}
)

// outlinedDot draws a dot in the pen colour with a thin outline.
func outlinedDot(s kite.Surface, at kite.Point, size float64) {
	orig := s.PenColour()
	s.MoveTo(at)
	s.SetPenColour(outlineColour)
	s.Dot(size + 2)
	s.SetPenColour(orig)
	s.Dot(size)
}

// Eyes are two dots of possibly different sizes.
type Eyes struct {
	Left, Right         kite.Point
	LeftSize, RightSize float64
}

func (e Eyes) Draw(s kite.Surface) error {
	outlinedDot(s, e.Left, e.LeftSize)
	outlinedDot(s, e.Right, e.RightSize)
	return nil
}

// MouthKind selects how a [Mouth] is drawn.
type MouthKind uint8

const (
	// A curve from Start to End.
	MouthCurved MouthKind = iota
	// A single dot at Start.
	MouthRound
	// A curve from Start to End closed by a straight line and filled.
	MouthTriangle
)

func (k MouthKind) String() string {
	switch k {
	case MouthCurved:
		return "curved"
	case MouthRound:
		return "round"
	case MouthTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("MouthKind(%d)", k)
	}
}

// Mouth is drawn according to its Kind. Round mouths only use Start and
// Size.
type Mouth struct {
	Kind       MouthKind
	Start, End kite.Point
	OffLine    kite.OffsetFromLine
	Size       float64
	// Outline draws a white border around curved mouths.
	Outline bool
	// Fill colours the inside of triangle mouths. Nil means white.
	Fill color.Color
}

func (m Mouth) Draw(s kite.Surface) error {
	switch m.Kind {
	case MouthCurved:
		return Limb{Start: m.Start, End: m.End, OffLine: m.OffLine, Size: m.Size, Outline: m.Outline}.Draw(s)
	case MouthRound:
		outlinedDot(s, m.Start, m.Size)
		return nil
	case MouthTriangle:
		return m.drawTriangle(s)
	default:
		return fmt.Errorf("mouth kind %s: %w", m.Kind, kite.ErrInvalidArgument)
	}
}

func (m Mouth) drawTriangle(s kite.Surface) error {
	orig := s.PenColour()
	curve, err := kite.NewCurve(m.Start, m.End, &m.OffLine, kite.DefaultCurveSteps)
	if err != nil {
		return fmt.Errorf("drawing mouth: %w", err)
	}
	outline := kite.Style{Colour: outlineColour, Width: m.Size + 2}
	curve.Draw(s, outline)
	kite.Line{P0: m.End, P1: m.Start}.Draw(s, outline)

	poly, err := kite.NewPolygon(curve.Vertices())
	if err != nil {
		return fmt.Errorf("drawing mouth: %w", err)
	}
	fill := m.Fill
	if fill == nil {
		fill = outlineColour
	}
	poly.Draw(s, kite.Style{Colour: orig, Width: m.Size, Fill: fill})
	return nil
}

// Limb is a curved line such as an arm or a leg. With more than one wiggle
// the limb is split into that many curves bending alternately to either
// side.
type Limb struct {
	Start, End kite.Point
	OffLine    kite.OffsetFromLine
	Size       float64
	Outline    bool
	Wiggles    int
}

func (l Limb) Draw(s kite.Surface) error {
	colour := s.PenColour()
	if l.Outline {
		c, err := kite.NewCurve(l.Start, l.End, &l.OffLine, kite.DefaultCurveSteps)
		if err != nil {
			return fmt.Errorf("drawing limb outline: %w", err)
		}
		c.Draw(s, kite.Style{Colour: outlineColour, Width: l.Size + 2})
	}

	n := max(l.Wiggles, 1)
	step := l.End.Sub(l.Start).Mul(1 / float64(n))
	off := l.OffLine
	for i := range n {
		start := l.Start.Translate(step.Mul(float64(i)))
		end := l.Start.Translate(step.Mul(float64(i + 1)))
		if i == n-1 {
			end = l.End
		}
		c, err := kite.NewCurve(start, end, &off, kite.DefaultCurveSteps)
		if err != nil {
			return fmt.Errorf("drawing limb: %w", err)
		}
		c.Draw(s, kite.Style{Colour: colour, Width: l.Size})
		off.Offset = -off.Offset
	}
	return nil
}

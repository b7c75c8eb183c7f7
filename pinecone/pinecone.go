package pinecone

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"honnef.co/go/kite"
)

// Defaults used by [New].
const (
	DefaultOuterLineWidth   = 5
	DefaultHorizontalOffset = 5
	DefaultVerticalOffset   = 5
)

// OuterKite describes the body of a pine cone: an upright curved kite
// rotated by Rotation degrees clockwise about its origin.
type OuterKite struct {
	Dimensions kite.KiteDimensions
	OffLines   []kite.OffsetFromLine
	Rotation   float64
}

// Kite builds the body outline.
func (o OuterKite) Kite() (kite.Kite, error) {
	k, err := kite.CurvedKiteFromDimensions(o.Dimensions, o.OffLines, kite.DefaultFactorySteps)
	if err != nil {
		return kite.Kite{}, fmt.Errorf("outer kite: %w", err)
	}
	return k.Rotate(o.Rotation, o.Dimensions.Origin), nil
}

// PineCone is a black curved kite covered in a staggered grid of smaller
// kites, with body parts drawn underneath and on top.
type PineCone struct {
	Outer OuterKite
	// Inner produces the scales. Its height, width and diagonal
	// intersection must be set; origins are supplied per kite.
	Inner *kite.CurvedKiteFactory

	OuterLineWidth   float64
	HorizontalOffset float64
	VerticalOffset   float64
	InnerFill        bool
	InnerColour      color.Color

	// Initial parts are drawn before the body, Final parts after it.
	Initial []Part
	Final   []Part
}

// New returns a pine cone with the default line width, offsets and white
// filled scales.
func New(outer OuterKite, inner *kite.CurvedKiteFactory) *PineCone {
	return &PineCone{
		Outer:            outer,
		Inner:            inner,
		OuterLineWidth:   DefaultOuterLineWidth,
		HorizontalOffset: DefaultHorizontalOffset,
		VerticalOffset:   DefaultVerticalOffset,
		InnerFill:        true,
		InnerColour:      colornames.White,
	}
}

// Draw draws the pine cone onto s: the initial parts, the filled body, the
// scales, the body outline and finally the final parts.
func (p *PineCone) Draw(s kite.Surface) error {
	nSide, nRows, err := p.grid()
	if err != nil {
		return err
	}

	for _, part := range p.Initial {
		if err := part.Draw(s); err != nil {
			return err
		}
	}

	body, err := p.Outer.Kite()
	if err != nil {
		return err
	}
	body.Draw(s, kite.Style{Colour: color.Black, Fill: color.Black})

	if err := p.drawScales(s, nSide, nRows); err != nil {
		return err
	}

	body.Draw(s, kite.Style{Colour: color.Black, Width: p.OuterLineWidth})

	for _, part := range p.Final {
		if err := part.Draw(s); err != nil {
			return err
		}
	}
	return nil
}

// grid returns the number of scales either side of the centre line and
// the number of rows needed to cover the body.
func (p *PineCone) grid() (nSide, nRows int, err error) {
	if p.Inner == nil {
		return 0, 0, fmt.Errorf("inner kite factory: %w", kite.ErrMissingParameter)
	}
	innerH, innerW, _, err := p.Inner.Dimensions()
	if err != nil {
		return 0, 0, fmt.Errorf("inner kite factory: %w", err)
	}
	outerH, outerW := p.Outer.Dimensions.Height, p.Outer.Dimensions.Width
	nSide = int(math.Floor((outerW/2-innerW/2)/innerW)) + 1
	nRows = int(math.Floor(outerH/innerH)) + 1
	return nSide, nRows, nil
}

func (p *PineCone) drawScales(s kite.Surface, nSide, nRows int) error {
	innerH, innerW, ratio, _ := p.Inner.Dimensions()

	th := p.Outer.Rotation * math.Pi / 180
	vertical := kite.Vec(math.Sin(th), math.Cos(th))
	horizontal := kite.Vec(math.Cos(th), -math.Sin(th))

	style := kite.Style{Colour: p.InnerColour}
	if p.InnerFill {
		style.Fill = p.InnerColour
	}
	draw := func(origin kite.Point) error {
		k, err := p.Inner.KiteAt(origin)
		if err != nil {
			return fmt.Errorf("inner kite: %w", err)
		}
		k.Draw(s, style)
		return nil
	}

	spacing := innerW + p.HorizontalOffset
	for row := range nRows {
		centre := p.Outer.Dimensions.Origin.Translate(vertical.Mul(float64(row) * (innerH + 2*p.VerticalOffset)))
		if err := draw(centre); err != nil {
			return err
		}
		halfUp := centre.Translate(vertical.Mul(p.VerticalOffset + ratio*innerH))
		half := spacing / 2

		for i := range nSide {
			if err := draw(centre.Translate(horizontal.Mul(float64(i+1) * spacing))); err != nil {
				return err
			}
			if err := draw(halfUp.Translate(horizontal.Mul(half + float64(i)*spacing))); err != nil {
				return err
			}
		}
		for i := range nSide {
			if err := draw(centre.Translate(horizontal.Mul(-float64(i+1) * spacing))); err != nil {
				return err
			}
			if err := draw(halfUp.Translate(horizontal.Mul(-(half + float64(i)*spacing)))); err != nil {
				return err
			}
		}
	}
	return nil
}

// KiteCount returns the number of scales Draw places on the body.
func (p *PineCone) KiteCount() (int, error) {
	nSide, nRows, err := p.grid()
	if err != nil {
		return 0, err
	}
	return nRows * (1 + 4*nSide), nil
}

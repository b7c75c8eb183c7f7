package kite

import (
	"fmt"
)

// DefaultFactorySteps is the number of samples per edge used by a
// [CurvedKiteFactory] whose Steps is zero.
const DefaultFactorySteps = 20

// KiteParams overrides the parameters of a [CurvedKiteFactory] for a single
// kite. Nil fields fall back to the factory's values.
type KiteParams struct {
	Origin               *Point
	Height               *float64
	Width                *float64
	DiagonalIntersection *float64
	OffLines             []OffsetFromLine
}

// CurvedKiteFactory produces curved kites that share some or all of their
// parameters. Every kite is rotated by Rotation degrees clockwise about its
// own origin.
type CurvedKiteFactory struct {
	Rotation float64
	Steps    int
	KiteParams
}

// Kite builds a curved kite from the factory's parameters, overridden by
// the non-nil fields of override. A parameter given by neither fails with
// ErrMissingParameter.
func (f *CurvedKiteFactory) Kite(override KiteParams) (Kite, error) {
	p := f.KiteParams
	if override.Origin != nil {
		p.Origin = override.Origin
	}
	if override.Height != nil {
		p.Height = override.Height
	}
	if override.Width != nil {
		p.Width = override.Width
	}
	if override.DiagonalIntersection != nil {
		p.DiagonalIntersection = override.DiagonalIntersection
	}
	if override.OffLines != nil {
		p.OffLines = override.OffLines
	}

	switch {
	case p.Origin == nil:
		return Kite{}, fmt.Errorf("origin: %w", ErrMissingParameter)
	case p.Height == nil:
		return Kite{}, fmt.Errorf("height: %w", ErrMissingParameter)
	case p.Width == nil:
		return Kite{}, fmt.Errorf("width: %w", ErrMissingParameter)
	case p.DiagonalIntersection == nil:
		return Kite{}, fmt.Errorf("diagonal intersection: %w", ErrMissingParameter)
	case p.OffLines == nil:
		return Kite{}, fmt.Errorf("offset lines: %w", ErrMissingParameter)
	}

	steps := f.Steps
	if steps == 0 {
		steps = DefaultFactorySteps
	}
	d := KiteDimensions{
		Origin:               *p.Origin,
		Height:               *p.Height,
		Width:                *p.Width,
		DiagonalIntersection: *p.DiagonalIntersection,
	}
	k, err := CurvedKiteFromDimensions(d, p.OffLines, steps)
	if err != nil {
		return Kite{}, err
	}
	return k.Rotate(f.Rotation, d.Origin), nil
}

// KiteAt builds a kite at origin using only the factory's other parameters.
func (f *CurvedKiteFactory) KiteAt(origin Point) (Kite, error) {
	return f.Kite(KiteParams{Origin: &origin})
}

// Dimensions returns the height, width and diagonal intersection configured
// on the factory.
func (f *CurvedKiteFactory) Dimensions() (height, width, ratio float64, err error) {
	switch {
	case f.Height == nil:
		return 0, 0, 0, fmt.Errorf("height: %w", ErrMissingParameter)
	case f.Width == nil:
		return 0, 0, 0, fmt.Errorf("width: %w", ErrMissingParameter)
	case f.DiagonalIntersection == nil:
		return 0, 0, 0, fmt.Errorf("diagonal intersection: %w", ErrMissingParameter)
	}
	return *f.Height, *f.Width, *f.DiagonalIntersection, nil
}

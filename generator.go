package kite

import (
	"fmt"
)

// KiteDimensions describes an upright kite. Origin is the bottom corner,
// Height the distance to the top corner and Width the distance between the
// side corners. DiagonalIntersection is the height of the side corners as a
// fraction of Height; values outside [0, 1] produce arrowheads.
type KiteDimensions struct {
	Origin               Point
	Height               float64
	Width                float64
	DiagonalIntersection float64
}

// Corners returns the bottom, left, top and right corners.
func (d KiteDimensions) Corners() [4]Point {
	side := d.DiagonalIntersection * d.Height
	return [4]Point{
		d.Origin,
		d.Origin.Translate(Vec(-d.Width/2, side)),
		d.Origin.Translate(Vec(0, d.Height)),
		d.Origin.Translate(Vec(d.Width/2, side)),
	}
}

// A VertexGenerator turns the four corners of a kite into its vertex loop.
// It returns the vertices together with the index of each corner in them.
type VertexGenerator interface {
	Generate(corners [4]Point) ([]Point, [4]int, error)
}

// StraightEdges connects the corners with straight lines.
type StraightEdges struct{}

func (StraightEdges) Generate(corners [4]Point) ([]Point, [4]int, error) {
	return corners[:], [4]int{0, 1, 2, 3}, nil
}

// CurvedEdges replaces every edge with a sampled quadratic Bézier curve.
// OffLines holds one control point placement per edge, in the order
// bottom→left, left→top, top→right and right→bottom. Positive offsets bulge
// outwards.
type CurvedEdges struct {
	OffLines []OffsetFromLine
	// Number of samples per edge, including both corners.
	Steps int
}

func (g CurvedEdges) Generate(corners [4]Point) ([]Point, [4]int, error) {
	if len(g.OffLines) != 4 {
		return nil, [4]int{}, fmt.Errorf("curved kite needs 4 offset lines, got %d: %w", len(g.OffLines), ErrInvalidArgument)
	}
	if g.Steps < 3 {
		return nil, [4]int{}, fmt.Errorf("curved kite needs at least 3 steps per edge, got %d: %w", g.Steps, ErrInvalidArgument)
	}
	// Offsets lie left of each edge, which is outside only for clockwise corners.
	if !(Polygon{vertices: corners[:]}).Clockwise() {
		return nil, [4]int{}, fmt.Errorf("kite corners %v do not run clockwise: %w", corners, ErrInvalidGeometry)
	}

	per := g.Steps - 1
	vertices := make([]Point, 0, 4*per)
	var idx [4]int
	for i := range 4 {
		start, end := corners[i], corners[(i+1)%4]
		q, err := NewQuadBez(start, end, &g.OffLines[i])
		if err != nil {
			return nil, [4]int{}, fmt.Errorf("edge %d: %w", i, err)
		}
		idx[i] = i * per
		// The last sample is the next edge's first.
		vertices = append(vertices, q.Sample(g.Steps)[:per]...)
	}
	return vertices, idx, nil
}

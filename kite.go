package kite

import (
	"fmt"
)

// Kite is a polygon with four distinguished corners: bottom, left, top and
// right, in that order around the outline. A straight kite consists of only
// its corners; a curved kite has sampled curves between them.
type Kite struct {
	Polygon
	corners [4]int
}

// BuildKite builds the kite described by d, using gen to produce the
// vertices between the corners.
func BuildKite(d KiteDimensions, gen VertexGenerator) (Kite, error) {
	vertices, corners, err := gen.Generate(d.Corners())
	if err != nil {
		return Kite{}, err
	}
	p, err := NewPolygon(vertices)
	if err != nil {
		return Kite{}, err
	}
	return Kite{Polygon: p, corners: corners}, nil
}

// NewKite returns the straight kite through the bottom, left, top and right
// corners c.
func NewKite(c [4]Point) (Kite, error) {
	p, err := NewPolygon(c[:])
	if err != nil {
		return Kite{}, err
	}
	return Kite{Polygon: p, corners: [4]int{0, 1, 2, 3}}, nil
}

// NewCurvedKite returns a kite through vertices whose bottom, left, top and
// right corners are at the given indices. More than four vertices are
// required and the indices must increase.
func NewCurvedKite(vertices []Point, corners [4]int) (Kite, error) {
	if len(vertices) <= 4 {
		return Kite{}, fmt.Errorf("curved kite needs more than 4 vertices, got %d: %w", len(vertices), ErrInvalidArgument)
	}
	for i, c := range corners {
		if c < 0 || c >= len(vertices) || (i > 0 && c <= corners[i-1]) {
			return Kite{}, fmt.Errorf("corner indices %v do not fit %d vertices: %w", corners, len(vertices), ErrInvalidArgument)
		}
	}
	p, err := NewPolygon(vertices)
	if err != nil {
		return Kite{}, err
	}
	return Kite{Polygon: p, corners: corners}, nil
}

// KiteFromDimensions returns the straight kite described by d. The result
// need not be convex.
func KiteFromDimensions(d KiteDimensions) Kite {
	k, err := BuildKite(d, StraightEdges{})
	if err != nil {
		// four corners always form a polygon
		panic(err)
	}
	return k
}

// ConvexKiteFromDimensions returns the straight kite described by d,
// failing with ErrNonConvexGeometry if it is not convex.
func ConvexKiteFromDimensions(d KiteDimensions) (ConvexKite, error) {
	return KiteFromDimensions(d).asConvex()
}

// CurvedKiteFromDimensions returns the kite described by d with every edge
// replaced by a quadratic Bézier curve sampled at steps points. offLines
// places the control point of each edge; see [CurvedEdges].
func CurvedKiteFromDimensions(d KiteDimensions, offLines []OffsetFromLine, steps int) (Kite, error) {
	return BuildKite(d, CurvedEdges{OffLines: offLines, Steps: steps})
}

// ConvexCurvedKiteFromDimensions is like [CurvedKiteFromDimensions] but
// fails with ErrNonConvexGeometry if the sampled outline is not convex.
func ConvexCurvedKiteFromDimensions(d KiteDimensions, offLines []OffsetFromLine, steps int) (ConvexKite, error) {
	k, err := CurvedKiteFromDimensions(d, offLines, steps)
	if err != nil {
		return ConvexKite{}, err
	}
	return k.asConvex()
}

// Corners returns the indices of the bottom, left, top and right corners.
func (k Kite) Corners() [4]int { return k.corners }

// Corner returns the i-th corner.
func (k Kite) Corner(i int) Point { return k.vertices[k.corners[i]] }

// Height returns the distance between the bottom and top corners.
func (k Kite) Height() float64 { return k.Corner(0).Distance(k.Corner(2)) }

// Width returns the distance between the left and right corners.
func (k Kite) Width() float64 { return k.Corner(1).Distance(k.Corner(3)) }

// Rotate rotates the kite by angle degrees clockwise about the pivot.
func (k Kite) Rotate(angle float64, about Point) Kite {
	return Kite{Polygon: k.Polygon.Rotate(angle, about), corners: k.corners}
}

func (k Kite) asConvex() (ConvexKite, error) {
	if !k.IsConvex() {
		return ConvexKite{}, fmt.Errorf("kite with height %g and width %g: %w", k.Height(), k.Width(), ErrNonConvexGeometry)
	}
	return ConvexKite{k}, nil
}

// ConvexKite is a kite whose vertices satisfy [IsConvex].
type ConvexKite struct {
	Kite
}

func (ConvexKite) convex() {}

// Rotate rotates the kite and checks that the result is still convex.
func (k ConvexKite) Rotate(angle float64, about Point) (ConvexKite, error) {
	return k.Kite.Rotate(angle, about).asConvex()
}

// Fill fills the kite using f.
func (k ConvexKite) Fill(s Surface, f ConvexFiller) error {
	return f.FillConvex(s, k)
}

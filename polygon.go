package kite

import (
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Polygon is a closed outline through three or more vertices. The last
// vertex connects back to the first.
//
// Polygons are immutable; transformations return new values.
type Polygon struct {
	vertices []Point
}

// NewPolygon returns the polygon through vertices. At least three vertices
// are required.
func NewPolygon(vertices []Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("polygon needs at least 3 vertices, got %d: %w", len(vertices), ErrInvalidArgument)
	}
	return Polygon{vertices: slices.Clone(vertices)}, nil
}

// Vertices returns a copy of the polygon's vertices.
func (p Polygon) Vertices() []Point { return slices.Clone(p.vertices) }

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.vertices) }

// IsConvex reports whether the vertices form a convex polygon.
func (p Polygon) IsConvex() bool { return IsConvex(p.vertices) }

// Rotate rotates every vertex by angle degrees clockwise about the pivot.
func (p Polygon) Rotate(angle float64, about Point) Polygon {
	return Polygon{vertices: rotateAll(p.vertices, angle, about)}
}

func rotateAll(pts []Point, angle float64, about Point) []Point {
	if isFullTurn(angle) {
		return pts
	}
	aff := Rotation(angle, about)
	out := make([]Point, len(pts))
	for i, v := range pts {
		if v == about {
			out[i] = v
		} else {
			out[i] = v.Transform(aff)
		}
	}
	return out
}

// Draw traces the closed outline, starting from the last vertex.
func (p Polygon) Draw(s Surface, st Style) {
	trace(s, p.vertices, len(p.vertices)-1, st)
}

// Fill fills the polygon using f.
func (p Polygon) Fill(s Surface, f Filler) error {
	return f.Fill(s, p)
}

func (p Polygon) BoundingBox() Rect {
	return boundsOf(p.vertices)
}

func (p Polygon) ring() orb.Ring {
	r := make(orb.Ring, 0, len(p.vertices)+1)
	for _, v := range p.vertices {
		r = append(r, orb.Point{v.X, v.Y})
	}
	return append(r, r[0])
}

// Area returns the enclosed area. Self-intersecting outlines count
// oppositely wound regions with opposite signs.
func (p Polygon) Area() float64 {
	return math.Abs(planar.Area(p.ring()))
}

// Clockwise reports whether the vertices run clockwise in a y-up
// coordinate system. Outlines without area run neither way.
func (p Polygon) Clockwise() bool {
	return p.ring().Orientation() == orb.CW
}

// ConvexPolygon is a polygon whose vertices satisfy [IsConvex].
type ConvexPolygon struct {
	Polygon
}

// NewConvexPolygon returns the polygon through vertices, failing with
// ErrNonConvexGeometry if they do not form a convex polygon.
func NewConvexPolygon(vertices []Point) (ConvexPolygon, error) {
	p, err := NewPolygon(vertices)
	if err != nil {
		return ConvexPolygon{}, err
	}
	return asConvex(p)
}

func asConvex(p Polygon) (ConvexPolygon, error) {
	if !p.IsConvex() {
		return ConvexPolygon{}, fmt.Errorf("polygon with %d vertices: %w", p.Len(), ErrNonConvexGeometry)
	}
	return ConvexPolygon{p}, nil
}

func (ConvexPolygon) convex() {}

// Rotate rotates the polygon and checks that the result is still convex.
// Floating point error can make nearly collinear vertices fail the test.
func (p ConvexPolygon) Rotate(angle float64, about Point) (ConvexPolygon, error) {
	return asConvex(p.Polygon.Rotate(angle, about))
}

// Fill fills the polygon using f.
func (p ConvexPolygon) Fill(s Surface, f ConvexFiller) error {
	return f.FillConvex(s, p)
}

package kite

import (
	"fmt"
	"slices"
)

// DefaultCurveSteps is the number of samples per curve used by drawn body
// parts.
const DefaultCurveSteps = 10

// Curve is an open polyline sampled from a quadratic Bézier segment.
type Curve struct {
	vertices []Point
}

var _ Shape = Curve{}

// NewCurve samples steps points of the quadratic Bézier from start to end
// whose control point is placed by off; see [NewQuadBez]. Start and end must
// differ and at least two steps are required.
func NewCurve(start, end Point, off *OffsetFromLine, steps int) (Curve, error) {
	if start == end {
		return Curve{}, fmt.Errorf("curve between coincident points %s: %w", start, ErrInvalidGeometry)
	}
	if steps < 2 {
		return Curve{}, fmt.Errorf("curve needs at least 2 steps, got %d: %w", steps, ErrInvalidArgument)
	}
	q, err := NewQuadBez(start, end, off)
	if err != nil {
		return Curve{}, err
	}
	return Curve{vertices: q.Sample(steps)}, nil
}

// Vertices returns a copy of the curve's points.
func (c Curve) Vertices() []Point { return slices.Clone(c.vertices) }

func (c Curve) Start() Point { return c.vertices[0] }
func (c Curve) End() Point   { return c.vertices[len(c.vertices)-1] }

// Draw jumps to the start of the curve and draws through every sample.
func (c Curve) Draw(s Surface, st Style) {
	trace(s, c.vertices, 0, st)
}

func (c Curve) BoundingBox() Rect {
	return boundsOf(c.vertices)
}

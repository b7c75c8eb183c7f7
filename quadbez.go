package kite

// QuadBez is a quadratic Bézier segment from P0 to P2 with control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// NewQuadBez returns the segment from start to end whose control point is
// placed by off relative to the chord. A nil off uses the chord's midpoint,
// which yields a straight segment.
func NewQuadBez(start, end Point, off *OffsetFromLine) (QuadBez, error) {
	if off == nil {
		return QuadBez{start, start.Midpoint(end), end}, nil
	}
	ctrl, err := off.ToPoint(start, end)
	if err != nil {
		return QuadBez{}, err
	}
	return QuadBez{start, ctrl, end}, nil
}

// Eval evaluates the curve at t. It is the Bernstein form of
//
//	P1 + (1-t)²(P0-P1) + t²(P2-P1)
//
// and returns P0 and P2 exactly at t = 0 and t = 1.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Sample evaluates the curve at steps evenly spaced parameters in [0, 1],
// both ends included. It returns nil if steps is less than 2.
func (q QuadBez) Sample(steps int) []Point {
	if steps < 2 {
		return nil
	}
	out := make([]Point, steps)
	last := float64(steps - 1)
	for i := range steps {
		out[i] = q.Eval(float64(i) / last)
	}
	return out
}

// Extrema returns the parameters in (0, 1) at which the curve has a
// horizontal or vertical tangent, in increasing order.
func (q QuadBez) Extrema() ([2]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [2]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(q.P0, q.P2)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}


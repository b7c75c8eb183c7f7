package kite

import (
	"fmt"
	"math"
)

// Axis selects a coordinate of a point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ExtremeIndices holds the indices of a polygon's extreme vertices along an
// axis.
type ExtremeIndices struct {
	Min, Max int
}

// ExtremeVertices returns the indices of the first vertex with the smallest
// and the first vertex with the largest coordinate along axis. A polygon
// whose vertices all share one coordinate has no extent to fill and returns
// ErrInvalidGeometry.
func ExtremeVertices(vertices []Point, axis Axis) (ExtremeIndices, error) {
	if len(vertices) == 0 {
		return ExtremeIndices{}, fmt.Errorf("no vertices: %w", ErrInvalidArgument)
	}
	var ext ExtremeIndices
	lo, hi := vertices[0].Coord(axis), vertices[0].Coord(axis)
	for i, v := range vertices[1:] {
		c := v.Coord(axis)
		if c < lo {
			lo = c
			ext.Min = i + 1
		}
		if c > hi {
			hi = c
			ext.Max = i + 1
		}
	}
	if ext.Min == ext.Max {
		return ExtremeIndices{}, fmt.Errorf("polygon has no area to fill along %s: %w", axis, ErrInvalidGeometry)
	}
	return ext, nil
}

// StripePositions returns the coordinates strictly between lo and hi that are
// congruent to origin modulo gap, in increasing order.
func StripePositions(origin, gap, lo, hi float64) ([]float64, error) {
	if !(gap > 0) {
		return nil, fmt.Errorf("stripe gap %g must be positive: %w", gap, ErrInvalidArgument)
	}
	start := math.Floor(lo/gap) * gap
	stop := (math.Floor(hi/gap) + 1) * gap
	rem := floorMod(origin, gap)

	var out []float64
	for i := 0; ; i++ {
		x := start + rem + float64(i)*gap
		if x > stop+rem {
			break
		}
		if lo < x && x < hi {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		Logger().Warn("no stripes fit between bounds",
			"lo", lo, "hi", hi, "gap", gap, "origin", origin)
	}
	return out, nil
}

// FillingLines computes the segments that fill the convex polygon c with
// stripes perpendicular to axis, gap units apart and aligned to origin. Each
// line runs from the boundary arc leading from the minimum vertex to the
// maximum vertex, across to the arc leading back.
func FillingLines(c Convex, origin, gap float64, axis Axis) ([]Line, error) {
	return fillingLines(c.Vertices(), origin, gap, axis)
}

func fillingLines(vertices []Point, origin, gap float64, axis Axis) ([]Line, error) {
	ext, err := ExtremeVertices(vertices, axis)
	if err != nil {
		return nil, err
	}
	lo, hi := vertices[ext.Min].Coord(axis), vertices[ext.Max].Coord(axis)
	stripes, err := StripePositions(origin, gap, lo, hi)
	if err != nil {
		return nil, err
	}
	if len(stripes) == 0 {
		return nil, nil
	}

	n := len(vertices)
	hits := make([][]Point, len(stripes))

	// Ascending arc.
	for i := ext.Min; i != ext.Max; i = (i + 1) % n {
		cur, next := vertices[i], vertices[(i+1)%n]
		a, b := cur.Coord(axis), next.Coord(axis)
		for j, v := range stripes {
			if a < v && v <= b {
				p, err := Line{cur, next}.AxisCrossing(axis, v)
				if err != nil {
					return nil, err
				}
				hits[j] = append(hits[j], p)
			}
		}
	}
	// Descending arc.
	for i := ext.Max; i != ext.Min; i = (i + 1) % n {
		cur, next := vertices[i], vertices[(i+1)%n]
		a, b := cur.Coord(axis), next.Coord(axis)
		for j := len(stripes) - 1; j >= 0; j-- {
			v := stripes[j]
			if b < v && v <= a {
				p, err := Line{cur, next}.AxisCrossing(axis, v)
				if err != nil {
					return nil, err
				}
				hits[j] = append(hits[j], p)
			}
		}
	}

	lines := make([]Line, len(stripes))
	for j, h := range hits {
		if len(h) != 2 {
			return nil, fmt.Errorf("stripe %s = %g crosses the outline %d times, want 2: %w",
				axis, stripes[j], len(h), ErrInvariantViolation)
		}
		lines[j] = Line{P0: h[0], P1: h[1]}
	}
	return lines, nil
}

package kite

import (
	"fmt"
)

// OffsetFromLine describes a point relative to a line segment p0→p1: the
// point a Proportion of the way from p0 to p1, moved Offset units
// perpendicular to the segment. Positive offsets lie to the left of the
// direction of travel, which is outside a kite traced clockwise from its
// bottom corner.
//
// Proportions outside [0, 1] extrapolate past the segment.
type OffsetFromLine struct {
	Proportion float64
	Offset     float64
}

// DefaultOffsetFromLine is the midpoint of a segment moved 10 units to the
// left.
var DefaultOffsetFromLine = OffsetFromLine{Proportion: 0.5, Offset: 10}

// ToPoint returns the point described by o for the segment p0→p1.
func (o OffsetFromLine) ToPoint(p0, p1 Point) (Point, error) {
	along := p0.Translate(p1.Sub(p0).Mul(o.Proportion))
	return PerpendicularPoint(p0, along, o.Offset)
}

// PerpendicularPoint returns the point at distance d from p1 along the
// perpendicular to the line through p0 and p1. The direction is the unit
// vector from p1 towards p0 turned a quarter clockwise. Coincident points
// have no perpendicular and return ErrInvalidGeometry.
func PerpendicularPoint(p0, p1 Point, d float64) (Point, error) {
	if p0 == p1 {
		return Point{}, fmt.Errorf("no perpendicular through coincident points %s: %w", p0, ErrInvalidGeometry)
	}
	u := p0.Sub(p1).Normalize()
	return p1.Translate(u.TurnRight().Mul(d)), nil
}

package kite

import (
	"fmt"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Shape = Line{}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Vertices() []Point { return []Point{l.P0, l.P1} }

// Draw draws the segment from P0 to P1.
func (l Line) Draw(s Surface, st Style) {
	trace(s, l.Vertices(), 0, st)
}

// AxisCrossing returns the point of the infinite line through l whose
// coordinate along axis equals value. It fails if the line is perpendicular
// to axis, in which case there is no single crossing.
func (l Line) AxisCrossing(axis Axis, value float64) (Point, error) {
	span := l.P1.Coord(axis) - l.P0.Coord(axis)
	if span == 0 {
		return Point{}, fmt.Errorf("line %s-%s does not cross %s = %g: %w", l.P0, l.P1, axis, value, ErrInvalidGeometry)
	}
	t := (value - l.P0.Coord(axis)) / span
	return l.P0.Lerp(l.P1, t), nil
}

package kite

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(3, 4).Translate(Pt(1, 1).Sub(Pt(0, 0)).Mul(2)), Pt(5, 6))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointRotateAboutItself(t *testing.T) {
	p := Pt(1.5, -2.25)
	if got := p.Rotate(37, p); got != p {
		t.Errorf("got %s, want %s", got, p)
	}
}

func TestPointCoord(t *testing.T) {
	p := Pt(1, 2)
	if p.Coord(AxisX) != 1 || p.Coord(AxisY) != 2 {
		t.Errorf("unexpected coordinates for %s", p)
	}
}

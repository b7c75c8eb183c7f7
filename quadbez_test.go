package kite

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBezEndpoints(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	for _, steps := range []int{2, 3, 10, 57} {
		pts := q.Sample(steps)
		if len(pts) != steps {
			t.Fatalf("got %d samples, want %d", len(pts), steps)
		}
		if pts[0] != q.P0 {
			t.Errorf("first sample %s, want %s", pts[0], q.P0)
		}
		if pts[steps-1] != q.P2 {
			t.Errorf("last sample %s, want %s", pts[steps-1], q.P2)
		}
	}
}

func TestQuadBezSampleTwoSteps(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(40, 40), Pt(10, 0)}
	diff(t, []Point{q.P0, q.P2}, q.Sample(2))
	if q.Sample(1) != nil {
		t.Error("expected nil for a single step")
	}
}

func TestQuadBezEval(t *testing.T) {
	// B(t) = P1 + (1-t)²(P0-P1) + t²(P2-P1)
	q := QuadBez{Pt(-2, 1), Pt(4, 7), Pt(9, -3)}
	for i := range 11 {
		tt := float64(i) / 10
		mt := 1 - tt
		want := q.P1.
			Translate(q.P0.Sub(q.P1).Mul(mt * mt)).
			Translate(q.P2.Sub(q.P1).Mul(tt * tt))
		diff(t, want, q.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestNewQuadBez(t *testing.T) {
	q, err := NewQuadBez(Pt(0, 0), Pt(0, -10), nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, -5), q.P1)

	q, err = NewQuadBez(Pt(0, 0), Pt(0, -10), &DefaultOffsetFromLine)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10, -5), q.P1, cmpopts.EquateApprox(0, 1e-12))
}

func TestQuadBezBoundingBox(t *testing.T) {
	// The control point pulls the curve up to y = 5 at t = 0.5.
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	ex, n := q.Extrema()
	diff(t, 1, n)
	diff(t, 0.5, ex[0])
	diff(t, Rect{0, 0, 10, 5}, q.BoundingBox())

	// Control point inside the hull of the end points adds no extrema.
	q = QuadBez{Pt(0, 0), Pt(2, 2), Pt(4, 4)}
	_, n = q.Extrema()
	diff(t, 0, n)
	diff(t, Rect{0, 0, 4, 4}, q.BoundingBox())
}

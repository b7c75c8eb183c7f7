package kite

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewPolygonTooFew(t *testing.T) {
	if _, err := NewPolygon([]Point{Pt(0, 0), Pt(1, 1)}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestPolygonVerticesIsCopy(t *testing.T) {
	in := slicesOf(square)
	p, err := NewPolygon(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = Pt(-1, -1)
	p.Vertices()[1] = Pt(-1, -1)
	diff(t, square, p.Vertices())
}

func slicesOf(pts []Point) []Point { return append([]Point(nil), pts...) }

func TestPolygonDraw(t *testing.T) {
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(0, 3)})
	if err != nil {
		t.Fatal(err)
	}
	var s testSurface
	p.Draw(&s, Style{Colour: color.White, Width: 2, Fill: color.RGBA{255, 0, 0, 255}})
	want := []string{
		"colour 255 255 255",
		"width 2",
		"move (0, 3)",
		"fill 255 0 0",
		"begin",
		"line (0, 0)",
		"line (4, 0)",
		"line (0, 3)",
		"end",
		"fill 0 0 0",
		"colour 0 0 0",
		"width 1",
	}
	diff(t, want, s.log)
}

func TestPolygonMeasures(t *testing.T) {
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(4, 2), Pt(0, 2)})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Area(); got != 8 {
		t.Errorf("area = %g, want 8", got)
	}
	if p.Clockwise() {
		t.Error("anticlockwise rectangle reported as clockwise")
	}
	diff(t, Rect{0, 0, 4, 2}, p.BoundingBox())

	r, err := NewPolygon([]Point{Pt(0, 0), Pt(0, 2), Pt(4, 2), Pt(4, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if !r.Clockwise() {
		t.Error("clockwise rectangle reported as anticlockwise")
	}
	if got := r.Area(); got != 8 {
		t.Errorf("area = %g, want 8", got)
	}
}

func TestPolygonRotate(t *testing.T) {
	p, err := NewPolygon(square)
	if err != nil {
		t.Fatal(err)
	}
	got := p.Rotate(90, Pt(0, 0)).Vertices()
	want := []Point{Pt(0, 0), Pt(0, -10), Pt(10, -10), Pt(10, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	diff(t, square, p.Rotate(-720, Pt(3, 3)).Vertices())
}

func TestConvexPolygon(t *testing.T) {
	if _, err := NewConvexPolygon([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(5, 2), Pt(0, 10)}); !errors.Is(err, ErrNonConvexGeometry) {
		t.Errorf("got %v, want ErrNonConvexGeometry", err)
	}

	p, err := NewConvexPolygon(square)
	if err != nil {
		t.Fatal(err)
	}
	for _, angle := range []float64{15, 45, 90, 200, -30} {
		r, err := p.Rotate(angle, Pt(5, 5))
		if err != nil {
			t.Fatalf("rotating by %g: %s", angle, err)
		}
		diff(t, p.Area(), r.Area(), cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestColourFill(t *testing.T) {
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(0, 3)})
	if err != nil {
		t.Fatal(err)
	}
	var s testSurface
	if err := p.Fill(&s, ColourFill{Colour: color.White}); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"fill 255 255 255",
		"move (0, 3)",
		"begin",
		"move (0, 0)",
		"move (4, 0)",
		"move (0, 3)",
		"end",
		"fill 0 0 0",
	}
	diff(t, want, s.log)
}

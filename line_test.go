package kite

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineAxisCrossing(t *testing.T) {
	tests := []struct {
		line  Line
		axis  Axis
		value float64
		want  Point
	}{
		{Line{Pt(0, 0), Pt(10, 10)}, AxisY, 5, Pt(5, 5)},
		{Line{Pt(0, 0), Pt(10, 10)}, AxisX, 2, Pt(2, 2)},
		{Line{Pt(0, 0), Pt(-50, 50)}, AxisY, 30, Pt(-30, 30)},
		{Line{Pt(-5, 2), Pt(5, 2)}, AxisX, 1, Pt(1, 2)},
		// Extrapolates beyond the segment.
		{Line{Pt(0, 0), Pt(1, 2)}, AxisY, 4, Pt(2, 4)},
	}
	for _, tt := range tests {
		got, err := tt.line.AxisCrossing(tt.axis, tt.value)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestLineAxisCrossingParallel(t *testing.T) {
	vertical := Line{Pt(3, 0), Pt(3, 10)}
	if _, err := vertical.AxisCrossing(AxisX, 3); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}
	horizontal := Line{Pt(0, 1), Pt(10, 1)}
	if _, err := horizontal.AxisCrossing(AxisY, 4); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}
}

func TestLineDraw(t *testing.T) {
	var s testSurface
	Line{Pt(1, 2), Pt(3, 4)}.Draw(&s, Style{Width: 3})
	diff(t, []string{
		"colour 0 0 0",
		"width 3",
		"move (1, 2)",
		"line (1, 2)",
		"line (3, 4)",
		"colour 0 0 0",
		"width 1",
	}, s.log)
}

package kite

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// testSurface logs every state-changing call made to it.
type testSurface struct {
	log   []string
	pen   color.Color
	fill  color.Color
	width float64
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%d %d %d", r>>8, g>>8, b>>8)
}

func (s *testSurface) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

func (s *testSurface) MoveTo(p Point) { s.logf("move %s", p) }
func (s *testSurface) LineTo(p Point) { s.logf("line %s", p) }

func (s *testSurface) PenColour() color.Color {
	if s.pen == nil {
		return color.Black
	}
	return s.pen
}

func (s *testSurface) SetPenColour(c color.Color) {
	s.pen = c
	s.logf("colour %s", rgb(c))
}

func (s *testSurface) PenWidth() float64 {
	if s.width == 0 {
		return 1
	}
	return s.width
}

func (s *testSurface) SetPenWidth(w float64) {
	s.width = w
	s.logf("width %g", w)
}

func (s *testSurface) FillColour() color.Color {
	if s.fill == nil {
		return color.Black
	}
	return s.fill
}

func (s *testSurface) SetFillColour(c color.Color) {
	s.fill = c
	s.logf("fill %s", rgb(c))
}

func (s *testSurface) BeginFill()           { s.logf("begin") }
func (s *testSurface) EndFill()             { s.logf("end") }
func (s *testSurface) Dot(diameter float64) { s.logf("dot %g", diameter) }

// count returns the number of log entries with the given prefix.
func (s *testSurface) count(prefix string) int {
	n := 0
	for _, l := range s.log {
		if len(l) >= len(prefix) && l[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/tdewolff/minify/v2"
	svgmin "github.com/tdewolff/minify/v2/svg"

	"honnef.co/go/kite"
)

// Precision is the number of significant digits kept in SVG attributes.
const Precision = 4

// SVG is a [kite.Surface] that builds an SVG document. Coordinates are
// rounded to whole pixels of the view.
type SVG struct {
	turtle
	// Minify runs the finished document through an SVG minifier.
	Minify bool

	buf    bytes.Buffer
	canvas *svg.SVG
	view   View
	aff    kite.Affine
	done   bool
}

var _ kite.Surface = (*SVG)(nil)

// NewSVG starts a document described by v with a background rectangle in
// the given colour.
func NewSVG(v View, background color.Color) *SVG {
	s := &SVG{
		Minify: true,
		view:   v,
		aff:    v.Transform(),
	}
	s.turtle = newTurtle(s)
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(v.Width, v.Height)
	s.canvas.Rect(0, 0, v.Width, v.Height, "fill:"+hexColour(background))
	return s
}

func num(f float64) string {
	return string(minify.Number([]byte(strconv.FormatFloat(f, 'f', -1, 64)), Precision))
}

func (s *SVG) px(p kite.Point) (int, int) {
	p = p.Transform(s.aff)
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func paint(prop string, c color.Color) string {
	style := prop + ":" + hexColour(c)
	if a := opacity(c); a < 1 {
		style += ";" + prop + "-opacity:" + num(a)
	}
	return style
}

func (s *SVG) line(from, to kite.Point, c color.Color, width float64) {
	x0, y0 := s.px(from)
	x1, y1 := s.px(to)
	s.canvas.Line(x0, y0, x1, y1,
		paint("stroke", c)+";stroke-linecap:round;stroke-width:"+num(width*s.view.Scale))
}

func (s *SVG) polygon(pts []kite.Point, c color.Color) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = s.px(p)
	}
	s.canvas.Polygon(xs, ys, paint("fill", c))
}

func (s *SVG) dot(at kite.Point, diameter float64, c color.Color) {
	x, y := s.px(at)
	r := int(math.Round(diameter * s.view.Scale / 2))
	s.canvas.Circle(x, y, max(r, 1), paint("fill", c))
}

// Encode finishes the document and writes it to w. No drawing may happen
// afterwards.
func (s *SVG) Encode(w io.Writer) error {
	if !s.done {
		s.canvas.End()
		s.done = true
	}
	kite.Logger().Debug("encoding svg", "bytes", s.buf.Len(), "minify", s.Minify)
	if !s.Minify {
		_, err := w.Write(s.buf.Bytes())
		return err
	}
	m := minify.New()
	m.Add("image/svg+xml", &svgmin.Minifier{Precision: Precision})
	if err := m.Minify("image/svg+xml", w, bytes.NewReader(s.buf.Bytes())); err != nil {
		return fmt.Errorf("minifying svg: %w", err)
	}
	return nil
}

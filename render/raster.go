package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/kite"
)

// Raster is a [kite.Surface] that paints into an image using gg.
//
// Drawing errors are sticky: the first one is kept and returned by Err and
// by the encoding methods.
type Raster struct {
	turtle
	ctx   *gg.Context
	view  View
	aff   kite.Affine
	err   error
	lines int
}

var _ kite.Surface = (*Raster)(nil)

// NewRaster returns a surface painting into an image described by v,
// cleared to background.
func NewRaster(v View, background color.Color) *Raster {
	ctx := gg.NewContext(v.Width, v.Height)
	ctx.ClearWithColor(gg.FromColor(background))
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	r := &Raster{
		ctx:  ctx,
		view: v,
		aff:  v.Transform(),
	}
	r.turtle = newTurtle(r)
	return r
}

func (r *Raster) setErr(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *Raster) px(p kite.Point) (float64, float64) {
	return p.Transform(r.aff).Splat()
}

func (r *Raster) line(from, to kite.Point, c color.Color, width float64) {
	r.ctx.ClearPath()
	r.ctx.SetColor(c)
	r.ctx.SetLineWidth(width * r.view.Scale)
	r.ctx.MoveTo(r.px(from))
	r.ctx.LineTo(r.px(to))
	if err := r.ctx.Stroke(); err != nil {
		r.setErr(fmt.Errorf("stroking line: %w", err))
	}
	r.lines++
}

func (r *Raster) polygon(pts []kite.Point, c color.Color) {
	r.ctx.ClearPath()
	r.ctx.SetColor(c)
	r.ctx.MoveTo(r.px(pts[0]))
	for _, p := range pts[1:] {
		r.ctx.LineTo(r.px(p))
	}
	r.ctx.ClosePath()
	if err := r.ctx.Fill(); err != nil {
		r.setErr(fmt.Errorf("filling polygon: %w", err))
	}
}

func (r *Raster) dot(at kite.Point, diameter float64, c color.Color) {
	r.ctx.ClearPath()
	r.ctx.SetColor(c)
	x, y := r.px(at)
	r.ctx.DrawCircle(x, y, diameter*r.view.Scale/2)
	if err := r.ctx.Fill(); err != nil {
		r.setErr(fmt.Errorf("filling dot: %w", err))
	}
}

// Err returns the first error encountered while drawing.
func (r *Raster) Err() error { return r.err }

// Image returns the painted image.
func (r *Raster) Image() image.Image { return r.ctx.Image() }

// EncodePNG writes the image to w in PNG format.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	kite.Logger().Debug("encoding raster", "width", r.view.Width, "height", r.view.Height, "lines", r.lines)
	return r.ctx.EncodePNG(w)
}

// SavePNG writes the image to the named file in PNG format.
func (r *Raster) SavePNG(path string) error {
	if r.err != nil {
		return r.err
	}
	kite.Logger().Debug("saving raster", "path", path, "width", r.view.Width, "height", r.view.Height)
	return r.ctx.SavePNG(path)
}

// Close releases the resources held by the underlying context.
func (r *Raster) Close() error {
	return r.ctx.Close()
}

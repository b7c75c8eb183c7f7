package pinecone

import (
	"errors"
	"slices"
	"testing"

	"honnef.co/go/kite"
	"honnef.co/go/kite/render"
)

func ptr[T any](v T) *T { return &v }

func smallPineCone() *PineCone {
	outer := OuterKite{
		Dimensions: kite.KiteDimensions{Origin: kite.Pt(0, 0), Height: 100, Width: 60, DiagonalIntersection: 0.5},
		OffLines: []kite.OffsetFromLine{
			{Proportion: 0.5, Offset: 5},
			{Proportion: 0.5, Offset: 5},
			{Proportion: 0.5, Offset: 5},
			{Proportion: 0.5, Offset: 5},
		},
	}
	inner := &kite.CurvedKiteFactory{
		KiteParams: kite.KiteParams{
			Height:               ptr(20.0),
			Width:                ptr(20.0),
			DiagonalIntersection: ptr(0.5),
			OffLines: []kite.OffsetFromLine{
				{Proportion: 0.5, Offset: 1},
				{Proportion: 0.5, Offset: -1},
				{Proportion: 0.5, Offset: -1},
				{Proportion: 0.5, Offset: 1},
			},
		},
	}
	return New(outer, inner)
}

func TestKiteCount(t *testing.T) {
	n, err := smallPineCone().KiteCount()
	if err != nil {
		t.Fatal(err)
	}
	// Two scales either side of the centre line on six rows, each row
	// also carrying a half-offset row.
	diff(t, 6*(1+4*2), n)
}

func TestPineConeDrawOrder(t *testing.T) {
	pc := smallPineCone()
	pc.Initial = []Part{marker(1001)}
	pc.Final = []Part{marker(1002), marker(1003)}

	r := render.NewRecorder()
	if err := pc.Draw(r); err != nil {
		t.Fatal(err)
	}
	ops := opStrings(r)
	diff(t, "dot 1001", ops[0])
	diff(t, []string{"dot 1002", "dot 1003"}, ops[len(ops)-2:])

	n, _ := pc.KiteCount()
	// The body fill plus one fill per scale.
	diff(t, n+1, r.Count(render.OpBeginFill))

	// The body is filled first and outlined last.
	firstBegin := slices.Index(ops, "begin")
	if ops[firstBegin-1] != "fill #000000" {
		t.Errorf("body fill colour: got %q", ops[firstBegin-1])
	}
	lastEnd := -1
	for i, op := range ops {
		if op == "end" {
			lastEnd = i
		}
	}
	outline := slices.Index(ops, "width 5")
	if outline < lastEnd {
		t.Errorf("outline drawn at op %d, before the last fill ends at %d", outline, lastEnd)
	}
}

func TestPineConeUnfilledScales(t *testing.T) {
	pc := smallPineCone()
	pc.InnerFill = false
	r := render.NewRecorder()
	if err := pc.Draw(r); err != nil {
		t.Fatal(err)
	}
	diff(t, 1, r.Count(render.OpBeginFill))
}

func TestPineConeMissingInnerDimensions(t *testing.T) {
	pc := smallPineCone()
	pc.Inner.Width = nil
	if _, err := pc.KiteCount(); !errors.Is(err, kite.ErrMissingParameter) {
		t.Errorf("KiteCount: got %v, want ErrMissingParameter", err)
	}
	if err := pc.Draw(render.NewRecorder()); !errors.Is(err, kite.ErrMissingParameter) {
		t.Errorf("Draw: got %v, want ErrMissingParameter", err)
	}
}

func TestPineConeWithoutInnerFactory(t *testing.T) {
	pc := New(smallPineCone().Outer, nil)
	pc.Initial = []Part{marker(1)}
	if _, err := pc.KiteCount(); !errors.Is(err, kite.ErrMissingParameter) {
		t.Errorf("KiteCount: got %v, want ErrMissingParameter", err)
	}
	r := render.NewRecorder()
	if err := pc.Draw(r); !errors.Is(err, kite.ErrMissingParameter) {
		t.Errorf("Draw: got %v, want ErrMissingParameter", err)
	}
	// Nothing is drawn before the error.
	diff(t, 0, len(opStrings(r)))
}

func TestOuterKiteRotation(t *testing.T) {
	o := smallPineCone().Outer
	o.Rotation = 90
	k, err := o.Kite()
	if err != nil {
		t.Fatal(err)
	}
	// Rotated clockwise about the bottom corner, the top points east.
	diff(t, kite.Pt(0, 0), k.Corner(0))
	top := k.Corner(2)
	if top.X < 99.999 || top.Y > 1e-9 || top.Y < -1e-9 {
		t.Errorf("top corner at %s, want (100, 0)", top)
	}
}

package kite

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func ptr[T any](v T) *T { return &v }

func TestCurvedKiteFactory(t *testing.T) {
	f := &CurvedKiteFactory{
		Rotation: 90,
		KiteParams: KiteParams{
			Height:               ptr(10.0),
			Width:                ptr(6.0),
			DiagonalIntersection: ptr(0.5),
			OffLines:             offsets(1, -1, -1, 1),
		},
	}
	k, err := f.KiteAt(Pt(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := k.Len(), 4*(DefaultFactorySteps-1); got != want {
		t.Errorf("got %d vertices, want %d", got, want)
	}
	// Rotated about its own origin.
	diff(t, Pt(2, 3), k.Corner(0))
	diff(t, Pt(12, 3), k.Corner(2), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 10.0, k.Height(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 6.0, k.Width(), cmpopts.EquateApprox(0, 1e-9))

	k, err = f.Kite(KiteParams{Origin: ptr(Pt(0, 0)), Height: ptr(20.0)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 20.0, k.Height(), cmpopts.EquateApprox(0, 1e-9))
	// The override does not stick.
	if *f.Height != 10 {
		t.Errorf("factory height changed to %g", *f.Height)
	}
}

func TestCurvedKiteFactorySteps(t *testing.T) {
	f := &CurvedKiteFactory{
		Steps: 5,
		KiteParams: KiteParams{
			Origin:               ptr(Pt(0, 0)),
			Height:               ptr(10.0),
			Width:                ptr(6.0),
			DiagonalIntersection: ptr(0.5),
			OffLines:             offsets(1, 1, 1, 1),
		},
	}
	k, err := f.Kite(KiteParams{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [4]int{0, 4, 8, 12}, k.Corners())
}

func TestCurvedKiteFactoryMissing(t *testing.T) {
	full := KiteParams{
		Origin:               ptr(Pt(0, 0)),
		Height:               ptr(10.0),
		Width:                ptr(6.0),
		DiagonalIntersection: ptr(0.5),
		OffLines:             offsets(1, 1, 1, 1),
	}
	drop := []func(p *KiteParams){
		func(p *KiteParams) { p.Origin = nil },
		func(p *KiteParams) { p.Height = nil },
		func(p *KiteParams) { p.Width = nil },
		func(p *KiteParams) { p.DiagonalIntersection = nil },
		func(p *KiteParams) { p.OffLines = nil },
	}
	for i, fn := range drop {
		p := full
		fn(&p)
		f := &CurvedKiteFactory{KiteParams: p}
		if _, err := f.Kite(KiteParams{}); !errors.Is(err, ErrMissingParameter) {
			t.Errorf("case %d: got %v, want ErrMissingParameter", i, err)
		}
		// Supplying the value per kite works.
		if _, err := f.Kite(full); err != nil {
			t.Errorf("case %d: %s", i, err)
		}
	}

	var f CurvedKiteFactory
	if _, _, _, err := f.Dimensions(); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("got %v, want ErrMissingParameter", err)
	}
}

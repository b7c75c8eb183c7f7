package kite_test

import (
	"fmt"

	"honnef.co/go/kite"
)

func ExampleOffsetFromLine_ToPoint() {
	p, err := kite.DefaultOffsetFromLine.ToPoint(kite.Pt(0, 0), kite.Pt(0, -10))
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: (10, -5)
}

func ExampleIsConvex() {
	fmt.Println(kite.IsConvex([]kite.Point{
		kite.Pt(0, 0), kite.Pt(10, 0), kite.Pt(10, 10), kite.Pt(0, 10),
	}))
	fmt.Println(kite.IsConvex([]kite.Point{
		kite.Pt(0, 0), kite.Pt(10, 10), kite.Pt(10, 0), kite.Pt(0, 10),
	}))
	// Output:
	// true
	// false
}

func ExampleCurvedKiteFromDimensions() {
	d := kite.KiteDimensions{
		Origin:               kite.Pt(0, 0),
		Height:               40,
		Width:                20,
		DiagonalIntersection: 0.4,
	}
	off := []kite.OffsetFromLine{{0.5, 2}, {0.5, 2}, {0.5, 2}, {0.5, 2}}
	k, err := kite.CurvedKiteFromDimensions(d, off, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(k.Len(), k.Corners(), k.IsConvex())
	fmt.Println(k.Corner(1), k.Corner(2))
	// Output:
	// 36 [0 9 18 27] true
	// (-10, 16) (0, 40)
}

func ExampleFillingLines() {
	sq, err := kite.NewConvexPolygon([]kite.Point{
		kite.Pt(0, 0), kite.Pt(8, 0), kite.Pt(8, 8), kite.Pt(0, 8),
	})
	if err != nil {
		panic(err)
	}
	lines, err := kite.FillingLines(sq, 0, 4, kite.AxisY)
	if err != nil {
		panic(err)
	}
	for _, l := range lines {
		fmt.Println(l.P0, l.P1)
	}
	// Output: (8, 4) (0, 4)
}

package pinecone

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"honnef.co/go/kite"
)

// Layout of the background grid.
const (
	sceneColumns        = 10
	sceneRows           = 7
	sceneColumnSpacing  = 300
	sceneRowSpacing     = 500
	sceneRotationStep   = 5
	sceneMinHeight      = 300
	sceneMaxHeight      = 350
	sceneMaxCharacterID = 100_000_000
)

var (
	sceneRotationRanges = [sceneRows][2]int{
		{0, 10},
		{-45, -35},
		{0, 10},
		{35, 45},
		{0, 10},
		{-45, -35},
		{0, 10},
	}
	// Direction in which each row's rotation range drifts per column.
	sceneRotationSigns = [sceneRows]int{1, 1, -1, -1, 1, 1, -1}
	// Columns left empty so that the main character can be seen.
	sceneSkip = [sceneRows][]int{
		{},
		{3, 4},
		{2, 3, 4, 5},
		{2, 3, 4},
		{2, 3},
		{},
		{},
	}
)

// DrawScene draws the main character followed by a grid of random pine
// cones. The same seed always produces the same picture.
func DrawScene(s kite.Surface, seed uint64) error {
	hero, err := MainCharacter()
	if err != nil {
		return fmt.Errorf("main character: %w", err)
	}
	if err := hero.Draw(s); err != nil {
		return fmt.Errorf("main character: %w", err)
	}
	return drawBackground(s, seed)
}

func drawBackground(s kite.Surface, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, 0))
	// Bottom row first; each row overlaps the one below it.
	for row := sceneRows - 1; row >= 0; row-- {
		y := float64(-row * sceneRowSpacing)
		start := sceneRotationRanges[row]
		sign := sceneRotationSigns[row]

		for col := range sceneColumns {
			if slices.Contains(sceneSkip[row], col) {
				continue
			}
			x := float64(col) * sceneColumns * sceneColumnSpacing / (sceneColumns - 1)
			drift := sign * col * sceneRotationStep
			characterSeed := uint64(rng.IntN(sceneMaxCharacterID + 1))

			kite.Logger().Debug("placing background character",
				"row", row, "column", col, "x", x, "y", y, "seed", characterSeed)

			f, err := NewRandomFactory(kite.Pt(x, y),
				WithSeed(characterSeed),
				WithHeightRange(sceneMinHeight, sceneMaxHeight),
				WithRotationRange(start[0]+drift, start[1]+drift))
			if err != nil {
				return err
			}
			pc, err := f.Create()
			if err != nil {
				return fmt.Errorf("background character (%d, %d): %w", row, col, err)
			}
			if err := pc.Draw(s); err != nil {
				return fmt.Errorf("background character (%d, %d): %w", row, col, err)
			}
		}
	}
	return nil
}

// MainCharacter returns the large hand-placed pine cone at the front of
// the scene.
func MainCharacter() (*PineCone, error) {
	origin := kite.Pt(1000, -1600)
	const rotation = 10
	at := func(dx, dy float64) kite.Point {
		return origin.Translate(kite.Vec(dx, dy)).Rotate(rotation, origin)
	}

	outer := OuterKite{
		Dimensions: kite.KiteDimensions{
			Origin:               origin,
			Height:               1200,
			Width:                800,
			DiagonalIntersection: 0.45,
		},
		OffLines: []kite.OffsetFromLine{
			{Proportion: 0.5, Offset: 50},
			{Proportion: 0.5, Offset: 10},
			{Proportion: 0.5, Offset: 15},
			{Proportion: 0.5, Offset: 50},
		},
		Rotation: rotation,
	}

	innerH, innerW, innerRatio := 120.0, 240.0, 0.45
	inner := &kite.CurvedKiteFactory{
		Rotation: rotation + 2,
		KiteParams: kite.KiteParams{
			Height:               &innerH,
			Width:                &innerW,
			DiagonalIntersection: &innerRatio,
			OffLines: []kite.OffsetFromLine{
				{Proportion: 0.5, Offset: 12},
				{Proportion: 0.5, Offset: -12},
				{Proportion: 0.5, Offset: -12},
				{Proportion: 0.5, Offset: 12},
			},
		},
	}

	pc := New(outer, inner)
	pc.OuterLineWidth = 20
	pc.HorizontalOffset = 20
	pc.VerticalOffset = 20
	pc.Initial = []Part{
		Limb{Start: at(-80, 80), End: at(-100, -400), OffLine: kite.OffsetFromLine{Proportion: 0.8, Offset: -40}, Size: 32, Outline: true},
		Limb{Start: at(60, 80), End: at(140, -380), OffLine: kite.OffsetFromLine{Proportion: 0.7, Offset: 40}, Size: 32, Outline: true},
	}
	pc.Final = []Part{
		Eyes{Left: at(-80, 920), Right: at(80, 920), LeftSize: 60, RightSize: 100},
		Mouth{
			Kind:    MouthCurved,
			Start:   at(-80, 720),
			End:     at(80, 720),
			OffLine: kite.OffsetFromLine{Proportion: 0.8, Offset: -80},
			Size:    48,
			Outline: true,
		},
		Limb{Start: at(-320, 640), End: at(-360, 720), OffLine: kite.OffsetFromLine{Proportion: 0.8, Offset: -40}, Size: 32},
		Limb{Start: at(360, 640), End: at(380, 720), OffLine: kite.OffsetFromLine{Proportion: 0.7, Offset: 40}, Size: 32},
	}
	return pc, nil
}

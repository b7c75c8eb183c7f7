package pinecone

import (
	"slices"
	"testing"

	"honnef.co/go/kite/render"
)

func TestMainCharacter(t *testing.T) {
	pc, err := MainCharacter()
	if err != nil {
		t.Fatal(err)
	}
	n, err := pc.KiteCount()
	if err != nil {
		t.Fatal(err)
	}
	// Two scales either side on eleven rows.
	diff(t, 11*(1+4*2), n)

	r := render.NewRecorder()
	if err := pc.Draw(r); err != nil {
		t.Fatal(err)
	}
	diff(t, n+1, r.Count(render.OpBeginFill))
	// Two outlined eyes.
	diff(t, 4, r.Count(render.OpDot))

	b, ok := r.Bounds()
	if !ok {
		t.Fatal("nothing drawn")
	}
	if b.Y0 > -1600-350 || b.Y1 < -1600+1100 {
		t.Errorf("bounds %v do not cover the body and legs", b)
	}
}

func TestDrawScene(t *testing.T) {
	if testing.Short() {
		t.Skip("draws the full scene")
	}
	draw := func(seed uint64) []string {
		r := render.NewRecorder()
		if err := DrawScene(r, seed); err != nil {
			t.Fatal(err)
		}
		return opStrings(r)
	}
	a, b := draw(0), draw(0)
	if len(a) != len(b) {
		t.Fatalf("same seed drew %d and %d ops", len(a), len(b))
	}
	diff(t, a, b)

	if slices.Equal(a, draw(1)) {
		t.Error("seeds 0 and 1 drew the same scene")
	}
}

func TestSceneLayout(t *testing.T) {
	var placed int
	for row := range sceneRows {
		placed += sceneColumns - len(sceneSkip[row])
	}
	diff(t, 59, placed)
}

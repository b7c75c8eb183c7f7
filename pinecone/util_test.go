package pinecone

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/kite"
	"honnef.co/go/kite/render"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func opStrings(r *render.Recorder) []string {
	ops := r.Ops()
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

// points returns the positions of the recorded ops of the given kind.
func points(r *render.Recorder, kind render.OpKind) []kite.Point {
	var out []kite.Point
	for _, op := range r.Ops() {
		if op.Kind == kind {
			out = append(out, op.P)
		}
	}
	return out
}

// marker is a body part that leaves a recognisable dot.
type marker float64

func (m marker) Draw(s kite.Surface) error {
	s.Dot(float64(m))
	return nil
}

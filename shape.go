package kite

// Shape is a sequence of vertices that can be traced on a [Surface].
type Shape interface {
	Vertices() []Point
	Draw(s Surface, st Style)
	BoundingBox() Rect
}

// Convex is implemented by the shapes of this package whose vertices are
// known to form a convex polygon. Stripe fills only accept Convex shapes.
type Convex interface {
	Shape
	convex()
}

var (
	_ Shape  = Polygon{}
	_ Shape  = Kite{}
	_ Convex = ConvexPolygon{}
	_ Convex = ConvexKite{}
)

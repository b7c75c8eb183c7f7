// Package kite provides the geometry used to draw procedurally generated
// pine cone characters: kites with straight or curved edges, the polygons
// and curves they are built from, and the fills that decorate them.
//
// # Coordinates and rotation
//
// Points live in a y-up Cartesian plane. Rotation angles are given in
// degrees and positive angles rotate clockwise, see [Point.Rotate] and
// [Rotation]. Rotating by a multiple of 360 degrees leaves points untouched
// rather than accumulating floating point error.
//
// # Shapes
//
// A [Shape] is a sequence of vertices that can be traced on a [Surface].
// The package provides:
//   - [Line]
//   - [Curve], an open polyline sampled from a [QuadBez]
//   - [Polygon] and [ConvexPolygon]
//   - [Kite] and [ConvexKite]
//
// Kites are described by [KiteDimensions] and built by a [VertexGenerator].
// [StraightEdges] connects the four corners directly; [CurvedEdges] replaces
// each edge with a quadratic Bézier whose control point is placed by an
// [OffsetFromLine]. A [CurvedKiteFactory] shares parameters between many
// curved kites.
//
// Convex variants are checked with [IsConvex] when they are constructed and
// when they are rotated. Stripe fills only accept convex shapes, because a
// stripe crosses a convex outline exactly twice.
//
// # Fills
//
// [ColourFill] fills any shape with a solid colour. [HorizontalStripeFill],
// [VerticalStripeFill] and [HashFill] draw evenly spaced lines across a
// convex shape; [FillingLines] computes those lines.
//
// # Surfaces
//
// [Surface] is a turtle-like pen. Drawing never fails half way through a
// shape; surfaces that can fail record the error for later inspection. The
// render sub-package provides surfaces that record, rasterize or produce
// SVG.
package kite

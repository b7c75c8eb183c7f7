package kite

import "errors"

var (
	// ErrInvalidGeometry reports degenerate input geometry, such as coincident
	// points or a polygon without extent along an axis.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNonConvexGeometry is returned by the convex constructors when the
	// vertices do not form a convex polygon.
	ErrNonConvexGeometry = errors.New("vertices do not form a convex polygon")

	// ErrInvariantViolation reports an internal inconsistency. It indicates a
	// bug rather than bad input.
	ErrInvariantViolation = errors.New("geometry invariant violated")

	// ErrMissingParameter is returned by factories when a parameter was set
	// neither on the factory nor on the call.
	ErrMissingParameter = errors.New("parameter not specified")

	// ErrInvalidArgument reports arguments outside their documented range,
	// such as too few vertices or a non-positive stripe gap.
	ErrInvalidArgument = errors.New("invalid argument")
)

package kite

// IsConvex reports whether the closed vertex loop forms a convex polygon.
//
// Walking the loop, the edge directions may change sign exactly twice along
// each axis and the turn between consecutive edges must never change
// orientation. Either winding is accepted, as is any starting vertex.
// Self-intersecting loops are rejected. Fewer than three vertices are never
// convex.
func IsConvex(vertices []Point) bool {
	if len(vertices) < 3 {
		return false
	}

	var (
		wSign float64

		xSign, xFirst, xFlips int
		ySign, yFirst, yFlips int
	)

	curr := vertices[len(vertices)-2]
	next := vertices[len(vertices)-1]
	for _, v := range vertices {
		prev := curr
		curr = next
		next = v

		b := curr.Sub(prev)
		a := next.Sub(curr)

		xSign, xFirst, xFlips = trackSign(a.X, xSign, xFirst, xFlips)
		if xFlips > 2 {
			return false
		}
		ySign, yFirst, yFlips = trackSign(a.Y, ySign, yFirst, yFlips)
		if yFlips > 2 {
			return false
		}

		// Orientation of the pair of edges, both pointing away from curr.
		w := b.Cross(a)
		switch {
		case wSign == 0 && w != 0:
			wSign = w
		case wSign > 0 && w < 0, wSign < 0 && w > 0:
			return false
		}
	}

	// Wraparound between the last and the first edge.
	if xSign != 0 && xFirst != 0 && xSign != xFirst {
		xFlips++
	}
	if ySign != 0 && yFirst != 0 && ySign != yFirst {
		yFlips++
	}
	return xFlips == 2 && yFlips == 2
}

// trackSign updates the running sign of an edge component, recording the
// first nonzero sign and counting changes. Zero components are skipped.
func trackSign(d float64, sign, first, flips int) (int, int, int) {
	var s int
	switch {
	case d > 0:
		s = 1
	case d < 0:
		s = -1
	default:
		return sign, first, flips
	}
	if sign == 0 {
		first = s
	} else if sign != s {
		flips++
	}
	return s, first, flips
}

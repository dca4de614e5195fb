// Package physics provides the one-dimensional band checks used for collisions.
package physics

// WithinBand reports whether y lies strictly inside (center-halfHeight, center+halfHeight).
func WithinBand(y, center, halfHeight float64) bool {
	return y > center-halfHeight && y < center+halfHeight
}

// Beyond reports whether y has moved strictly past limit plus margin.
func Beyond(y, limit, margin float64) bool {
	return y > limit+margin
}

// Overlap reports whether the spans [aTop, aTop+aHeight) and [bTop, bTop+bHeight) intersect.
// The client uses it to skip waves outside the viewport.
func Overlap(aTop, aHeight, bTop, bHeight float64) bool {
	return aTop < bTop+bHeight && bTop < aTop+aHeight
}

package math

// SignedArea returns the signed area of a polygon. Positive for
// counter-clockwise winding, negative for clockwise.
func SignedArea(points []Vec2) float32 {
	var sum float32
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// IsConvex reports whether a polygon is convex. Collinear runs are
// allowed. Polygons with fewer than 3 vertices are not convex.
func IsConvex(points []Vec2) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := range points {
		a := points[i]
		b := points[(i+1)%n]
		c := points[(i+2)%n]

		cross := b.Sub(a).Cross(c.Sub(b))
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// SegmentsIntersect reports whether segments a0-a1 and b0-b1 properly
// cross, i.e. intersect at a single interior point of both. Touching
// at endpoints does not count.
func SegmentsIntersect(a0, a1, b0, b1 Vec2) bool {
	d1 := b1.Sub(b0).Cross(a0.Sub(b0))
	d2 := b1.Sub(b0).Cross(a1.Sub(b0))
	d3 := a1.Sub(a0).Cross(b0.Sub(a0))
	d4 := a1.Sub(a0).Cross(b1.Sub(a0))

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

package delaunay

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// triangle (a, b, c), using the standard 3x3 determinant incircle test
// (e.g. de Berg et al., Computational Geometry). a, b, c must be given in
// counter-clockwise order for the sign convention below to hold; callers
// that can't guarantee orientation should call ccw first and swap if
// needed (see orient).
func inCircumcircle(a, b, c, p Point) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	ad := ax*ax + ay*ay
	bd := bx*bx + by*by
	cd := cx*cx + cy*cy

	det := ax*(by*cd-bd*cy) - ay*(bx*cd-bd*cx) + ad*(bx*cy-by*cx)

	return det > 0
}

// orient returns the signed area of triangle (a, b, c), times 2. Positive
// means counter-clockwise, negative clockwise, zero collinear.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// ccw returns a, b, c reordered so they wind counter-clockwise (or the
// input unchanged if already CCW or collinear).
func ccw(a, b, c Point) (Point, Point, Point) {
	if orient(a, b, c) < 0 {
		return a, c, b
	}

	return a, b, c
}

func sqDist(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy
}

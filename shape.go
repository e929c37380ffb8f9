package touchstrip

import "math"

// edgeEpsilon is the distance within which a point counts as lying on a
// polygon edge.
const edgeEpsilon = 1e-9

// Circle is a probe disc in panel coordinates.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vec2) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Polygon is a closed polygon given by its vertices in order. Either winding
// is accepted and the polygon need not be convex. It must not
// self-intersect.
type Polygon []Vec2

// Contains reports whether p lies inside the polygon. Points on an edge are
// inside.
func (poly Polygon) Contains(p Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if segmentDistSq(p, a, b) <= edgeEpsilon*edgeEpsilon {
			return true
		}
		// Even-odd rule: count crossings of a ray cast toward +X.
		if (b.Y > p.Y) != (a.Y > p.Y) {
			x := b.X + (p.Y-b.Y)*(a.X-b.X)/(a.Y-b.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// IntersectsCircle reports whether the polygon and the closed disc c share
// at least one point.
func (poly Polygon) IntersectsCircle(c Circle) bool {
	if len(poly) < 3 {
		return false
	}
	if poly.Contains(c.Center) {
		return true
	}
	if c.Radius <= 0 {
		return false
	}
	r2 := c.Radius * c.Radius
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		if segmentDistSq(c.Center, poly[j], poly[i]) <= r2 {
			return true
		}
	}
	return false
}

// Bounds returns the polygon's axis-aligned bounding box.
func (poly Polygon) Bounds() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Centroid returns the area centroid of the polygon. Degenerate polygons
// (zero area) fall back to the vertex average.
func (poly Polygon) Centroid() Vec2 {
	var area2, cx, cy float64
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[j], poly[i]
		cross := a.X*b.Y - b.X*a.Y
		area2 += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if math.Abs(area2) < edgeEpsilon {
		var sum Vec2
		for _, p := range poly {
			sum.X += p.X
			sum.Y += p.Y
		}
		if len(poly) == 0 {
			return sum
		}
		return Vec2{sum.X / float64(len(poly)), sum.Y / float64(len(poly))}
	}
	return Vec2{cx / (3 * area2), cy / (3 * area2)}
}

// Scaled returns a copy of the polygon scaled by factor about its centroid.
func (poly Polygon) Scaled(factor float64) Polygon {
	c := poly.Centroid()
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = Vec2{
			X: c.X + (p.X-c.X)*factor,
			Y: c.Y + (p.Y-c.Y)*factor,
		}
	}
	return out
}

// segmentDistSq returns the squared distance from p to the segment ab.
func segmentDistSq(p, a, b Vec2) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	lenSq := abx*abx + aby*aby
	t := 0.0
	if lenSq > 0 {
		t = (apx*abx + apy*aby) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	dx := apx - abx*t
	dy := apy - aby*t
	return dx*dx + dy*dy
}

package geometry

import "math"

// SegmentDist returns the minimum distance between segments a1-a2 and b1-b2.
// Intersecting segments have distance zero.
func SegmentDist(a1, a2, b1, b2 Point) float64 {
	if segmentsIntersect(a1, a2, b1, b2) {
		return 0
	}
	d := pointSegmentDist(a1, b1, b2)
	if v := pointSegmentDist(a2, b1, b2); v < d {
		d = v
	}
	if v := pointSegmentDist(b1, a1, a2); v < d {
		d = v
	}
	if v := pointSegmentDist(b2, a1, a2); v < d {
		d = v
	}
	return d
}

// pointSegmentDist returns the distance from p to the segment a-b.
func pointSegmentDist(p, a, b Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return p.Dist(a)
	}
	t := ap.Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(Point{X: a.X + t*ab.X, Y: a.Y + t*ab.Y})
}

// cross returns the z component of (b-a) × (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// segmentsIntersect reports whether segments a1-a2 and b1-b2 share a point.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(b1, b2, a1)) ||
		(d2 == 0 && onSegment(b1, b2, a2)) ||
		(d3 == 0 && onSegment(a1, a2, b1)) ||
		(d4 == 0 && onSegment(a1, a2, b2))
}

// onSegment reports whether p, known to be collinear with a-b, lies on a-b.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// PolygonGap returns the minimum edge-to-edge distance between two convex
// polygon outlines. Overlapping or touching polygons have gap zero.
func PolygonGap(a, b []Point) float64 {
	if PolygonsOverlap(a, b) {
		return 0
	}
	gap := math.Inf(1)
	for i := range a {
		a1 := a[i]
		a2 := a[(i+1)%len(a)]
		for j := range b {
			b1 := b[j]
			b2 := b[(j+1)%len(b)]
			if d := SegmentDist(a1, a2, b1, b2); d < gap {
				gap = d
			}
		}
	}
	return gap
}

// PolygonsOverlap reports whether two convex polygons share interior area or
// touch, using the separating axis test over both polygons' edge normals.
func PolygonsOverlap(a, b []Point) bool {
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis reports whether any edge normal of poly separates poly
// from other.
func hasSeparatingAxis(poly, other []Point) bool {
	for i := range poly {
		p1 := poly[i]
		p2 := poly[(i+1)%len(poly)]
		axis := Point{X: -(p2.Y - p1.Y), Y: p2.X - p1.X}

		minA, maxA := project(poly, axis)
		minB, maxB := project(other, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

// project returns the min and max of the polygon's vertices projected on axis.
func project(poly []Point, axis Point) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, p := range poly {
		v := p.Dot(axis)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

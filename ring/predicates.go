package ring

import (
	"math"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/segment"
)

// Area2XSigned returns twice the signed area of the polygon described by points, via the
// shoelace formula. Positive for counterclockwise winding, negative for clockwise, and
// zero for fewer than three points or a degenerate (collinear) ring.
func Area2XSigned(points []point.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += p1.X()*p2.Y() - p2.X()*p1.Y()
	}
	return area
}

// Area returns the unsigned area enclosed by the ring.
func (r Ring) Area() float64 {
	return math.Abs(Area2XSigned(r.points)) / 2
}

// SignedArea returns the signed area enclosed by the ring: positive for counterclockwise
// winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	return Area2XSigned(r.points) / 2
}

// IsClockwise reports whether the ring's vertices wind clockwise.
func (r Ring) IsClockwise() bool {
	return Area2XSigned(r.points) < 0
}

// Centroid returns the area-weighted centroid of the ring.
func (r Ring) Centroid() point.Point {
	n := len(r.points)
	var cx, cy, area float64
	for i := 0; i < n; i++ {
		p1, p2 := r.points[i], r.points[(i+1)%n]
		cross := p1.X()*p2.Y() - p2.X()*p1.Y()
		area += cross
		cx += (p1.X() + p2.X()) * cross
		cy += (p1.Y() + p2.Y()) * cross
	}
	area /= 2
	if area == 0 {
		return r.points[0]
	}
	return point.New(cx/(6*area), cy/(6*area))
}

// Area returns the unsigned area of the polygon, excluding holes.
func (p Polygon) Area() float64 {
	area := p.exterior.Area()
	for _, h := range p.holes {
		area -= h.Area()
	}
	return area
}

// Simplify removes vertices that are collinear with both neighbors, within the tolerance
// supplied via [options.WithEpsilon]. Collapsing these redundant vertices shrinks the
// woven lists the clipping engine builds without changing the boundary's shape.
func (r Ring) Simplify(opts ...options.GeometryOptionsFunc) Ring {
	n := len(r.points)
	if n < 4 {
		return r
	}

	keep := make([]point.Point, 0, n)
	for i := 0; i < n; i++ {
		prev := r.points[(i-1+n)%n]
		curr := r.points[i]
		next := r.points[(i+1)%n]
		if point.Orientation(prev, curr, next, opts...) != point.Collinear {
			keep = append(keep, curr)
		}
	}
	if len(keep) < 3 {
		return r
	}
	return Ring{points: keep}
}

// Equals reports whether two rings describe the same boundary, allowing for a different
// starting vertex or a reversed winding direction.
func (r Ring) Equals(other Ring, opts ...options.GeometryOptionsFunc) bool {
	if r.Len() != other.Len() {
		return false
	}
	return hasRotation(r.points, other.points, opts...) || hasRotation(r.points, other.Reversed().points, opts...)
}

func hasRotation(a, b []point.Point, opts ...options.GeometryOptionsFunc) bool {
	n := len(a)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if !a[i].Eq(b[(i+shift)%n], opts...) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// containsRing reports whether every vertex of other lies within or on r. Used by the
// set predicates below.
func (r Ring) containsRing(other Ring, opts ...options.GeometryOptionsFunc) bool {
	for _, v := range other.Vertices() {
		if PointInRing(v, r, opts...) == Out {
			return false
		}
	}
	return true
}

// edgesIntersect reports whether any edge of r properly crosses any edge of other: the two
// edges meet at a single point that is an endpoint of neither. Edges that only touch at a
// vertex, or that run along each other, are not counted.
func edgesIntersect(r, other Ring, opts ...options.GeometryOptionsFunc) bool {
	for _, e1 := range r.Edges() {
		for _, e2 := range other.Edges() {
			result := e1.Intersection(e2, opts...)
			if result.Type != segment.IntersectionPoint {
				continue
			}
			u1, l1 := e1.Points()
			u2, l2 := e2.Points()
			if result.Point.Eq(u1, opts...) || result.Point.Eq(l1, opts...) ||
				result.Point.Eq(u2, opts...) || result.Point.Eq(l2, opts...) {
				continue
			}
			return true
		}
	}
	return false
}

// Within reports whether r lies entirely within other (every vertex of r is in or on
// other, and no edge of r crosses out of other).
func (r Ring) Within(other Ring, opts ...options.GeometryOptionsFunc) bool {
	return other.containsRing(r, opts...) && !edgesIntersect(r, other, opts...)
}

// Covers reports whether other lies entirely within or on r.
func (r Ring) Covers(other Ring, opts ...options.GeometryOptionsFunc) bool {
	return r.containsRing(other, opts...)
}

// Disjoint reports whether r and other share no points at all.
func (r Ring) Disjoint(other Ring, opts ...options.GeometryOptionsFunc) bool {
	for _, e1 := range r.Edges() {
		for _, e2 := range other.Edges() {
			if e1.Intersection(e2, opts...).Type != segment.IntersectionNone {
				return false
			}
		}
	}
	if PointInRing(r.At(0), other, opts...) != Out {
		return false
	}
	if PointInRing(other.At(0), r, opts...) != Out {
		return false
	}
	return true
}

// Touches reports whether r and other share at least one boundary point but neither's
// interior intersects the other.
func (r Ring) Touches(other Ring, opts ...options.GeometryOptionsFunc) bool {
	sharesBoundaryPoint := false
	for _, e1 := range r.Edges() {
		for _, e2 := range other.Edges() {
			result := e1.Intersection(e2, opts...)
			switch result.Type {
			case segment.IntersectionPoint:
				sharesBoundaryPoint = true
			case segment.IntersectionOverlappingSegment:
				sharesBoundaryPoint = true
			}
		}
	}
	if !sharesBoundaryPoint {
		return false
	}
	return PointInRing(r.At(0), other, opts...) != In && PointInRing(other.At(0), r, opts...) != In
}

// Crosses reports whether r and other's boundaries properly intersect (not merely touch)
// while neither contains the other.
func (r Ring) Crosses(other Ring, opts ...options.GeometryOptionsFunc) bool {
	if !edgesIntersect(r, other, opts...) {
		return false
	}
	return !r.containsRing(other, opts...) && !other.containsRing(r, opts...)
}

// Overlaps reports whether r and other share interior area without either fully
// containing the other.
func (r Ring) Overlaps(other Ring, opts ...options.GeometryOptionsFunc) bool {
	if r.Within(other, opts...) || other.Within(r, opts...) {
		return false
	}
	for _, v := range r.Vertices() {
		if PointInRing(v, other, opts...) == In {
			return true
		}
	}
	for _, v := range other.Vertices() {
		if PointInRing(v, r, opts...) == In {
			return true
		}
	}
	return edgesIntersect(r, other, opts...)
}

// IntersectionPoints returns every point where an edge of r meets an edge of other,
// deduplicated so an intersection sitting exactly on a shared vertex of both closed rings
// is reported once rather than once per incident edge pair.
func IntersectionPoints(r, other Ring, opts ...options.GeometryOptionsFunc) []point.Point {
	var points []point.Point
	for _, e1 := range r.Edges() {
		for _, e2 := range other.Edges() {
			result := e1.Intersection(e2, opts...)
			if result.Type != segment.IntersectionPoint {
				continue
			}
			duplicate := false
			for _, p := range points {
				if p.Eq(result.Point, opts...) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				points = append(points, result.Point)
			}
		}
	}
	return points
}

// Barycentric returns the barycentric coordinates (u, v, w) of p with respect to the
// triangle (a, b, c), such that p = u*a + v*b + w*c and u+v+w = 1. Used for interpolating
// values across a triangulated ring.
func Barycentric(p, a, b, c point.Point) (u, v, w float64) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.DotProduct(v0)
	d01 := v0.DotProduct(v1)
	d11 := v1.DotProduct(v1)
	d20 := v2.DotProduct(v0)
	d21 := v2.DotProduct(v1)

	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

package segment

import (
	"math"

	"github.com/cortinico/polyclip2d/numeric"
	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
)

// Crossing is the unclipped result of [Intersect]: the point where two lines meet (if
// the lines are not parallel) together with the parametric fractions locating that
// point along each input line.
type Crossing struct {
	// Point is the meeting point of the two lines. Valid only when HasPoint is true.
	Point point.Point

	// HasPoint is true when the lines are not parallel.
	HasPoint bool

	// Alpha is the fraction along (a1,a2) at which the lines meet: a1 + Alpha*(a2-a1).
	// Beta is the analogous fraction along (b1,b2). Valid only when HasFracs is true.
	Alpha, Beta float64
	HasFracs    bool

	// Collinear is true when both segments lie on the same infinite line. When
	// Collinear is true, HasPoint is false and Alpha/Beta locate b1 and b2 (respectively)
	// along the direction of (a1,a2), which the caller uses to test for overlap.
	Collinear bool
}

// Intersect computes where the infinite lines through (a1,a2) and (b1,b2) meet.
//
// This is the unclipped primitive: it does not check whether the resulting fractions
// fall within [0,1], leaving that decision to the caller. Three outcomes are possible:
//
//   - Non-parallel lines: HasPoint and HasFracs are both true, giving the meeting point
//     and the fraction along each line at which it occurs.
//   - Parallel, non-collinear lines: HasPoint, HasFracs, and Collinear are all false.
//   - Collinear lines: HasPoint is false, Collinear and HasFracs are true, and Alpha/Beta
//     locate b1 and b2 along the direction of (a1,a2) (not necessarily in [0,1] order).
//
// No epsilon tolerance is applied; the cross product that detects parallel lines is
// compared against zero exactly, since any tolerance here would have to be re-derived
// by every caller for their own notion of "close enough".
func Intersect(a1, a2, b1, b2 point.Point) Crossing {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.CrossProduct(s)
	qp := b1.Sub(a1)

	if denom == 0 {
		if qp.CrossProduct(r) != 0 {
			// Parallel, not collinear.
			return Crossing{}
		}

		rr := r.DotProduct(r)
		if rr == 0 {
			// a1 == a2: a degenerate segment has no well-defined direction to project onto.
			return Crossing{}
		}

		t0 := qp.DotProduct(r) / rr
		t1 := t0 + s.DotProduct(r)/rr
		return Crossing{Collinear: true, HasFracs: true, Alpha: t0, Beta: t1}
	}

	alpha := qp.CrossProduct(s) / denom
	beta := qp.CrossProduct(r) / denom
	p := a1.Add(r.Scale(point.Origin, alpha))

	return Crossing{Point: p, HasPoint: true, Alpha: alpha, Beta: beta, HasFracs: true}
}

// IntersectionType classifies the outcome of a bounded segment/segment intersection test.
type IntersectionType uint8

const (
	// IntersectionNone indicates that the segments do not meet within their bounds.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint indicates the segments cross or touch at a single point.
	IntersectionPoint

	// IntersectionOverlappingSegment indicates the segments are collinear and overlap
	// along a shared sub-segment.
	IntersectionOverlappingSegment
)

// String returns a human-readable name for the IntersectionType.
func (t IntersectionType) String() string {
	switch t {
	case IntersectionNone:
		return "IntersectionNone"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionOverlappingSegment:
		return "IntersectionOverlappingSegment"
	default:
		return "IntersectionUnknown"
	}
}

// IntersectionResult reports how two bounded line segments relate.
type IntersectionResult struct {
	Type IntersectionType

	// Point is set when Type == IntersectionPoint.
	Point point.Point

	// Overlap is set when Type == IntersectionOverlappingSegment.
	Overlap LineSegment
}

// Intersection computes the bounded intersection of l and other, clipping the result
// of [Intersect] to both segments' parameter ranges [0,1].
func (l LineSegment) Intersection(other LineSegment, opts ...options.GeometryOptionsFunc) IntersectionResult {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	c := Intersect(l.upper, l.lower, other.upper, other.lower)

	if c.Collinear {
		t0, t1 := c.Alpha, c.Beta
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		overlapStart := math.Max(0, t0)
		overlapEnd := math.Min(1, t1)
		if overlapStart > overlapEnd {
			return IntersectionResult{Type: IntersectionNone}
		}

		dir := l.lower.Sub(l.upper)
		start := point.New(
			numeric.SnapToEpsilon(l.upper.X()+overlapStart*dir.X(), geoOpts.Epsilon),
			numeric.SnapToEpsilon(l.upper.Y()+overlapStart*dir.Y(), geoOpts.Epsilon),
		)
		end := point.New(
			numeric.SnapToEpsilon(l.upper.X()+overlapEnd*dir.X(), geoOpts.Epsilon),
			numeric.SnapToEpsilon(l.upper.Y()+overlapEnd*dir.Y(), geoOpts.Epsilon),
		)
		return IntersectionResult{Type: IntersectionOverlappingSegment, Overlap: NewFromPoints(start, end)}
	}

	if !c.HasPoint {
		return IntersectionResult{Type: IntersectionNone}
	}

	if c.Alpha < 0 || c.Alpha > 1 || c.Beta < 0 || c.Beta > 1 {
		return IntersectionResult{Type: IntersectionNone}
	}

	snapped := point.New(
		numeric.SnapToEpsilon(c.Point.X(), geoOpts.Epsilon),
		numeric.SnapToEpsilon(c.Point.Y(), geoOpts.Epsilon),
	)
	return IntersectionResult{Type: IntersectionPoint, Point: snapped}
}

// Intersects reports whether l and other meet anywhere within their bounds, using the
// orientation-based straddle test rather than computing the exact intersection point.
func (l LineSegment) Intersects(other LineSegment) bool {
	a, b := l.upper, l.lower
	c, d := other.upper, other.lower

	o1 := point.Orientation(a, b, c)
	o2 := point.Orientation(a, b, d)
	o3 := point.Orientation(c, d, a)
	o4 := point.Orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == point.Collinear && l.ContainsPoint(c) {
		return true
	}
	if o2 == point.Collinear && l.ContainsPoint(d) {
		return true
	}
	if o3 == point.Collinear && other.ContainsPoint(a) {
		return true
	}
	if o4 == point.Collinear && other.ContainsPoint(b) {
		return true
	}

	return false
}

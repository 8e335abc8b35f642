// Package segment provides operations on directed line segments in a 2D plane:
// construction, transforms, containment and distance queries, and the
// intersection primitives that the ring and clip packages build on.
//
// # Overview
//
// [LineSegment] stores its two endpoints normalized so the "upper" point
// (greatest Y, then least X on ties) always comes first. This mirrors the
// convention used throughout the rest of the module for ordering segments
// during a plane sweep.
//
// # Intersection detection
//
// Two algorithms are offered for finding every intersection in a batch of
// segments:
//   - [FindIntersectionsSlow]: a naive O(n^2) comparison of every pair, useful
//     as a correctness oracle and for small inputs.
//   - [FindIntersectionsFast]: a sweep-line algorithm over an ordered event
//     queue and status structure.
package segment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
)

// LineSegment represents a finite straight segment between two endpoints.
type LineSegment struct {
	upper point.Point
	lower point.Point
}

// New creates a LineSegment from the given coordinate pairs.
func New(x1, y1, x2, y2 float64) LineSegment {
	return NewFromPoints(point.New(x1, y1), point.New(x2, y2))
}

// NewFromPoints creates a LineSegment from two endpoints, normalizing their order so
// the point with the greater Y coordinate (or, on a tie, the lesser X) is the upper point.
func NewFromPoints(p1, p2 point.Point) LineSegment {
	if p2.Y() > p1.Y() || (p2.Y() == p1.Y() && p2.X() < p1.X()) {
		p1, p2 = p2, p1
	}
	return LineSegment{upper: p1, lower: p2}
}

// Upper returns the endpoint with the greater Y coordinate (or lesser X on a tie).
func (l LineSegment) Upper() point.Point { return l.upper }

// Lower returns the other endpoint.
func (l LineSegment) Lower() point.Point { return l.lower }

// Points returns both endpoints in normalized (upper, lower) order.
func (l LineSegment) Points() (upper, lower point.Point) { return l.upper, l.lower }

// Length returns the Euclidean length of the segment.
func (l LineSegment) Length() float64 { return l.upper.DistanceToPoint(l.lower) }

// Center returns the midpoint of the segment.
func (l LineSegment) Center() point.Point {
	return point.New((l.upper.X()+l.lower.X())/2, (l.upper.Y()+l.lower.Y())/2)
}

// Slope returns dy/dx for the segment, or math.NaN() if the segment is vertical.
func (l LineSegment) Slope() float64 {
	dx := l.lower.X() - l.upper.X()
	if dx == 0 {
		return math.NaN()
	}
	return (l.lower.Y() - l.upper.Y()) / dx
}

// Eq reports whether two segments have the same endpoints, regardless of which
// endpoint was supplied as the start or end when each was constructed.
func (l LineSegment) Eq(other LineSegment, opts ...options.GeometryOptionsFunc) bool {
	return l.upper.Eq(other.upper, opts...) && l.lower.Eq(other.lower, opts...)
}

// Translate moves both endpoints of the segment by delta.
func (l LineSegment) Translate(delta point.Point) LineSegment {
	return NewFromPoints(l.upper.Translate(delta), l.lower.Translate(delta))
}

// Rotate rotates the segment around pivot by radians counterclockwise.
func (l LineSegment) Rotate(pivot point.Point, radians float64) LineSegment {
	return NewFromPoints(l.upper.Rotate(pivot, radians), l.lower.Rotate(pivot, radians))
}

// Scale scales both endpoints of the segment relative to ref by factor.
func (l LineSegment) Scale(ref point.Point, factor float64) LineSegment {
	return NewFromPoints(l.upper.Scale(ref, factor), l.lower.Scale(ref, factor))
}

// ProjectPoint returns the closest point on the segment to p, clamping to the
// endpoints when the perpendicular projection falls outside the segment.
func (l LineSegment) ProjectPoint(p point.Point) point.Point {
	ab := l.upper.Sub(l.lower)
	ap := p.Sub(l.lower)

	abDotAB := ab.DotProduct(ab)
	if abDotAB == 0 {
		return l.lower
	}

	t := math.Max(0, math.Min(1, ap.DotProduct(ab)/abDotAB))
	return l.lower.Add(ab.Scale(point.Origin, t))
}

// DistanceToPoint returns the shortest distance from p to the segment.
func (l LineSegment) DistanceToPoint(p point.Point) float64 {
	return p.DistanceToPoint(l.ProjectPoint(p))
}

// ContainsPoint reports whether p lies on the segment, within the tolerance
// supplied via [options.WithEpsilon].
func (l LineSegment) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	ap := p.Sub(l.upper)
	ab := l.lower.Sub(l.upper)
	segmentLength := ab.DistanceToPoint(point.Origin)
	adaptiveEpsilon := geoOpts.Epsilon * segmentLength

	if math.Abs(ap.CrossProduct(ab)) > adaptiveEpsilon {
		return false
	}

	xMin, xMax := math.Min(l.upper.X(), l.lower.X()), math.Max(l.upper.X(), l.lower.X())
	yMin, yMax := math.Min(l.upper.Y(), l.lower.Y()), math.Max(l.upper.Y(), l.lower.Y())

	return p.X() >= xMin-adaptiveEpsilon && p.X() <= xMax+adaptiveEpsilon &&
		p.Y() >= yMin-adaptiveEpsilon && p.Y() <= yMax+adaptiveEpsilon
}

// XAtY returns the x-coordinate on the segment at the given y-coordinate, or math.NaN()
// if the segment is horizontal or y falls outside the segment's y-range.
func (l LineSegment) XAtY(y float64) float64 {
	a, b := l.upper, l.lower
	if (y < a.Y() && y < b.Y()) || (y > a.Y() && y > b.Y()) {
		return math.NaN()
	}
	if a.X() == b.X() {
		return a.X()
	}
	return a.X() + (y-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
}

// YAtX returns the y-coordinate on the segment at the given x-coordinate, or math.NaN()
// if the segment is vertical or x falls outside the segment's x-range.
func (l LineSegment) YAtX(x float64) float64 {
	a, b := l.upper, l.lower
	if (x < a.X() && x < b.X()) || (x > a.X() && x > b.X()) {
		return math.NaN()
	}
	if a.Y() == b.Y() {
		return a.Y()
	}
	return a.Y() + (x-a.X())*(b.Y()-a.Y())/(b.X()-a.X())
}

// String returns "(x1,y1)(x2,y2)" using the normalized upper/lower order.
func (l LineSegment) String() string {
	return fmt.Sprintf("(%s)(%s)", l.upper.String(), l.lower.String())
}

// MarshalJSON serializes the segment as its upper and lower endpoints.
func (l LineSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Upper point.Point `json:"upper"`
		Lower point.Point `json:"lower"`
	}{Upper: l.upper, Lower: l.lower})
}

// UnmarshalJSON deserializes a segment written by MarshalJSON.
func (l *LineSegment) UnmarshalJSON(data []byte) error {
	var temp struct {
		Upper point.Point `json:"upper"`
		Lower point.Point `json:"lower"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.upper = temp.Upper
	l.lower = temp.Lower
	return nil
}

// Package ring implements the geometry-accessor contract the clip package depends on
// (exterior/holes/points/x/y) as concrete [Ring] and [Polygon] types, together with the
// point-in-ring oracle and the collection of predicates (within, disjoint, covers,
// overlaps, touches, crosses, equals) that sit alongside the clipping engine but do not
// belong to its hard inner loop.
//
// # Overview
//
// A [Ring] stores its vertices without a repeated closing point; [Ring.Points] appends
// the closing point when the caller needs the explicit closed form. A [Polygon] pairs one
// exterior [Ring] with zero or more hole [Ring]s, each assumed interior-disjoint from the
// others and wholly contained in the exterior.
package ring

import (
	"fmt"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/segment"
)

// Ring is a finite sequence of points describing the boundary of a simply-connected
// planar region. The stored sequence does not repeat the closing point; [Points] returns
// it with the closing point appended, matching the geometry-accessor contract's
// "first = last" convention.
type Ring struct {
	points []point.Point
}

// NewRing builds a Ring from its vertices in order. The slice must not repeat the closing
// point; it is appended automatically wherever the closed form is needed.
//
// NewRing rejects fewer than three distinct vertices and a ring whose signed area is zero,
// since the clipping algorithm depends on both every input ring having interior.
func NewRing(points []point.Point, opts ...options.GeometryOptionsFunc) (Ring, error) {
	distinct := dedupeConsecutive(points, opts...)
	if len(distinct) < 3 {
		return Ring{}, fmt.Errorf("ring: need at least 3 distinct vertices, got %d", len(distinct))
	}
	if Area2XSigned(distinct) == 0 {
		return Ring{}, fmt.Errorf("ring: zero-area ring is not a valid boundary")
	}
	return Ring{points: distinct}, nil
}

// MustNewRing is like NewRing but panics on error. Intended for tests and literal
// in-source ring construction where the input is known to be valid.
func MustNewRing(points []point.Point) Ring {
	r, err := NewRing(points)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRingUnchecked builds a Ring from its vertices without validating vertex count or
// area, for algorithms (such as the clipping engine) that already guarantee the boundary
// they construct is well-formed and would pay for re-validating it on every recursive call.
func NewRingUnchecked(points []point.Point) Ring {
	return Ring{points: append([]point.Point(nil), points...)}
}

// Vertices returns the ring's vertices without the repeated closing point.
func (r Ring) Vertices() []point.Point {
	return append([]point.Point(nil), r.points...)
}

// Points returns the ring's vertices with the first point repeated at the end, satisfying
// the geometry-accessor contract's points(ring) operation.
func (r Ring) Points() []point.Point {
	if len(r.points) == 0 {
		return nil
	}
	closed := make([]point.Point, len(r.points)+1)
	copy(closed, r.points)
	closed[len(r.points)] = r.points[0]
	return closed
}

// Len returns the number of distinct vertices in the ring (excluding the closing point).
func (r Ring) Len() int { return len(r.points) }

// At returns the vertex at index i, wrapping modulo the ring's length.
func (r Ring) At(i int) point.Point {
	n := len(r.points)
	return r.points[((i%n)+n)%n]
}

// Edges returns the ring's boundary as a sequence of line segments, one per edge,
// connecting consecutive vertices and wrapping from the last back to the first.
func (r Ring) Edges() []segment.LineSegment {
	edges := make([]segment.LineSegment, 0, len(r.points))
	for i := 0; i < len(r.points); i++ {
		a, b := r.points[i], r.points[(i+1)%len(r.points)]
		if a.Eq(b) {
			continue
		}
		edges = append(edges, segment.NewFromPoints(a, b))
	}
	return edges
}

// Reversed returns a new Ring with the same vertices in reverse order, flipping its
// orientation (and the sign of its signed area) without changing the region it bounds.
func (r Ring) Reversed() Ring {
	n := len(r.points)
	reversed := make([]point.Point, n)
	for i, p := range r.points {
		reversed[n-1-i] = p
	}
	return Ring{points: reversed}
}

// Translate returns a new Ring with every vertex translated by delta.
func (r Ring) Translate(delta point.Point) Ring {
	out := make([]point.Point, len(r.points))
	for i, p := range r.points {
		out[i] = p.Translate(delta)
	}
	return Ring{points: out}
}

// Polygon pairs one exterior Ring with zero or more hole Rings.
type Polygon struct {
	exterior Ring
	holes    []Ring
}

// NewPolygon builds a Polygon from an exterior ring and its holes.
func NewPolygon(exterior Ring, holes ...Ring) Polygon {
	return Polygon{exterior: exterior, holes: append([]Ring(nil), holes...)}
}

// Exterior returns the polygon's outer boundary ring.
func (p Polygon) Exterior() Ring { return p.exterior }

// Holes returns the polygon's hole rings.
func (p Polygon) Holes() []Ring { return append([]Ring(nil), p.holes...) }

func dedupeConsecutive(points []point.Point, opts ...options.GeometryOptionsFunc) []point.Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]point.Point, 0, len(points))
	for i, p := range points {
		if i == 0 || !p.Eq(out[len(out)-1], opts...) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0].Eq(out[len(out)-1], opts...) {
		out = out[:len(out)-1]
	}
	return out
}

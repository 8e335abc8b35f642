package clip

import (
	"fmt"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/ring"
)

// RingLike is the minimal accessor a caller's ring type must support: its vertices in
// closed form, with the first point repeated at the end.
type RingLike interface {
	Points() []point.Point
}

// Geometry is the minimal accessor a caller's polygon type must support: one exterior
// ring and any number of hole rings. [Wrap] adapts a [ring.Polygon] to this interface.
type Geometry interface {
	Exterior() RingLike
	Holes() []RingLike
}

// Wrap adapts a [ring.Polygon] to the [Geometry] interface the operation drivers expect.
func Wrap(p ring.Polygon) Geometry { return polygonAdapter{p} }

type polygonAdapter struct{ p ring.Polygon }

func (a polygonAdapter) Exterior() RingLike { return ringAdapter{a.p.Exterior()} }

func (a polygonAdapter) Holes() []RingLike {
	holes := a.p.Holes()
	out := make([]RingLike, len(holes))
	for i, h := range holes {
		out[i] = ringAdapter{h}
	}
	return out
}

type ringAdapter struct{ r ring.Ring }

func (a ringAdapter) Points() []point.Point { return a.r.Points() }

// openVertices returns a ring's vertices without a repeated closing point, regardless of
// whether the caller's RingLike implementation included one.
func openVertices(r RingLike) []point.Point {
	pts := r.Points()
	if len(pts) > 1 && pts[0].Eq(pts[len(pts)-1]) {
		return pts[:len(pts)-1]
	}
	return pts
}

// Intersection computes the set intersection of a and b: the region covered by both.
func Intersection(a, b Geometry, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	return operate(a, b, OpIntersection, opts...)
}

// Union computes the set union of a and b: the region covered by either.
func Union(a, b Geometry, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	return operate(a, b, OpUnion, opts...)
}

// Difference computes a minus b: the region covered by a but not by b.
func Difference(a, b Geometry, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	return operate(a, b, OpDifference, opts...)
}

func operate(a, b Geometry, op Operation, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("clip: both operands must be non-nil")
	}

	aExt := openVertices(a.Exterior())
	bExt := openVertices(b.Exterior())

	if len(aExt) < 3 {
		return emptyOperandResult(op, b)
	}
	if len(bExt) < 3 {
		return emptyOperandResult(swappedOp(op), a)
	}

	result, err := clipExteriors(aExt, bExt, op, opts...)
	if err != nil {
		return nil, err
	}

	if len(a.Holes()) == 0 && len(b.Holes()) == 0 {
		return result, nil
	}

	return integrateHoles(result, a, b, op, opts...)
}

// emptyOperandResult handles one degenerate (fewer than 3 vertices) operand: it
// contributes nothing to intersection or difference, and union simply yields the other
// operand unchanged.
func emptyOperandResult(op Operation, other Geometry) ([]ring.Polygon, error) {
	if op != OpUnion {
		return nil, nil
	}
	holes := make([]ring.Ring, 0, len(other.Holes()))
	for _, h := range other.Holes() {
		holes = append(holes, ring.NewRingUnchecked(openVertices(h)))
	}
	return []ring.Polygon{ring.NewPolygon(ring.NewRingUnchecked(openVertices(other.Exterior())), holes...)}, nil
}

// swappedOp picks the operation to hand emptyOperandResult when b is the degenerate
// operand and a is returned: "a minus (empty b)" is just a, the same answer a union gives;
// intersection and union are already symmetric.
func swappedOp(op Operation) Operation {
	if op == OpDifference {
		return OpUnion
	}
	return op
}

func clipExteriors(aExt, bExt []point.Point, op Operation, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	listA, listB, idx := weave(aExt, bExt, opts...)

	if !label(listA, bExt, opts...) || !label(listB, aExt, opts...) {
		// Every node of at least one list lies exactly on the other ring's boundary: the
		// two rings coincide (or one retraces the other in reverse).
		switch op {
		case OpDifference:
			return nil, nil
		default:
			return []ring.Polygon{ring.NewPolygon(ring.NewRingUnchecked(aExt))}, nil
		}
	}

	classify(listA, listB, idx)

	rawRings := trace(listA, listB, idx, op)
	return nestRingsIntoPolygons(rawRings), nil
}

// nestRingsIntoPolygons groups a flat set of traced rings into polygons by mutual
// containment: a ring nested inside exactly one more enclosing ring than another becomes
// that ring's hole, and a ring nested an even number of times deep is itself an exterior.
// A traced ring's repeated closing point is dropped, since a [ring.Ring] stores its
// vertices without it.
func nestRingsIntoPolygons(rings [][]point.Point) []ring.Polygon {
	n := len(rings)
	if n == 0 {
		return nil
	}

	rawRings := make([]ring.Ring, n)
	for i, pts := range rings {
		if len(pts) > 1 && pts[0].Eq(pts[len(pts)-1]) {
			pts = pts[:len(pts)-1]
		}
		rawRings[i] = ring.NewRingUnchecked(pts)
	}

	depth := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if ring.PointInRing(rings[i][0], rawRings[j]) == ring.In {
				depth[i]++
			}
		}
	}

	var polygons []ring.Polygon
	for i := 0; i < n; i++ {
		if depth[i]%2 != 0 {
			continue // a hole; folded in below as part of its enclosing exterior
		}
		var holes []ring.Ring
		for j := 0; j < n; j++ {
			if j == i || depth[j] != depth[i]+1 {
				continue
			}
			if ring.PointInRing(rings[j][0], rawRings[i]) == ring.In {
				holes = append(holes, rawRings[j])
			}
		}
		polygons = append(polygons, ring.NewPolygon(rawRings[i], holes...))
	}
	return polygons
}

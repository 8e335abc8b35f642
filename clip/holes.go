package clip

import (
	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/ring"
)

// integrateHoles folds the holes of both operands back into an exterior-only result, by
// recursing into the same operation drivers on simple, hole-free polygons built from the
// individual hole rings. This keeps the core weave/label/classify/trace pipeline free of
// any notion of holes: it only ever sees one simple ring against another.
func integrateHoles(result []ring.Polygon, a, b Geometry, op Operation, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	switch op {
	case OpIntersection:
		return integrateHolesIntersection(result, a, b, opts...)
	case OpUnion:
		return integrateHolesUnion(result, a, b, opts...)
	default:
		return integrateHolesDifference(result, a, b, opts...)
	}
}

func holePolygon(h RingLike) Geometry {
	return Wrap(ring.NewPolygon(ring.NewRingUnchecked(openVertices(h))))
}

// integrateHolesIntersection subtracts every hole of either operand from the exterior
// result: a point excluded from A by one of A's holes, or from B by one of B's holes, is
// excluded from their intersection too.
func integrateHolesIntersection(result []ring.Polygon, a, b Geometry, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	holes := append(append([]RingLike{}, a.Holes()...), b.Holes()...)

	for _, h := range holes {
		var next []ring.Polygon
		for _, p := range result {
			diffed, err := Difference(Wrap(p), holePolygon(h), opts...)
			if err != nil {
				return nil, err
			}
			next = append(next, diffed...)
		}
		result = next
	}
	return result, nil
}

// integrateHolesUnion re-applies each operand's holes to the merged result, but only the
// portion of a hole not filled in by the *other* operand's exterior: a hole in A covered
// entirely by B's exterior leaves no gap in their union. Each surviving hole remnant is
// then attached to whichever result piece actually contains it, since disjoint operands
// can produce more than one output piece and a hole must not leak onto an unrelated one.
func integrateHolesUnion(result []ring.Polygon, a, b Geometry, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	aExterior := Wrap(ring.NewPolygon(ring.NewRingUnchecked(openVertices(a.Exterior()))))
	bExterior := Wrap(ring.NewPolygon(ring.NewRingUnchecked(openVertices(b.Exterior()))))

	var newHoles []ring.Ring
	for _, h := range a.Holes() {
		remaining, err := Difference(holePolygon(h), bExterior, opts...)
		if err != nil {
			return nil, err
		}
		for _, piece := range remaining {
			newHoles = append(newHoles, piece.Exterior())
		}
	}
	for _, h := range b.Holes() {
		remaining, err := Difference(holePolygon(h), aExterior, opts...)
		if err != nil {
			return nil, err
		}
		for _, piece := range remaining {
			newHoles = append(newHoles, piece.Exterior())
		}
	}

	for i := range result {
		var holes []ring.Ring
		for _, h := range newHoles {
			if ring.PointInRing(h.At(0), result[i].Exterior()) == ring.In {
				holes = append(holes, h)
			}
		}
		if len(holes) > 0 {
			result[i] = ring.NewPolygon(result[i].Exterior(), append(result[i].Holes(), holes...)...)
		}
	}
	return result, nil
}

// integrateHolesDifference removes A's holes from the traced result (a hole of the
// minuend stays a hole of the difference) and adds back the portion of each of B's holes
// that lies within A (subtracting a hole from B restores whatever A occupied there).
func integrateHolesDifference(result []ring.Polygon, a, b Geometry, opts ...options.GeometryOptionsFunc) ([]ring.Polygon, error) {
	for _, h := range a.Holes() {
		var next []ring.Polygon
		for _, p := range result {
			diffed, err := Difference(Wrap(p), holePolygon(h), opts...)
			if err != nil {
				return nil, err
			}
			next = append(next, diffed...)
		}
		result = next
	}

	for _, h := range b.Holes() {
		added, err := Intersection(holePolygon(h), a, opts...)
		if err != nil {
			return nil, err
		}
		result = append(result, added...)
	}

	return result, nil
}

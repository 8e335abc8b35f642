// Package clip implements Boolean set operations (intersection, union, difference) on
// simple polygons using the Greiner-Hormann weave-label-classify-trace algorithm.
//
// # Pipeline
//
// Each operation runs the same five stages against the two input exteriors:
//
//  1. weave interleaves the two vertex rings, inserting a node at every point where an
//     edge of one crosses, touches, or overlaps an edge of the other.
//  2. label walks each woven list and assigns an entry/exit flag to every intersection
//     node, alternating at each one, seeded by a containment test against the other ring.
//  3. classify resolves each intersection into a crossing (the boundaries properly cross)
//     or a bounce (they touch without crossing), collapsing runs of collinear overlap into
//     a single verdict.
//  4. trace walks the woven lists, switching between them at crossing nodes according to
//     an operation-specific step rule, to produce the output ring(s).
//  5. integrateHoles folds each input's holes back into the traced result.
//
// Holes are handled by recursing into the same pipeline on hole-only sub-polygons, so the
// core algorithm only ever needs to reason about simple, hole-free rings.
package clip

import "github.com/cortinico/polyclip2d/point"

// node is one entry in a woven vertex list: either an original vertex of the source ring,
// or an intersection with the other ring.
type node struct {
	point point.Point

	// inter is true when this node is an intersection with the other ring, rather than an
	// original vertex.
	inter bool

	// neighbor is the index of this node's twin in the other list. Meaningful only when
	// inter is true.
	neighbor int

	// entry is the ent_exit label assigned by the labeller: true if following the ring
	// forward from this node moves into the other ring's interior.
	entry bool

	// alpha and beta are this node's parametric position along its own edge and the
	// crossing edge respectively, as returned by segment.Intersect. Used to order
	// intersections discovered along the same source edge and to locate an intersection's
	// twin when weaving the second list.
	alpha, beta float64

	// crossing is the classifier's verdict: true if the boundaries properly cross here,
	// false if they only bounce (touch without crossing). Meaningful only when inter.
	crossing bool
}

func extractPoints(list []node) []point.Point {
	out := make([]point.Point, len(list))
	for i, n := range list {
		out[i] = n.point
	}
	return out
}

func prevPoint(list []node, i int) point.Point {
	n := len(list)
	return list[((i-1)%n+n)%n].point
}

func nextPoint(list []node, i int) point.Point {
	return list[(i+1)%len(list)].point
}

package clip

import (
	"sort"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/segment"
)

// weave builds the interleaved vertex lists for rings a and b. listA holds a's vertices in
// their native order with an intersection node inserted wherever an edge of a meets an
// edge of b; listB is the mirror image ordered along b. idx holds the positions within
// listA that carry an intersection node, in listA order.
func weave(a, b []point.Point, opts ...options.GeometryOptionsFunc) (listA, listB []node, idx []int) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	na, nb := len(a), len(b)

	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		listA = append(listA, node{point: a1})
		a1Idx := len(listA) - 1
		edgeStart := len(listA)

		for j := 0; j < nb; j++ {
			b1, b2 := b[j], b[(j+1)%nb]
			c := segment.Intersect(a1, a2, b1, b2)

			switch {
			case c.Collinear:
				weaveCollinear(&listA, a1Idx, j, b1, b2, c.Alpha, c.Beta, geoOpts.Epsilon)

			case c.HasPoint:
				weaveCrossing(&listA, a1Idx, j, b1, c.Point, c.Alpha, c.Beta, geoOpts.Epsilon)
			}
		}

		newNodes := listA[edgeStart:]
		sort.SliceStable(newNodes, func(x, y int) bool { return newNodes[x].alpha < newNodes[y].alpha })
	}

	for i, n := range listA {
		if n.inter {
			idx = append(idx, i)
		}
	}

	listB = buildListB(listA, idx, b, geoOpts.Epsilon)

	return listA, listB, idx
}

// weaveCrossing handles a single non-collinear candidate intersection between the edge
// starting at listA[a1Idx] and B-edge j, per the three cases the parametric fractions can
// fall into: a1 itself coincides with the B-edge, b1 lies strictly inside the A-edge, or
// the two edges cross at an interior point of both.
func weaveCrossing(listA *[]node, a1Idx, j int, b1, p point.Point, alpha, beta, eps float64) {
	if alpha < -eps || alpha > 1+eps || beta < -eps || beta > 1+eps {
		return // outside both segments' bounds; not an intersection of the bounded edges
	}

	switch {
	case isZero(alpha, eps):
		(*listA)[a1Idx].inter = true
		(*listA)[a1Idx].neighbor = j
		(*listA)[a1Idx].beta = clampUnit(beta)

	case isZero(beta, eps) && alpha > eps && alpha < 1-eps:
		*listA = append(*listA, node{point: b1, inter: true, neighbor: j, alpha: alpha, beta: 0})

	case alpha > eps && alpha < 1-eps && beta > eps && beta < 1-eps:
		*listA = append(*listA, node{point: p, inter: true, neighbor: j, alpha: alpha, beta: beta})
	}
}

// weaveCollinear handles an A-edge and B-edge that lie on the same infinite line. t0 and
// t1 locate b1 and b2 respectively along the direction of the A-edge; each one that falls
// at or inside the A-edge's own bounds produces an intersection node, exactly as the
// vertex cases in weaveCrossing do. The classifier later resolves runs of these nodes into
// a single crossing or bounce verdict.
func weaveCollinear(listA *[]node, a1Idx, j int, b1, b2 point.Point, t0, t1, eps float64) {
	for _, endpoint := range []struct {
		t float64
		p point.Point
	}{{t0, b1}, {t1, b2}} {
		switch {
		case endpoint.t < -eps || endpoint.t > 1+eps:
			continue
		case isZero(endpoint.t, eps):
			(*listA)[a1Idx].inter = true
			(*listA)[a1Idx].neighbor = j
			(*listA)[a1Idx].beta = 0
		case endpoint.t > eps && endpoint.t < 1-eps:
			*listA = append(*listA, node{point: endpoint.p, inter: true, neighbor: j, alpha: endpoint.t, beta: 0})
		}
	}
}

// buildListB produces the B-side woven list by walking b's original vertices and, between
// consecutive ones, injecting every A-intersection whose neighbor is that B-edge, ordered
// by beta. Each injected node's twin is rewritten to point at its new position in listB,
// and an injected node that coincides with the B-vertex just emitted is coalesced with it
// rather than duplicated.
func buildListB(listA []node, idx []int, b []point.Point, epsilon float64) []node {
	ordered := append([]int(nil), idx...)
	sort.SliceStable(ordered, func(x, y int) bool {
		nx, ny := listA[ordered[x]], listA[ordered[y]]
		if nx.neighbor != ny.neighbor {
			return nx.neighbor < ny.neighbor
		}
		return nx.beta < ny.beta
	})

	var listB []node
	ii := 0
	nb := len(b)

	for j := 0; j < nb; j++ {
		listB = append(listB, node{point: b[j]})
		bVertexIdx := len(listB) - 1

		for ii < len(ordered) && listA[ordered[ii]].neighbor == j {
			aIdxVal := ordered[ii]
			aNode := listA[aIdxVal]

			if aNode.point.Eq(b[j], options.WithEpsilon(epsilon)) {
				listB[bVertexIdx].inter = true
				listB[bVertexIdx].neighbor = aIdxVal
				listA[aIdxVal].neighbor = bVertexIdx
			} else {
				listB = append(listB, node{point: aNode.point, inter: true, neighbor: aIdxVal, alpha: aNode.alpha, beta: aNode.beta})
				listA[aIdxVal].neighbor = len(listB) - 1
			}
			ii++
		}
	}

	return listB
}

func isZero(v, eps float64) bool {
	if v < 0 {
		v = -v
	}
	return v <= eps
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

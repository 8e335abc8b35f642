package clip

import "github.com/cortinico/polyclip2d/point"

// classify resolves every intersection node into a crossing or a bounce: a crossing means
// the two boundaries properly cross at that point; a bounce means they touch (at a vertex,
// or along a run of collinear overlap) without crossing. The twins in listA and listB are
// always classified together.
//
// Runs of consecutive A-intersections produced by collinear overlap (weave's collinear
// case) collapse into a single verdict. The first node of such a run is always a
// provisional bounce; the last node of the run, where the two boundaries finally diverge,
// carries the run's real verdict, computed from its own local geometry exactly as an
// ordinary, non-chained intersection would be.
func classify(listA, listB []node, idx []int) {
	processed := make(map[int]bool, len(idx))

	for _, i := range idx {
		if processed[i] {
			continue
		}

		if !pEntersOverlap(listA, listB, i) {
			classifySingle(listA, listB, i)
			processed[i] = true
			continue
		}

		setCrossing(listA, listB, i, listA[i].neighbor, false)
		processed[i] = true

		curr := nextIntersection(idx, i)
		for curr != i && pEntersOverlap(listA, listB, curr) {
			setCrossing(listA, listB, curr, listA[curr].neighbor, false)
			processed[curr] = true
			curr = nextIntersection(idx, curr)
		}

		if curr != i && !processed[curr] {
			classifySingle(listA, listB, curr)
			processed[curr] = true
		}
	}
}

// pEntersOverlap reports whether the A-intersection at i begins (or continues) a run of
// collinear overlap with B: whether the point following i along A coincides with one of
// the points neighboring i's twin along B.
func pEntersOverlap(listA, listB []node, i int) bool {
	j := listA[i].neighbor
	pPlus := nextPoint(listA, i)
	qMinus := prevPoint(listB, j)
	qPlus := nextPoint(listB, j)
	return pPlus.Eq(qMinus) || pPlus.Eq(qPlus)
}

// classifySingle classifies a single, non-chained intersection by comparing which side of
// the arc (P-, I, P+) each of I's twin's B-neighbors falls on: the boundaries cross if the
// two neighbors fall on opposite sides, and only touch (bounce) if they fall on the same
// side.
func classifySingle(listA, listB []node, i int) {
	j := listA[i].neighbor

	pMinus := prevPoint(listA, i)
	p := listA[i].point
	pPlus := nextPoint(listA, i)
	qMinus := prevPoint(listB, j)
	qPlus := nextPoint(listB, j)

	crossing := side(qMinus, pMinus, p, pPlus) != side(qPlus, pMinus, p, pPlus)
	setCrossing(listA, listB, i, j, crossing)
}

// side reports which side of the path p1 -> p2 -> p3 the point q falls on: true for one
// side, false for the other. s1 and s2 are positive when q lies strictly to the left of the
// first and second segment. The convention follows from the sign of the path's own turn
// (s3): when the path turns left (or runs straight), the result is true only if q falls to
// the left of both segments; when the path turns right, the result is false if q falls to
// the left of either segment, and true otherwise.
func side(q, p1, p2, p3 point.Point) bool {
	s1 := point.SignedArea2X(q, p1, p2)
	s2 := point.SignedArea2X(q, p2, p3)
	s3 := point.SignedArea2X(p1, p2, p3)

	if s3 >= 0 {
		return s1 > 0 && s2 > 0
	}
	return !(s1 > 0 || s2 > 0)
}

func setCrossing(listA, listB []node, i, j int, crossing bool) {
	listA[i].crossing = crossing
	listB[j].crossing = crossing
}

// nextIntersection returns the next position in idx order after current, wrapping.
func nextIntersection(idx []int, current int) int {
	for pos, v := range idx {
		if v == current {
			return idx[(pos+1)%len(idx)]
		}
	}
	return current
}

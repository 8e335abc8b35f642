package clip

import (
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/ring"
)

// Operation names one of the three Boolean set operations the tracer can produce.
type Operation uint8

const (
	// OpIntersection traces the region common to both rings.
	OpIntersection Operation = iota

	// OpUnion traces the region covered by either ring.
	OpUnion

	// OpDifference traces the region covered by A but not B.
	OpDifference
)

// stepDirection returns +1 to walk a list forward or -1 to walk it backward, from a
// crossing node with the given entry flag, on the named list (onA distinguishes A from
// B, which matters only for difference).
func stepDirection(op Operation, entry, onA bool) int {
	switch op {
	case OpIntersection:
		if entry {
			return 1
		}
		return -1
	case OpUnion:
		if entry {
			return -1
		}
		return 1
	case OpDifference:
		if entry != onA {
			return 1
		}
		return -1
	default:
		return 1
	}
}

// trace walks the woven lists, switching between them at every intersection node (crossing
// or bounce) according to stepDirection, to produce the output ring(s) for op. crossing is
// not consulted during the walk: it gates which nodes in findUnprocessedCrossing may seed a
// new traced ring, so a bounce the walk passes back through is never picked as a fresh
// start. When no node is a crossing at all, the rings only touch, and the result is
// decided by traceNoIntersections instead.
func trace(listA, listB []node, idx []int, op Operation) [][]point.Point {
	crossed := false
	for _, i := range idx {
		if listA[i].crossing {
			crossed = true
			break
		}
	}
	if !crossed {
		return traceNoIntersections(listA, listB, op)
	}

	used := make([]bool, len(idx))
	var rings [][]point.Point

	for {
		startPos, ok := findUnprocessedCrossing(listA, idx, used)
		if !ok {
			break
		}
		used[startPos] = true

		start := idx[startPos]
		startPoint := listA[start].point

		var result []point.Point
		curr := start
		onA := true
		result = append(result, startPoint)

		for {
			var entry bool
			if onA {
				entry = listA[curr].entry
			} else {
				entry = listB[curr].entry
			}
			dir := stepDirection(op, entry, onA)

			for {
				if onA {
					curr = wrap(curr+dir, len(listA))
					result = append(result, listA[curr].point)
					if listA[curr].inter {
						break
					}
				} else {
					curr = wrap(curr+dir, len(listB))
					result = append(result, listB[curr].point)
					if listB[curr].inter {
						break
					}
				}
			}

			var currPoint point.Point
			if onA {
				currPoint = listA[curr].point
			} else {
				currPoint = listB[curr].point
			}

			if currPoint.Eq(startPoint) {
				break
			}

			markConsumed(listA, idx, used, currPoint)

			if onA {
				curr = listA[curr].neighbor
				onA = false
			} else {
				curr = listB[curr].neighbor
				onA = true
			}
		}

		rings = append(rings, result)
	}

	return rings
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func findUnprocessedCrossing(listA []node, idx []int, used []bool) (pos int, ok bool) {
	for p, i := range idx {
		if !used[p] && listA[i].crossing {
			return p, true
		}
	}
	return 0, false
}

func markConsumed(listA []node, idx []int, used []bool, p point.Point) {
	for pos, i := range idx {
		if !used[pos] && listA[i].point.Eq(p) {
			used[pos] = true
		}
	}
}

// traceNoIntersections handles the case where the two rings never cross: they do not meet,
// or they only touch at bounces. One may contain the other, or they may be disjoint. A
// single point-in-ring test against each ring's first vertex distinguishes the three
// cases; a first vertex lying on the other ring counts as not inside it.
func traceNoIntersections(listA, listB []node, op Operation) [][]point.Point {
	aPoints := extractPoints(listA)
	bPoints := extractPoints(listB)

	aInB := ring.PointInRing(aPoints[0], ring.NewRingUnchecked(bPoints)) == ring.In
	bInA := ring.PointInRing(bPoints[0], ring.NewRingUnchecked(aPoints)) == ring.In

	switch {
	case aInB:
		switch op {
		case OpIntersection:
			return [][]point.Point{aPoints}
		case OpUnion:
			return [][]point.Point{bPoints}
		default: // difference: A is consumed entirely by B
			return nil
		}
	case bInA:
		switch op {
		case OpIntersection:
			return [][]point.Point{bPoints}
		case OpUnion:
			return [][]point.Point{aPoints}
		default: // difference: B becomes a hole in A
			return [][]point.Point{aPoints, bPoints}
		}
	default: // disjoint
		switch op {
		case OpIntersection:
			return nil
		case OpUnion:
			return [][]point.Point{aPoints, bPoints}
		default: // difference: B has no effect on A
			return [][]point.Point{aPoints}
		}
	}
}

package segment

import (
	"math"
	"slices"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"

	"github.com/cortinico/polyclip2d/options"
)

// Finding pairs a bounded intersection result with the two segments that produced it,
// returned from the batch finders below.
type Finding struct {
	Result IntersectionResult
	A, B   LineSegment
}

// FindIntersectionsSlow finds every intersection among segments by testing each pair once.
// It runs in O(n^2) and is used as a correctness reference for [FindIntersectionsFast].
func FindIntersectionsSlow(segments []LineSegment, opts ...options.GeometryOptionsFunc) []Finding {
	var findings []Finding
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			r := segments[i].Intersection(segments[j], opts...)
			if r.Type != IntersectionNone {
				findings = append(findings, Finding{Result: r, A: segments[i], B: segments[j]})
			}
		}
	}
	return findings
}

// eventPoint is a plain (x,y) pair used as an event-queue key. The sweep needs exact
// identity for event points (including ones synthesized from a discovered intersection),
// so it doesn't go through point.Point's epsilon-aware Eq.
type eventPoint struct{ x, y float64 }

// eventComparator orders event points top-to-bottom, then left-to-right: p before q iff
// p.y > q.y, or p.y == q.y and p.x < q.x. This matches the sweep direction (from Y max
// down to Y min) described on [FindIntersectionsFast].
func eventComparator(a, b interface{}) int {
	p, q := a.(eventPoint), b.(eventPoint)
	switch {
	case p.y > q.y || (p.y == q.y && p.x < q.x):
		return -1
	case p == q:
		return 0
	default:
		return 1
	}
}

// FindIntersectionsFast finds every intersection among segments using a Bentley-Ottmann
// plane sweep: a horizontal line sweeps from maximum Y to minimum Y, maintaining the set
// of segments currently crossing it (the status structure) ordered left to right by their
// X position at the sweep line. Event points (segment endpoints and discovered
// intersections) are processed from a priority queue ordered top-to-bottom, left-to-right.
//
// Every event scans the whole status structure, and duplicate input segments are removed by
// comparing each one against all segments kept so far, so the sweep does not reach the
// O((n+k) log n) bound of a textbook Bentley-Ottmann implementation.
func FindIntersectionsFast(segments []LineSegment, opts ...options.GeometryOptionsFunc) []Finding {
	segments = dedupe(segments, opts...)

	queue := rbt.NewWith(eventComparator)
	insertEvent := func(p eventPoint) {
		if _, exists := queue.Get(p); !exists {
			queue.Put(p, []LineSegment{})
		}
	}
	for _, s := range segments {
		if s.Length() == 0 {
			continue
		}
		u, l := s.Upper(), s.Lower()
		upperKey := eventPoint{u.X(), u.Y()}
		existing, exists := queue.Get(upperKey)
		var startingAtUpper []LineSegment
		if exists {
			startingAtUpper = existing.([]LineSegment)
		}
		queue.Put(upperKey, append(startingAtUpper, s))
		insertEvent(eventPoint{l.X(), l.Y()})
	}

	sweepY := 0.0
	status := btree.NewG(4, func(a, b LineSegment) bool {
		if xa, xb := a.XAtY(sweepY), b.XAtY(sweepY); xa != xb {
			return xa < xb
		}
		return a.String() < b.String()
	})

	var findings []Finding
	seenPair := map[[2]string]bool{}
	recordPair := func(a, b LineSegment) {
		key := [2]string{a.String(), b.String()}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seenPair[key] {
			return
		}
		seenPair[key] = true
		if r := a.Intersection(b, opts...); r.Type != IntersectionNone {
			findings = append(findings, Finding{Result: r, A: a, B: b})
		}
	}

	neighbors := func(s LineSegment) (prev, next LineSegment, hasPrev, hasNext bool) {
		status.AscendGreaterOrEqual(s, func(item LineSegment) bool {
			if !item.Eq(s) {
				next, hasNext = item, true
				return false
			}
			return true
		})
		status.DescendLessOrEqual(s, func(item LineSegment) bool {
			if !item.Eq(s) {
				prev, hasPrev = item, true
				return false
			}
			return true
		})
		return
	}

	// queueIntersection records a future event for where prev and s might meet, as long as
	// that meeting point is still below (not yet reached by) the sweep line.
	queueIntersection := func(prev, s LineSegment) {
		c := Intersect(prev.Upper(), prev.Lower(), s.Upper(), s.Lower())
		if !c.HasPoint || c.Alpha < 0 || c.Alpha > 1 || c.Beta < 0 || c.Beta > 1 {
			return
		}
		if c.Point.Y() < sweepY {
			insertEvent(eventPoint{c.Point.X(), c.Point.Y()})
		}
	}

	for !queue.Empty() {
		node := queue.Left()
		key := node.Key.(eventPoint)
		startingHere := node.Value.([]LineSegment)
		queue.Remove(node.Key)
		sweepY = key.y

		var ending, passingThrough []LineSegment
		status.Ascend(func(item LineSegment) bool {
			if approxEqual(item.Lower().X(), key.x) && approxEqual(item.Lower().Y(), key.y) {
				ending = append(ending, item)
			} else if x := item.XAtY(sweepY); !math.IsNaN(x) && approxEqual(x, key.x) {
				passingThrough = append(passingThrough, item)
			}
			return true
		})

		if total := len(startingHere) + len(ending) + len(passingThrough); total > 1 {
			all := append(append(append([]LineSegment{}, startingHere...), ending...), passingThrough...)
			for i := 0; i < len(all); i++ {
				for j := i + 1; j < len(all); j++ {
					recordPair(all[i], all[j])
				}
			}
		}

		for _, s := range ending {
			status.Delete(s)
		}
		for _, s := range passingThrough {
			status.Delete(s)
		}
		for _, s := range startingHere {
			status.ReplaceOrInsert(s)
		}
		for _, s := range passingThrough {
			status.ReplaceOrInsert(s)
		}

		for _, s := range append(append([]LineSegment{}, startingHere...), passingThrough...) {
			if prev, _, hasPrev, _ := neighbors(s); hasPrev {
				queueIntersection(prev, s)
			}
			if _, next, _, hasNext := neighbors(s); hasNext {
				queueIntersection(s, next)
			}
		}

		if len(startingHere) == 0 && len(passingThrough) == 0 {
			// Pure endpoint: removing the ending segments may have brought their former
			// neighbors into direct adjacency, so check that new pair for a future crossing.
			var left, right LineSegment
			var hasLeft, hasRight bool
			status.Descend(func(item LineSegment) bool {
				if item.XAtY(sweepY) <= key.x {
					left, hasLeft = item, true
					return false
				}
				return true
			})
			status.Ascend(func(item LineSegment) bool {
				if item.XAtY(sweepY) >= key.x {
					right, hasRight = item, true
					return false
				}
				return true
			})
			if hasLeft && hasRight {
				queueIntersection(left, right)
			}
		}
	}

	return findings
}

func dedupe(segments []LineSegment, opts ...options.GeometryOptionsFunc) []LineSegment {
	out := make([]LineSegment, 0, len(segments))
	for _, s := range segments {
		if !slices.ContainsFunc(out, func(o LineSegment) bool { return o.Eq(s, opts...) }) {
			out = append(out, s)
		}
	}
	return out
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

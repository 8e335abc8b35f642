package clip

import (
	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/ring"
)

// label assigns the ent_exit flag to every intersection node in list: whether following
// the ring forward from that node crosses into the other ring's interior. The running
// containment status alternates at each intersection, seeded from the first node whose
// containment against opposite is unambiguous (strictly in or strictly out).
//
// label reports false when every node in list lies exactly on the opposite boundary, in
// which case the two rings coincide and the caller must short-circuit the usual pipeline.
func label(list []node, opposite []point.Point, opts ...options.GeometryOptionsFunc) bool {
	inside, ok := firstUnambiguousStatus(list, opposite, opts...)
	if !ok {
		return false
	}

	status := !inside
	for i := range list {
		if list[i].inter {
			list[i].entry = status
			status = !status
		}
	}
	return true
}

func firstUnambiguousStatus(list []node, opposite []point.Point, opts ...options.GeometryOptionsFunc) (inside, ok bool) {
	oppositeRing := ring.NewRingUnchecked(opposite)
	for _, n := range list {
		switch ring.PointInRing(n.point, oppositeRing, opts...) {
		case ring.In:
			return true, true
		case ring.Out:
			return false, true
		}
	}
	return false, false
}

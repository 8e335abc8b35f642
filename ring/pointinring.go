package ring

import (
	"math"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
)

// Classification is the result of testing a point against a ring: strictly inside, on
// the boundary, or strictly outside.
type Classification uint8

const (
	// Out indicates the point lies strictly outside the ring.
	Out Classification = iota

	// In indicates the point lies strictly inside the ring.
	In

	// On indicates the point lies exactly on an edge or vertex of the ring.
	On
)

// String returns "Out", "In", or "On".
func (c Classification) String() string {
	switch c {
	case Out:
		return "Out"
	case In:
		return "In"
	case On:
		return "On"
	default:
		return "Unknown"
	}
}

// PointInRing classifies p against the closed boundary r using ray casting: a horizontal
// ray from p to the right is tested against every edge of r, and the parity of the
// crossing count determines inside/outside. Edge-on and vertex-on cases are detected
// explicitly first, so a point precisely on the boundary always yields [On] regardless of
// how the ray happens to graze adjacent edges.
func PointInRing(p point.Point, r Ring, opts ...options.GeometryOptionsFunc) Classification {
	vertices := r.Vertices()
	n := len(vertices)

	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		if onSegment(p, a, b, opts...) {
			return On
		}
	}

	inside := false
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]

		if (a.Y() > p.Y()) == (b.Y() > p.Y()) {
			continue
		}

		xAtPY := a.X() + (p.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
		if p.X() < xAtPY {
			inside = !inside
		}
	}

	if inside {
		return In
	}
	return Out
}

func onSegment(p, a, b point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	ap := p.Sub(a)
	ab := b.Sub(a)
	length := ab.DistanceToPoint(point.Origin)
	if length == 0 {
		return p.Eq(a, opts...)
	}

	cross := ap.CrossProduct(ab)
	if math.Abs(cross) > geoOpts.Epsilon*length {
		return false
	}

	xMin, xMax := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	yMin, yMax := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	eps := geoOpts.Epsilon * length
	return p.X() >= xMin-eps && p.X() <= xMax+eps && p.Y() >= yMin-eps && p.Y() <= yMax+eps
}

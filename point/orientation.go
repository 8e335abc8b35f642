package point

import (
	"fmt"
	"math"

	"github.com/cortinico/polyclip2d/options"
)

// OrientationType represents the orientation relationship between three points in a 2D
// plane: collinear, a clockwise turn, or a counterclockwise turn.
type OrientationType uint8

// Orientation constants define the possible orientation relationships between three points.
const (
	// Collinear indicates that three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates that three points form a counterclockwise turn.
	Counterclockwise

	// Clockwise indicates that three points form a clockwise turn.
	Clockwise
)

// String returns "Collinear", "Counterclockwise", or "Clockwise".
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// Orientation determines whether p, q, r make a clockwise turn, a counterclockwise turn,
// or are collinear, from the sign of the cross product of (q-p) and (r-p).
//
// With [options.WithEpsilon] supplied, the epsilon is scaled by the lengths of the two
// rays before being compared to the cross product, so the tolerance adapts to the scale
// of the points involved rather than being a fixed absolute threshold.
func Orientation(p, q, r Point, opts ...options.GeometryOptionsFunc) OrientationType {
	val := q.Sub(p).CrossProduct(r.Sub(p))

	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	epsilon := geoOpts.Epsilon * (p.DistanceToPoint(q) + p.DistanceToPoint(r))

	if math.Abs(val) <= epsilon {
		return Collinear
	}
	if val > 0 {
		return Counterclockwise
	}
	return Clockwise
}

// SignedArea2X returns the signed area, times two, of the triangle (a, b, c). Positive
// when a, b, c turn counterclockwise, negative when clockwise, zero when collinear. This
// is the `sa` primitive referenced by the crossing classifier's side function.
func SignedArea2X(a, b, c Point) float64 {
	return b.Sub(a).CrossProduct(c.Sub(a))
}

// Package point defines the foundational geometric primitive of polyclip2d: the Point
// type. Every other type in this module — segments, rings, polygons, the clipping engine
// itself — is built on top of it.
//
// Point is deliberately minimal: a pair of double-precision coordinates plus the vector
// arithmetic (translation, scaling, rotation, dot/cross product, distance) that the rest
// of the module needs, and tolerance-aware equality ([Point.Eq]). Higher-level
// relationships (disjoint, on-edge, …) live in
// the packages that understand what shape the point belongs to.
package point

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/cortinico/polyclip2d/numeric"
	"github.com/cortinico/polyclip2d/options"
)

// Origin is the point (0,0).
var Origin = Point{}

// Point represents a point in two-dimensional space with double-precision coordinates.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// NewFromImagePoint converts an [image.Point] into a Point.
func NewFromImagePoint(q image.Point) Point {
	return Point{x: float64(q.X), y: float64(q.Y)}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 { return p.x }

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 { return p.y }

// Coordinates returns the x and y coordinates of the point as separate values.
func (p Point) Coordinates() (x, y float64) { return p.x, p.y }

// Add returns the sum of two points, treated as vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns the point reflected through the origin.
func (p Point) Negate() Point {
	return Point{x: -p.x, y: -p.y}
}

// Translate moves p by the displacement vector delta.
func (p Point) Translate(delta Point) Point {
	return Point{x: p.x + delta.x, y: p.y + delta.y}
}

// Scale scales p by a factor k relative to a reference point ref.
func (p Point) Scale(ref Point, k float64) Point {
	return Point{
		x: ref.x + (p.x-ref.x)*k,
		y: ref.y + (p.y-ref.y)*k,
	}
}

// Rotate rotates p by the given angle in radians, counter-clockwise, around pivot.
func (p Point) Rotate(pivot Point, radians float64) Point {
	dx := p.x - pivot.x
	dy := p.y - pivot.y
	sin, cos := math.Sincos(radians)
	return Point{
		x: pivot.x + dx*cos - dy*sin,
		y: pivot.y + dx*sin + dy*cos,
	}
}

// CrossProduct returns the 2D cross product (determinant) of the vectors a and b:
//
//	a × b = a.x*b.y - a.y*b.x
//
// A positive result indicates b is counterclockwise from a, negative clockwise, and zero
// that a and b are collinear (as vectors from the origin).
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DotProduct returns the dot product of the vectors p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q, avoiding
// the square root when only comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// CosineOfAngleBetween returns the cosine of the angle at vertex p between rays to a and
// to b. Returns math.NaN() if either ray has zero length.
func (p Point) CosineOfAngleBetween(a, b Point) float64 {
	oa := a.Sub(p)
	ob := b.Sub(p)
	magA := p.DistanceToPoint(a)
	magB := p.DistanceToPoint(b)
	if magA == 0 || magB == 0 {
		return math.NaN()
	}
	cosTheta := oa.DotProduct(ob) / (magA * magB)
	return math.Max(-1, math.Min(1, cosTheta))
}

// AngleBetween returns the angle in radians at vertex p between rays to a and to b.
func (p Point) AngleBetween(a, b Point) float64 {
	return math.Acos(p.CosineOfAngleBetween(a, b))
}

// Eq reports whether p and q are equal, optionally within an epsilon tolerance supplied
// via [options.WithEpsilon].
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if geoOpts.Epsilon == 0 {
		return p.x == q.x && p.y == q.y
	}
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// String returns the point in "(x,y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", numeric.FormatFloat(p.x), numeric.FormatFloat(p.y))
}

// MarshalJSON serializes the point as {"x":...,"y":...}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes a point from {"x":...,"y":...}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

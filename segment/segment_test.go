package segment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
)

func TestNewNormalizesUpperLower(t *testing.T) {
	s := New(0, 0, 5, 5)
	assert.Equal(t, point.New(5, 5), s.Upper())
	assert.Equal(t, point.New(0, 0), s.Lower())
}

func TestLengthCenterSlope(t *testing.T) {
	s := New(0, 0, 3, 4)
	assert.Equal(t, 5.0, s.Length())
	assert.Equal(t, point.New(1.5, 2), s.Center())
	assert.InDelta(t, 4.0/3.0, s.Slope(), 1e-9)

	vertical := New(1, 0, 1, 5)
	assert.True(t, math.IsNaN(vertical.Slope()))
}

func TestEq(t *testing.T) {
	a := New(0, 0, 1, 1)
	b := New(1.0000001, 1.0000001, 0, 0)
	assert.False(t, a.Eq(b))
	assert.True(t, a.Eq(b, options.WithEpsilon(1e-6)))
}

func TestContainsPointAndDistance(t *testing.T) {
	s := New(0, 0, 10, 0)
	assert.True(t, s.ContainsPoint(point.New(5, 0)))
	assert.False(t, s.ContainsPoint(point.New(5, 1)))
	assert.Equal(t, 1.0, s.DistanceToPoint(point.New(5, 1)))
}

func TestXAtYAndYAtX(t *testing.T) {
	s := New(0, 0, 4, 4)
	assert.Equal(t, 2.0, s.XAtY(2))
	assert.Equal(t, 2.0, s.YAtX(2))

	horizontal := New(0, 0, 4, 0)
	assert.True(t, math.IsNaN(horizontal.XAtY(0)))
}

func TestIntersectionPoint(t *testing.T) {
	a := New(0, 0, 4, 4)
	b := New(0, 4, 4, 0)
	r := a.Intersection(b)
	assert.Equal(t, IntersectionPoint, r.Type)
	assert.True(t, r.Point.Eq(point.New(2, 2)))
}

func TestIntersectionNoneParallel(t *testing.T) {
	a := New(0, 0, 4, 0)
	b := New(0, 1, 4, 1)
	r := a.Intersection(b)
	assert.Equal(t, IntersectionNone, r.Type)
}

func TestIntersectionOverlappingSegment(t *testing.T) {
	a := New(0, 0, 10, 0)
	b := New(5, 0, 15, 0)
	r := a.Intersection(b)
	assert.Equal(t, IntersectionOverlappingSegment, r.Type)
	assert.True(t, r.Overlap.Upper().Eq(point.New(10, 0)) || r.Overlap.Upper().Eq(point.New(5, 0)))
}

func TestIntersectUnclippedReportsFractionsOutsideRange(t *testing.T) {
	a1, a2 := point.New(0, 0), point.New(1, 0)
	b1, b2 := point.New(2, -1), point.New(2, 1)
	c := Intersect(a1, a2, b1, b2)
	assert.True(t, c.HasPoint)
	assert.InDelta(t, 2.0, c.Alpha, 1e-9) // outside [0,1]: the primitive does not clip
}

func TestFindIntersectionsSlowAndFastAgree(t *testing.T) {
	segments := []LineSegment{
		New(0, 0, 4, 4),
		New(0, 4, 4, 0),
		New(1, 3, 3, 3),
		New(2, -1, 2, 5),
	}

	slow := FindIntersectionsSlow(segments)
	fast := FindIntersectionsFast(segments)

	assert.Equal(t, len(slow), len(fast))
}

func TestIntersectsStraddle(t *testing.T) {
	a := New(0, 0, 4, 4)
	b := New(0, 4, 4, 0)
	assert.True(t, a.Intersects(b))

	c := New(10, 10, 14, 14)
	assert.False(t, a.Intersects(c))
}

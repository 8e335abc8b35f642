package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortinico/polyclip2d/point"
)

func square(x0, y0, side float64) Ring {
	return MustNewRing([]point.Point{
		point.New(x0, y0),
		point.New(x0+side, y0),
		point.New(x0+side, y0+side),
		point.New(x0, y0+side),
	})
}

func TestNewRingRejectsDegenerate(t *testing.T) {
	_, err := NewRing([]point.Point{point.New(0, 0), point.New(1, 1)})
	require.Error(t, err)

	_, err = NewRing([]point.Point{point.New(0, 0), point.New(1, 1), point.New(2, 2)})
	require.Error(t, err) // collinear: zero area
}

func TestAreaAndOrientation(t *testing.T) {
	r := square(0, 0, 4)
	assert.Equal(t, 16.0, r.Area())
	assert.False(t, r.IsClockwise())
	assert.True(t, r.Reversed().IsClockwise())
}

func TestCentroid(t *testing.T) {
	r := square(0, 0, 4)
	c := r.Centroid()
	assert.InDelta(t, 2, c.X(), 1e-9)
	assert.InDelta(t, 2, c.Y(), 1e-9)
}

func TestPointInRing(t *testing.T) {
	r := square(0, 0, 4)
	assert.Equal(t, In, PointInRing(point.New(2, 2), r))
	assert.Equal(t, Out, PointInRing(point.New(10, 10), r))
	assert.Equal(t, On, PointInRing(point.New(0, 2), r))
	assert.Equal(t, On, PointInRing(point.New(0, 0), r))
}

func TestEquals(t *testing.T) {
	a := square(0, 0, 4)
	b := MustNewRing([]point.Point{
		point.New(4, 4), point.New(0, 4), point.New(0, 0), point.New(4, 0),
	})
	assert.True(t, a.Equals(b))
}

func TestWithinCoversDisjoint(t *testing.T) {
	outer := square(0, 0, 10)
	inner := square(2, 2, 2)
	other := square(20, 20, 2)

	assert.True(t, inner.Within(outer))
	assert.True(t, outer.Covers(inner))
	assert.True(t, outer.Disjoint(other))
	assert.False(t, outer.Disjoint(inner))
}

func TestOverlaps(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)
	assert.True(t, a.Overlaps(b))

	c := square(100, 100, 10)
	assert.False(t, a.Overlaps(c))
}

func TestTouchesAtVertex(t *testing.T) {
	a := square(0, 0, 4)
	b := square(4, 4, 4)
	assert.True(t, a.Touches(b))
	assert.False(t, a.Overlaps(b))
}

func TestSimplifyRemovesCollinearVertex(t *testing.T) {
	r := MustNewRing([]point.Point{
		point.New(0, 0),
		point.New(2, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
	})
	simplified := r.Simplify()
	assert.Equal(t, 4, simplified.Len())
}

func TestBarycentric(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(4, 0)
	c := point.New(0, 4)
	u, v, w := Barycentric(point.New(0, 0), a, b, c)
	assert.InDelta(t, 1, u, 1e-9)
	assert.InDelta(t, 0, v, 1e-9)
	assert.InDelta(t, 0, w, 1e-9)
}

func TestPolygonAreaSubtractsHoles(t *testing.T) {
	outer := square(0, 0, 10)
	hole := square(2, 2, 2)
	p := NewPolygon(outer, hole)
	assert.Equal(t, 96.0, p.Area())
}

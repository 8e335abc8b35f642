package point

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortinico/polyclip2d/options"
)

func TestNew(t *testing.T) {
	p := New(3, 4)
	x, y := p.Coordinates()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestAddSubNegateTranslate(t *testing.T) {
	p := New(1, 2)
	q := New(3, 4)
	assert.Equal(t, New(4, 6), p.Add(q))
	assert.Equal(t, New(-2, -2), p.Sub(q))
	assert.Equal(t, New(-1, -2), p.Negate())
	assert.Equal(t, New(4, 6), p.Translate(q))
}

func TestScale(t *testing.T) {
	p := New(4, 4)
	ref := New(2, 2)
	assert.Equal(t, New(6, 6), p.Scale(ref, 2))
}

func TestRotate(t *testing.T) {
	p := New(1, 0)
	rotated := p.Rotate(Origin, math.Pi/2)
	assert.InDelta(t, 0, rotated.X(), 1e-9)
	assert.InDelta(t, 1, rotated.Y(), 1e-9)
}

func TestCrossAndDotProduct(t *testing.T) {
	a := New(1, 0)
	b := New(0, 1)
	assert.Equal(t, 1.0, a.CrossProduct(b))
	assert.Equal(t, 0.0, a.DotProduct(b))
}

func TestDistance(t *testing.T) {
	p := New(0, 0)
	q := New(3, 4)
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestCosineAndAngleBetween(t *testing.T) {
	p := Origin
	a := New(1, 0)
	b := New(0, 1)
	assert.InDelta(t, 0, p.CosineOfAngleBetween(a, b), 1e-9)
	assert.InDelta(t, math.Pi/2, p.AngleBetween(a, b), 1e-9)

	// Zero-length ray yields NaN, not a panic.
	assert.True(t, math.IsNaN(p.CosineOfAngleBetween(p, a)))
}

func TestEq(t *testing.T) {
	p := New(1, 1)
	q := New(1.0000001, 1.0000001)

	assert.False(t, p.Eq(q))
	assert.True(t, p.Eq(q, options.WithEpsilon(1e-6)))
	assert.True(t, p.Eq(New(1, 1)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1,2)", New(1, 2).String())
}

func TestJSONRoundTrip(t *testing.T) {
	p := New(3.5, -2.25)
	data, err := p.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"x":3.5,"y":-2.25}`, string(data))

	var q Point
	assert.NoError(t, q.UnmarshalJSON(data))
	assert.Equal(t, p, q)
}

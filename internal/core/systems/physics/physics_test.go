package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(-1, 2)

	assert.Equal(t, Vec(2, 6), a.Add(b))
	assert.Equal(t, Vec(4, 2), a.Sub(b))
	assert.Equal(t, Vec(6, 8), a.Scale(2))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, 25.0, a.LengthSq())
	assert.Equal(t, Vec(-4, 3), a.Perp())
	assert.Equal(t, a, a.Clone())

	// operations never touch the receiver
	assert.Equal(t, Vec(3, 4), a)
}

func TestNormalize(t *testing.T) {
	n := Vec(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)

	assert.Equal(t, Zero, Zero.Normalize())
	assert.True(t, Vec(0, 0).Normalize().IsZero())
}

func TestLimit(t *testing.T) {
	assert.Equal(t, Vec(1, 1), Vec(1, 1).Limit(10))

	l := Vec(30, 40).Limit(5)
	assert.InDelta(t, 3, l.X, 1e-12)
	assert.InDelta(t, 4, l.Y, 1e-12)
}

func TestDistance(t *testing.T) {
	a, b := Vec(1, 1), Vec(4, 5)
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 25.0, a.DistanceSq(b))
	assert.Equal(t, 5.0, Distance2(1, 1, 4, 5))
}

func TestRotate(t *testing.T) {
	r := Vec(1, 0).Rotate(Radians(90))
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)

	assert.InDelta(t, math.Pi, Radians(180), 1e-15)
}

func TestMglInterop(t *testing.T) {
	v := Vec(1.5, -2)
	assert.Equal(t, mgl64.Vec2{1.5, -2}, v.Vec2())
	assert.Equal(t, v, FromVec2(v.Vec2()))

	// a quarter turn agrees with Perp
	r := Vec(2, 7).Rotate(Radians(90))
	p := Vec(2, 7).Perp()
	assert.InDelta(t, p.X, r.X, 1e-12)
	assert.InDelta(t, p.Y, r.Y, 1e-12)
}

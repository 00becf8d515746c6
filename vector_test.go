package geometry3D

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestVec3(t *testing.T) {
	{ // Sub and Abs
		v := Vec3[float64]{1, -2, 3}
		w := Vec3[float64]{4, 4, -4}
		assert.Equal(t, Vec3[float64]{-3, -6, 7}, v.Sub(w))
		assert.Equal(t, Vec3[float64]{1, 2, 3}, v.Abs())
		assert.Equal(t, Vec3[float32]{0.5, 0, 2}, Vec3[float32]{-0.5, 0, 2}.Abs())
	}
	{ // gonum r3 round trip
		v := r3.Vec{X: 1, Y: 2, Z: 3}
		assert.Equal(t, Vec3[float64]{1, 2, 3}, FromR3(v))
		assert.Equal(t, v, ToR3(FromR3(v)))
	}
	{ // mathgl conversions
		assert.Equal(t, Vec3[float64]{1, 2, 3}, FromMGL64(mgl64.Vec3{1, 2, 3}))
		assert.Equal(t, Vec3[float32]{1, 2, 3}, FromMGL32(mgl32.Vec3{1, 2, 3}))
	}
}

func TestIntersectFromConverted(t *testing.T) {
	// The converters feed the intersection core directly
	rf := NewRayFrame(
		FromR3(r3.Vec{X: 0, Y: 0, Z: -5}),
		FromR3(r3.Vec{X: 0, Y: 0, Z: 1}),
	)
	hit, found := rf.Intersect(
		FromMGL64(mgl64.Vec3{-1, -1, 0}),
		FromMGL64(mgl64.Vec3{1, -1, 0}),
		FromMGL64(mgl64.Vec3{0, 1, 0}),
	)
	assert.True(t, found)
	assert.InDelta(t, 5., hit.T, 1.e-12)
}

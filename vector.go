package geometry3D

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3-component point or direction over float32 or float64. It is
// an interchange tuple, not a vector math framework: the intersection core
// only needs component indexing, subtraction and absolute value. Callers
// holding gonum or mathgl vectors convert at the boundary with the From*
// functions below.
type Vec3[S constraints.Float] [3]S

func (v Vec3[S]) Sub(w Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

func (v Vec3[S]) Abs() (va Vec3[S]) {
	for i, x := range v {
		if x < 0 {
			x = -x
		}
		va[i] = x
	}
	return
}

// FromR3 converts a gonum spatial/r3 vector.
func FromR3(v r3.Vec) Vec3[float64] {
	return Vec3[float64]{v.X, v.Y, v.Z}
}

// ToR3 converts back to a gonum spatial/r3 vector.
func ToR3(v Vec3[float64]) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// FromMGL64 converts a mathgl double-precision vector.
func FromMGL64(v mgl64.Vec3) Vec3[float64] {
	return Vec3[float64](v)
}

// FromMGL32 converts a mathgl single-precision vector.
func FromMGL32(v mgl32.Vec3) Vec3[float32] {
	return Vec3[float32](v)
}

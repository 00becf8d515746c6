/*
Package geometry3D provides a watertight ray/triangle intersection test
after:

	Sven Woop, Carsten Benthin, and Ingo Wald. "Watertight Ray/Triangle
	Intersection." Journal of Computer Graphics Techniques (JCGT),
	2.1 (2013), 65-82.

The ray is sheared into a frame where it travels along one coordinate
axis, and each triangle is tested with 2D signed edge functions (U, V, W
in the paper) in that frame. Two triangles sharing an edge evaluate the
identical edge function for it, so a ray aimed at the shared edge can
never fall through the gap or be rejected by both - the watertight
property. No backface culling is performed.
*/
package geometry3D

import (
	"golang.org/x/exp/constraints"
)

// RayFrame holds the precomputed per-ray transform: the dominant axis
// permutation kx, ky, kz and the shear coefficients (Sx, Sy, Sz in the
// paper) that map world space into ray space. Build it once per ray with
// NewRayFrame and reuse it across any number of triangle tests; it is
// immutable and safe to share between goroutines without synchronization.
type RayFrame[S constraints.Float] struct {
	kx, ky, kz int
	sx, sy, sz S
	org        Vec3[S]
}

// Intersection reports where a ray meets a triangle.
type Intersection[S constraints.Float] struct {
	T       S // Parametric distance along the ray to the hit point
	U, V, W S // Barycentric coordinates wrt the three input vertices; U+V+W == 1 up to rounding
}

// MaxDim returns the index of the component of v with the greatest
// absolute value. Ties resolve to axis 2, except that x beating y but
// tying z also resolves to 2 - the exact tie-break matters because it
// decides which axis becomes kz for near-degenerate directions.
func MaxDim[S constraints.Float](v Vec3[S]) int {
	va := v.Abs()
	x, y, z := va[0], va[1], va[2]
	switch {
	case x > y:
		// y isn't the maximum, so it's either x or z
		if x > z {
			return 0
		}
		return 2
	case y > z:
		// x isn't the maximum, so it's either y or z
		return 1
	default:
		return 2
	}
}

// NewRayFrame precomputes the shear transform applied to every triangle
// tested against the ray (org, dir).
//
// Precondition: dir is non-zero. A zero direction divides by zero here
// and fills the frame with Inf/NaN; no validation is performed, this is
// a per-ray hot path and the check belongs to the caller.
//
// The paper swaps kx and ky when dir[kz] is negative to preserve triangle
// winding order. Winding only matters for backface culling, which this
// package does not perform, so the swap is deliberately omitted.
func NewRayFrame[S constraints.Float](org, dir Vec3[S]) (rf RayFrame[S]) {
	kz := MaxDim(dir)
	kx := (kz + 1) % 3
	ky := (kz + 2) % 3
	rf = RayFrame[S]{
		kx:  kx,
		ky:  ky,
		kz:  kz,
		sx:  dir[kx] / dir[kz],
		sy:  dir[ky] / dir[kz],
		sz:  1 / dir[kz],
		org: org,
	}
	return
}

// Intersect tests the triangle (a, b, c) against the precomputed ray and
// reports the hit, if any. Vertex order only affects which barycentric
// coordinate pairs with which vertex; hits exactly on an edge or vertex
// are accepted.
//
// No distance culling is applied: a hit behind the ray origin comes back
// with T < 0, and callers needing a [tmin, tmax] window must filter the
// returned T themselves.
func (rf RayFrame[S]) Intersect(a, b, c Vec3[S]) (hit Intersection[S], found bool) {
	var (
		sx, sy, sz = rf.sx, rf.sy, rf.sz
		kx, ky, kz = rf.kx, rf.ky, rf.kz
	)
	// Translate so the ray starts at the origin, then shear/project each
	// vertex onto the plane perpendicular to the dominant axis
	A := a.Sub(rf.org)
	B := b.Sub(rf.org)
	C := c.Sub(rf.org)
	Ax := A[kx] - sx*A[kz]
	Ay := A[ky] - sy*A[kz]
	Bx := B[kx] - sx*B[kz]
	By := B[ky] - sy*B[kz]
	Cx := C[kx] - sx*C[kz]
	Cy := C[ky] - sy*C[kz]

	// Signed edge functions: twice the signed area between the ray-space
	// origin and each triangle edge
	U := Cx*By - Cy*Bx
	V := Ax*Cy - Ay*Cx
	W := Bx*Ay - By*Ax

	if U == 0 || V == 0 || W == 0 {
		// Recompute with each product bound to its own variable, forcing
		// the two multiplies to round separately before the subtraction.
		// Go may otherwise fuse a*b - c*d into an FMA, and edge hits must
		// not depend on which contraction the compiler picked.
		CxBy := Cx * By
		CyBx := Cy * Bx
		U = CxBy - CyBx
		AxCy := Ax * Cy
		AyCx := Ay * Cx
		V = AxCy - AyCx
		BxAy := Bx * Ay
		ByAx := By * Ax
		W = BxAy - ByAx
	}

	// Mixed signs mean the ray-space origin lies strictly outside one of
	// the edges. Zeros pass both branches, so hits exactly on an edge or
	// vertex are kept
	if (U < 0 || V < 0 || W < 0) && (U > 0 || V > 0 || W > 0) {
		return
	}

	// det == 0: ray parallel to the triangle plane, or degenerate triangle
	det := U + V + W
	if det == 0 {
		return
	}

	Az := sz * A[kz]
	Bz := sz * B[kz]
	Cz := sz * C[kz]
	T := U*Az + V*Bz + W*Cz

	rcpDet := 1 / det
	hit = Intersection[S]{
		T: T * rcpDet,
		U: U * rcpDet,
		V: V * rcpDet,
		W: W * rcpDet,
	}
	found = true
	return
}

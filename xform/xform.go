/*
Package xform computes the uniform values used to transform the triangle in
the vertex stage.  Matrices are built as f32.Mat4 values, whose vectors are
rows, and serialized into the column-major order GL expects.

	m := xform.RotationZ(xform.Degrees(90))
	data := xform.Serialize4(nil, m)
	glctx.UniformMatrix4fv(u, data)
*/
package xform

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Degrees converts an angle in degrees to radians.
func Degrees(deg float32) f32.Radian {
	return f32.Radian(math.Pi * float64(deg) / 180.0)
}

// RotationZ returns a matrix rotating points by r about the Z axis.
//
//	x' = x cos r - y sin r
//	y' = x sin r + y cos r
//	z' = z
func RotationZ(r f32.Radian) *f32.Mat4 {
	cos := float32(math.Cos(float64(r)))
	sin := float32(math.Sin(float64(r)))
	return &f32.Mat4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns the vec4 added to each vertex position to offset it
// by v.  The fourth component is zero so w is left untouched.
func Translation(v f32.Vec3) [4]float32 {
	return [4]float32{v[0], v[1], v[2], 0}
}

// Serialize4 returns a slice containing m serialized into column-major order.
// If len(dst) is at least 16 then a slice of dst will be used to serialize
// the data and returned.
func Serialize4(dst []float32, m *f32.Mat4) []float32 {
	if len(dst) < 16 {
		dst = make([]float32, 16)
	}
	dst = dst[:16]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[4*col+row] = m[row][col]
		}
	}
	return dst
}

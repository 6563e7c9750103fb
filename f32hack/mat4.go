// Package f32hack holds matrix helpers for golang.org/x/mobile/exp/f32.
//
// The f32.Mat4 type is documented as row-major (m[row][col]) but some of the
// package's constructors do not agree with that documentation. The helpers
// here build matrices in the documented form and Serialize4 turns them into
// the column-major layout gl.Context.UniformMatrix4fv expects.
package f32hack

import (
	"github.com/chewxy/math32"
	"golang.org/x/mobile/exp/f32"
)

// Radians converts an angle in degrees to an f32.Radian.
func Radians(deg float32) f32.Radian {
	return f32.Radian(deg * math32.Pi / 180)
}

// SetPerspective sets m to a perspective projection with vertical field of
// view fovy. Unlike f32.Mat4.Perspective every element of m is written, so m
// need not be zeroed beforehand.
func SetPerspective(m *f32.Mat4, fovy f32.Radian, aspect, near, far float32) {
	f := 1 / math32.Tan(float32(fovy)/2)
	nf := 1 / (near - far)
	*m = f32.Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, 2 * far * near * nf},
		{0, 0, -1, 0},
	}
}

// Translate sets m to m*T where T translates by v. Repeated calls compose,
// the most recent translation being applied to vertices first.
func Translate(m *f32.Mat4, v f32.Vec3) {
	for i := range m {
		m[i][3] += m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
}

// Serialize4 returns a slice containing m serialized into column-major order.
// If len(dst) is at least 16 then a slice of dst will be used to serialize the
// data and returned.
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

package vector_math

import (
	lin "github.com/xlab/linmath"
	"golang.org/x/image/math/f32"
)

// Conversions to the array based types of golang.org/x/image/math/f32 and
// github.com/xlab/linmath, so values can be handed to code built on either.

func (v *Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// F32 returns m as an f32.Mat4, which is stored row-major.
func (m *Mat4) F32() f32.Mat4 {
	var f f32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			f[4*r+c] = m[c*4+r]
		}
	}
	return f
}

func Mat4FromF32(f f32.Mat4) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = f[4*r+c]
		}
	}
	return m
}

func (v *Vec3) Linmath() lin.Vec3 {
	return lin.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromLinmath(v lin.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Linmath returns m as a linmath matrix. Both are column-major, l[c][r] is
// column c row r.
func (m *Mat4) Linmath() lin.Mat4x4 {
	var l lin.Mat4x4
	for c := range l {
		for r := range l[c] {
			l[c][r] = m[c*4+r]
		}
	}
	return l
}

func Mat4FromLinmath(l *lin.Mat4x4) Mat4 {
	var m Mat4
	for c := range l {
		for r := range l[c] {
			m[c*4+r] = l[c][r]
		}
	}
	return m
}

func (q *Quat) Linmath() lin.Quat {
	return lin.Quat{q.X, q.Y, q.Z, q.W}
}

func QuatFromLinmath(l lin.Quat) Quat {
	return Quat{X: l[0], Y: l[1], Z: l[2], W: l[3]}
}

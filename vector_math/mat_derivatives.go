package vector_math

import "math"

// Transforms and projections. All of them follow the column-major layout
// used by OpenGL style math libraries, translation lives in m[12], m[13], m[14].

func (m *Mat4) Translate(v Vec3) *Mat4 {
	return m.TranslateByValues(v.X, v.Y, v.Z)
}

// TranslateByValues post multiplies m with a translation, so the translation
// is applied in the space already described by m.
func (m *Mat4) TranslateByValues(x float32, y float32, z float32) *Mat4 {
	m[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	m[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	m[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	m[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
	return m
}

func (m *Mat4) Scale(v Vec3) *Mat4 {
	for r := 0; r < 4; r++ {
		m[r] *= v.X
		m[4+r] *= v.Y
		m[8+r] *= v.Z
	}
	return m
}

// Rotate post multiplies m with a rotation of rad radians around axis. The
// axis does not need to be normalized, a zero length axis leaves m unchanged.
func (m *Mat4) Rotate(rad float64, axis Vec3) *Mat4 {
	n := axis.Clone().Normalize()
	if n.Magnitude(true) < Epsilon {
		return m
	}

	sinT := float32(math.Sin(rad))
	cosT := float32(math.Cos(rad))
	t := 1 - cosT

	// rotation basis, b[j][k] is column j row k
	b := [3][3]float32{
		{n.X*n.X*t + cosT, n.Y*n.X*t + n.Z*sinT, n.Z*n.X*t - n.Y*sinT},
		{n.X*n.Y*t - n.Z*sinT, n.Y*n.Y*t + cosT, n.Z*n.Y*t + n.X*sinT},
		{n.X*n.Z*t + n.Y*sinT, n.Y*n.Z*t - n.X*sinT, n.Z*n.Z*t + cosT},
	}

	a := *m
	for c := 0; c < 3; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[r]*b[c][0] + a[4+r]*b[c][1] + a[8+r]*b[c][2]
		}
	}
	return m
}

// SetRotationFromQuat overwrites the upper 3x3 block of m with the rotation
// described by the unit quaternion q. Translation and the last row stay.
func (m *Mat4) SetRotationFromQuat(q Quat) *Mat4 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	xx := q.X * x2
	yx := q.Y * x2
	yy := q.Y * y2
	zx := q.Z * x2
	zy := q.Z * y2
	zz := q.Z * z2
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2

	m[0] = 1 - yy - zz
	m[1] = yx + wz
	m[2] = zx - wy
	m[4] = yx - wz
	m[5] = 1 - xx - zz
	m[6] = zy + wx
	m[8] = zx + wy
	m[9] = zy - wx
	m[10] = 1 - xx - yy
	return m
}

// Frustum implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/glFrustum.xml
func (m *Mat4) Frustum(left, right, bottom, top, near, far float32) *Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	*m = Mat4{
		near * 2 * rl, 0, 0, 0,
		0, near * 2 * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1,
		0, 0, far * near * 2 * nf, 0,
	}
	return m
}

// Perspective implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/gluPerspective.xml
// fovy is the vertical field of view in radians. An unset (0) or +Inf far plane builds
// the infinite far plane variant.
func (m *Mat4) Perspective(fovy float64, aspect float32, near float32, far float32) *Mat4 {
	f := float32(1 / math.Tan(fovy/2))
	*m = Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 0, -1,
		0, 0, 0, 0,
	}
	if far == 0 || math.IsInf(f64(far), 1) {
		m[10] = -1
		m[14] = -2 * near
		return m
	}
	nf := 1 / (near - far)
	m[10] = (far + near) * nf
	m[14] = 2 * far * near * nf
	return m
}

func (m *Mat4) PerspectiveInfinite(fovy float64, aspect float32, near float32) *Mat4 {
	return m.Perspective(fovy, aspect, near, float32(math.Inf(1)))
}

// Ortho implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/glOrtho.xml
func (m *Mat4) Ortho(left, right, bottom, top, near, far float32) *Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	*m = Mat4{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}
	return m
}

// LookAt implemented after http://www.opengl.org/sdk/docs/man2/xhtml/gluLookAt.xml
// If eye and target coincide there is no view direction and m becomes identity.
func (m *Mat4) LookAt(eye Vec3, target Vec3, up Vec3) *Mat4 {
	z := eye.Clone().Sub(target)
	if z.MagnitudeSquared() == 0 {
		return m.Identity()
	}
	z.Normalize()
	x := new(Vec3).Cross(up, *z).Normalize()
	y := new(Vec3).Cross(*z, *x)

	*m = Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
	return m
}

// Constructors returning fresh matrices for the common cases.

func NewTranslation(t Vec3) Mat4 {
	m := NewMat4()
	m.Translate(t)
	return m
}

func NewScale(s Vec3) Mat4 {
	m := NewMat4()
	m.Scale(s)
	return m
}

func NewRotation(rad float64, axis Vec3) Mat4 {
	m := NewMat4()
	m.Rotate(rad, axis)
	return m
}

func NewRotationFromQuat(q Quat) Mat4 {
	m := NewMat4()
	m.SetRotationFromQuat(q)
	return m
}

func NewPerspective(fovy float64, aspect float32, zNear float32, zFar float32) Mat4 {
	var m Mat4
	m.Perspective(fovy, aspect, zNear, zFar)
	return m
}

func NewOrtho(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m.Ortho(left, right, bottom, top, near, far)
	return m
}

func NewLookAt(camPos Vec3, camTarget Vec3, up Vec3) Mat4 {
	var m Mat4
	m.LookAt(camPos, camTarget, up)
	return m
}

// Axis aligned rotations written out by hand, mainly useful to verify Rotate.

func NewRotX(rad float64) Mat4 {
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func NewRotY(rad float64) Mat4 {
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func NewRotZ(rad float64) Mat4 {
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

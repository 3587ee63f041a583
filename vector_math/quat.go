package vector_math

import (
	"fmt"
	"math"
)

// Quat is a quaternion with the real part in W. It describes a rotation when
// normalized, but nothing enforces that. Slerp, SetRotationFromQuat and the
// axis extraction on Vec3 expect unit quaternions.
type Quat struct {
	X, Y, Z, W float32
}

// NewQuat returns the identity rotation.
func NewQuat() *Quat {
	return &Quat{W: 1}
}

func (q *Quat) Set(x float32, y float32, z float32, w float32) *Quat {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
	return q
}

func (q *Quat) Copy(from Quat) *Quat {
	*q = from
	return q
}

func (q *Quat) Clone() *Quat {
	c := *q
	return &c
}

// SetAxisAngle sets q to a rotation of rad radians around the unit vector axis.
func (q *Quat) SetAxisAngle(axis Vec3, rad float64) *Quat {
	rad /= 2
	s := math.Sin(rad)
	return q.Set(
		float32(s*f64(axis.X)),
		float32(s*f64(axis.Y)),
		float32(s*f64(axis.Z)),
		float32(math.Cos(rad)),
	)
}

func (q *Quat) Dot(o Quat) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Angle returns the angle in radians of the rotation taking q to o.
func (q *Quat) Angle(o Quat) float32 {
	d := f64(q.Dot(o))
	return float32(math.Acos(clamp(2*d*d-1, -1, 1)))
}

func (q *Quat) Length() float32 {
	return float32(math.Sqrt(f64(q.Dot(*q))))
}

// Normalize scales q to unit length, the zero quaternion is left as is.
func (q *Quat) Normalize() *Quat {
	l := q.Length()
	if l == 0 {
		return q
	}
	return q.MulScalar(1 / l)
}

// Mul sets q to the Hamilton product q * o. The product is not commutative.
func (q *Quat) Mul(o Quat) *Quat {
	ax, ay, az, aw := q.X, q.Y, q.Z, q.W
	return q.Set(
		ax*o.W+aw*o.X+ay*o.Z-az*o.Y,
		ay*o.W+aw*o.Y+az*o.X-ax*o.Z,
		az*o.W+aw*o.Z+ax*o.Y-ay*o.X,
		aw*o.W-ax*o.X-ay*o.Y-az*o.Z,
	)
}

func (q *Quat) MulScalar(s float32) *Quat {
	q.X *= s
	q.Y *= s
	q.Z *= s
	q.W *= s
	return q
}

// CalculateW derives W from X, Y and Z assuming q is a unit quaternion.
func (q *Quat) CalculateW() *Quat {
	q.W = float32(math.Sqrt(math.Abs(1 - f64(q.X)*f64(q.X) - f64(q.Y)*f64(q.Y) - f64(q.Z)*f64(q.Z))))
	return q
}

func (q *Quat) vectorLength() float64 {
	return math.Sqrt(f64(q.X)*f64(q.X) + f64(q.Y)*f64(q.Y) + f64(q.Z)*f64(q.Z))
}

// Exp sets q to the quaternion exponential e^q.
func (q *Quat) Exp() *Quat {
	r := q.vectorLength()
	et := math.Exp(f64(q.W))
	s := 0.0
	if r > 0 {
		s = et * math.Sin(r) / r
	}
	return q.Set(
		float32(f64(q.X)*s),
		float32(f64(q.Y)*s),
		float32(f64(q.Z)*s),
		float32(et*math.Cos(r)),
	)
}

// Log sets q to its natural logarithm.
func (q *Quat) Log() *Quat {
	r := q.vectorLength()
	t := 0.0
	if r > 0 {
		t = math.Atan2(r, f64(q.W)) / r
	}
	lenSq := r*r + f64(q.W)*f64(q.W)
	return q.Set(
		float32(f64(q.X)*t),
		float32(f64(q.Y)*t),
		float32(f64(q.Z)*t),
		float32(0.5*math.Log(lenSq)),
	)
}

// Pow raises q to the given power via exp(power * ln(q)).
func (q *Quat) Pow(power float32) *Quat {
	return q.Log().MulScalar(power).Exp()
}

// Slerp interpolates from q towards o along the shorter arc. Nearly parallel
// inputs fall back to a linear blend.
func (q *Quat) Slerp(o Quat, amount float32) *Quat {
	bx, by, bz, bw := f64(o.X), f64(o.Y), f64(o.Z), f64(o.W)
	cos := f64(q.X)*bx + f64(q.Y)*by + f64(q.Z)*bz + f64(q.W)*bw
	if cos < 0 {
		cos = -cos
		bx, by, bz, bw = -bx, -by, -bz, -bw
	}

	t := f64(amount)
	scale0, scale1 := 1-t, t
	if 1-cos > Epsilon {
		omega := math.Acos(cos)
		sin := math.Sin(omega)
		scale0 = math.Sin((1-t)*omega) / sin
		scale1 = math.Sin(t*omega) / sin
	}

	return q.Set(
		float32(scale0*f64(q.X)+scale1*bx),
		float32(scale0*f64(q.Y)+scale1*by),
		float32(scale0*f64(q.Z)+scale1*bz),
		float32(scale0*f64(q.W)+scale1*bw),
	)
}

// Invert sets q to its multiplicative inverse. The zero quaternion has none
// and becomes (0, 0, 0, 0).
func (q *Quat) Invert() *Quat {
	dot := q.Dot(*q)
	if dot == 0 {
		return q.Set(0, 0, 0, 0)
	}
	inv := 1 / dot
	return q.Set(-q.X*inv, -q.Y*inv, -q.Z*inv, q.W*inv)
}

func (q *Quat) Conjugate() *Quat {
	return q.Set(-q.X, -q.Y, -q.Z, q.W)
}

// FromEuler sets q from euler angles given in degrees, composed in XYZ order.
func (q *Quat) FromEuler(x float32, y float32, z float32) *Quat {
	halfToRad := 0.5 * math.Pi / 180.0
	hx := f64(x) * halfToRad
	hy := f64(y) * halfToRad
	hz := f64(z) * halfToRad
	sx, cx := math.Sin(hx), math.Cos(hx)
	sy, cy := math.Sin(hy), math.Cos(hy)
	sz, cz := math.Sin(hz), math.Cos(hz)

	return q.Set(
		float32(sx*cy*cz-cx*sy*sz),
		float32(cx*sy*cz+sx*cy*sz),
		float32(cx*cy*sz-sx*sy*cz),
		float32(cx*cy*cz+sx*sy*sz),
	)
}

func (q *Quat) FromEulerVec(v Vec3) *Quat {
	return q.FromEuler(v.X, v.Y, v.Z)
}

// CopyFromMat4 extracts the rotation of m into q. Per axis scale is divided
// out of the basis columns first, so m may carry scale but no shear.
func (q *Quat) CopyFromMat4(m *Mat4) *Quat {
	scale := new(Vec3).CopyFromMat4Scale(m).Inverse()
	sx, sy, sz := f64(scale.X), f64(scale.Y), f64(scale.Z)

	// s[c*3+r] is the unscaled 3x3 rotation block, column c row r
	s := [9]float64{
		f64(m[0]) * sx, f64(m[1]) * sx, f64(m[2]) * sx,
		f64(m[4]) * sy, f64(m[5]) * sy, f64(m[6]) * sy,
		f64(m[8]) * sz, f64(m[9]) * sz, f64(m[10]) * sz,
	}
	trace := s[0] + s[4] + s[8]

	var x, y, z, w float64
	switch {
	case trace > 0:
		S := math.Sqrt(trace+1) * 2
		x = (s[5] - s[7]) / S
		y = (s[6] - s[2]) / S
		z = (s[1] - s[3]) / S
		w = 0.25 * S
	case s[0] > s[4] && s[0] > s[8]:
		S := math.Sqrt(1+s[0]-s[4]-s[8]) * 2
		x = 0.25 * S
		y = (s[1] + s[3]) / S
		z = (s[6] + s[2]) / S
		w = (s[5] - s[7]) / S
	case s[4] > s[8]:
		S := math.Sqrt(1+s[4]-s[0]-s[8]) * 2
		x = (s[1] + s[3]) / S
		y = 0.25 * S
		z = (s[5] + s[7]) / S
		w = (s[6] - s[2]) / S
	default:
		S := math.Sqrt(1+s[8]-s[0]-s[4]) * 2
		x = (s[6] + s[2]) / S
		y = (s[5] + s[7]) / S
		z = 0.25 * S
		w = (s[1] - s[3]) / S
	}
	return q.Set(float32(x), float32(y), float32(z), float32(w))
}

func (q Quat) String() string {
	return fmt.Sprintf("[%v %v %v | %v]", q.X, q.Y, q.Z, q.W)
}

package vector_math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D point or direction. Methods with a *Vec3 receiver mutate the
// receiver and return it, so calls can be chained:
//
//	v := NewVec3(1, 2, 3)
//	v.Clone().Sub(other).Normalize()
//
// Use Clone before chaining when the original must stay untouched.
type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero = Vec3{}
	Vec3Up   = Vec3{Y: 1}
)

func NewVec3(x float32, y float32, z float32) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

func (v *Vec3) Set(x float32, y float32, z float32) *Vec3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

func (v *Vec3) Copy(from Vec3) *Vec3 {
	return v.Set(from.X, from.Y, from.Z)
}

func (v *Vec3) Clone() *Vec3 {
	c := *v
	return &c
}

// AppendTo appends the components in x, y, z order to dst.
func (v *Vec3) AppendTo(dst []float32) []float32 {
	return append(dst, v.X, v.Y, v.Z)
}

// Magnitude returns the euclidean length. The abs flag only exists for call
// site compatibility, a norm is never negative so it has no effect.
func (v *Vec3) Magnitude(abs bool) float32 {
	return float32(math.Sqrt(v.magnitudeSquared64()))
}

func (v *Vec3) MagnitudeSquared() float32 {
	return float32(v.magnitudeSquared64())
}

func (v *Vec3) magnitudeSquared64() float64 {
	return f64(v.X)*f64(v.X) + f64(v.Y)*f64(v.Y) + f64(v.Z)*f64(v.Z)
}

func (v *Vec3) Add(w Vec3) *Vec3 {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	return v
}

func (v *Vec3) Sub(w Vec3) *Vec3 {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	return v
}

func (v *Vec3) Mul(w Vec3) *Vec3 {
	v.X *= w.X
	v.Y *= w.Y
	v.Z *= w.Z
	return v
}

func (v *Vec3) MulScalar(s float32) *Vec3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

func (v *Vec3) Div(w Vec3) *Vec3 {
	v.X /= w.X
	v.Y /= w.Y
	v.Z /= w.Z
	return v
}

func (v *Vec3) DivScalar(s float32) *Vec3 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

func (v *Vec3) Ceil() *Vec3 {
	return v.Set(
		float32(math.Ceil(f64(v.X))),
		float32(math.Ceil(f64(v.Y))),
		float32(math.Ceil(f64(v.Z))),
	)
}

func (v *Vec3) Floor() *Vec3 {
	return v.Set(
		float32(math.Floor(f64(v.X))),
		float32(math.Floor(f64(v.Y))),
		float32(math.Floor(f64(v.Z))),
	)
}

func (v *Vec3) Round() *Vec3 {
	return v.Set(
		float32(math.Round(f64(v.X))),
		float32(math.Round(f64(v.Y))),
		float32(math.Round(f64(v.Z))),
	)
}

func (v *Vec3) Min(w Vec3) *Vec3 {
	v.X = min(v.X, w.X)
	v.Y = min(v.Y, w.Y)
	v.Z = min(v.Z, w.Z)
	return v
}

func (v *Vec3) Max(w Vec3) *Vec3 {
	v.X = max(v.X, w.X)
	v.Y = max(v.Y, w.Y)
	v.Z = max(v.Z, w.Z)
	return v
}

func (v *Vec3) Dist(w Vec3) float32 {
	return float32(math.Sqrt(f64(v.DistSquared(w))))
}

func (v *Vec3) DistSquared(w Vec3) float32 {
	d := Vec3{X: w.X - v.X, Y: w.Y - v.Y, Z: w.Z - v.Z}
	return d.MagnitudeSquared()
}

func (v *Vec3) Negate() *Vec3 {
	return v.Set(-v.X, -v.Y, -v.Z)
}

// Inverse replaces every component with its reciprocal. Components that are
// 0 stay 0 instead of turning into infinities.
func (v *Vec3) Inverse() *Vec3 {
	return v.Set(reciprocal(v.X), reciprocal(v.Y), reciprocal(v.Z))
}

func reciprocal(f float32) float32 {
	if f == 0 {
		return 0
	}
	return 1 / f
}

// Normalize scales v to unit length. The zero vector has no direction and is
// left as the zero vector.
func (v *Vec3) Normalize() *Vec3 {
	l := v.Magnitude(true)
	if l == 0 {
		return v.Set(0, 0, 0)
	}
	return v.DivScalar(l)
}

func (v *Vec3) Dot(w Vec3) float32 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

// Cross stores a x b in v. The previous value of v is not an operand.
func (v *Vec3) Cross(a Vec3, b Vec3) *Vec3 {
	return v.Set(
		(a.Y*b.Z)-(a.Z*b.Y),
		(a.Z*b.X)-(a.X*b.Z),
		(a.X*b.Y)-(a.Y*b.X),
	)
}

func (v *Vec3) Lerp(to Vec3, by float32) *Vec3 {
	return v.Set(
		Lerp(v.X, to.X, by),
		Lerp(v.Y, to.Y, by),
		Lerp(v.Z, to.Z, by),
	)
}

// Angle returns the angle between v and w in radians. If either vector has no
// length the angle is reported as 0.
func (v *Vec3) Angle(w Vec3) float32 {
	mag := math.Sqrt(v.magnitudeSquared64() * w.magnitudeSquared64())
	if mag == 0 {
		return 0
	}
	cos := (f64(v.X)*f64(w.X) + f64(v.Y)*f64(w.Y) + f64(v.Z)*f64(w.Z)) / mag
	return float32(math.Acos(clamp(cos, -1, 1)))
}

// Rotate rotates the point v around the pivot by the given euler angles in
// radians, applied in the same XYZ order as Quat.FromEuler.
func (v *Vec3) Rotate(around Vec3, byRadianAngles Vec3) *Vec3 {
	q := NewQuat().FromEuler(
		float32(ToDeg(f64(byRadianAngles.X))),
		float32(ToDeg(f64(byRadianAngles.Y))),
		float32(ToDeg(f64(byRadianAngles.Z))),
	)
	return v.Sub(around).ApplyQuat(*q).Add(around)
}

// ApplyMat4 transforms (v, w) by m and keeps the xyz part. Use w = 1 for
// points and w = 0 for directions.
func (v *Vec3) ApplyMat4(m *Mat4, w float32) *Vec3 {
	x, y, z := v.X, v.Y, v.Z
	return v.Set(
		m[0]*x+m[4]*y+m[8]*z+m[12]*w,
		m[1]*x+m[5]*y+m[9]*z+m[13]*w,
		m[2]*x+m[6]*y+m[10]*z+m[14]*w,
	)
}

// ApplyQuat rotates v by the unit quaternion q (q * v * q^-1).
func (v *Vec3) ApplyQuat(q Quat) *Vec3 {
	// t = 2 * cross(q.xyz, v); v' = v + w*t + cross(q.xyz, t)
	qv := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := new(Vec3).Cross(qv, *v).MulScalar(2)
	c := new(Vec3).Cross(qv, *t)
	return v.Add(*t.MulScalar(q.W)).Add(*c)
}

func (v *Vec3) CopyFromMat4Pos(m *Mat4) *Vec3 {
	return v.Set(m[12], m[13], m[14])
}

// CopyFromMat4Scale reads the per axis scale as the length of the first three
// basis columns. The result is only meaningful for matrices without shear.
func (v *Vec3) CopyFromMat4Scale(m *Mat4) *Vec3 {
	return v.Set(
		float32(math.Sqrt(f64(m[0])*f64(m[0])+f64(m[1])*f64(m[1])+f64(m[2])*f64(m[2]))),
		float32(math.Sqrt(f64(m[4])*f64(m[4])+f64(m[5])*f64(m[5])+f64(m[6])*f64(m[6]))),
		float32(math.Sqrt(f64(m[8])*f64(m[8])+f64(m[9])*f64(m[9])+f64(m[10])*f64(m[10]))),
	)
}

// CopyFromQuatAxisAngle stores the rotation axis of the unit quaternion q.
// Without rotation the axis is undefined and (1, 0, 0) is used instead.
func (v *Vec3) CopyFromQuatAxisAngle(q Quat) *Vec3 {
	rad := math.Acos(clamp(f64(q.W), -1, 1)) * 2
	s := math.Sin(rad / 2)
	if s > Epsilon {
		return v.Set(
			float32(f64(q.X)/s),
			float32(f64(q.Y)/s),
			float32(f64(q.Z)/s),
		)
	}
	return v.Set(1, 0, 0)
}

func (v Vec3) String() string {
	return fmt.Sprintf("[%v %v %v]", v.X, v.Y, v.Z)
}

package vector_math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, expected Vec3, actual Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, expected.AppendTo(nil), actual.AppendTo(nil), testDelta, "expected %s, actual %s", expected, actual)
}

func TestVec3Cross(t *testing.T) {
	v := NewVec3(1, 0, 0).Cross(Vec3{X: 1}, Vec3{Y: 1})
	assert.Equal(t, Vec3{Z: 1}, *v)

	// the receiver is only written to
	v.Cross(Vec3{Y: 1}, Vec3{Z: 1})
	assert.Equal(t, Vec3{X: 1}, *v)
}

func TestVec3Arithmetic(t *testing.T) {
	v := NewVec3(1, 2, 3)
	v.Add(Vec3{X: 1, Y: 1, Z: 1}).Mul(Vec3{X: 2, Y: 3, Z: 4}).Sub(Vec3{X: 4})
	assert.Equal(t, Vec3{X: 0, Y: 9, Z: 16}, *v)

	v.Div(Vec3{X: 1, Y: 3, Z: 4}).MulScalar(2).DivScalar(4)
	assert.Equal(t, Vec3{X: 0, Y: 1.5, Z: 2}, *v)

	v.Negate()
	assert.Equal(t, Vec3{X: 0, Y: -1.5, Z: -2}, *v)
}

func TestVec3CloneIsIndependent(t *testing.T) {
	v := NewVec3(1, 2, 3)
	c := v.Clone().MulScalar(2)
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, *v)
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, *c)

	var to Vec3
	to.Copy(*c)
	assert.Equal(t, *c, to)
}

func TestVec3Magnitude(t *testing.T) {
	v := NewVec3(3, 4, 0)
	assert.Equal(t, float32(5), v.Magnitude(true))
	assert.Equal(t, v.Magnitude(true), v.Magnitude(false))
	assert.Equal(t, float32(25), v.MagnitudeSquared())
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	assertVecInDelta(t, Vec3{X: 0.6, Y: 0.8}, *v)

	zero := NewVec3(0, 0, 0).Normalize()
	assert.Equal(t, Vec3{}, *zero)
}

func TestVec3Inverse(t *testing.T) {
	v := NewVec3(2, 0, -4).Inverse()
	assert.Equal(t, Vec3{X: 0.5, Y: 0, Z: -0.25}, *v)
}

func TestVec3Dist(t *testing.T) {
	a := NewVec3(1, 1, 1)
	assert.Equal(t, float32(3), a.Dist(Vec3{X: 3, Y: 3, Z: 2}))
	assert.Equal(t, float32(9), a.DistSquared(Vec3{X: 3, Y: 3, Z: 2}))
}

func TestVec3Angle(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"orthogonal", Vec3{X: 1}, Vec3{Y: 2}, math.Pi / 2},
		{"parallel", Vec3{X: 1, Y: 1, Z: 1}, Vec3{X: 3, Y: 3, Z: 3}, 0},
		{"opposite", Vec3{X: 0.1, Y: 0.7, Z: 0.3}, Vec3{X: -0.1, Y: -0.7, Z: -0.3}, math.Pi},
		{"zero", Vec3{}, Vec3{X: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Angle(tt.b)
			assert.False(t, math.IsNaN(float64(got)))
			assert.InDelta(t, tt.want, got, testDelta)
		})
	}
}

func TestVec3Rounding(t *testing.T) {
	assert.Equal(t, Vec3{X: 2, Y: -1, Z: 0}, *NewVec3(1.2, -1.7, -0.1).Ceil())
	assert.Equal(t, Vec3{X: 1, Y: -2, Z: -1}, *NewVec3(1.2, -1.7, -0.1).Floor())
	assert.Equal(t, Vec3{X: 1, Y: -2, Z: 0}, *NewVec3(1.2, -1.7, -0.1).Round())
}

func TestVec3MinMaxLerp(t *testing.T) {
	assert.Equal(t, Vec3{X: 1, Y: -2, Z: 0}, *NewVec3(1, 5, 0).Min(Vec3{X: 3, Y: -2, Z: 1}))
	assert.Equal(t, Vec3{X: 3, Y: 5, Z: 1}, *NewVec3(1, 5, 0).Max(Vec3{X: 3, Y: -2, Z: 1}))
	assert.Equal(t, Vec3{X: 5, Y: 1, Z: -1}, *NewVec3(0, 0, 0).Lerp(Vec3{X: 10, Y: 2, Z: -2}, 0.5))
}

func TestVec3AppendTo(t *testing.T) {
	dst := []float32{9}
	dst = NewVec3(1, 2, 3).AppendTo(dst)
	assert.Equal(t, []float32{9, 1, 2, 3}, dst)
}

func TestVec3Rotate(t *testing.T) {
	p := NewVec3(1, 0, 0).Rotate(Vec3Zero, Vec3{Z: math.Pi / 2})
	assertVecInDelta(t, Vec3{Y: 1}, *p)

	p = NewVec3(2, 1, 0).Rotate(Vec3{X: 1, Y: 1}, Vec3{Z: math.Pi / 2})
	assertVecInDelta(t, Vec3{X: 1, Y: 2}, *p)

	p = NewVec3(0, 1, 0).Rotate(Vec3Zero, Vec3{X: math.Pi / 2})
	assertVecInDelta(t, Vec3{Z: 1}, *p)
}

func TestVec3ApplyQuatMatchesMatrix(t *testing.T) {
	q := NewQuat().SetAxisAngle(*NewVec3(1, 2, -1).Normalize(), 1.3)
	m := NewRotationFromQuat(*q)

	byQuat := NewVec3(0.5, -2, 3).ApplyQuat(*q)
	byMat := NewVec3(0.5, -2, 3).ApplyMat4(&m, 0)
	assertVecInDelta(t, *byMat, *byQuat)
}

func TestVec3ApplyMat4(t *testing.T) {
	m := NewTranslation(Vec3{X: 1, Y: 2, Z: 3})
	assert.Equal(t, Vec3{X: 2, Y: 3, Z: 4}, *NewVec3(1, 1, 1).ApplyMat4(&m, 1))
	// directions ignore translation
	assert.Equal(t, Vec3{X: 1, Y: 1, Z: 1}, *NewVec3(1, 1, 1).ApplyMat4(&m, 0))
}

func TestVec3CopyFromMat4(t *testing.T) {
	m := NewTranslation(Vec3{X: 7, Y: 8, Z: 9})
	m.Rotate(0.8, Vec3{X: 1, Y: 1}).Scale(Vec3{X: 2, Y: 3, Z: 4})

	assert.Equal(t, Vec3{X: 7, Y: 8, Z: 9}, *new(Vec3).CopyFromMat4Pos(&m))
	assertVecInDelta(t, Vec3{X: 2, Y: 3, Z: 4}, *new(Vec3).CopyFromMat4Scale(&m))
}

func TestVec3CopyFromQuatAxisAngle(t *testing.T) {
	q := NewQuat().SetAxisAngle(Vec3{Y: 1}, 1)
	assertVecInDelta(t, Vec3{Y: 1}, *new(Vec3).CopyFromQuatAxisAngle(*q))

	// no rotation, any axis will do
	assert.Equal(t, Vec3{X: 1}, *new(Vec3).CopyFromQuatAxisAngle(*NewQuat()))
}

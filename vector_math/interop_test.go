package vector_math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	lin "github.com/xlab/linmath"
	"golang.org/x/image/math/f32"
)

func TestF32RoundTrip(t *testing.T) {
	m := NewTranslation(Vec3{X: 1, Y: 2, Z: 3})
	f := m.F32()
	// f32.Mat4 is row-major, translation is the last column of each row
	assert.Equal(t, float32(1), f[3])
	assert.Equal(t, float32(2), f[7])
	assert.Equal(t, float32(3), f[11])
	back := Mat4FromF32(f)
	assert.True(t, m.Equals(&back))

	v := Vec3{X: 4, Y: 5, Z: 6}
	assert.Equal(t, f32.Vec3{4, 5, 6}, v.F32())
	assert.Equal(t, v, Vec3FromF32(v.F32()))
}

func TestLinmathRoundTrip(t *testing.T) {
	m := NewRotation(0.3, Vec3{X: 1, Y: 2})
	m.TranslateByValues(1, 2, 3)
	l := m.Linmath()
	assert.Equal(t, m[12], l[3][0])
	back := Mat4FromLinmath(&l)
	assert.True(t, m.Equals(&back))

	q := Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	assert.Equal(t, q, QuatFromLinmath(q.Linmath()))

	v := Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, v, Vec3FromLinmath(v.Linmath()))
}

func TestPerspectiveMatchesLinmath(t *testing.T) {
	var l lin.Mat4x4
	l.Perspective(math.Pi/3, 1.6, 0.1, 100)
	assertMatInDelta(t, Mat4FromLinmath(&l), NewPerspective(math.Pi/3, 1.6, 0.1, 100))
}

func TestOrthoMatchesLinmath(t *testing.T) {
	var l lin.Mat4x4
	l.Ortho(-3, 2, -1, 4, 0.5, 20)
	assertMatInDelta(t, Mat4FromLinmath(&l), NewOrtho(-3, 2, -1, 4, 0.5, 20))
}

func TestMulMatchesLinmath(t *testing.T) {
	a := NewPerspective(math.Pi/4, 1.3, 0.1, 50)
	b := NewRotation(1.1, Vec3{X: 0.2, Y: 1, Z: 0.5})
	b.TranslateByValues(3, -1, 2)

	la, lb := a.Linmath(), b.Linmath()
	var lr lin.Mat4x4
	lr.Mult(&la, &lb)

	assertMatInDelta(t, Mat4FromLinmath(&lr), *a.Clone().Mul(&b))
}

func TestInvertMatchesLinmath(t *testing.T) {
	m := NewRotation(0.9, Vec3{X: 1, Y: -1, Z: 2})
	m.TranslateByValues(3, -1, 2).Scale(Vec3{X: 2, Y: 1, Z: 0.5})

	lm := m.Linmath()
	var li lin.Mat4x4
	li.Invert(&lm)

	inv, err := m.Clone().Invert()
	assert.NoError(t, err)
	assertMatInDelta(t, Mat4FromLinmath(&li), *inv)
}

package vector_math

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// Mat4 is a 4x4 matrix stored column-major: the element in column c and row r
// lives at index c*4+r. Matrices are post multiplied, written out the data
// reads like a row-major matrix.
//
// The zero value is the zero matrix, use NewMat4 for identity.
type Mat4 [16]float32

func NewMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4FromData copies column-major data into a new matrix.
func NewMat4FromData(data []float32) (Mat4, error) {
	var m Mat4
	if len(data) != len(m) {
		return m, fmt.Errorf("%w, got %d", ErrMatrixDataLength, len(data))
	}
	copy(m[:], data)
	return m, nil
}

// Data exposes the backing storage as a flat slice of 16 column-major floats,
// ready to be uploaded as a uniform. Writes to the slice change the matrix.
func (m *Mat4) Data() []float32 {
	return m[:]
}

// Bytes returns the backing storage reinterpreted as bytes in native (little
// endian on all supported targets) order without copying.
func (m *Mat4) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&m[0])), len(m)*4)
}

// ByteSize is the amount of memory a Mat4 occupies.
func (m *Mat4) ByteSize() int {
	return int(unsafe.Sizeof(*m))
}

// Copy writes m into to.
func (m *Mat4) Copy(to *Mat4) {
	*to = *m
}

// Set overwrites m with from.
func (m *Mat4) Set(from *Mat4) *Mat4 {
	*m = *from
	return m
}

func (m *Mat4) Clone() *Mat4 {
	c := *m
	return &c
}

func (m *Mat4) Identity() *Mat4 {
	*m = NewMat4()
	return m
}

func (m *Mat4) Transpose() *Mat4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// cofactors2x2 returns the twelve 2x2 sub determinants of the upper (b00-b05)
// and lower (b06-b11) column pairs that both the inverse and the determinant
// are expanded from.
func (m *Mat4) cofactors2x2() [12]float32 {
	return [12]float32{
		m[0]*m[5] - m[1]*m[4],
		m[0]*m[6] - m[2]*m[4],
		m[0]*m[7] - m[3]*m[4],
		m[1]*m[6] - m[2]*m[5],
		m[1]*m[7] - m[3]*m[5],
		m[2]*m[7] - m[3]*m[6],
		m[8]*m[13] - m[9]*m[12],
		m[8]*m[14] - m[10]*m[12],
		m[8]*m[15] - m[11]*m[12],
		m[9]*m[14] - m[10]*m[13],
		m[9]*m[15] - m[11]*m[13],
		m[10]*m[15] - m[11]*m[14],
	}
}

func determinantOf(b [12]float32) float32 {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

func (m *Mat4) Determinant() float32 {
	return determinantOf(m.cofactors2x2())
}

// Invert replaces m with its inverse. Only a determinant of exactly 0 is
// considered singular, in that case ErrSingularMatrix is returned and m is
// left unchanged.
func (m *Mat4) Invert() (*Mat4, error) {
	b := m.cofactors2x2()
	det := determinantOf(b)
	if det == 0 {
		return m, ErrSingularMatrix
	}
	det = 1 / det

	a := *m
	m[0] = (a[5]*b[11] - a[6]*b[10] + a[7]*b[9]) * det
	m[1] = (a[2]*b[10] - a[1]*b[11] - a[3]*b[9]) * det
	m[2] = (a[13]*b[5] - a[14]*b[4] + a[15]*b[3]) * det
	m[3] = (a[10]*b[4] - a[9]*b[5] - a[11]*b[3]) * det
	m[4] = (a[6]*b[8] - a[4]*b[11] - a[7]*b[7]) * det
	m[5] = (a[0]*b[11] - a[2]*b[8] + a[3]*b[7]) * det
	m[6] = (a[14]*b[2] - a[12]*b[5] - a[15]*b[1]) * det
	m[7] = (a[8]*b[5] - a[10]*b[2] + a[11]*b[1]) * det
	m[8] = (a[4]*b[10] - a[5]*b[8] + a[7]*b[6]) * det
	m[9] = (a[1]*b[8] - a[0]*b[10] - a[3]*b[6]) * det
	m[10] = (a[12]*b[4] - a[13]*b[2] + a[15]*b[0]) * det
	m[11] = (a[9]*b[2] - a[8]*b[4] - a[11]*b[0]) * det
	m[12] = (a[5]*b[7] - a[4]*b[9] - a[6]*b[6]) * det
	m[13] = (a[0]*b[9] - a[1]*b[7] + a[2]*b[6]) * det
	m[14] = (a[13]*b[1] - a[12]*b[3] - a[14]*b[0]) * det
	m[15] = (a[8]*b[3] - a[9]*b[1] + a[10]*b[0]) * det
	return m, nil
}

// Adjoint replaces m with its classical adjugate (transposed cofactor matrix).
// The adjugate exists for singular matrices as well, so this never fails.
func (m *Mat4) Adjoint() *Mat4 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	m[0] = a11*(a22*a33-a23*a32) - a21*(a12*a33-a13*a32) + a31*(a12*a23-a13*a22)
	m[1] = -(a01*(a22*a33-a23*a32) - a21*(a02*a33-a03*a32) + a31*(a02*a23-a03*a22))
	m[2] = a01*(a12*a33-a13*a32) - a11*(a02*a33-a03*a32) + a31*(a02*a13-a03*a12)
	m[3] = -(a01*(a12*a23-a13*a22) - a11*(a02*a23-a03*a22) + a21*(a02*a13-a03*a12))
	m[4] = -(a10*(a22*a33-a23*a32) - a20*(a12*a33-a13*a32) + a30*(a12*a23-a13*a22))
	m[5] = a00*(a22*a33-a23*a32) - a20*(a02*a33-a03*a32) + a30*(a02*a23-a03*a22)
	m[6] = -(a00*(a12*a33-a13*a32) - a10*(a02*a33-a03*a32) + a30*(a02*a13-a03*a12))
	m[7] = a00*(a12*a23-a13*a22) - a10*(a02*a23-a03*a22) + a20*(a02*a13-a03*a12)
	m[8] = a10*(a21*a33-a23*a31) - a20*(a11*a33-a13*a31) + a30*(a11*a23-a13*a21)
	m[9] = -(a00*(a21*a33-a23*a31) - a20*(a01*a33-a03*a31) + a30*(a01*a23-a03*a21))
	m[10] = a00*(a11*a33-a13*a31) - a10*(a01*a33-a03*a31) + a30*(a01*a13-a03*a11)
	m[11] = -(a00*(a11*a23-a13*a21) - a10*(a01*a23-a03*a21) + a20*(a01*a13-a03*a11))
	m[12] = -(a10*(a21*a32-a22*a31) - a20*(a11*a32-a12*a31) + a30*(a11*a22-a12*a21))
	m[13] = a00*(a21*a32-a22*a31) - a20*(a01*a32-a02*a31) + a30*(a01*a22-a02*a21)
	m[14] = -(a00*(a11*a32-a12*a31) - a10*(a01*a32-a02*a31) + a30*(a01*a12-a02*a11))
	m[15] = a00*(a11*a22-a12*a21) - a10*(a01*a22-a02*a21) + a20*(a01*a12-a02*a11)
	return m
}

func (m *Mat4) Add(b *Mat4) *Mat4 {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

func (m *Mat4) Sub(b *Mat4) *Mat4 {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

func (m *Mat4) MulScalar(f float32) *Mat4 {
	for i := range m {
		m[i] *= f
	}
	return m
}

// Mul sets m to m * b. Each column of the result is the combination of the
// columns of m weighted by the matching column of b.
func (m *Mat4) Mul(b *Mat4) *Mat4 {
	a := *m
	for c := 0; c < 4; c++ {
		b0, b1, b2, b3 := b[c*4], b[c*4+1], b[c*4+2], b[c*4+3]
		for r := 0; r < 4; r++ {
			m[c*4+r] = b0*a[r] + b1*a[4+r] + b2*a[8+r] + b3*a[12+r]
		}
	}
	return m
}

// Equals compares every component exactly.
func (m *Mat4) Equals(b *Mat4) bool {
	return *m == *b
}

// EqualsApprox reports whether every component differs by no more than eps.
func (m *Mat4) EqualsApprox(b *Mat4, eps float32) bool {
	for i := range m {
		if float32(math.Abs(f64(m[i]-b[i]))) > eps {
			return false
		}
	}
	return true
}

// String prints the matrix row by row, the way it would be written on paper.
func (m Mat4) String() string {
	mStr := strings.Builder{}
	for r := 0; r < 4; r++ {
		if r > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("[%v %v %v %v]", m[r], m[4+r], m[8+r], m[12+r]))
	}
	return mStr.String()
}

func (m *Mat4) Describe() string {
	return fmt.Sprintf("4x4 Matrix, %d Bytes in memory:\n%s", m.ByteSize(), m.String())
}

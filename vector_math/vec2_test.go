package vector_math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2MapsUnitSquareToClipSquare(t *testing.T) {
	tests := []struct {
		uv       Vec2
		expected Vec3
	}{
		{Vec2{}, Vec3{X: -1, Y: -1, Z: 0.5}},
		{Vec2{X: 1, Y: 1}, Vec3{X: 1, Y: 1, Z: 0.5}},
		{Vec2{X: 0.5, Y: 0.25}, Vec3{X: 0, Y: -0.5, Z: 0.5}},
	}
	for _, tt := range tests {
		got := tt.uv.MulScalar(2).Add(Vec2{X: -1, Y: -1}).Vec3(0.5)
		assert.Equal(t, tt.expected, got, "uv %v", tt.uv)
	}
}

func TestVec2IsNotMutated(t *testing.T) {
	v := Vec2{X: 1, Y: 2}
	_ = v.Add(Vec2{X: 3, Y: 4})
	_ = v.MulScalar(5)
	assert.Equal(t, Vec2{X: 1, Y: 2}, v)
}

package model

import vm "local/vector_math"

// NewCubeModel builds a unit cube centered on the origin with one color per corner.
func NewCubeModel(name string) *Model {
	b := NewMeshBuilder()
	corners := []struct {
		pos, color vm.Vec3
		uv         vm.Vec2
	}{
		{vm.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, vm.Vec3{X: 1, Y: 0, Z: 0}, vm.Vec2{X: 1, Y: 1}},
		{vm.Vec3{X: 0.5, Y: -0.5, Z: -0.5}, vm.Vec3{X: 0, Y: 1, Z: 0}, vm.Vec2{X: 0, Y: 1}},
		{vm.Vec3{X: 0.5, Y: 0.5, Z: -0.5}, vm.Vec3{X: 0, Y: 0, Z: 1}, vm.Vec2{X: 0, Y: 0}},
		{vm.Vec3{X: -0.5, Y: 0.5, Z: -0.5}, vm.Vec3{X: 1, Y: 0.5, Z: 1}, vm.Vec2{X: 1, Y: 0}},
		{vm.Vec3{X: -0.5, Y: -0.5, Z: 0.5}, vm.Vec3{X: 1, Y: 0.5, Z: 0.5}, vm.Vec2{X: 1, Y: 1}},
		{vm.Vec3{X: 0.5, Y: -0.5, Z: 0.5}, vm.Vec3{X: 0.5, Y: 1, Z: 0.5}, vm.Vec2{X: 0, Y: 1}},
		{vm.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vm.Vec3{X: 0.5, Y: 0.5, Z: 1}, vm.Vec2{X: 0, Y: 0}},
		{vm.Vec3{X: -0.5, Y: 0.5, Z: 0.5}, vm.Vec3{X: 0, Y: 0.5, Z: 0}, vm.Vec2{X: 1, Y: 0}},
	}
	for _, c := range corners {
		b.AddVert(Vertex{Pos: c.pos, Color: c.color, TexCoord: c.uv})
	}

	b.AddQuad(2, 1, 0, 3) // front
	b.AddTri(5, 1, 6)     // right
	b.AddTri(1, 2, 6)
	b.AddTri(4, 5, 6) // back
	b.AddTri(7, 4, 6)
	b.AddTri(4, 7, 0) // left
	b.AddTri(0, 7, 3)
	b.AddTri(0, 1, 5) // top
	b.AddTri(5, 4, 0)
	b.AddTri(3, 7, 6) // bottom
	b.AddTri(2, 3, 6)

	return NewModel(b.Build(), name)
}

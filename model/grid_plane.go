package model

import vm "local/vector_math"

// NewGridPlane builds a 2x2 plane in the XY plane, split into cells x cells quads.
func NewGridPlane(name string, cells int) *Model {
	if cells < 1 {
		cells = 1
	}
	b := NewMeshBuilder()
	origin := vm.Vec2{X: -1, Y: -1}
	for row := 0; row <= cells; row++ {
		for col := 0; col <= cells; col++ {
			uv := vm.Vec2{X: float32(col) / float32(cells), Y: float32(row) / float32(cells)}
			b.AddVert(Vertex{
				Pos:      uv.MulScalar(2).Add(origin).Vec3(0),
				Color:    vm.Vec3{X: uv.X, Y: uv.Y, Z: 1 - uv.X},
				TexCoord: uv,
			})
		}
	}

	stride := uint32(cells + 1)
	for row := uint32(0); row < uint32(cells); row++ {
		for col := uint32(0); col < uint32(cells); col++ {
			i := row*stride + col
			b.AddQuad(i, i+stride, i+stride+1, i+1)
		}
	}
	m := NewModel(b.Build(), name)
	m.Type = MODEL_TYPE_GRID
	return m
}

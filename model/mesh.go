package model

type Mesh struct {
	Vertices []Vertex
	VIndices []uint32
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		VIndices: id,
	}
}

// MeshBuilder collects vertices and triangles before they are frozen into a Mesh.
type MeshBuilder struct {
	vertices []Vertex
	indices  []uint32
}

func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// AddVert appends a vertex and returns its index for use in AddTri.
func (b *MeshBuilder) AddVert(v Vertex) uint32 {
	b.vertices = append(b.vertices, v)
	return uint32(len(b.vertices) - 1)
}

func (b *MeshBuilder) AddTri(i0 uint32, i1 uint32, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// AddQuad adds the two triangles (i0, i1, i2) and (i2, i3, i0).
func (b *MeshBuilder) AddQuad(i0 uint32, i1 uint32, i2 uint32, i3 uint32) {
	b.AddTri(i0, i1, i2)
	b.AddTri(i2, i3, i0)
}

func (b *MeshBuilder) VertexCount() int {
	return len(b.vertices)
}

// Build returns a Mesh holding copies of the collected data, the builder can be reused afterwards.
func (b *MeshBuilder) Build() *Mesh {
	v := make([]Vertex, len(b.vertices))
	copy(v, b.vertices)
	id := make([]uint32, len(b.indices))
	copy(id, b.indices)
	return NewMesh(v, id)
}

func (b *MeshBuilder) Clear() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

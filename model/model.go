package model

import (
	"unsafe"

	"toy_renderbase/common"
)

// Model is a named mesh placed in the scene tree.
type Model struct {
	*Object3D
	Mesh *Mesh
	Type uint32
}

func NewModel(m *Mesh, n string) *Model {
	return &Model{
		Object3D: NewObject3D(n),
		Mesh:     m,
	}
}

// GetVBufferSize returns the size required for keeping the vertices of this model in device memory.
func (m *Model) GetVBufferSize() int {
	return int(unsafe.Sizeof(Vertex{})) * len(m.Mesh.Vertices)
}

// GetVBufferBytes returns the raw bytes representing all vertices for this model.
func (m *Model) GetVBufferBytes() ([]byte, error) {
	return common.RawBytes(m.Mesh.Vertices)
}

// GetIdxBufferSize returns the size required for keeping the indices of this model in device memory.
func (m *Model) GetIdxBufferSize() int {
	return int(unsafe.Sizeof(uint32(0))) * len(m.Mesh.VIndices)
}

// GetIdxBufferBytes returns the raw bytes representing the indices used to address vertex data for this model.
func (m *Model) GetIdxBufferBytes() ([]byte, error) {
	return common.RawBytes(m.Mesh.VIndices)
}

package model

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	vm "local/vector_math"
)

// Vertex is the per vertex layout shared with the shaders. Expected size in memory is 32 Byte:
// 12 (Pos) + 12 (Color) + 8 (TexCoord), all float32 and without padding.
type Vertex struct {
	Pos      vm.Vec3
	Color    vm.Vec3
	TexCoord vm.Vec2
}

// GetVertexBindingDescription describes how the backend steps through a buffer of Vertex values.
func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

// GetVertexAttributeDescriptions maps the Vertex fields onto shader input locations 0 to 2.
func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
		{
			Location: 2,
			Binding:  0,
			Format:   vk.FormatR32g32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.TexCoord)),
		},
	}
}

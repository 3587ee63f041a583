package model

import (
	"toy_renderbase/common"

	vk "github.com/goki/vulkan"
	vm "local/vector_math"
)

// UniformBufferObject is the per draw call uniform block. All matrices are uploaded as their flat
// column-major 16 float storage, in the order Model, View, Projection.
type UniformBufferObject struct {
	Model      vm.Mat4
	View       vm.Mat4
	Projection vm.Mat4 // 192byte calculated size
}

// SizeOfUbo returns size of the UniformBufferObject as the backend expects it in buffer sizes.
func SizeOfUbo() vk.DeviceSize {
	var m vm.Mat4
	return vk.DeviceSize(m.ByteSize() * 3)
}

// ModelPushConstantsSize reports the memory size required to push only the model matrix (4x4) as
// a push constant.
func ModelPushConstantsSize() uint32 {
	var m vm.Mat4
	return uint32(m.ByteSize())
}

func (u *UniformBufferObject) Bytes() []byte {
	b := make([]byte, 0, SizeOfUbo())
	b = append(b, common.ToByteArr(u.Model.Data())...)
	b = append(b, common.ToByteArr(u.View.Data())...)
	return append(b, common.ToByteArr(u.Projection.Data())...)
}

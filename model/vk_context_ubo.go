package model

import (
	"toy_renderbase/common"

	vk "github.com/goki/vulkan"
)

// Model types reported to the shaders through the ContextUniformBufferObject.
const (
	MODEL_TYPE_SOLID uint32 = iota
	MODEL_TYPE_GRID
)

// ContextUniformBufferObject is bound for each model between draw calls and tells the shaders what
// kind of geometry follows.
type ContextUniformBufferObject struct {
	ModelType uint32
}

func SizeOfCtxUbo() vk.DeviceSize {
	return vk.DeviceSize(4)
}

func (u *ContextUniformBufferObject) Bytes() ([]byte, error) {
	return common.RawBytes(u)
}

package main

import (
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"testing"
	"unsafe"
)

func TestUniformBufferObjectLayout(t *testing.T) {
	ubo := UniformBufferObject{}

	// Three tightly packed mat4s, matching the std140 block in the vertex shader
	assert.EqualValues(t, 192, unsafe.Sizeof(ubo))
	assert.EqualValues(t, 0, unsafe.Offsetof(ubo.Model))
	assert.EqualValues(t, 64, unsafe.Offsetof(ubo.View))
	assert.EqualValues(t, 128, unsafe.Offsetof(ubo.Proj))
}

func TestUniformBufferWriteSizeMatchesDescriptorRange(t *testing.T) {
	ubo := UniformBufferObject{}

	// writeData sizes the copy with binary.Size, the descriptor range uses unsafe.Sizeof
	assert.Equal(t, int(unsafe.Sizeof(ubo)), binary.Size(&ubo))
}

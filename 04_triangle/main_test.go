package main

import (
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/core1_0"
	"testing"
)

func TestVertexBindingMatchesBufferLayout(t *testing.T) {
	bindings := getVertexBindingDescription()
	require.Len(t, bindings, 1)

	assert.Equal(t, 0, bindings[0].Binding)
	assert.Equal(t, binary.Size(Vertex{}), bindings[0].Stride)
	assert.Equal(t, core1_0.VertexInputRateVertex, bindings[0].InputRate)
}

func TestVertexAttributesMatchShaderLocations(t *testing.T) {
	attributes := getVertexAttributeDescriptions()
	require.Len(t, attributes, 2)

	assert.Equal(t, 0, attributes[0].Location)
	assert.Equal(t, core1_0.FormatR32G32SignedFloat, attributes[0].Format)
	assert.Equal(t, 0, attributes[0].Offset)

	assert.Equal(t, 1, attributes[1].Location)
	assert.Equal(t, core1_0.FormatR32G32B32SignedFloat, attributes[1].Format)
	assert.Equal(t, 8, attributes[1].Offset)
}

func TestBytesToBytecodePacksLittleEndianWords(t *testing.T) {
	bytecode := bytesToBytecode([]byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, []uint32{0x07230203, 0x00010000}, bytecode)
}

func TestEmbeddedShadersCarrySPIRVMagic(t *testing.T) {
	for _, file := range []string{"shaders/vert.spv", "shaders/frag.spv"} {
		shaderBytes, err := fileSystem.ReadFile(file)
		require.NoError(t, err, file)
		require.Zero(t, len(shaderBytes)%4, file)

		bytecode := bytesToBytecode(shaderBytes)
		assert.EqualValues(t, 0x07230203, bytecode[0], file)
	}
}

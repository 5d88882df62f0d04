package main

import (
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/core1_0"
	"testing"
)

func TestLoadModelTriangulatesAndDeduplicates(t *testing.T) {
	app := &GPUTrasherApplication{}
	require.NoError(t, app.loadModel())

	// Six quads fan out to twelve triangles over eight shared corners
	assert.Len(t, app.vertices, 8)
	assert.Len(t, app.indices, 36)

	for _, index := range app.indices {
		assert.Less(t, int(index), len(app.vertices))
	}
}

func TestLoadModelDerivesCornerColors(t *testing.T) {
	app := &GPUTrasherApplication{}
	require.NoError(t, app.loadModel())

	for _, vert := range app.vertices {
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, vert.Color[i], float32(0))
			assert.LessOrEqual(t, vert.Color[i], float32(1))
		}
	}
}

func TestVertexAttributesMatchBufferLayout(t *testing.T) {
	bindings := getVertexBindingDescription()
	require.Len(t, bindings, 1)
	assert.Equal(t, binary.Size(Vertex{}), bindings[0].Stride)

	attributes := getVertexAttributeDescriptions()
	require.Len(t, attributes, 2)
	assert.Equal(t, core1_0.FormatR32G32B32SignedFloat, attributes[0].Format)
	assert.Equal(t, 0, attributes[0].Offset)
	assert.Equal(t, core1_0.FormatR32G32B32SignedFloat, attributes[1].Format)
	assert.Equal(t, 12, attributes[1].Offset)
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

package main

import (
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshLayout(t *testing.T) {
	assert.Equal(t, 32, MeshLayout.Stride())
	assert.Equal(t, 8, MeshFloats)
}

func TestLatheCounts(t *testing.T) {
	const depth, corners = 12, 12

	open := Lathe(depth, corners, false, Fish)
	assert.Equal(t, depth*corners, open.VertexCount())
	assert.Len(t, open.Indices, (depth-1)*corners*6)

	capped := Lathe(depth, corners, true, Fish)
	assert.Equal(t, depth*corners+2, capped.VertexCount())
	assert.Len(t, capped.Indices, (depth-1)*corners*6+2*corners*3)

	for _, index := range capped.Indices {
		require.Less(t, int(index), capped.VertexCount())
	}
}

func TestMeshVertex(t *testing.T) {
	var mesh MeshData
	i0 := mesh.Vertex(m.Vec3{2, 0, 0})
	i1 := mesh.Vertex(m.Vec3{0, 0, 1.5})

	assert.Equal(t, uint32(0), i0)
	assert.Equal(t, uint32(1), i1)
	require.Len(t, mesh.Vertices, 2*MeshFloats)

	// normal of the first vertex points along x
	assert.InDelta(t, 1, mesh.Vertices[3], 1e-6)
	assert.InDelta(t, 0, mesh.Vertices[4], 1e-6)
	// a vertex on the axis keeps a zero normal
	assert.Equal(t, []float32{0, 0, 0}, mesh.Vertices[MeshFloats+3:MeshFloats+6])
}

package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HobyProjects/gapi"
)

func TestDrawUsage(t *testing.T) {
	assert.Equal(t, uint32(gl.STATIC_DRAW), drawUsage(gapi.StaticDraw))
	assert.Equal(t, uint32(gl.DYNAMIC_DRAW), drawUsage(gapi.DynamicDraw))
	assert.Equal(t, uint32(gl.STREAM_DRAW), drawUsage(gapi.StreamDraw))
	assert.Equal(t, uint32(gl.STATIC_DRAW), drawUsage(gapi.DrawUsage(42)))
}

func TestPrimitive(t *testing.T) {
	tests := map[gapi.Primitive]uint32{
		gapi.Triangles:     gl.TRIANGLES,
		gapi.TriangleStrip: gl.TRIANGLE_STRIP,
		gapi.TriangleFan:   gl.TRIANGLE_FAN,
		gapi.Points:        gl.POINTS,
		gapi.Lines:         gl.LINES,
		gapi.LineStrip:     gl.LINE_STRIP,
		gapi.LineLoop:      gl.LINE_LOOP,
	}
	for mode, want := range tests {
		assert.Equal(t, want, primitive(mode), "mode %d", mode)
	}
}

func TestScalarType(t *testing.T) {
	tests := map[gapi.DataType]uint32{
		gapi.Float1: gl.FLOAT,
		gapi.Float4: gl.FLOAT,
		gapi.Mat3:   gl.FLOAT,
		gapi.Mat4:   gl.FLOAT,
		gapi.Int2:   gl.INT,
		gapi.Uint3:  gl.UNSIGNED_INT,
		gapi.Bool:   gl.UNSIGNED_BYTE,
	}
	for typ, want := range tests {
		assert.Equal(t, want, scalarType(typ), typ.String())
	}
}

func TestShaderType(t *testing.T) {
	vertex, err := shaderType(gapi.StageVertex)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.VERTEX_SHADER), vertex)

	fragment, err := shaderType(gapi.StageFragment)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.FRAGMENT_SHADER), fragment)

	geometry, err := shaderType(gapi.StageGeometry)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.GEOMETRY_SHADER), geometry)

	_, err = shaderType(gapi.StageNone)
	assert.ErrorIs(t, err, gapi.ErrUnknownStage)
}

func TestErrorNames(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", ErrorName(gl.INVALID_ENUM))
	assert.Equal(t, "GL_OUT_OF_MEMORY", ErrorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "GL_INVALID_FRAMEBUFFER_OPERATION", ErrorName(gl.INVALID_FRAMEBUFFER_OPERATION))
	assert.Equal(t, "UNKNOWN(0x1234)", ErrorName(0x1234))

	err := &Error{Code: gl.INVALID_OPERATION, Op: "draw elements"}
	assert.Equal(t, "opengl: draw elements: GL_INVALID_OPERATION: the specified operation is not allowed in the current state", err.Error())
}

func TestCheckDisabled(t *testing.T) {
	SetDebug(false)
	// GetError is never called while debugging is off, so no context is needed.
	assert.NoError(t, check("noop"))
	assert.False(t, Debug())
}

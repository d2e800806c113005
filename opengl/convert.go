package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

func drawUsage(usage gapi.DrawUsage) uint32 {
	switch usage {
	case gapi.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gapi.StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func primitive(mode gapi.Primitive) uint32 {
	switch mode {
	case gapi.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gapi.TriangleFan:
		return gl.TRIANGLE_FAN
	case gapi.Points:
		return gl.POINTS
	case gapi.Lines:
		return gl.LINES
	case gapi.LineStrip:
		return gl.LINE_STRIP
	case gapi.LineLoop:
		return gl.LINE_LOOP
	}
	return gl.TRIANGLES
}

// scalarType returns the GL scalar type of one component of typ.
func scalarType(typ gapi.DataType) uint32 {
	switch {
	case typ == gapi.Bool:
		return gl.UNSIGNED_BYTE
	case typ.IsUnsigned():
		return gl.UNSIGNED_INT
	case typ.IsInteger():
		return gl.INT
	}
	return gl.FLOAT
}

func shaderType(stage gapi.ShaderStage) (uint32, error) {
	switch stage {
	case gapi.StageVertex:
		return gl.VERTEX_SHADER, nil
	case gapi.StageFragment:
		return gl.FRAGMENT_SHADER, nil
	case gapi.StageGeometry:
		return gl.GEOMETRY_SHADER, nil
	}
	return 0, fmt.Errorf("%w: %v", gapi.ErrUnknownStage, stage)
}

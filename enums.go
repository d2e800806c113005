package gapi

import "fmt"

// DrawUsage hints how often the contents of a buffer change.
type DrawUsage int

const (
	// StaticDraw buffers are uploaded once and drawn many times.
	StaticDraw DrawUsage = iota
	// DynamicDraw buffers are updated often and drawn many times.
	DynamicDraw
	// StreamDraw buffers are uploaded once and drawn a few times.
	StreamDraw
)

func (u DrawUsage) String() string {
	switch u {
	case StaticDraw:
		return "static"
	case DynamicDraw:
		return "dynamic"
	case StreamDraw:
		return "stream"
	}
	return fmt.Sprintf("DrawUsage(%d)", int(u))
}

// Component is the number of scalars in a vertex attribute.
type Component int

const (
	None   Component = 0
	Scalar Component = 1
	XY     Component = 2
	UV     Component = 2
	XYZ    Component = 3
	RGB    Component = 3
	XYZW   Component = 4
	RGBA   Component = 4
)

// DataType is the shader-side type of a vertex attribute.
type DataType int

const (
	Null DataType = iota
	Float1
	Float2
	Float3
	Float4
	Int1
	Int2
	Int3
	Int4
	Uint1
	Uint2
	Uint3
	Uint4
	Mat2
	Mat3
	Mat4
	Bool
)

var dataTypeInfo = [...]struct {
	name       string
	size       int
	components Component
}{
	Null:   {"null", 0, None},
	Float1: {"float", 4, 1},
	Float2: {"vec2", 8, 2},
	Float3: {"vec3", 12, 3},
	Float4: {"vec4", 16, 4},
	Int1:   {"int", 4, 1},
	Int2:   {"ivec2", 8, 2},
	Int3:   {"ivec3", 12, 3},
	Int4:   {"ivec4", 16, 4},
	Uint1:  {"uint", 4, 1},
	Uint2:  {"uvec2", 8, 2},
	Uint3:  {"uvec3", 12, 3},
	Uint4:  {"uvec4", 16, 4},
	Mat2:   {"mat2", 16, 2},
	Mat3:   {"mat3", 36, 3},
	Mat4:   {"mat4", 64, 4},
	Bool:   {"bool", 1, 1},
}

func (t DataType) valid() bool { return t >= 0 && int(t) < len(dataTypeInfo) }

// Size returns the size of t in bytes.
func (t DataType) Size() int {
	if !t.valid() {
		return 0
	}
	return dataTypeInfo[t].size
}

// Components returns the number of scalars per column of t.
func (t DataType) Components() Component {
	if !t.valid() {
		return None
	}
	return dataTypeInfo[t].components
}

// Columns returns how many attribute slots t occupies; matrices use one slot per column.
func (t DataType) Columns() int {
	switch t {
	case Mat2:
		return 2
	case Mat3:
		return 3
	case Mat4:
		return 4
	case Null:
		return 0
	}
	return 1
}

func (t DataType) IsInteger() bool {
	return t >= Int1 && t <= Uint4 || t == Bool
}

func (t DataType) IsUnsigned() bool {
	return t >= Uint1 && t <= Uint4 || t == Bool
}

func (t DataType) String() string {
	if !t.valid() {
		return fmt.Sprintf("DataType(%d)", int(t))
	}
	return dataTypeInfo[t].name
}

// Primitive selects how vertices are assembled when drawing.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Points
	Lines
	LineStrip
	LineLoop
)

// TextureType is the material role of a texture.
type TextureType int

const (
	TextureNone TextureType = iota
	TextureDiffuse
	TextureSpecular
	TextureNormal
	TextureHeight
	TextureAmbient
)

func (t TextureType) String() string {
	switch t {
	case TextureNone:
		return "none"
	case TextureDiffuse:
		return "diffuse"
	case TextureSpecular:
		return "specular"
	case TextureNormal:
		return "normal"
	case TextureHeight:
		return "height"
	case TextureAmbient:
		return "ambient"
	}
	return fmt.Sprintf("TextureType(%d)", int(t))
}

// BackendKind identifies the native library behind an API.
type BackendKind int

const (
	OpenGL BackendKind = iota + 1
)

func (k BackendKind) String() string {
	if k == OpenGL {
		return "opengl"
	}
	return fmt.Sprintf("BackendKind(%d)", int(k))
}

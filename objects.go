package gapi

import "github.com/go-gl/mathgl/mgl32"

type VertexBuffer interface {
	Bind()
	Unbind()

	SetLayout(layout BufferLayout)
	Layout() BufferLayout

	// SetData replaces the buffer contents from the start. The data must fit
	// in the size the buffer was created with.
	SetData(vertices []float32) error
	// Size returns the allocated size in bytes.
	Size() int

	Destroy()
}

type IndexBuffer interface {
	Bind()
	Unbind()
	Count() int
	Destroy()
}

// VertexArray records the attribute bindings of one or more vertex buffers
// and an optional index buffer.
type VertexArray interface {
	Bind()
	Unbind()

	// AddVertexBuffer enables one attribute location per layout column,
	// continuing after the locations used by earlier buffers.
	AddVertexBuffer(vb VertexBuffer) error
	SetIndexBuffer(ib IndexBuffer)

	VertexBuffers() []VertexBuffer
	IndexBuffer() IndexBuffer

	Destroy()
}

// Shader is a linked program. Uniform setters report false when the
// uniform is not active in the program.
type Shader interface {
	Bind()
	Unbind()
	Name() string

	SetInt(name string, v int32) bool
	SetFloat(name string, v float32) bool
	SetFloat2(name string, x, y float32) bool
	SetFloat3(name string, x, y, z float32) bool
	SetFloat4(name string, x, y, z, w float32) bool

	SetVec2(name string, v mgl32.Vec2) bool
	SetVec3(name string, v mgl32.Vec3) bool
	SetVec4(name string, v mgl32.Vec4) bool
	SetMat2(name string, v mgl32.Mat2) bool
	SetMat3(name string, v mgl32.Mat3) bool
	SetMat4(name string, v mgl32.Mat4) bool

	Destroy()
}

type Texture interface {
	// Bind binds the texture to the given texture unit.
	Bind(slot uint32)
	Unbind()

	// Data returns the RGBA pixels uploaded to the texture.
	Data() []byte
	ID() uint32
	Slot() uint32
	Width() int
	Height() int
	Channels() int
	Type() TextureType

	Destroy()
}

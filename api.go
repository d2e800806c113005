package gapi

import "image"

// Context owns the native rendering context of a window.
type Context interface {
	// Init makes the context current, loads driver entry points and sets
	// the swap interval to 1.
	Init() error
	// Swap presents the back buffer.
	Swap()
	// SetInterval sets the number of screen updates to wait between swaps.
	SetInterval(interval int)
}

// Info describes the driver behind a context.
type Info interface {
	Vendor() string
	Renderer() string
	Version() string
	// Language returns the "#version" directive matching the driver version.
	Language() string
}

// API dispatches frame-level commands to a backend.
type API interface {
	Kind() BackendKind
	Init() error
	Info() Info

	Clear()
	ClearColor(r, g, b, a float32)
	Viewport(x, y, width, height int32)

	Draw(va VertexArray, mode Primitive)
	DrawInstanced(va VertexArray, mode Primitive, instances int32)
}

// Device creates backend objects.
type Device interface {
	NewVertexBuffer(vertices []float32, usage DrawUsage) (VertexBuffer, error)
	NewIndexBuffer(indices []uint32, usage DrawUsage) (IndexBuffer, error)
	NewVertexArray() (VertexArray, error)

	NewShader(name string, sources map[ShaderStage]string) (Shader, error)
	// LoadShader reads a single file split into stages by #type directives.
	LoadShader(name, path string) (Shader, error)
	LoadShaderPair(name, vertexPath, fragmentPath string) (Shader, error)

	NewTexture(m image.Image, typ TextureType) (Texture, error)
	LoadTexture(path string, typ TextureType) (Texture, error)
}

package gapi

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeInfo struct{}

func (fakeInfo) Vendor() string   { return "fake" }
func (fakeInfo) Renderer() string { return "fake renderer" }
func (fakeInfo) Version() string  { return "4.1.0" }
func (fakeInfo) Language() string { return "#version 410 core" }

type drawCall struct {
	va        VertexArray
	mode      Primitive
	instances int32
}

type fakeAPI struct {
	initErr error
	inits   int
	clears  int
	color   [4]float32
	view    [4]int32
	draws   []drawCall
}

func (api *fakeAPI) Kind() BackendKind { return OpenGL }
func (api *fakeAPI) Info() Info        { return fakeInfo{} }
func (api *fakeAPI) Clear()            { api.clears++ }

func (api *fakeAPI) Init() error {
	api.inits++
	return api.initErr
}

func (api *fakeAPI) ClearColor(r, g, b, a float32) { api.color = [4]float32{r, g, b, a} }

func (api *fakeAPI) Viewport(x, y, width, height int32) {
	api.view = [4]int32{x, y, width, height}
}

func (api *fakeAPI) Draw(va VertexArray, mode Primitive) {
	api.draws = append(api.draws, drawCall{va, mode, 1})
}

func (api *fakeAPI) DrawInstanced(va VertexArray, mode Primitive, instances int32) {
	api.draws = append(api.draws, drawCall{va, mode, instances})
}

type fakeIndexBuffer struct{ count int }

func (ib *fakeIndexBuffer) Bind()      {}
func (ib *fakeIndexBuffer) Unbind()    {}
func (ib *fakeIndexBuffer) Count() int { return ib.count }
func (ib *fakeIndexBuffer) Destroy()   {}

type fakeVertexArray struct {
	vbs []VertexBuffer
	ib  IndexBuffer
}

func (va *fakeVertexArray) Bind()   {}
func (va *fakeVertexArray) Unbind() {}

func (va *fakeVertexArray) AddVertexBuffer(vb VertexBuffer) error {
	if vb.Layout().Empty() {
		return ErrEmptyLayout
	}
	va.vbs = append(va.vbs, vb)
	return nil
}

func (va *fakeVertexArray) SetIndexBuffer(ib IndexBuffer) { va.ib = ib }
func (va *fakeVertexArray) VertexBuffers() []VertexBuffer { return va.vbs }
func (va *fakeVertexArray) Destroy()                      {}

func (va *fakeVertexArray) IndexBuffer() IndexBuffer {
	if va == nil {
		return nil
	}
	return va.ib
}

type fakeShader struct {
	name      string
	destroyed bool
}

func (s *fakeShader) Bind()        {}
func (s *fakeShader) Unbind()      {}
func (s *fakeShader) Name() string { return s.name }
func (s *fakeShader) Destroy()     { s.destroyed = true }

func (s *fakeShader) SetInt(string, int32) bool                                 { return true }
func (s *fakeShader) SetFloat(string, float32) bool                             { return true }
func (s *fakeShader) SetFloat2(string, float32, float32) bool                   { return true }
func (s *fakeShader) SetFloat3(string, float32, float32, float32) bool          { return true }
func (s *fakeShader) SetFloat4(string, float32, float32, float32, float32) bool { return true }

func (s *fakeShader) SetVec2(string, mgl32.Vec2) bool { return true }
func (s *fakeShader) SetVec3(string, mgl32.Vec3) bool { return true }
func (s *fakeShader) SetVec4(string, mgl32.Vec4) bool { return true }
func (s *fakeShader) SetMat2(string, mgl32.Mat2) bool { return true }
func (s *fakeShader) SetMat3(string, mgl32.Mat3) bool { return true }
func (s *fakeShader) SetMat4(string, mgl32.Mat4) bool { return true }

var errNotSupported = errors.New("not supported by fake device")

// fakeDevice only implements LoadShader.
type fakeDevice struct{ loaded []string }

func (d *fakeDevice) LoadShader(name, path string) (Shader, error) {
	if _, err := LoadShaderSources(path); err != nil {
		return nil, err
	}
	d.loaded = append(d.loaded, path)
	return &fakeShader{name: name}, nil
}

func (d *fakeDevice) NewVertexBuffer([]float32, DrawUsage) (VertexBuffer, error) {
	return nil, errNotSupported
}
func (d *fakeDevice) NewIndexBuffer([]uint32, DrawUsage) (IndexBuffer, error) {
	return nil, errNotSupported
}
func (d *fakeDevice) NewVertexArray() (VertexArray, error) { return nil, errNotSupported }
func (d *fakeDevice) NewShader(string, map[ShaderStage]string) (Shader, error) {
	return nil, errNotSupported
}
func (d *fakeDevice) LoadShaderPair(string, string, string) (Shader, error) {
	return nil, errNotSupported
}
func (d *fakeDevice) NewTexture(image.Image, TextureType) (Texture, error) {
	return nil, errNotSupported
}
func (d *fakeDevice) LoadTexture(string, TextureType) (Texture, error) {
	return nil, errNotSupported
}

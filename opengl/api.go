package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

// Options configures global pipeline state set by API.Init.
type Options struct {
	// Debug checks glGetError after driver calls and logs every error.
	Debug bool

	DepthTest bool
	CullFace  bool
	Blend     bool
}

// API implements gapi.API and gapi.Device for a current OpenGL context.
type API struct {
	options Options
	info    *Info
}

var (
	_ gapi.API    = (*API)(nil)
	_ gapi.Device = (*API)(nil)
)

func NewAPI(options Options) *API {
	return &API{options: options}
}

func (api *API) Kind() gapi.BackendKind { return gapi.OpenGL }

// Init applies the pipeline options. The context must be current.
func (api *API) Init() error {
	SetDebug(api.options.Debug)

	if api.options.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	if api.options.CullFace {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	if api.options.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	api.info = queryInfo()
	return check("api init")
}

func (api *API) Info() gapi.Info {
	if api.info == nil {
		return nil
	}
	return api.info
}

func (api *API) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (api *API) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (api *API) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (api *API) Draw(va gapi.VertexArray, mode gapi.Primitive) {
	ib := va.IndexBuffer()
	if ib == nil {
		gapi.Logger().Warn("draw without index buffer")
		return
	}
	va.Bind()
	gl.DrawElements(primitive(mode), int32(ib.Count()), gl.UNSIGNED_INT, gl.PtrOffset(0))
	// draw has no error return; check logs any driver error
	_ = check("draw elements")
}

func (api *API) DrawInstanced(va gapi.VertexArray, mode gapi.Primitive, instances int32) {
	ib := va.IndexBuffer()
	if ib == nil {
		gapi.Logger().Warn("draw without index buffer")
		return
	}
	va.Bind()
	gl.DrawElementsInstanced(primitive(mode), int32(ib.Count()), gl.UNSIGNED_INT, gl.PtrOffset(0), instances)
	// draw has no error return; check logs any driver error
	_ = check("draw elements instanced")
}

func (api *API) NewVertexBuffer(vertices []float32, usage gapi.DrawUsage) (gapi.VertexBuffer, error) {
	vb, err := NewVertexBuffer(vertices, usage)
	if err != nil {
		return nil, err
	}
	return vb, nil
}

func (api *API) NewIndexBuffer(indices []uint32, usage gapi.DrawUsage) (gapi.IndexBuffer, error) {
	ib, err := NewIndexBuffer(indices, usage)
	if err != nil {
		return nil, err
	}
	return ib, nil
}

func (api *API) NewVertexArray() (gapi.VertexArray, error) {
	va, err := NewVertexArray()
	if err != nil {
		return nil, err
	}
	return va, nil
}

func (api *API) NewShader(name string, sources map[gapi.ShaderStage]string) (gapi.Shader, error) {
	shader, err := NewShader(name, sources)
	if err != nil {
		return nil, err
	}
	return shader, nil
}

func (api *API) LoadShader(name, path string) (gapi.Shader, error) {
	shader, err := LoadShader(name, path)
	if err != nil {
		return nil, err
	}
	return shader, nil
}

func (api *API) LoadShaderPair(name, vertexPath, fragmentPath string) (gapi.Shader, error) {
	shader, err := LoadShaderPair(name, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return shader, nil
}

func (api *API) NewTexture(m image.Image, typ gapi.TextureType) (gapi.Texture, error) {
	texture, err := NewTexture(m, typ)
	if err != nil {
		return nil, err
	}
	return texture, nil
}

func (api *API) LoadTexture(path string, typ gapi.TextureType) (gapi.Texture, error) {
	texture, err := LoadTexture(path, typ)
	if err != nil {
		return nil, err
	}
	return texture, nil
}

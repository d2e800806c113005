package gapi

import "fmt"

// Renderer forwards frame commands to the API it was created with.
type Renderer struct {
	api API
}

// NewRenderer initializes api and returns a renderer dispatching to it.
func NewRenderer(api API) (*Renderer, error) {
	if api == nil {
		return nil, ErrNotInitialized
	}
	if err := api.Init(); err != nil {
		return nil, fmt.Errorf("init %v: %w", api.Kind(), err)
	}
	if info := api.Info(); info != nil {
		Logger().Info("renderer initialized",
			"backend", api.Kind(),
			"vendor", info.Vendor(),
			"renderer", info.Renderer(),
			"version", info.Version())
	}
	return &Renderer{api: api}, nil
}

func (renderer *Renderer) API() API { return renderer.api }

func (renderer *Renderer) Clear() { renderer.api.Clear() }

func (renderer *Renderer) ClearColor(r, g, b, a float32) {
	renderer.api.ClearColor(r, g, b, a)
}

func (renderer *Renderer) Viewport(x, y, width, height int32) {
	renderer.api.Viewport(x, y, width, height)
}

// Draw draws the indexed triangles of va.
func (renderer *Renderer) Draw(va VertexArray) {
	renderer.DrawPrimitive(va, Triangles)
}

func (renderer *Renderer) DrawPrimitive(va VertexArray, mode Primitive) {
	if !drawable(va) {
		return
	}
	renderer.api.Draw(va, mode)
}

// DrawInstanced draws the indexed triangles of va instances times.
func (renderer *Renderer) DrawInstanced(va VertexArray, instances int32) {
	if !drawable(va) || instances <= 0 {
		return
	}
	renderer.api.DrawInstanced(va, Triangles, instances)
}

// drawable reports whether va can be drawn. A typed nil vertex array must
// return a nil IndexBuffer.
func drawable(va VertexArray) bool {
	if va == nil {
		Logger().Warn("draw skipped: nil vertex array")
		return false
	}
	if va.IndexBuffer() == nil {
		Logger().Warn("draw skipped: vertex array has no index buffer")
		return false
	}
	return true
}

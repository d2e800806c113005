package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/HobyProjects/gapi"
)

// ContextHints requests a forward compatible core profile context of the
// given version for the next glfw.CreateWindow call.
func ContextHints(major, minor int) {
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
}

// Context is the OpenGL context of a GLFW window.
type Context struct {
	window *glfw.Window
	info   *Info
}

var _ gapi.Context = (*Context)(nil)

func NewContext(window *glfw.Window) *Context {
	return &Context{window: window}
}

func (ctx *Context) Init() error {
	if ctx.window == nil {
		return gapi.ErrNilWindow
	}
	ctx.window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize glow: %w", err)
	}

	ctx.info = queryInfo()
	gapi.Logger().Info("opengl context",
		"version", ctx.info.Version(),
		"vendor", ctx.info.Vendor(),
		"renderer", ctx.info.Renderer(),
		"glsl", ctx.info.ShadingLanguageVersion())
	return nil
}

func (ctx *Context) Swap() {
	if ctx.window == nil {
		gapi.Logger().Warn("swap on nil window")
		return
	}
	ctx.window.SwapBuffers()
}

func (ctx *Context) SetInterval(interval int) {
	if ctx.window == nil {
		gapi.Logger().Warn("swap interval on nil window")
		return
	}
	glfw.SwapInterval(interval)
}

// Info returns the driver information gathered by Init, or nil before Init.
func (ctx *Context) Info() *Info { return ctx.info }

func (ctx *Context) Window() *glfw.Window { return ctx.window }

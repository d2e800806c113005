// Command gapi-instancing draws a grid of quads with one instanced draw call.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/HobyProjects/gapi"
	"github.com/HobyProjects/gapi/opengl"
)

var (
	windowWidth  = flag.Int("width", 800, "window width")
	windowHeight = flag.Int("height", 600, "window height")
	debug        = flag.Bool("debug", false, "check gl errors after driver calls")
)

func init() { runtime.LockOSThread() }

func main() {
	flag.Parse()
	gapi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	opengl.ContextHints(4, 1)
	window, err := glfw.CreateWindow(*windowWidth, *windowHeight, "Instancing", nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}

	ctx := opengl.NewContext(window)
	if err := ctx.Init(); err != nil {
		log.Fatalln(err)
	}

	api := opengl.NewAPI(opengl.Options{Debug: *debug, DepthTest: true})
	renderer, err := gapi.NewRenderer(api)
	if err != nil {
		log.Fatalln(err)
	}

	sources, err := gapi.PreprocessShader(quadShader)
	if err != nil {
		log.Fatalln(err)
	}
	shader, err := api.NewShader("quad", sources)
	if err != nil {
		log.Fatalln(err)
	}
	defer shader.Destroy()

	quads, instances, err := newQuadGrid(api)
	if err != nil {
		log.Fatalln(err)
	}
	defer destroyVertexArray(quads)

	renderer.ClearColor(1.0, 1.0, 1.0, 1.0)
	for !window.ShouldClose() {
		renderer.Clear()

		shader.Bind()
		renderer.DrawInstanced(quads, instances)

		ctx.Swap()
		glfw.PollEvents()
	}
}

// QuadLayout interleaves position and color per vertex.
var QuadLayout = gapi.NewBufferLayout(
	gapi.Element("aPos", gapi.Float2),
	gapi.Element("aColor", gapi.Float3),
)

// OffsetLayout advances once per instance.
var OffsetLayout = gapi.NewBufferLayout(gapi.BufferElement{
	Name:    "aOffset",
	Type:    gapi.Float2,
	Divisor: 1,
})

var quadVertices = []float32{
	// positions     // colors
	-0.05, +0.05, 1.0, 0.0, 0.0,
	+0.05, -0.05, 0.0, 1.0, 0.0,
	-0.05, -0.05, 0.0, 0.0, 1.0,
	+0.05, +0.05, 0.0, 1.0, 1.0,
}

var quadIndices = []uint32{0, 1, 2, 0, 1, 3}

// Translations returns the per-instance offsets of a 10x10 grid in clip space.
func Translations() []m.Vec2 {
	translations := make([]m.Vec2, 0, 100)
	offset := float32(0.1)
	for y := -10; y < 10; y += 2 {
		for x := -10; x < 10; x += 2 {
			translations = append(translations, m.Vec2{
				float32(x)/10.0 + offset,
				float32(y)/10.0 + offset,
			})
		}
	}
	return translations
}

func flatten(vs []m.Vec2) []float32 {
	data := make([]float32, 0, 2*len(vs))
	for _, v := range vs {
		data = append(data, v[:]...)
	}
	return data
}

// newQuadGrid uploads the quad and its per-instance offsets. On error every
// object created so far is destroyed.
func newQuadGrid(device gapi.Device) (_ gapi.VertexArray, _ int32, err error) {
	translations := Translations()

	var created []interface{ Destroy() }
	defer func() {
		if err != nil {
			for i := len(created) - 1; i >= 0; i-- {
				created[i].Destroy()
			}
		}
	}()

	vb, err := device.NewVertexBuffer(quadVertices, gapi.StaticDraw)
	if err != nil {
		return nil, 0, err
	}
	created = append(created, vb)
	vb.SetLayout(QuadLayout)

	instanceVB, err := device.NewVertexBuffer(flatten(translations), gapi.StaticDraw)
	if err != nil {
		return nil, 0, err
	}
	created = append(created, instanceVB)
	instanceVB.SetLayout(OffsetLayout)

	ib, err := device.NewIndexBuffer(quadIndices, gapi.StaticDraw)
	if err != nil {
		return nil, 0, err
	}
	created = append(created, ib)

	va, err := device.NewVertexArray()
	if err != nil {
		return nil, 0, err
	}
	created = append(created, va)

	if err := va.AddVertexBuffer(vb); err != nil {
		return nil, 0, err
	}
	if err := va.AddVertexBuffer(instanceVB); err != nil {
		return nil, 0, err
	}
	va.SetIndexBuffer(ib)

	return va, int32(len(translations)), nil
}

func destroyVertexArray(va gapi.VertexArray) {
	for _, vb := range va.VertexBuffers() {
		vb.Destroy()
	}
	if ib := va.IndexBuffer(); ib != nil {
		ib.Destroy()
	}
	va.Destroy()
}

var quadShader = `
#type vertex
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aColor;
layout (location = 2) in vec2 aOffset;

out vec3 fColor;

void main()
{
	fColor = aColor;
	vec2 pos = aPos * (gl_InstanceID / 100.0);
	gl_Position = vec4(pos + aOffset, 0.0, 1.0);
}

#type fragment
#version 410 core
out vec4 FragColor;

in vec3 fColor;

void main()
{
	FragColor = vec4(fColor, 1.0);
}
`

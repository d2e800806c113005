// Command gapi-demo renders a swimming lathe mesh through the gapi interfaces.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/go-gl/glfw/v3.3/glfw"
	m "github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"

	"github.com/HobyProjects/gapi"
	"github.com/HobyProjects/gapi/opengl"
)

//go:embed lathe.glsl
var latheShader string

func init() { runtime.LockOSThread() }

func main() {
	f := newFlags(flag.CommandLine)
	flag.Parse()

	config, err := f.Config()
	if err != nil {
		log.Fatalln(err)
	}

	if *f.cpuprofile != "" {
		file, err := os.Create(*f.cpuprofile)
		if err != nil {
			log.Fatalf("unable to create cpu-profile %q: %v", *f.cpuprofile, err)
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			log.Fatalf("unable to start cpu-profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	level := slog.LevelInfo
	if config.Debug {
		level = slog.LevelDebug
	}
	gapi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(config); err != nil {
		log.Fatalln(err)
	}
}

func run(config Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, config.Samples)
	opengl.ContextHints(4, 1)

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	ctx := opengl.NewContext(window)
	if err := ctx.Init(); err != nil {
		return err
	}
	if !config.VSync {
		ctx.SetInterval(0)
	}
	log.Println("OpenGL version", ctx.Info().Version())

	api := opengl.NewAPI(opengl.Options{
		Debug:     config.Debug,
		DepthTest: true,
		CullFace:  true,
	})
	renderer, err := gapi.NewRenderer(api)
	if err != nil {
		return err
	}

	shaders := gapi.NewShaderLibrary()
	defer shaders.Destroy()
	shader, err := loadShader(api, shaders, config.Shader)
	if err != nil {
		return err
	}

	texture, err := loadTexture(api, config.Texture)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	mesh := Lathe(12, 12, true, Fish)
	va, err := mesh.Upload(api)
	if err != nil {
		return err
	}
	defer destroyVertexArray(va)

	world := NewWorld()
	world.NextFrameGLFW(window, renderer)

	shader.Bind()
	shader.SetInt("AlbedoTexture", 0)

	renderer.ClearColor(config.ClearColor[0], config.ClearColor[1], config.ClearColor[2], config.ClearColor[3])

	angle := float32(0.0)
	for !window.ShouldClose() {
		renderer.Clear()
		world.NextFrameGLFW(window, renderer)
		angle += world.DeltaTime * 0.6

		renderStart := hrtime.Now()

		shader.Bind()
		shader.SetFloat("Time", float32(world.Time))
		setUniform(shader, "ProjectionMatrix", world.Camera.Projection)
		setUniform(shader, "CameraMatrix", world.Camera.Camera)
		setUniform(shader, "DiffuseLightPosition", world.DiffuseLightPosition)
		shader.SetMat4("ModelMatrix", m.HomogRotate3DY(angle))

		texture.Bind(0)
		renderer.Draw(va)

		renderStop := hrtime.Now()
		window.SetTitle(fmt.Sprintf("%s\tRender:\t%v", config.Title, renderStop-renderStart))

		ctx.Swap()
		glfw.PollEvents()
	}
	return nil
}

// setUniform forwards values of the g package to backends that accept them.
func setUniform(shader gapi.Shader, name string, value any) bool {
	setter, ok := shader.(interface{ SetUniform(string, any) bool })
	if !ok {
		return false
	}
	return setter.SetUniform(name, value)
}

func loadShader(device gapi.Device, shaders *gapi.ShaderLibrary, path string) (gapi.Shader, error) {
	if path != "" {
		return shaders.Load(device, "lathe", path)
	}

	sources, err := gapi.PreprocessShader(latheShader)
	if err != nil {
		return nil, err
	}
	shader, err := device.NewShader("lathe", sources)
	if err != nil {
		return nil, err
	}
	if err := shaders.Add(shader); err != nil {
		shader.Destroy()
		return nil, err
	}
	return shader, nil
}

func loadTexture(device gapi.Device, path string) (gapi.Texture, error) {
	if path != "" {
		return device.LoadTexture(path, gapi.TextureDiffuse)
	}
	return device.NewTexture(Checkerboard(64, 8), gapi.TextureDiffuse)
}

// Checkerboard returns a size x size image of cells x cells squares.
func Checkerboard(size, cells int) *image.RGBA {
	light := color.RGBA{0xf2, 0xa6, 0x5a, 0xff}
	dark := color.RGBA{0x3a, 0x6e, 0xa5, 0xff}

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				rgba.SetRGBA(x, y, light)
			} else {
				rgba.SetRGBA(x, y, dark)
			}
		}
	}
	return rgba
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

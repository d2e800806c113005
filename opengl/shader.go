package opengl

import (
	"fmt"
	"strings"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/HobyProjects/gapi"
)

// stageOrder is the order stages are compiled and attached in.
var stageOrder = []gapi.ShaderStage{gapi.StageVertex, gapi.StageGeometry, gapi.StageFragment}

// Shader is a linked GL program.
type Shader struct {
	name          string
	program       uint32
	locationCache map[string]int32
}

var _ gapi.Shader = (*Shader)(nil)

// NewShader compiles and links sources into a program.
func NewShader(name string, sources map[gapi.ShaderStage]string) (*Shader, error) {
	program, err := newProgram(sources)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	gapi.Logger().Debug("shader linked", "name", name, "program", program, "stages", len(sources))
	return &Shader{
		name:          name,
		program:       program,
		locationCache: map[string]int32{},
	}, nil
}

// LoadShader compiles a single file split into stages with #type directives.
func LoadShader(name, path string) (*Shader, error) {
	sources, err := gapi.LoadShaderSources(path)
	if err != nil {
		return nil, err
	}
	return NewShader(name, sources)
}

// LoadShaderPair compiles a vertex and a fragment shader from separate files.
func LoadShaderPair(name, vertexPath, fragmentPath string) (*Shader, error) {
	vertex, err := gapi.ReadShaderFile(vertexPath)
	if err != nil {
		return nil, err
	}
	fragment, err := gapi.ReadShaderFile(fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewShader(name, map[gapi.ShaderStage]string{
		gapi.StageVertex:   vertex,
		gapi.StageFragment: fragment,
	})
}

func (shader *Shader) Name() string {
	if shader == nil {
		return ""
	}
	return shader.name
}

func (shader *Shader) ID() uint32 { return shader.program }

func (shader *Shader) Bind()   { gl.UseProgram(shader.program) }
func (shader *Shader) Unbind() { gl.UseProgram(0) }

func (shader *Shader) Destroy() {
	if shader.program == 0 {
		return
	}
	gl.DeleteProgram(shader.program)
	shader.program = 0
	shader.locationCache = map[string]int32{}
}

// uniformLocation returns the cached location of name, -1 if it is not active.
// uniformLocation returns -1 once the program is destroyed.
func (shader *Shader) uniformLocation(name string) int32 {
	if shader.program == 0 {
		return -1
	}
	location, ok := shader.locationCache[name]
	if !ok {
		location = gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
		shader.locationCache[name] = location
		if location < 0 {
			gapi.Logger().Warn("uniform not found", "shader", shader.name, "name", name)
		}
	}
	return location
}

func (shader *Shader) SetInt(name string, v int32) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform1i(location, v)
	return true
}

func (shader *Shader) SetFloat(name string, v float32) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform1f(location, v)
	return true
}

func (shader *Shader) SetFloat2(name string, x, y float32) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform2f(location, x, y)
	return true
}

func (shader *Shader) SetFloat3(name string, x, y, z float32) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform3f(location, x, y, z)
	return true
}

func (shader *Shader) SetFloat4(name string, x, y, z, w float32) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform4f(location, x, y, z, w)
	return true
}

func (shader *Shader) SetVec2(name string, v mgl32.Vec2) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform2fv(location, 1, &v[0])
	return true
}

func (shader *Shader) SetVec3(name string, v mgl32.Vec3) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform3fv(location, 1, &v[0])
	return true
}

func (shader *Shader) SetVec4(name string, v mgl32.Vec4) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.Uniform4fv(location, 1, &v[0])
	return true
}

func (shader *Shader) SetMat2(name string, v mgl32.Mat2) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.UniformMatrix2fv(location, 1, false, &v[0])
	return true
}

func (shader *Shader) SetMat3(name string, v mgl32.Mat3) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.UniformMatrix3fv(location, 1, false, &v[0])
	return true
}

func (shader *Shader) SetMat4(name string, v mgl32.Mat4) bool {
	location := shader.uniformLocation(name)
	if location < 0 {
		return false
	}
	gl.UniformMatrix4fv(location, 1, false, &v[0])
	return true
}

// SetUniform sets a uniform from any supported scalar, vector or matrix
// type, including the g package types used for cameras.
func (shader *Shader) SetUniform(name string, value any) bool {
	switch v := value.(type) {
	case int32:
		return shader.SetInt(name, v)
	case int:
		return shader.SetInt(name, int32(v))
	case uint32:
		return shader.SetInt(name, int32(v))
	case bool:
		if v {
			return shader.SetInt(name, 1)
		}
		return shader.SetInt(name, 0)
	case float32:
		return shader.SetFloat(name, v)
	case float64:
		return shader.SetFloat(name, float32(v))
	case mgl32.Vec2:
		return shader.SetVec2(name, v)
	case mgl32.Vec3:
		return shader.SetVec3(name, v)
	case mgl32.Vec4:
		return shader.SetVec4(name, v)
	case mgl32.Mat2:
		return shader.SetMat2(name, v)
	case mgl32.Mat3:
		return shader.SetMat3(name, v)
	case mgl32.Mat4:
		return shader.SetMat4(name, v)
	case g.Vec2:
		return shader.SetFloat2(name, v.X, v.Y)
	case g.Vec3:
		return shader.SetFloat3(name, v.X, v.Y, v.Z)
	case g.Mat4:
		location := shader.uniformLocation(name)
		if location < 0 {
			return false
		}
		gl.UniformMatrix4fv(location, 1, false, v.Ptr())
		return true
	}
	gapi.Logger().Warn("unsupported uniform type", "shader", shader.name, "name", name, "type", fmt.Sprintf("%T", value))
	return false
}

func newProgram(sources map[gapi.ShaderStage]string) (uint32, error) {
	if len(sources) == 0 {
		return 0, gapi.ErrNoStages
	}
	if _, ok := sources[gapi.StageVertex]; !ok {
		return 0, fmt.Errorf("missing vertex stage")
	}
	for stage := range sources {
		if _, err := shaderType(stage); err != nil {
			return 0, err
		}
	}

	program := gl.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("failed to create program")
	}

	var shaders []uint32
	linked := false
	defer func() {
		for _, shader := range shaders {
			gl.DetachShader(program, shader)
			gl.DeleteShader(shader)
		}
		if !linked {
			gl.DeleteProgram(program)
		}
	}()

	for _, stage := range stageOrder {
		source, ok := sources[stage]
		if !ok {
			continue
		}
		xtype, _ := shaderType(stage)
		shader, err := compileShader(source, xtype)
		if err != nil {
			return 0, fmt.Errorf("%v stage: %w", stage, err)
		}
		gl.AttachShader(program, shader)
		shaders = append(shaders, shader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("failed to link program: %v", programLog(program))
	}

	gl.ValidateProgram(program)
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		gapi.Logger().Warn("program validation failed", "program", program, "log", programLog(program))
	}

	if err := check("link program"); err != nil {
		return 0, err
	}
	linked = true
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

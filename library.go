package gapi

import (
	"fmt"
	"sort"
)

// ShaderLibrary keeps shaders by name.
type ShaderLibrary struct {
	shaders map[string]Shader
}

func NewShaderLibrary() *ShaderLibrary {
	return &ShaderLibrary{shaders: map[string]Shader{}}
}

// Add registers shader under its name. The name must not be empty.
func (library *ShaderLibrary) Add(shader Shader) error {
	if shader == nil {
		return ErrNilShader
	}
	name := shader.Name()
	if name == "" {
		return ErrUnnamedShader
	}
	if _, exists := library.shaders[name]; exists {
		return fmt.Errorf("%w: %q", ErrShaderExists, name)
	}
	library.shaders[name] = shader
	return nil
}

// Load creates a shader from a #type file with device and registers it.
func (library *ShaderLibrary) Load(device Device, name, path string) (Shader, error) {
	if library.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrShaderExists, name)
	}
	shader, err := device.LoadShader(name, path)
	if err != nil {
		return nil, err
	}
	library.shaders[name] = shader
	return shader, nil
}

func (library *ShaderLibrary) Get(name string) (Shader, error) {
	shader, ok := library.shaders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrShaderNotFound, name)
	}
	return shader, nil
}

func (library *ShaderLibrary) Has(name string) bool {
	_, ok := library.shaders[name]
	return ok
}

// Remove unregisters the shader without destroying it.
func (library *ShaderLibrary) Remove(name string) (Shader, bool) {
	shader, ok := library.shaders[name]
	delete(library.shaders, name)
	return shader, ok
}

// Names returns the registered names in sorted order.
func (library *ShaderLibrary) Names() []string {
	names := make([]string, 0, len(library.shaders))
	for name := range library.shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (library *ShaderLibrary) Len() int { return len(library.shaders) }

// Destroy destroys every shader and empties the library.
func (library *ShaderLibrary) Destroy() {
	for name, shader := range library.shaders {
		shader.Destroy()
		delete(library.shaders, name)
	}
}

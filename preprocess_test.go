package gapi

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatShader = `#type vertex
#version 410 core
layout (location = 0) in vec3 VertexPosition;
void main() { gl_Position = vec4(VertexPosition, 1); }
#type fragment
#version 410 core
out vec4 OutputColor;
void main() { OutputColor = vec4(1); }
`

func TestPreprocessShader(t *testing.T) {
	sources, err := PreprocessShader(flatShader)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, "#version 410 core\n"+
		"layout (location = 0) in vec3 VertexPosition;\n"+
		"void main() { gl_Position = vec4(VertexPosition, 1); }\n", sources[StageVertex])
	assert.Equal(t, "#version 410 core\n"+
		"out vec4 OutputColor;\n"+
		"void main() { OutputColor = vec4(1); }\n", sources[StageFragment])
}

func TestPreprocessShaderCRLF(t *testing.T) {
	src := "#type vertex\r\n\r\nvoid main() {}\r\n#type pixel\r\nvoid main() {}"
	sources, err := PreprocessShader(src)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\r\n", sources[StageVertex])
	assert.Equal(t, "void main() {}", sources[StageFragment])
}

func TestPreprocessShaderGeometry(t *testing.T) {
	src := "// header is ignored\n#type vertex\nA\n#type geometry\nB\n#type fragment\nC\n"
	sources, err := PreprocessShader(src)
	require.NoError(t, err)
	assert.Equal(t, map[ShaderStage]string{
		StageVertex:   "A\n",
		StageGeometry: "B\n",
		StageFragment: "C\n",
	}, sources)
}

func TestPreprocessShaderIgnoresInlineToken(t *testing.T) {
	src := "#type vertex\n// see #type fragment below\nvoid main() {}\n"
	sources, err := PreprocessShader(src)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Contains(t, sources[StageVertex], "see #type fragment")
}

func TestPreprocessShaderIndentedDirective(t *testing.T) {
	src := "#type vertex\nvoid main() {}\n    #type fragment\nout vec4 c;\nvoid main() {}\n\t#type geometry\nG\n"
	sources, err := PreprocessShader(src)
	require.NoError(t, err)
	assert.Equal(t, map[ShaderStage]string{
		StageVertex:   "void main() {}\n",
		StageFragment: "out vec4 c;\nvoid main() {}\n",
		StageGeometry: "G\n",
	}, sources)
}

func TestPreprocessShaderDirectiveSeparator(t *testing.T) {
	sources, err := PreprocessShader("#type\tvertex\nA\n")
	require.NoError(t, err)
	assert.Equal(t, "A\n", sources[StageVertex])
}

func TestPreprocessShaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", ErrNoStages},
		{"no directive", "void main() {}", ErrNoStages},
		{"unterminated", "#type vertex", ErrMissingNewline},
		{"unknown stage", "#type compute\nvoid main() {}", ErrUnknownStage},
		{"glued stage name", "#typevertex\nA\n", ErrUnknownStage},
		{"missing stage name", "#type\nA\n", ErrUnknownStage},
		{"duplicate", "#type vertex\nA\n#type vertex\nB\n", ErrDuplicateStage},
		{"pixel and fragment", "#type pixel\nA\n#type fragment\nB\n", ErrDuplicateStage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PreprocessShader(tt.src)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseShaderStage(t *testing.T) {
	for name, want := range map[string]ShaderStage{
		"vertex":   StageVertex,
		"fragment": StageFragment,
		"pixel":    StageFragment,
		"geometry": StageGeometry,
	} {
		got, err := ParseShaderStage(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseShaderStage("Vertex")
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestLoadShaderSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.glsl")
	require.NoError(t, os.WriteFile(path, []byte(flatShader), 0o644))

	sources, err := LoadShaderSources(path)
	require.NoError(t, err)
	assert.Len(t, sources, 2)

	_, err = LoadShaderSources(filepath.Join(dir, "missing.glsl"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.glsl")
	require.NoError(t, os.WriteFile(bad, []byte("void main() {}"), 0o644))
	_, err = LoadShaderSources(bad)
	assert.ErrorIs(t, err, ErrNoStages)
}

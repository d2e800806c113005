package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionDirective(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"4.1.0 NVIDIA 535.54.03", "#version 410 core"},
		{"4.6 (Core Profile) Mesa 23.2.1", "#version 460 core"},
		{"3.3.0", "#version 330 core"},
		{"4.1 ATI-4.14.1", "#version 410 core"},
	}
	for _, tt := range tests {
		got, err := versionDirective(tt.version)
		require.NoError(t, err, tt.version)
		assert.Equal(t, tt.want, got, tt.version)
	}

	for _, bad := range []string{"", "OpenGL ES 3.2", "2.1 Metal", "3.2.0"} {
		_, err := versionDirective(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewInfo(t *testing.T) {
	info := newInfo("Intel", "Mesa Intel(R) UHD Graphics", "4.6 (Core Profile) Mesa 23.2.1", "4.60")
	assert.Equal(t, "Intel", info.Vendor())
	assert.Equal(t, "Mesa Intel(R) UHD Graphics", info.Renderer())
	assert.Equal(t, "#version 460 core", info.Language())
	assert.Equal(t, "4.60", info.ShadingLanguageVersion())

	fallback := newInfo("", "", "garbage", "")
	assert.Equal(t, fallbackDirective, fallback.Language())
}

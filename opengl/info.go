package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

const fallbackDirective = "#version 410 core"

// Info holds the strings reported by the driver.
type Info struct {
	vendor   string
	renderer string
	version  string
	glsl     string
	language string
}

var _ gapi.Info = (*Info)(nil)

func queryInfo() *Info {
	return newInfo(
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	)
}

func newInfo(vendor, renderer, version, glsl string) *Info {
	language, err := versionDirective(version)
	if err != nil {
		gapi.Logger().Warn("unrecognized gl version", "version", version, "fallback", fallbackDirective)
		language = fallbackDirective
	}
	return &Info{
		vendor:   vendor,
		renderer: renderer,
		version:  version,
		glsl:     glsl,
		language: language,
	}
}

func (info *Info) Vendor() string   { return info.vendor }
func (info *Info) Renderer() string { return info.renderer }
func (info *Info) Version() string  { return info.version }
func (info *Info) Language() string { return info.language }

// ShadingLanguageVersion returns GL_SHADING_LANGUAGE_VERSION verbatim.
func (info *Info) ShadingLanguageVersion() string { return info.glsl }

// versionDirective turns a GL_VERSION string such as "4.1.0 NVIDIA 535.54"
// into the matching GLSL directive "#version 410 core".
func versionDirective(version string) (string, error) {
	var major, minor int
	if _, err := fmt.Sscanf(version, "%d.%d", &major, &minor); err != nil {
		return "", fmt.Errorf("parse gl version %q: %w", version, err)
	}
	if major < 3 || minor < 0 || minor > 9 {
		return "", fmt.Errorf("unsupported gl version %q", version)
	}
	if major == 3 && minor < 3 {
		return "", fmt.Errorf("gl version %q has no core profile directive", version)
	}
	return fmt.Sprintf("#version %d%d0 core", major, minor), nil
}

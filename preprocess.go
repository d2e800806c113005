package gapi

import (
	"fmt"
	"os"
	"strings"
)

// ShaderStage is a programmable pipeline stage.
type ShaderStage int

const (
	StageNone ShaderStage = iota
	StageVertex
	StageFragment
	StageGeometry
)

func (s ShaderStage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	}
	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

// ParseShaderStage parses a #type directive argument. "pixel" is accepted
// as an alias of "fragment".
func ParseShaderStage(name string) (ShaderStage, error) {
	switch name {
	case "vertex":
		return StageVertex, nil
	case "fragment", "pixel":
		return StageFragment, nil
	case "geometry":
		return StageGeometry, nil
	}
	return StageNone, fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

const typeDirective = "#type"

// PreprocessShader splits src into per-stage sources. Each stage starts with
// a line "#type <stage>", optionally indented, and runs until the line of the
// next directive or the end of src. Text before the first directive is ignored.
func PreprocessShader(src string) (map[ShaderStage]string, error) {
	sources := map[ShaderStage]string{}

	_, pos := findDirective(src, 0)
	for pos >= 0 {
		eol := strings.IndexAny(src[pos:], "\r\n")
		if eol < 0 {
			return nil, ErrMissingNewline
		}
		eol += pos

		rest := src[pos+len(typeDirective) : eol]
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, src[pos:eol])
		}
		stage, err := ParseShaderStage(strings.TrimSpace(rest))
		if err != nil {
			return nil, err
		}
		if _, exists := sources[stage]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateStage, stage)
		}

		begin := eol
		for begin < len(src) && (src[begin] == '\r' || src[begin] == '\n') {
			begin++
		}

		var end int
		end, pos = findDirective(src, begin)
		if pos < 0 {
			sources[stage] = src[begin:]
		} else {
			sources[stage] = src[begin:end]
		}
	}

	if len(sources) == 0 {
		return nil, ErrNoStages
	}
	return sources, nil
}

// findDirective finds the next line at or after from whose first
// non-blank text is #type. It returns the start of that line and the
// position of the token, or -1, -1.
func findDirective(src string, from int) (line, pos int) {
	for from <= len(src) {
		i := strings.Index(src[from:], typeDirective)
		if i < 0 {
			return -1, -1
		}
		i += from

		start := i
		for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
			start--
		}
		if start == 0 || src[start-1] == '\n' || src[start-1] == '\r' {
			return start, i
		}
		from = i + len(typeDirective)
	}
	return -1, -1
}

// ReadShaderFile reads a shader source file.
func ReadShaderFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("shader %q: %w", path, err)
	}
	return string(data), nil
}

// LoadShaderSources reads path and splits it with PreprocessShader.
func LoadShaderSources(path string) (map[ShaderStage]string, error) {
	src, err := ReadShaderFile(path)
	if err != nil {
		return nil, err
	}
	sources, err := PreprocessShader(src)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", path, err)
	}
	return sources, nil
}

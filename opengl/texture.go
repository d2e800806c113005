package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

// Texture is an RGBA 2D texture.
type Texture struct {
	Path string
	RGBA *image.RGBA

	id   uint32
	slot uint32
	typ  gapi.TextureType
}

var _ gapi.Texture = (*Texture)(nil)

// LoadTexture decodes the image at path and uploads it.
func LoadTexture(path string, typ gapi.TextureType) (*Texture, error) {
	rgba, err := gapi.DecodeImage(path)
	if err != nil {
		return nil, err
	}

	texture := &Texture{Path: path, RGBA: rgba, typ: typ}
	if err := texture.upload(); err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return texture, nil
}

// NewTexture uploads an in-memory image.
func NewTexture(m image.Image, typ gapi.TextureType) (*Texture, error) {
	rgba, err := gapi.ToRGBA(m)
	if err != nil {
		return nil, err
	}

	texture := &Texture{RGBA: rgba, typ: typ}
	if err := texture.upload(); err != nil {
		return nil, err
	}
	return texture, nil
}

func (texture *Texture) upload() error {
	if texture.id != 0 {
		texture.delete()
	}

	gl.GenTextures(1, &texture.id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(texture.RGBA.Rect.Dx()),
		int32(texture.RGBA.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(texture.RGBA.Pix))

	if err := check("texture upload"); err != nil {
		texture.delete()
		return err
	}
	gapi.Logger().Debug("texture uploaded", "id", texture.id, "width", texture.Width(), "height", texture.Height(), "type", texture.typ)
	return nil
}

func (texture *Texture) Bind(slot uint32) {
	texture.slot = slot
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, texture.id)
}

func (texture *Texture) Unbind() {
	gl.ActiveTexture(gl.TEXTURE0 + texture.slot)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (texture *Texture) Data() []byte {
	if texture.RGBA == nil {
		return nil
	}
	return texture.RGBA.Pix
}

func (texture *Texture) ID() uint32             { return texture.id }
func (texture *Texture) Slot() uint32           { return texture.slot }
func (texture *Texture) Channels() int          { return 4 }
func (texture *Texture) Type() gapi.TextureType { return texture.typ }

func (texture *Texture) Width() int {
	if texture.RGBA == nil {
		return 0
	}
	return texture.RGBA.Rect.Dx()
}

func (texture *Texture) Height() int {
	if texture.RGBA == nil {
		return 0
	}
	return texture.RGBA.Rect.Dy()
}

func (texture *Texture) delete() {
	gl.DeleteTextures(1, &texture.id)
	texture.id = 0
}

func (texture *Texture) Destroy() {
	if texture.id != 0 {
		texture.delete()
	}
	texture.RGBA = nil
	texture.Path = ""
}

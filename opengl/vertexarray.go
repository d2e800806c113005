package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

// VertexArray is a vertex array object.
type VertexArray struct {
	id uint32

	// next attribute location
	attrib uint32

	vertexBuffers []gapi.VertexBuffer
	indexBuffer   gapi.IndexBuffer
}

var _ gapi.VertexArray = (*VertexArray)(nil)

func NewVertexArray() (*VertexArray, error) {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	if va.id == 0 {
		return nil, fmt.Errorf("failed to create vertex array")
	}
	return va, nil
}

func (va *VertexArray) Bind()      { gl.BindVertexArray(va.id) }
func (va *VertexArray) Unbind()    { gl.BindVertexArray(0) }
func (va *VertexArray) ID() uint32 { return va.id }

// attribute is one vertex attribute location set up by AddVertexBuffer.
type attribute struct {
	location   uint32
	size       int32
	xtype      uint32
	integer    bool
	normalized bool
	stride     int32
	offset     int
	divisor    uint32
}

// attributes plans the locations of layout starting at first. Matrices take
// one location per column.
func attributes(layout gapi.BufferLayout, first uint32) ([]attribute, error) {
	if layout.Empty() {
		return nil, gapi.ErrEmptyLayout
	}

	stride := int32(layout.Stride())
	plan := make([]attribute, 0, layout.Slots())
	location := first
	for _, element := range layout.Elements() {
		columns := element.Type.Columns()
		if columns == 0 {
			return nil, fmt.Errorf("attribute %q has no type", element.Name)
		}
		columnSize := element.Size / columns

		for column := 0; column < columns; column++ {
			plan = append(plan, attribute{
				location:   location,
				size:       int32(element.Component),
				xtype:      scalarType(element.Type),
				integer:    element.Type.IsInteger(),
				normalized: element.Normalized,
				stride:     stride,
				offset:     element.Offset + column*columnSize,
				divisor:    element.Divisor,
			})
			location++
		}
	}
	return plan, nil
}

func (va *VertexArray) AddVertexBuffer(vb gapi.VertexBuffer) error {
	plan, err := attributes(vb.Layout(), va.attrib)
	if err != nil {
		return err
	}

	va.Bind()
	vb.Bind()

	for _, attrib := range plan {
		gl.EnableVertexAttribArray(attrib.location)
		if attrib.integer {
			gl.VertexAttribIPointer(attrib.location, attrib.size, attrib.xtype, attrib.stride, gl.PtrOffset(attrib.offset))
		} else {
			gl.VertexAttribPointer(attrib.location, attrib.size, attrib.xtype, attrib.normalized, attrib.stride, gl.PtrOffset(attrib.offset))
		}
		if attrib.divisor > 0 {
			gl.VertexAttribDivisor(attrib.location, attrib.divisor)
		}
	}

	if err := check("vertex array attributes"); err != nil {
		return err
	}
	va.attrib += uint32(len(plan))
	va.vertexBuffers = append(va.vertexBuffers, vb)
	return nil
}

func (va *VertexArray) SetIndexBuffer(ib gapi.IndexBuffer) {
	va.Bind()
	if ib != nil {
		ib.Bind()
	}
	va.indexBuffer = ib
}

func (va *VertexArray) VertexBuffers() []gapi.VertexBuffer {
	if va == nil {
		return nil
	}
	return va.vertexBuffers
}

// IndexBuffer returns the attached index buffer. It is nil-safe so that a
// typed nil vertex array is treated as undrawable.
func (va *VertexArray) IndexBuffer() gapi.IndexBuffer {
	if va == nil {
		return nil
	}
	return va.indexBuffer
}

// Destroy deletes the vertex array object. Attached buffers are not destroyed.
func (va *VertexArray) Destroy() {
	if va.id == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &va.id)
	va.id = 0
	va.attrib = 0
	va.vertexBuffers = nil
	va.indexBuffer = nil
}

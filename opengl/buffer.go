package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

const (
	float32Bytes = 4
	uint32Bytes  = 4
)

func ptr[T any](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// VertexBuffer is a GL_ARRAY_BUFFER of float32 vertex data.
type VertexBuffer struct {
	id     uint32
	size   int
	usage  gapi.DrawUsage
	layout gapi.BufferLayout
}

var _ gapi.VertexBuffer = (*VertexBuffer)(nil)

func NewVertexBuffer(vertices []float32, usage gapi.DrawUsage) (*VertexBuffer, error) {
	vb := &VertexBuffer{size: len(vertices) * float32Bytes, usage: usage}

	gl.GenBuffers(1, &vb.id)
	if vb.id == 0 {
		return nil, fmt.Errorf("failed to create vertex buffer")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, vb.size, ptr(vertices), drawUsage(usage))
	if err := check("vertex buffer upload"); err != nil {
		vb.Destroy()
		return nil, err
	}

	gapi.Logger().Debug("vertex buffer created", "id", vb.id, "bytes", vb.size, "usage", usage)
	return vb, nil
}

func (vb *VertexBuffer) Bind()   { gl.BindBuffer(gl.ARRAY_BUFFER, vb.id) }
func (vb *VertexBuffer) Unbind() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }

func (vb *VertexBuffer) SetLayout(layout gapi.BufferLayout) { vb.layout = layout }
func (vb *VertexBuffer) Layout() gapi.BufferLayout          { return vb.layout }

func (vb *VertexBuffer) ID() uint32 { return vb.id }
func (vb *VertexBuffer) Size() int  { return vb.size }

func (vb *VertexBuffer) SetData(vertices []float32) error {
	size := len(vertices) * float32Bytes
	if size > vb.size {
		return fmt.Errorf("%w: %d > %d bytes", gapi.ErrBufferOverflow, size, vb.size)
	}
	if size == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, ptr(vertices))
	return check("vertex buffer update")
}

func (vb *VertexBuffer) Destroy() {
	if vb.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &vb.id)
	vb.id = 0
	vb.size = 0
}

// IndexBuffer is a GL_ELEMENT_ARRAY_BUFFER of uint32 indices.
type IndexBuffer struct {
	id    uint32
	count int
}

var _ gapi.IndexBuffer = (*IndexBuffer)(nil)

func NewIndexBuffer(indices []uint32, usage gapi.DrawUsage) (*IndexBuffer, error) {
	ib := &IndexBuffer{count: len(indices)}

	gl.GenBuffers(1, &ib.id)
	if ib.id == 0 {
		return nil, fmt.Errorf("failed to create index buffer")
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*uint32Bytes, ptr(indices), drawUsage(usage))
	if err := check("index buffer upload"); err != nil {
		ib.Destroy()
		return nil, err
	}

	gapi.Logger().Debug("index buffer created", "id", ib.id, "count", ib.count)
	return ib, nil
}

func (ib *IndexBuffer) Bind()      { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) }
func (ib *IndexBuffer) Unbind()    { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) }
func (ib *IndexBuffer) Count() int { return ib.count }
func (ib *IndexBuffer) ID() uint32 { return ib.id }

func (ib *IndexBuffer) Destroy() {
	if ib.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &ib.id)
	ib.id = 0
	ib.count = 0
}

package gapi

// BufferElement describes one attribute of interleaved vertex data.
type BufferElement struct {
	Name       string
	Component  Component
	Type       DataType
	Size       int
	Offset     int
	Normalized bool

	// Divisor advances the attribute once per Divisor instances instead of
	// once per vertex. Zero means per-vertex.
	Divisor uint32
}

// Element returns a per-vertex element whose size and component count follow typ.
func Element(name string, typ DataType) BufferElement {
	return BufferElement{Name: name, Type: typ, Component: typ.Components(), Size: typ.Size()}
}

// BufferLayout is the ordered list of attributes in a vertex buffer along
// with their byte offsets and the total stride.
type BufferLayout struct {
	elements []BufferElement
	stride   int
}

// NewBufferLayout computes offsets and stride for elements, in order.
// Zero sizes and components are filled in from the element type.
func NewBufferLayout(elements ...BufferElement) BufferLayout {
	layout := BufferLayout{elements: make([]BufferElement, len(elements))}
	copy(layout.elements, elements)

	offset := 0
	for i := range layout.elements {
		element := &layout.elements[i]
		if element.Size == 0 {
			element.Size = element.Type.Size()
		}
		if element.Component == None {
			element.Component = element.Type.Components()
		}
		element.Offset = offset
		offset += element.Size
	}
	layout.stride = offset
	return layout
}

func (layout BufferLayout) Stride() int { return layout.stride }
func (layout BufferLayout) Len() int    { return len(layout.elements) }
func (layout BufferLayout) Empty() bool { return len(layout.elements) == 0 }

// Elements returns a copy of the layout elements.
func (layout BufferLayout) Elements() []BufferElement {
	elements := make([]BufferElement, len(layout.elements))
	copy(elements, layout.elements)
	return elements
}

// Slots returns the number of attribute locations the layout occupies.
func (layout BufferLayout) Slots() int {
	n := 0
	for _, element := range layout.elements {
		n += element.Type.Columns()
	}
	return n
}

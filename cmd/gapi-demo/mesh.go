package main

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/HobyProjects/gapi"
)

// MeshLayout is the vertex layout produced by MeshData.
var MeshLayout = gapi.NewBufferLayout(
	gapi.Element("VertexPosition", gapi.Float3),
	gapi.Element("VertexNormal", gapi.Float3),
	gapi.Element("VertexUV", gapi.Float2),
)

// MeshFloats is the number of float32 values per vertex.
var MeshFloats = MeshLayout.Stride() / 4

type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

func (mesh *MeshData) VertexCount() int { return len(mesh.Vertices) / MeshFloats }

func (mesh *MeshData) Vertex(v m.Vec3) uint32 {
	p := mesh.VertexCount()
	mesh.Vertices = append(mesh.Vertices, v[:]...)
	// radial normal
	n := m.Vec3{v[0], v[1], 0}
	if n.Len() > 1e-6 {
		n = n.Normalize()
	}
	mesh.Vertices = append(mesh.Vertices, n[:]...)
	// cylindrical UV
	theta := float32(math.Atan2(float64(v.Y()), float64(v.X())))
	pt := theta*0.5/math.Pi + 0.5
	mesh.Vertices = append(mesh.Vertices, v.Z()/3+0.4, pt)
	return uint32(p)
}

func (mesh *MeshData) Triangle(a, b, c uint32) {
	mesh.Indices = append(mesh.Indices, a, b, c)
}

// Fish is the default lathe profile.
func Fish(t, phase float32) m.Vec3 {
	r := 12.291*t*t*t - 20*t*t + 8.508*t
	h := 3 * t
	rx := 0.5 * h * float32(math.Exp(float64(1-h)))

	sn, cs := math.Sincos(float64(phase))
	return m.Vec3{
		r * float32(sn) * rx,
		r * float32(cs),
		(t - 0.5) * 3,
	}
}

// Lathe sweeps fn around the z axis. depth is the number of rings and
// corners the number of vertices per ring.
func Lathe(depth, corners int, capped bool, fn func(t, phase float32) m.Vec3) MeshData {
	mesh := MeshData{}

	var headAverage m.Vec3
	lastLayer, nextLayer := make([]uint32, corners), make([]uint32, corners)
	for pi := 0; pi < corners; pi++ {
		p := float32(pi) * math.Pi * 2 / float32(corners-1)
		v := fn(0, p)
		lastLayer[pi] = mesh.Vertex(v)
		if capped {
			headAverage = headAverage.Add(v)
		}
	}

	if capped {
		headAverage = headAverage.Mul(1 / float32(corners))
		z0 := mesh.Vertex(headAverage)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(z0, a, b)
		}
	}

	var tailAverage m.Vec3
	for ti := 1; ti < depth; ti++ {
		t := float32(ti) / float32(depth-1)
		for pi := 0; pi < corners; pi++ {
			p := float32(pi) * math.Pi * 2 / float32(corners-1)
			v := fn(t, p)
			nextLayer[pi] = mesh.Vertex(v)
			if capped && ti == depth-1 {
				tailAverage = tailAverage.Add(v)
			}
		}

		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			c, d := nextLayer[pi], nextLayer[(pi+1)%corners]
			mesh.Triangle(a, c, d)
			mesh.Triangle(a, d, b)
		}

		lastLayer, nextLayer = nextLayer, lastLayer
	}

	if capped {
		tailAverage = tailAverage.Mul(1 / float32(corners))
		zt := mesh.Vertex(tailAverage)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(a, zt, b)
		}
	}

	return mesh
}

// Upload creates the vertex array for mesh on device.
func (mesh *MeshData) Upload(device gapi.Device) (gapi.VertexArray, error) {
	vb, err := device.NewVertexBuffer(mesh.Vertices, gapi.StaticDraw)
	if err != nil {
		return nil, err
	}
	vb.SetLayout(MeshLayout)

	ib, err := device.NewIndexBuffer(mesh.Indices, gapi.StaticDraw)
	if err != nil {
		vb.Destroy()
		return nil, err
	}

	va, err := device.NewVertexArray()
	if err != nil {
		vb.Destroy()
		ib.Destroy()
		return nil, err
	}
	if err := va.AddVertexBuffer(vb); err != nil {
		va.Destroy()
		vb.Destroy()
		ib.Destroy()
		return nil, err
	}
	va.SetIndexBuffer(ib)
	return va, nil
}

// Package model groups meshes under a single transform and loads them from
// Wavefront OBJ files.
package model

import (
	"fmt"
	"io"

	"example.com/shading/internal/mesh"
	"example.com/shading/internal/xform"
	"github.com/go-gl/mathgl/mgl32"
)

type Model struct {
	Name      string
	Transform xform.Transform
	Meshes    []*mesh.Mesh
	Shading   mesh.ShadingType
}

func New(name string) *Model {
	return &Model{Name: name, Transform: xform.New(), Shading: mesh.Smooth}
}

func (m *Model) ModelMatrix() mgl32.Mat4 { return m.Transform.ModelMatrix() }

// ToggleShading flips between flat and smooth. Callers must re-upload the
// mesh buffers afterwards.
func (m *Model) ToggleShading() mesh.ShadingType {
	m.Shading = m.Shading.Toggle()
	return m.Shading
}

func (m *Model) TriangleCount() int {
	n := 0
	for _, me := range m.Meshes {
		n += me.TriangleCount()
	}
	return n
}

func (m *Model) PrintInfo(w io.Writer) {
	fmt.Fprintf(w, "model %s: %d meshes, %d triangles\n", m.Name, len(m.Meshes), m.TriangleCount())
	for _, me := range m.Meshes {
		fmt.Fprintf(w, "mesh %s (material %s)\n", me.Name, me.Material.Name)
		me.PrintInfo(w)
	}
}

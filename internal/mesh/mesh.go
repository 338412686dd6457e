// Package mesh turns indexed polygon data into the per triangle-vertex
// arrays that are uploaded for flat or smooth shading.
package mesh

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrDegenerateFace = errors.New("face has fewer than 3 vertices")
	ErrIndexRange     = errors.New("vertex index out of range")
)

type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	// Normals are per-vertex normals supplied by the importer. When present
	// they replace the computed smooth normals.
	Normals  []mgl32.Vec3
	Indices  []uint32 // 3 x #triangles
	Material Material

	vertexNormals   []mgl32.Vec3
	tvPositions     []mgl32.Vec3
	tvFlatNormals   []mgl32.Vec3
	tvSmoothNormals []mgl32.Vec3
}

func New(name string) *Mesh {
	return &Mesh{Name: name, Material: DefaultMaterial()}
}

// AddFace converts a polygon to a triangle fan around its first vertex.
func (m *Mesh) AddFace(face ...uint32) error {
	if len(face) < 3 {
		return fmt.Errorf("%w: got %d", ErrDegenerateFace, len(face))
	}
	for i := 0; i < len(face)-2; i++ {
		m.Indices = append(m.Indices, face[0], face[i+1], face[i+2])
	}
	return nil
}

func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Update rebuilds the triangle-vertex arrays. It must run after positions,
// normals or indices change.
func (m *Mesh) Update() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices do not form triangles", ErrIndexRange, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("%w: index %d at %d, %d vertices", ErrIndexRange, idx, i, len(m.Positions))
		}
	}

	n := len(m.Indices)
	m.tvPositions = make([]mgl32.Vec3, n)
	m.tvFlatNormals = make([]mgl32.Vec3, n)
	m.tvSmoothNormals = make([]mgl32.Vec3, n)

	acc := newAccumulator(len(m.Positions))
	for i := 0; i < n; i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p, q, r := m.Positions[a], m.Positions[b], m.Positions[c]

		fn := faceNormal(p, q, r)
		acc.add(a, fn)
		acc.add(b, fn)
		acc.add(c, fn)

		m.tvPositions[i], m.tvPositions[i+1], m.tvPositions[i+2] = p, q, r
		m.tvFlatNormals[i], m.tvFlatNormals[i+1], m.tvFlatNormals[i+2] = toVec3(fn), toVec3(fn), toVec3(fn)
	}

	m.vertexNormals = acc.normalized()
	if len(m.Normals) == len(m.Positions) && len(m.Normals) > 0 {
		copy(m.vertexNormals, m.Normals)
	}

	for i, idx := range m.Indices {
		m.tvSmoothNormals[i] = m.vertexNormals[idx]
	}
	return nil
}

// Buffers returns the position and normal arrays for the given shading.
func (m *Mesh) Buffers(s ShadingType) (positions, normals []mgl32.Vec3) {
	if s == Flat {
		return m.tvPositions, m.tvFlatNormals
	}
	return m.tvPositions, m.tvSmoothNormals
}

func (m *Mesh) VertexNormals() []mgl32.Vec3 { return m.vertexNormals }

// TriangleVertexCount is the number of vertices drawn with GL_TRIANGLES.
func (m *Mesh) TriangleVertexCount() int { return len(m.tvPositions) }

func (m *Mesh) PrintInfo(w io.Writer) {
	fmt.Fprintln(w, "print mesh info")
	fmt.Fprintf(w, "num vertices %d\n", len(m.Positions))
	for _, v := range m.Positions {
		fmt.Fprintf(w, "  vertex  (%g, %g, %g)\n", v[0], v[1], v[2])
	}
}

package gfx

import (
	"unsafe"

	"example.com/shading/internal/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshBuffers are the GPU copies of one mesh's triangle-vertex arrays.
type MeshBuffers struct {
	vao      uint32
	position uint32
	normal   uint32
	count    int32
}

func NewMeshBuffers() *MeshBuffers {
	b := &MeshBuffers{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.position)
	gl.GenBuffers(1, &b.normal)
	return b
}

func bufferData(buf uint32, data []mgl32.Vec3) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*3*4, ptr, gl.STATIC_DRAW)
}

// Upload replaces the buffer contents with m's arrays for shading s.
func (b *MeshBuffers) Upload(m *mesh.Mesh, s mesh.ShadingType) {
	pos, normals := m.Buffers(s)
	bufferData(b.position, pos)
	bufferData(b.normal, normals)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.count = int32(len(pos))
}

func bindAttrib(loc int32, buf uint32) {
	if loc < 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (b *MeshBuffers) Draw(loc Locations) {
	gl.BindVertexArray(b.vao)
	bindAttrib(loc.Position, b.position)
	bindAttrib(loc.Normal, b.normal)

	gl.DrawArrays(gl.TRIANGLES, 0, b.count)

	if loc.Position >= 0 {
		gl.DisableVertexAttribArray(uint32(loc.Position))
	}
	if loc.Normal >= 0 {
		gl.DisableVertexAttribArray(uint32(loc.Normal))
	}
	gl.BindVertexArray(0)
}

func (b *MeshBuffers) Delete() {
	gl.DeleteBuffers(1, &b.position)
	gl.DeleteBuffers(1, &b.normal)
	gl.DeleteVertexArrays(1, &b.vao)
}

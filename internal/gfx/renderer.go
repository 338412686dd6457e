package gfx

import (
	"example.com/shading/internal/mesh"
	"example.com/shading/internal/model"
	"example.com/shading/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Renderer struct {
	program *Program
	buffers map[*mesh.Mesh]*MeshBuffers
}

func NewRenderer(p *Program) *Renderer {
	gl.Enable(gl.DEPTH_TEST)
	return &Renderer{program: p, buffers: map[*mesh.Mesh]*MeshBuffers{}}
}

func (r *Renderer) Program() *Program { return r.program }

// SetProgram swaps in p and deletes the previous program.
func (r *Renderer) SetProgram(p *Program) {
	if r.program != nil && r.program != p {
		r.program.Delete()
	}
	r.program = p
}

// Upload (re)populates the GPU buffers of every mesh of m using the model's
// current shading type.
func (r *Renderer) Upload(m *model.Model) {
	for _, me := range m.Meshes {
		b, ok := r.buffers[me]
		if !ok {
			b = NewMeshBuffers()
			r.buffers[me] = b
		}
		b.Upload(me, m.Shading)
	}
}

func (r *Renderer) UploadScene(s *scene.Scene) {
	for _, m := range s.Models {
		r.Upload(m)
	}
}

func vec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3fv(loc, 1, &v[0])
}

// Render draws one frame of s from its selected camera.
func (r *Renderer) Render(s *scene.Scene) {
	gl.ClearColor(s.ClearColor[0], s.ClearColor[1], s.ClearColor[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam := s.SelectedCamera()
	if cam == nil || r.program == nil || r.program.ID == 0 {
		return
	}
	loc := r.program.Loc

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	gl.UseProgram(r.program.ID)

	vec3(loc.CameraPosition, cam.Position())

	vec3(loc.LightPosition, s.Light.Position)
	vec3(loc.LightAmbient, s.Light.Ambient)
	vec3(loc.LightDiffuse, s.Light.Diffuse)
	vec3(loc.LightSpecular, s.Light.Specular)

	for _, m := range s.Models {
		world := m.ModelMatrix()
		normal := m.Transform.NormalMatrix()
		pvm := proj.Mul4(view).Mul4(world)

		gl.UniformMatrix4fv(loc.PVM, 1, false, &pvm[0])
		gl.UniformMatrix4fv(loc.ModelMatrix, 1, false, &world[0])
		gl.UniformMatrix3fv(loc.NormalMatrix, 1, false, &normal[0])

		for _, me := range m.Meshes {
			b, ok := r.buffers[me]
			if !ok {
				continue
			}
			mat := me.Material
			vec3(loc.ObjAmbient, mat.Ambient)
			vec3(loc.ObjDiffuse, mat.Diffuse)
			vec3(loc.ObjSpecular, mat.Specular)
			gl.Uniform1f(loc.ObjShininess, mat.Shininess)

			b.Draw(loc)
		}
	}

	gl.UseProgram(0)
}

func (r *Renderer) Delete() {
	for me, b := range r.buffers {
		b.Delete()
		delete(r.buffers, me)
	}
	r.program.Delete()
}

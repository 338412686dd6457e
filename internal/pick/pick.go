// Package pick selects the model under the cursor by casting a ray through
// the current camera.
package pick

import (
	"math"

	"example.com/shading/internal/camera"
	"example.com/shading/internal/mesh"
	"example.com/shading/internal/model"
	"github.com/chewxy/math32"
	"github.com/deeean/go-vector/vector3"
	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	O   *vector3.Vector3
	Dir *vector3.Vector3
}

type Tri struct {
	v0, v1, v2 *vector3.Vector3
	n          *vector3.Vector3
}

func vec(v mgl32.Vec3) *vector3.Vector3 {
	return vector3.New(float64(v[0]), float64(v[1]), float64(v[2]))
}

// NewTri returns false for a zero-area triangle.
func NewTri(p, q, r mgl32.Vec3) (Tri, bool) {
	t := Tri{v0: vec(p), v1: vec(q), v2: vec(r)}
	d1 := t.v1.Sub(t.v0)
	d2 := t.v2.Sub(t.v0)
	n := d1.Cross(d2)
	if n.Magnitude() == 0 {
		return t, false
	}
	t.n = n.Normalize()
	return t, true
}

// FromCursor builds a world space ray through window coordinates (x, y),
// with y growing downwards as GLFW reports it.
func FromCursor(c *camera.Camera, x, y float64, width, height int) (Ray, bool) {
	if width <= 0 || height <= 0 {
		return Ray{}, false
	}
	nx := float32(2*x/float64(width) - 1)
	ny := float32(1 - 2*y/float64(height))

	pv := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	if pv.Det() == 0 {
		return Ray{}, false
	}
	inv := pv.Inv()
	near := inv.Mul4x1(mgl32.Vec4{nx, ny, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{nx, ny, 1, 1})
	if math32.Abs(near[3]) < 1e-12 || math32.Abs(far[3]) < 1e-12 {
		return Ray{}, false
	}
	o := near.Vec3().Mul(1 / near[3])
	f := far.Vec3().Mul(1 / far[3])

	dir := vec(f.Sub(o))
	if dir.Magnitude() == 0 {
		return Ray{}, false
	}
	return Ray{O: vec(o), Dir: dir.Normalize()}, true
}

func backface(r Ray, t Tri) bool {
	return r.Dir.Dot(t.n) > 0
}

// Intersect returns the ray parameter of the hit with t's plane, or -1.
func Intersect(t Tri, r Ray) (float64, *vector3.Vector3) {
	denom := r.Dir.Dot(t.n)
	if math.Abs(denom) > 0.000001 {
		d := t.n.Dot(t.v0.Sub(r.O)) / denom
		return d, r.O.Add(r.Dir.MulScalar(d))
	}
	return -1, &vector3.Vector3{}
}

// InTri reports whether p, assumed to lie on t's plane, is inside t.
func InTri(t Tri, p *vector3.Vector3) bool {
	v0v1 := t.v1.Sub(t.v0)
	v1v2 := t.v2.Sub(t.v1)
	v2v0 := t.v0.Sub(t.v2)

	epsilon := 0.001
	if t.n.Dot(v0v1.Cross(p.Sub(t.v0))) < -epsilon {
		return false
	}
	if t.n.Dot(v1v2.Cross(p.Sub(t.v1))) < -epsilon {
		return false
	}
	if t.n.Dot(v2v0.Cross(p.Sub(t.v2))) < -epsilon {
		return false
	}
	return true
}

// Hit returns the distance along r to the front face of t.
func Hit(t Tri, r Ray) (float64, bool) {
	if backface(r, t) {
		return 0, false
	}
	d, p := Intersect(t, r)
	if d <= 0 || !InTri(t, p) {
		return 0, false
	}
	return d, true
}

// Nearest returns the index of the closest model hit by r and the distance,
// or -1 when nothing is hit.
func Nearest(models []*model.Model, r Ray) (int, float64) {
	best, bestT := -1, math.Inf(1)
	for i, m := range models {
		mat := m.ModelMatrix()
		for _, me := range m.Meshes {
			pos, _ := me.Buffers(mesh.Smooth)
			for k := 0; k+2 < len(pos); k += 3 {
				t, ok := NewTri(
					mgl32.TransformCoordinate(pos[k], mat),
					mgl32.TransformCoordinate(pos[k+1], mat),
					mgl32.TransformCoordinate(pos[k+2], mat),
				)
				if !ok {
					continue
				}
				if d, hit := Hit(t, r); hit && d < bestT {
					best, bestT = i, d
				}
			}
		}
	}
	return best, bestT
}

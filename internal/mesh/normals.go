package mesh

import (
	"github.com/deeean/go-vector/vector3"
	"github.com/go-gl/mathgl/mgl32"
)

// Face normals are accumulated in float64 so that large fans of small
// triangles don't drift.

func toVector3(v mgl32.Vec3) *vector3.Vector3 {
	return vector3.New(float64(v[0]), float64(v[1]), float64(v[2]))
}

func toVec3(v *vector3.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// faceNormal returns the unit normal of the counter-clockwise triangle pqr,
// or the zero vector for a zero-area triangle.
func faceNormal(p, q, r mgl32.Vec3) *vector3.Vector3 {
	vp := toVector3(p)
	d1 := toVector3(q).Sub(vp)
	d2 := toVector3(r).Sub(vp)

	n := d1.Cross(d2)
	if n.Magnitude() == 0 {
		return vector3.New(0, 0, 0)
	}
	return n.Normalize()
}

type accumulator []*vector3.Vector3

func newAccumulator(n int) accumulator {
	a := make(accumulator, n)
	for i := range a {
		a[i] = vector3.New(0, 0, 0)
	}
	return a
}

func (a accumulator) add(i uint32, n *vector3.Vector3) {
	a[i] = a[i].Add(n)
}

// normalized returns the unit per-vertex normals. Vertices not referenced by
// any non-degenerate triangle keep a zero normal.
func (a accumulator) normalized() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(a))
	for i, n := range a {
		if n.Magnitude() == 0 {
			continue
		}
		out[i] = toVec3(n.Normalize())
	}
	return out
}

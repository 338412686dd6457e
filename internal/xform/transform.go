// Package xform composes model matrices from independently settable
// translation, rotation and scale.
package xform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds the TRS components of a model. The zero value is not the
// identity; use New.
type Transform struct {
	Translate mgl32.Vec3
	Rotate    mgl32.Quat
	Scale     mgl32.Vec3
}

func New() Transform {
	return Transform{
		Rotate: mgl32.QuatIdent(),
		Scale:  mgl32.Vec3{1, 1, 1},
	}
}

// ModelMatrix returns T * R * S.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2]))
	m = m.Mul4(t.Rotate.Mat4())
	m = m.Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
	return m
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of the model
// matrix. A singular upper 3x3 (zero scale) yields the plain upper 3x3.
func (t Transform) NormalMatrix() mgl32.Mat3 {
	return NormalMatrix(t.ModelMatrix())
}

func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	m := model.Mat3()
	if m.Det() == 0 {
		return m
	}
	return m.Inv().Transpose()
}

func (t Transform) RotateMat3() mgl32.Mat3 { return t.Rotate.Mat4().Mat3() }
func (t Transform) RotateMat4() mgl32.Mat4 { return t.Rotate.Mat4() }

func (t *Transform) SetRotateQuat(q mgl32.Quat) { t.Rotate = q.Normalize() }
func (t *Transform) SetRotateMat3(m mgl32.Mat3) { t.Rotate = mgl32.Mat4ToQuat(m.Mat4()).Normalize() }
func (t *Transform) SetRotateMat4(m mgl32.Mat4) { t.Rotate = mgl32.Mat4ToQuat(m).Normalize() }

// RotateBy applies an extra rotation of angle radians about a world axis.
func (t *Transform) RotateBy(angle float32, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	q := mgl32.QuatRotate(angle, axis.Normalize())
	t.Rotate = q.Mul(t.Rotate).Normalize()
}

// AddScale grows every scale component by d, keeping each at or above min.
func (t *Transform) AddScale(d, min float32) {
	for i := range t.Scale {
		t.Scale[i] += d
		if t.Scale[i] < min {
			t.Scale[i] = min
		}
	}
}

// Package camera builds view and projection matrices for a first-person
// camera that is either orthographic or perspective.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Mode int

const (
	Ortho Mode = iota
	Perspective
)

func (m Mode) String() string {
	if m == Perspective {
		return "perspective"
	}
	return "ortho"
}

const (
	MinFovy       = 10
	MaxFovy       = 160
	MinOrthoScale = 0.1
	MaxOrthoScale = 10
)

// Camera keeps front, up and right as an orthonormal frame.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	mode       Mode
	orthoScale float32
	fovy       float32 // degrees
	aspect     float32
	near, far  float32
}

func New() *Camera {
	return &Camera{
		position:   mgl32.Vec3{0, 0, 0.5},
		front:      mgl32.Vec3{0, 0, -1},
		up:         mgl32.Vec3{0, 1, 0},
		right:      mgl32.Vec3{1, 0, 0},
		mode:       Ortho,
		orthoScale: 1,
		fovy:       60,
		aspect:     1,
		near:       0.01,
		far:        1000,
	}
}

func (c *Camera) Position() mgl32.Vec3       { return c.position }
func (c *Camera) SetPosition(p mgl32.Vec3)   { c.position = p }
func (c *Camera) FrontDirection() mgl32.Vec3 { return c.front }
func (c *Camera) UpDirection() mgl32.Vec3    { return c.up }
func (c *Camera) RightDirection() mgl32.Vec3 { return c.right }

func (c *Camera) MoveForward(d float32)  { c.position = c.position.Add(c.front.Mul(d)) }
func (c *Camera) MoveBackward(d float32) { c.position = c.position.Sub(c.front.Mul(d)) }
func (c *Camera) MoveLeft(d float32)     { c.position = c.position.Sub(c.right.Mul(d)) }
func (c *Camera) MoveRight(d float32)    { c.position = c.position.Add(c.right.Mul(d)) }
func (c *Camera) MoveUp(d float32)       { c.position = c.position.Add(c.up.Mul(d)) }
func (c *Camera) MoveDown(d float32)     { c.position = c.position.Sub(c.up.Mul(d)) }

// SetPoseLookAt places the camera at pos looking towards at. An up vector
// parallel to the viewing direction leaves the orientation unchanged.
func (c *Camera) SetPoseLookAt(pos, at, up mgl32.Vec3) {
	c.position = pos
	dir := at.Sub(pos)
	right := dir.Cross(up)
	if dir.Len() == 0 || right.Len() == 0 {
		return
	}
	c.front = dir.Normalize()
	c.right = right.Normalize()
	c.up = c.right.Cross(c.front)
}

// Rotation is the camera to world rotation: its columns are +x, +y and +z of
// the camera in world space.
func (c *Camera) Rotation() mgl32.Quat {
	m := mgl32.Mat3FromCols(c.right, c.up, c.front.Mul(-1))
	return mgl32.Mat4ToQuat(m.Mat4()).Normalize()
}

func (c *Camera) SetRotation(q mgl32.Quat) {
	m := q.Normalize().Mat4()
	c.right = m.Col(0).Vec3()
	c.up = m.Col(1).Vec3()
	c.front = m.Col(2).Vec3().Mul(-1)
}

// Pose returns the camera to world frame.
func (c *Camera) Pose() mgl32.Mat4 {
	back := c.front.Mul(-1)
	return mgl32.Mat4FromCols(
		c.right.Vec4(0),
		c.up.Vec4(0),
		back.Vec4(0),
		c.position.Vec4(1),
	)
}

func (c *Camera) SetPose(frame mgl32.Mat4) {
	c.SetRotation(mgl32.Mat4ToQuat(frame))
	c.position = frame.Col(3).Vec3()
}

func (c *Camera) PoseQuat() (mgl32.Quat, mgl32.Vec3) {
	return c.Rotation(), c.position
}

func (c *Camera) SetPoseQuat(q mgl32.Quat, t mgl32.Vec3) {
	c.SetRotation(q)
	c.position = t
}

// Turn rotates the camera in place by yaw radians about world +y and pitch
// radians about its own right axis.
func (c *Camera) Turn(yaw, pitch float32) {
	q, p := c.PoseQuat()
	turn := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, c.right))
	c.SetPoseQuat(turn.Mul(q), p)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.mode == Perspective {
		return mgl32.Perspective(mgl32.DegToRad(c.fovy), c.aspect, c.near, c.far)
	}
	w := c.orthoScale * c.aspect
	h := c.orthoScale
	return mgl32.Ortho(-w, w, -h, h, c.near, c.far)
}

func (c *Camera) Mode() Mode        { return c.mode }
func (c *Camera) SetMode(m Mode)    { c.mode = m }
func (c *Camera) Fovy() float32     { return c.fovy }
func (c *Camera) SetFovy(f float32) { c.fovy = clamp(f, MinFovy, MaxFovy) }

func (c *Camera) OrthoScale() float32 { return c.orthoScale }
func (c *Camera) SetOrthoScale(s float32) {
	c.orthoScale = clamp(s, MinOrthoScale, MaxOrthoScale)
}

func (c *Camera) Aspect() float32 { return c.aspect }

// SetAspect ignores non-positive ratios, which a minimised window reports.
func (c *Camera) SetAspect(a float32) {
	if a > 0 && !math32.IsInf(a, 0) && !math32.IsNaN(a) {
		c.aspect = a
	}
}

func (c *Camera) ClipPlanes() (near, far float32) { return c.near, c.far }

func (c *Camera) SetClipPlanes(near, far float32) {
	if near > 0 && far > near {
		c.near, c.far = near, far
	}
}

// ToggleMode flips between orthographic and perspective projection.
func (c *Camera) ToggleMode() Mode {
	if c.mode == Perspective {
		c.mode = Ortho
	} else {
		c.mode = Perspective
	}
	return c.mode
}

// Zoom applies a scroll offset: fovy in perspective mode, scale otherwise.
func (c *Camera) Zoom(offset float32) {
	if c.mode == Perspective {
		c.SetFovy(c.fovy + offset)
		return
	}
	c.SetOrthoScale(c.orthoScale + offset*MinOrthoScale)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

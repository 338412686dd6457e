package app

import (
	"log/slog"

	"example.com/shading/internal/model"
	"example.com/shading/internal/pick"
	"example.com/shading/internal/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// MinScale keeps models from collapsing or mirroring under repeated "-".
const MinScale = 0.01

// Shininess range reachable with "[" and "]".
const (
	MinShininess = 1
	MaxShininess = 1024
)

// Effects are the GL and window side effects an input can trigger.
type Effects interface {
	Reupload(m *model.Model)
	SetLighting(l scene.Lighting)
	Screenshot()
	Close()
}

// Controller maps GLFW input onto scene state.
type Controller struct {
	Scene      *scene.Scene
	Step       float32
	RotateStep float32 // degrees

	fx Effects
}

func NewController(s *scene.Scene, step, rotateStep float32, fx Effects) *Controller {
	return &Controller{Scene: s, Step: step, RotateStep: rotateStep, fx: fx}
}

func toggleKey(key glfw.Key) bool {
	switch key {
	case glfw.KeyEscape, glfw.KeyTab, glfw.KeyC, glfw.KeyG, glfw.KeyF2, glfw.KeyP, glfw.KeyF:
		return true
	}
	return false
}

// Key handles a key event. Repeats act like presses for movement keys so
// held keys keep moving things; toggles only fire on press.
func (c *Controller) Key(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release || (action == glfw.Repeat && toggleKey(key)) {
		return
	}
	s := c.Scene

	switch key {
	case glfw.KeyEscape:
		c.fx.Close()
		return
	case glfw.KeyTab:
		i := s.CycleModel()
		slog.Info("model selected", "index", i)
		return
	case glfw.KeyC:
		i := s.CycleCamera()
		slog.Info("camera selected", "index", i)
		return
	case glfw.KeyG:
		s.Lighting = s.Lighting.Toggle()
		slog.Info("lighting changed", "lighting", s.Lighting)
		c.fx.SetLighting(s.Lighting)
		return
	case glfw.KeyF2:
		c.fx.Screenshot()
		return
	}

	rot := mgl32.DegToRad(c.RotateStep)
	if mods&glfw.ModShift != 0 && c.turnCamera(key, rot) {
		return
	}
	if mods&glfw.ModControl != 0 && c.adjustLight(key, rot) {
		return
	}

	if cam := s.SelectedCamera(); cam != nil {
		switch key {
		case glfw.KeyW:
			cam.MoveForward(c.Step)
		case glfw.KeyS:
			cam.MoveBackward(c.Step)
		case glfw.KeyA:
			cam.MoveLeft(c.Step)
		case glfw.KeyD:
			cam.MoveRight(c.Step)
		case glfw.KeyE:
			cam.MoveUp(c.Step)
		case glfw.KeyQ:
			cam.MoveDown(c.Step)
		case glfw.KeyP:
			slog.Info("projection changed", "mode", cam.ToggleMode())
		}
	}

	m := s.SelectedModel()
	if m == nil {
		return
	}
	t := &m.Transform
	switch key {
	case glfw.KeyH:
		t.Translate[0] -= c.Step
	case glfw.KeyL:
		t.Translate[0] += c.Step
	case glfw.KeyJ:
		t.Translate[1] -= c.Step
	case glfw.KeyK:
		t.Translate[1] += c.Step
	case glfw.KeyEqual, glfw.KeyKPAdd:
		t.AddScale(c.Step, MinScale)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		t.AddScale(-c.Step, MinScale)
	case glfw.KeyLeft:
		t.RotateBy(-rot, mgl32.Vec3{0, 1, 0})
	case glfw.KeyRight:
		t.RotateBy(rot, mgl32.Vec3{0, 1, 0})
	case glfw.KeyUp:
		t.RotateBy(-rot, mgl32.Vec3{1, 0, 0})
	case glfw.KeyDown:
		t.RotateBy(rot, mgl32.Vec3{1, 0, 0})
	case glfw.KeyF:
		st := m.ToggleShading()
		slog.Info("shading changed", "model", m.Name, "shading", st)
		c.fx.Reupload(m)
	case glfw.KeyRightBracket:
		scaleShininess(m, 2)
	case glfw.KeyLeftBracket:
		scaleShininess(m, 0.5)
	}
}

// turnCamera yaws (left/right) or pitches (up/down) the selected camera.
func (c *Controller) turnCamera(key glfw.Key, rot float32) bool {
	cam := c.Scene.SelectedCamera()
	if cam == nil {
		return false
	}
	switch key {
	case glfw.KeyLeft:
		cam.Turn(rot, 0)
	case glfw.KeyRight:
		cam.Turn(-rot, 0)
	case glfw.KeyUp:
		cam.Turn(0, rot)
	case glfw.KeyDown:
		cam.Turn(0, -rot)
	default:
		return false
	}
	return true
}

// adjustLight orbits the light about the world origin with the arrows and
// dims or brightens its diffuse and specular terms with "-" and "=".
func (c *Controller) adjustLight(key glfw.Key, rot float32) bool {
	l := &c.Scene.Light
	switch key {
	case glfw.KeyLeft:
		l.Position = mgl32.QuatRotate(-rot, mgl32.Vec3{0, 1, 0}).Rotate(l.Position)
	case glfw.KeyRight:
		l.Position = mgl32.QuatRotate(rot, mgl32.Vec3{0, 1, 0}).Rotate(l.Position)
	case glfw.KeyUp:
		l.Position = mgl32.QuatRotate(-rot, mgl32.Vec3{1, 0, 0}).Rotate(l.Position)
	case glfw.KeyDown:
		l.Position = mgl32.QuatRotate(rot, mgl32.Vec3{1, 0, 0}).Rotate(l.Position)
	case glfw.KeyEqual, glfw.KeyKPAdd:
		l.Diffuse = addClamped(l.Diffuse, c.Step)
		l.Specular = addClamped(l.Specular, c.Step)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		l.Diffuse = addClamped(l.Diffuse, -c.Step)
		l.Specular = addClamped(l.Specular, -c.Step)
	default:
		return false
	}
	slog.Debug("light changed", "position", l.Position, "diffuse", l.Diffuse, "specular", l.Specular)
	return true
}

func addClamped(v mgl32.Vec3, d float32) mgl32.Vec3 {
	for i := range v {
		v[i] = mgl32.Clamp(v[i]+d, 0, 1)
	}
	return v
}

func scaleShininess(m *model.Model, f float32) {
	for _, me := range m.Meshes {
		me.Material.Shininess = mgl32.Clamp(me.Material.Shininess*f, MinShininess, MaxShininess)
	}
	slog.Info("shininess changed", "model", m.Name, "factor", f)
}

// Scroll zooms the selected camera.
func (c *Controller) Scroll(yoff float64) {
	if cam := c.Scene.SelectedCamera(); cam != nil {
		cam.Zoom(float32(yoff))
	}
}

// Resize updates every camera's aspect ratio. Zero sizes (minimised
// windows) are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Scene.SetAspect(float32(width) / float32(height))
}

// Click selects the model under window position (x, y) and reports its
// index, or -1 when the cursor is over background.
func (c *Controller) Click(x, y float64, width, height int) int {
	cam := c.Scene.SelectedCamera()
	if cam == nil {
		return -1
	}
	ray, ok := pick.FromCursor(cam, x, y, width, height)
	if !ok {
		return -1
	}
	i, d := pick.Nearest(c.Scene.Models, ray)
	if i < 0 {
		return -1
	}
	c.Scene.Select(i)
	slog.Info("model picked", "index", i, "distance", d)
	return i
}

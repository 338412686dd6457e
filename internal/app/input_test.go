package app

import (
	"testing"

	"example.com/shading/internal/camera"
	"example.com/shading/internal/mesh"
	"example.com/shading/internal/model"
	"example.com/shading/internal/scene"
	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	reuploaded []*model.Model
	lighting   []scene.Lighting
	shots      int
	closed     bool
}

func (r *recorder) Reupload(m *model.Model)      { r.reuploaded = append(r.reuploaded, m) }
func (r *recorder) SetLighting(l scene.Lighting) { r.lighting = append(r.lighting, l) }
func (r *recorder) Screenshot()                  { r.shots++ }
func (r *recorder) Close()                       { r.closed = true }

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func quad(t *testing.T, name string, x float32) *model.Model {
	t.Helper()
	me := mesh.New(name)
	me.Positions = []mgl32.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	require.NoError(t, me.AddFace(0, 1, 2, 3))
	require.NoError(t, me.Update())

	m := model.New(name)
	m.Meshes = []*mesh.Mesh{me}
	m.Transform.Translate = mgl32.Vec3{x, 0, 0}
	return m
}

func newController(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	s := scene.New()
	s.Models = []*model.Model{quad(t, "left", -10), quad(t, "center", 0)}

	c := camera.New()
	c.SetMode(camera.Perspective)
	c.SetPoseLookAt(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	s.Cameras = []*camera.Camera{c, camera.New()}

	r := &recorder{}
	return NewController(s, 0.1, 90, r), r
}

func TestTranslateKeys(t *testing.T) {
	c, _ := newController(t)
	m := c.Scene.SelectedModel()

	c.Key(glfw.KeyL, glfw.Press, 0)
	c.Key(glfw.KeyL, glfw.Repeat, 0)
	c.Key(glfw.KeyK, glfw.Press, 0)
	c.Key(glfw.KeyH, glfw.Release, 0)

	assert.InDelta(t, -9.8, m.Transform.Translate[0], 1e-5)
	assert.InDelta(t, 0.1, m.Transform.Translate[1], 1e-5)

	c.Key(glfw.KeyJ, glfw.Press, 0)
	assert.InDelta(t, 0, m.Transform.Translate[1], 1e-5)
}

func TestScaleNeverCollapses(t *testing.T) {
	c, _ := newController(t)
	m := c.Scene.SelectedModel()

	c.Key(glfw.KeyEqual, glfw.Press, 0)
	assert.InDelta(t, 1.1, m.Transform.Scale[0], 1e-5)

	for i := 0; i < 50; i++ {
		c.Key(glfw.KeyMinus, glfw.Press, 0)
	}
	assert.Equal(t, mgl32.Vec3{MinScale, MinScale, MinScale}, m.Transform.Scale)
}

func TestRotateKeys(t *testing.T) {
	c, _ := newController(t)
	m := c.Scene.SelectedModel()
	m.Transform.Translate = mgl32.Vec3{}

	c.Key(glfw.KeyRight, glfw.Press, 0)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, m.ModelMatrix()))

	c.Key(glfw.KeyLeft, glfw.Press, 0)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, m.ModelMatrix()))
}

func TestCameraKeys(t *testing.T) {
	c, _ := newController(t)
	cam := c.Scene.SelectedCamera()

	c.Key(glfw.KeyW, glfw.Press, 0)
	assert.InDelta(t, 2.9, cam.Position()[2], 1e-5)
	c.Key(glfw.KeyE, glfw.Press, 0)
	assert.InDelta(t, 0.1, cam.Position()[1], 1e-5)
	c.Key(glfw.KeyD, glfw.Press, 0)
	assert.InDelta(t, 0.1, cam.Position()[0], 1e-5)

	c.Key(glfw.KeyP, glfw.Press, 0)
	assert.Equal(t, camera.Ortho, cam.Mode())

	c.Key(glfw.KeyC, glfw.Press, 0)
	assert.Equal(t, 1, c.Scene.SelectedCameraIndex())
}

func TestShadingToggleReuploads(t *testing.T) {
	c, r := newController(t)
	m := c.Scene.SelectedModel()

	c.Key(glfw.KeyF, glfw.Press, 0)
	assert.Equal(t, mesh.Flat, m.Shading)
	assert.Equal(t, []*model.Model{m}, r.reuploaded)

	// holding F does not flicker
	c.Key(glfw.KeyF, glfw.Repeat, 0)
	assert.Equal(t, mesh.Flat, m.Shading)
	assert.Len(t, r.reuploaded, 1)
}

func TestLightingScreenshotAndClose(t *testing.T) {
	c, r := newController(t)

	c.Key(glfw.KeyG, glfw.Press, 0)
	assert.Equal(t, scene.Gouraud, c.Scene.Lighting)
	assert.Equal(t, []scene.Lighting{scene.Gouraud}, r.lighting)

	c.Key(glfw.KeyF2, glfw.Press, 0)
	assert.Equal(t, 1, r.shots)

	c.Key(glfw.KeyEscape, glfw.Press, 0)
	assert.True(t, r.closed)
}

func TestTabCyclesModels(t *testing.T) {
	c, _ := newController(t)
	c.Key(glfw.KeyTab, glfw.Press, 0)
	assert.Equal(t, 1, c.Scene.SelectedModelIndex())
	c.Key(glfw.KeyTab, glfw.Press, 0)
	assert.Equal(t, 0, c.Scene.SelectedModelIndex())
}

func TestScrollAndResize(t *testing.T) {
	c, _ := newController(t)
	cam := c.Scene.SelectedCamera()
	cam.SetFovy(60)

	c.Scroll(5)
	assert.InDelta(t, 65, cam.Fovy(), 1e-5)
	c.Scroll(500)
	assert.InDelta(t, camera.MaxFovy, cam.Fovy(), 1e-5)

	c.Resize(800, 400)
	for _, cam := range c.Scene.Cameras {
		assert.InDelta(t, 2, cam.Aspect(), 1e-6)
	}
	c.Resize(0, 0)
	assert.InDelta(t, 2, cam.Aspect(), 1e-6)
}

func TestClickPicks(t *testing.T) {
	c, _ := newController(t)
	require.Equal(t, 0, c.Scene.SelectedModelIndex())

	assert.Equal(t, 1, c.Click(50, 50, 100, 100))
	assert.Equal(t, 1, c.Scene.SelectedModelIndex())

	// background keeps the selection
	assert.Equal(t, -1, c.Click(99, 1, 100, 100))
	assert.Equal(t, 1, c.Scene.SelectedModelIndex())
}

func TestShaderProgramName(t *testing.T) {
	name, ok := shaderProgram("/tmp/shaders/phong.frag")
	assert.True(t, ok)
	assert.Equal(t, "phong", name)

	_, ok = shaderProgram("/tmp/shaders/phong.frag.swp")
	assert.False(t, ok)

	assert.True(t, reloadEvent(fsnotify.Event{Name: "x.vert", Op: fsnotify.Write}))
	assert.False(t, reloadEvent(fsnotify.Event{Name: "x.vert", Op: fsnotify.Chmod}))
}

func TestShiftArrowsTurnCamera(t *testing.T) {
	c, _ := newController(t)
	cam := c.Scene.SelectedCamera()
	m := c.Scene.SelectedModel()
	before := m.Transform

	c.Key(glfw.KeyLeft, glfw.Press, glfw.ModShift)
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, cam.FrontDirection())
	assertVec3(t, mgl32.Vec3{0, 0, 3}, cam.Position())
	assert.Equal(t, before, m.Transform)

	c.Key(glfw.KeyRight, glfw.Repeat, glfw.ModShift)
	c.Key(glfw.KeyUp, glfw.Press, glfw.ModShift)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, cam.FrontDirection())
	assertVec3(t, mgl32.Vec3{0, 0, 1}, cam.UpDirection())

	// shift with a non-arrow key still reaches the model bindings
	c.Key(glfw.KeyEqual, glfw.Press, glfw.ModShift)
	assert.InDelta(t, 1.1, m.Transform.Scale[0], 1e-5)
}

func TestCtrlAdjustsLight(t *testing.T) {
	c, _ := newController(t)
	l := &c.Scene.Light
	require.Equal(t, mgl32.Vec3{1, 1, 1}, l.Position)

	c.Key(glfw.KeyRight, glfw.Press, glfw.ModControl)
	assertVec3(t, mgl32.Vec3{1, 1, -1}, l.Position)
	c.Key(glfw.KeyLeft, glfw.Press, glfw.ModControl)
	assertVec3(t, mgl32.Vec3{1, 1, 1}, l.Position)
	c.Key(glfw.KeyDown, glfw.Press, glfw.ModControl)
	assertVec3(t, mgl32.Vec3{1, -1, 1}, l.Position)

	c.Key(glfw.KeyMinus, glfw.Press, glfw.ModControl)
	assertVec3(t, mgl32.Vec3{0.9, 0.9, 0.9}, l.Diffuse)
	assertVec3(t, mgl32.Vec3{0.4, 0.4, 0.4}, l.Specular)
	for i := 0; i < 20; i++ {
		c.Key(glfw.KeyEqual, glfw.Repeat, glfw.ModControl)
	}
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Diffuse)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Specular)

	// the selected model is untouched
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c.Scene.SelectedModel().Transform.Scale)
}

func TestBracketsStepShininess(t *testing.T) {
	c, r := newController(t)
	me := c.Scene.SelectedModel().Meshes[0]
	require.Equal(t, float32(mesh.DefaultShininess), me.Material.Shininess)

	c.Key(glfw.KeyRightBracket, glfw.Press, 0)
	assert.Equal(t, float32(10), me.Material.Shininess)
	c.Key(glfw.KeyLeftBracket, glfw.Press, 0)
	c.Key(glfw.KeyLeftBracket, glfw.Press, 0)
	assert.Equal(t, float32(2.5), me.Material.Shininess)

	for i := 0; i < 10; i++ {
		c.Key(glfw.KeyLeftBracket, glfw.Repeat, 0)
	}
	assert.Equal(t, float32(MinShininess), me.Material.Shininess)
	for i := 0; i < 20; i++ {
		c.Key(glfw.KeyRightBracket, glfw.Repeat, 0)
	}
	assert.Equal(t, float32(MaxShininess), me.Material.Shininess)

	// material edits are uniforms, no buffer upload needed
	assert.Empty(t, r.reuploaded)
}

// Package scene parses scene description files and holds the state the
// viewer mutates between frames.
package scene

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"example.com/shading/internal/camera"
	"example.com/shading/internal/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Loader loads the asset at path.
type Loader func(path string) (*model.Model, error)

const DefaultFovy = 60

type Scene struct {
	Models     []*model.Model
	Cameras    []*camera.Camera
	Light      Light
	ClearColor mgl32.Vec3
	Lighting   Lighting

	model  int
	camera int
}

func New() *Scene {
	return &Scene{
		Light:      DefaultLight(),
		ClearColor: mgl32.Vec3{0.5, 0.5, 0.5},
		Lighting:   Phong,
	}
}

// Load parses the scene file at path and loads every asset it lists.
// Relative asset paths are resolved against the scene file's directory.
func Load(path string, load Loader) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Build(d, filepath.Dir(path), load)
}

// Build turns a description into a scene. A failing asset aborts the build.
func Build(d *Description, baseDir string, load Loader) (*Scene, error) {
	s := New()
	for _, e := range d.Models {
		p := e.Path
		if !filepath.IsAbs(p) && baseDir != "" {
			p = filepath.Join(baseDir, p)
		}
		m, err := load(p)
		if err != nil {
			return nil, fmt.Errorf("failed to load asset %s: %w", e.Path, err)
		}
		m.Transform.Scale = e.Scale
		m.Transform.Translate = e.Translate
		s.Models = append(s.Models, m)
		slog.Debug("loaded asset", "path", p, "meshes", len(m.Meshes), "triangles", m.TriangleCount())
	}

	for _, e := range d.Cameras {
		c := camera.New()
		c.SetPoseLookAt(e.Position, e.At, e.Up)
		c.SetMode(camera.Perspective)
		c.SetFovy(DefaultFovy)
		s.Cameras = append(s.Cameras, c)
	}
	if len(s.Cameras) == 0 {
		c := camera.New()
		c.SetMode(camera.Perspective)
		c.SetPoseLookAt(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		s.Cameras = append(s.Cameras, c)
	}
	return s, nil
}

// SelectedModel returns nil when the scene has no models.
func (s *Scene) SelectedModel() *model.Model {
	if len(s.Models) == 0 {
		return nil
	}
	return s.Models[s.model]
}

func (s *Scene) SelectedModelIndex() int { return s.model }

func (s *Scene) SelectedCamera() *camera.Camera {
	if len(s.Cameras) == 0 {
		return nil
	}
	return s.Cameras[s.camera]
}

func (s *Scene) SelectedCameraIndex() int { return s.camera }

// Select makes model i current. Out of range indices are ignored.
func (s *Scene) Select(i int) bool {
	if i < 0 || i >= len(s.Models) {
		return false
	}
	s.model = i
	return true
}

func (s *Scene) SelectCamera(i int) bool {
	if i < 0 || i >= len(s.Cameras) {
		return false
	}
	s.camera = i
	return true
}

func (s *Scene) CycleModel() int {
	if len(s.Models) > 0 {
		s.model = (s.model + 1) % len(s.Models)
	}
	return s.model
}

func (s *Scene) CycleCamera() int {
	if len(s.Cameras) > 0 {
		s.camera = (s.camera + 1) % len(s.Cameras)
	}
	return s.camera
}

// SetAspect updates every camera so that switching cameras after a resize
// keeps the right ratio.
func (s *Scene) SetAspect(a float32) {
	for _, c := range s.Cameras {
		c.SetAspect(a)
	}
}

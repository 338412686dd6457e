// Package app owns the GLFW window and the frame loop.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"example.com/shading/internal/config"
	"example.com/shading/internal/gfx"
	"example.com/shading/internal/model"
	"example.com/shading/internal/scene"
	"example.com/shading/shaders"
	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	cfg      *config.Config
	scene    *scene.Scene
	window   *glfw.Window
	renderer *gfx.Renderer
	ctrl     *Controller
	shaders  fs.FS
	reload   chan string
	shot     bool
}

// Run opens the window and draws s until the window closes or ctx is done.
// It must be called from the main goroutine.
func Run(ctx context.Context, cfg *config.Config, s *scene.Scene) error {
	var err error
	mainthread.Run(func() {
		err = run(ctx, cfg, s)
	})
	return err
}

func run(ctx context.Context, cfg *config.Config, s *scene.Scene) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := &App{
		cfg:     cfg,
		scene:   s,
		shaders: shaders.FS,
		reload:  make(chan string, 4),
	}
	if cfg.ShaderDir != "" {
		a.shaders = os.DirFS(cfg.ShaderDir)
	}
	a.ctrl = NewController(s, cfg.Step, cfg.RotateStep, a)

	if err := mainthread.CallErr(a.init); err != nil {
		return err
	}
	defer mainthread.Call(a.terminate)

	if cfg.Watch && cfg.ShaderDir != "" {
		if _, err := watchShaders(ctx, cfg.ShaderDir, a.reload); err != nil {
			slog.Warn("shader hot reload disabled", "err", err)
		}
	}

	drive(ctx, a.reload,
		func(name string) { mainthread.Call(func() { a.reloadProgram(name) }) },
		func() (done bool) {
			mainthread.Call(func() { done = a.frame() })
			return done
		},
	)
	return nil
}

// drive runs frame until it reports done or ctx ends, applying pending
// reload requests between frames. An interrupt is a normal shutdown.
func drive(ctx context.Context, reload <-chan string, onReload func(string), frame func() bool) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, closing window")
			return
		case name := <-reload:
			onReload(name)
		default:
		}

		if frame() {
			return
		}
	}
}

func (a *App) init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w := a.cfg.Window
	window, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	a.window = window

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	prog, err := gfx.LoadProgram(a.shaders, a.scene.Lighting.String())
	if err != nil {
		glfw.Terminate()
		return err
	}
	a.renderer = gfx.NewRenderer(prog)
	a.renderer.UploadScene(a.scene)

	fw, fh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	a.ctrl.Resize(fw, fh)

	window.SetKeyCallback(a.keyCB)
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) { a.ctrl.Scroll(yoff) })
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		a.ctrl.Resize(width, height)
	})
	window.SetMouseButtonCallback(a.mouseCB)
	return nil
}

func (a *App) keyCB(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	a.ctrl.Key(key, action, mods)
}

func (a *App) mouseCB(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := w.GetCursorPos()
	width, height := w.GetSize()
	a.ctrl.Click(x, y, width, height)
}

// frame draws one frame and reports whether the window should close.
func (a *App) frame() bool {
	if a.window.ShouldClose() {
		return true
	}
	a.renderer.Render(a.scene)
	if a.shot {
		a.shot = false
		a.saveScreenshot()
	}
	a.window.SwapBuffers()
	glfw.PollEvents()
	return false
}

func (a *App) terminate() {
	if a.renderer != nil {
		a.renderer.Delete()
	}
	glfw.Terminate()
}

// reloadProgram recompiles name if it is the active program. On failure the
// previous program stays in use.
func (a *App) reloadProgram(name string) {
	if name != a.scene.Lighting.String() {
		return
	}
	prog, err := gfx.LoadProgram(a.shaders, name)
	if err != nil {
		slog.Warn("shader reload failed, keeping previous program", "name", name, "err", err)
		return
	}
	a.renderer.SetProgram(prog)
}

func (a *App) Reupload(m *model.Model) { a.renderer.Upload(m) }

func (a *App) SetLighting(l scene.Lighting) {
	prog, err := gfx.LoadProgram(a.shaders, l.String())
	if err != nil {
		slog.Error("lighting program", "lighting", l, "err", err)
		a.scene.Lighting = l.Toggle()
		return
	}
	a.renderer.SetProgram(prog)
}

// Screenshot captures the next frame before it is swapped.
func (a *App) Screenshot() { a.shot = true }

func (a *App) saveScreenshot() {
	w, h := a.window.GetFramebufferSize()
	path, err := gfx.SaveScreenshot(a.cfg.ScreenshotDir, w, h)
	if err != nil {
		slog.Error("screenshot", "err", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}

func (a *App) Close() { a.window.SetShouldClose(true) }

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"example.com/shading/internal/app"
	"example.com/shading/internal/config"
	"example.com/shading/internal/model"
	"example.com/shading/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
)

type viewFlags struct {
	config   string
	shaders  string
	watch    bool
	width    int
	height   int
	lighting string
	logLevel string
}

func viewCmd() *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:   "view [scene-file]",
		Short: "Open the scene in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Scene = args[0]
			}
			return view(cmd.Context(), cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "TOML or YAML settings file")
	fl.StringVar(&f.shaders, "shaders", "", "directory with <lighting>.vert/.frag (default: built-in)")
	fl.BoolVar(&f.watch, "watch", false, "recompile shaders when files in --shaders change")
	fl.IntVar(&f.width, "width", 0, "window width")
	fl.IntVar(&f.height, "height", 0, "window height")
	fl.StringVar(&f.lighting, "lighting", "", "phong or gouraud")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// load reads the config file and applies the flags that were set on top.
func (f *viewFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("shaders") {
		cfg.ShaderDir = f.shaders
	}
	if fl.Changed("watch") {
		cfg.Watch = f.watch
	}
	if fl.Changed("width") {
		cfg.Window.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Window.Height = f.height
	}
	if fl.Changed("lighting") {
		cfg.Lighting = f.lighting
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logLevel.Set(lvl)
	return cfg, nil
}

func view(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	s, err := scene.Load(cfg.Scene, model.Load)
	if err != nil {
		return err
	}
	if err := applyConfig(s, cfg); err != nil {
		return err
	}
	slog.Info("scene loaded", "file", cfg.Scene, "models", len(s.Models), "cameras", len(s.Cameras), "lighting", s.Lighting)

	return app.Run(ctx, cfg, s)
}

func applyConfig(s *scene.Scene, cfg *config.Config) error {
	l, err := scene.ParseLighting(cfg.Lighting)
	if err != nil {
		return err
	}
	s.Lighting = l
	s.ClearColor = mgl32.Vec3(cfg.ClearColor)
	s.Light = scene.Light{
		Ambient:  mgl32.Vec3(cfg.Light.Ambient),
		Diffuse:  mgl32.Vec3(cfg.Light.Diffuse),
		Specular: mgl32.Vec3(cfg.Light.Specular),
		Position: mgl32.Vec3(cfg.Light.Position),
	}
	for _, c := range s.Cameras {
		c.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)
	}
	return nil
}

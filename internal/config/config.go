// Package config holds the viewer settings. Defaults are overridden by an
// optional TOML or YAML file, which flags override in turn.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"example.com/shading/internal/scene"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

type Light struct {
	Ambient  [3]float32 `toml:"ambient" yaml:"ambient"`
	Diffuse  [3]float32 `toml:"diffuse" yaml:"diffuse"`
	Specular [3]float32 `toml:"specular" yaml:"specular"`
	Position [3]float32 `toml:"position" yaml:"position"`
}

type Camera struct {
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`
}

type Config struct {
	Window Window `toml:"window" yaml:"window"`
	Scene  string `toml:"scene" yaml:"scene"`
	// ShaderDir holds <lighting>.vert and <lighting>.frag. Empty uses the
	// built-in shaders.
	ShaderDir     string     `toml:"shader_dir" yaml:"shader_dir"`
	Lighting      string     `toml:"lighting" yaml:"lighting"`
	Watch         bool       `toml:"watch" yaml:"watch"`
	Step          float32    `toml:"step" yaml:"step"`
	RotateStep    float32    `toml:"rotate_step" yaml:"rotate_step"` // degrees
	ClearColor    [3]float32 `toml:"clear_color" yaml:"clear_color"`
	Light         Light      `toml:"light" yaml:"light"`
	Camera        Camera     `toml:"camera" yaml:"camera"`
	LogLevel      string     `toml:"log_level" yaml:"log_level"`
	ScreenshotDir string     `toml:"screenshot_dir" yaml:"screenshot_dir"`
}

func Default() *Config {
	return &Config{
		Window:     Window{Width: 1000, Height: 1000, Title: "Shading"},
		Scene:      "info.txt",
		Lighting:   "phong",
		Step:       0.1,
		RotateStep: 5,
		ClearColor: [3]float32{0.5, 0.5, 0.5},
		Light: Light{
			Ambient:  [3]float32{0, 0, 0},
			Diffuse:  [3]float32{1, 1, 1},
			Specular: [3]float32{0.5, 0.5, 0.5},
			Position: [3]float32{1, 1, 1},
		},
		Camera:        Camera{Near: 0.01, Far: 1000},
		LogLevel:      "info",
		ScreenshotDir: ".",
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := scene.ParseLighting(c.Lighting); err != nil {
		errs = append(errs, err)
	}
	if c.Step <= 0 {
		errs = append(errs, fmt.Errorf("step %g must be positive", c.Step))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes %g..%g are invalid", c.Camera.Near, c.Camera.Far))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, c.Validate())
	assert.Equal(t, 1000, c.Window.Width)
	assert.Equal(t, float32(0.1), c.Step)
}

func TestLoadTOML(t *testing.T) {
	p := write(t, "shading.toml", `
scene = "scenes/two.txt"
lighting = "gouraud"
watch = true
clear_color = [0.1, 0.2, 0.3]

[window]
width = 640
height = 480

[light]
position = [2.0, 3.0, 4.0]
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "scenes/two.txt", c.Scene)
	assert.Equal(t, "gouraud", c.Lighting)
	assert.True(t, c.Watch)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, "Shading", c.Window.Title)
	assert.Equal(t, [3]float32{2, 3, 4}, c.Light.Position)
	assert.Equal(t, [3]float32{1, 1, 1}, c.Light.Diffuse)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, c.ClearColor)
}

func TestLoadYAML(t *testing.T) {
	p := write(t, "shading.yaml", "shader_dir: ./shaders\nstep: 0.5\ncamera:\n  near: 0.1\n  far: 50\n")
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "./shaders", c.ShaderDir)
	assert.Equal(t, float32(0.5), c.Step)
	assert.Equal(t, float32(50), c.Camera.Far)
}

func TestLoadRejects(t *testing.T) {
	_, err := Load(write(t, "shading.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = Load(write(t, "bad.toml", "lighting = \"toon\"\nstep = -1\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "toon")
	assert.ErrorContains(t, err, "step")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

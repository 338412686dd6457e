package gfx

import (
	"image"
	"image/color"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"example.com/shading/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareSource(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("#version 410 core\n"), "#version 410 core\n\x00"},
		{"bom", append([]byte{0xEF, 0xBB, 0xBF}, "void main(){}"...), "void main(){}\x00"},
		{"embedded nul", []byte("abc\x00def"), "abc\x00"},
		{"empty", nil, "\x00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prepareSource(tt.name, tt.in))
		})
	}
}

func TestShaderSource(t *testing.T) {
	fsys := fstest.MapFS{
		"a.vert": {Data: []byte("#version 410 core")},
	}

	src, err := ShaderSource(fsys, "a.vert")
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\x00", src)

	_, err = ShaderSource(fsys, "missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEmbeddedShaders(t *testing.T) {
	for name, want := range map[string]string{
		"phong.vert":   "u_PVM",
		"gouraud.vert": "u_PVM",
		"phong.frag":   "frag_color",
		"gouraud.frag": "frag_color",
	} {
		src, err := ShaderSource(shaders.FS, name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 410 core"), name)
		assert.Contains(t, src, want, name)
	}
}

func TestFlipRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.RGBA{R: uint8(y), A: 255})
		}
	}

	flipRows(img)

	for y := 0; y < 3; y++ {
		assert.Equal(t, uint8(2-y), img.RGBAAt(1, y).R)
	}
}

func TestScreenshotName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 250_000_000, time.UTC)
	assert.Equal(t, "screenshot-20240309-140507.250.png", screenshotName(ts))
}

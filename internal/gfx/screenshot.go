package gfx

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer copies the w x h back buffer into an image with the origin
// at the top left.
func ReadFramebuffer(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)
	return img
}

// GL rows start at the bottom.
func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

func screenshotName(t time.Time) string {
	return "screenshot-" + t.Format("20060102-150405.000") + ".png"
}

// SaveScreenshot writes the current back buffer as a PNG into dir and
// returns the file path.
func SaveScreenshot(dir string, w, h int) (string, error) {
	img := ReadFramebuffer(w, h)
	path := filepath.Join(dir, screenshotName(time.Now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, f.Close()
}

package gfx

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ShaderSource reads a GLSL file and returns it NUL terminated. A UTF-8 BOM
// is removed because some GLSL compilers (Mesa) reject it.
func ShaderSource(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	return prepareSource(name, b), nil
}

func prepareSource(name string, b []byte) string {
	if bytes.HasPrefix(b, utf8BOM) {
		slog.Info("shader source is UTF-8 with BOM, removing it before compiling", "file", name)
		b = b[len(utf8BOM):]
	}
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b) + "\x00"
}

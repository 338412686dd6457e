// Package gfx wraps the OpenGL calls the viewer needs: shader programs,
// per-mesh vertex buffers and frame rendering. Every function must run on
// the thread that owns the GL context.
package gfx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrCompile = errors.New("shader compile error")
	ErrLink    = errors.New("shader link error")
)

// CompileShader returns 0 and the info log when compilation fails.
func CompileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func linkProgram(vert, frag uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

// Program is a linked shader program with its variable locations.
type Program struct {
	Name string
	ID   uint32
	Loc  Locations
}

// LoadProgram compiles <name>.vert and <name>.frag from fsys. Failures are
// logged with the GL info log and returned.
func LoadProgram(fsys fs.FS, name string) (*Program, error) {
	vsrc, err := ShaderSource(fsys, name+".vert")
	if err != nil {
		return nil, err
	}
	fsrc, err := ShaderSource(fsys, name+".frag")
	if err != nil {
		return nil, err
	}

	vert, err := CompileShader(vsrc, gl.VERTEX_SHADER)
	if err != nil {
		slog.Error("vertex shader", "file", name+".vert", "err", err)
		return nil, fmt.Errorf("%s.vert: %w", name, err)
	}
	slog.Debug("compiled shader", "file", name+".vert", "id", vert)

	frag, err := CompileShader(fsrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		slog.Error("fragment shader", "file", name+".frag", "err", err)
		return nil, fmt.Errorf("%s.frag: %w", name, err)
	}
	slog.Debug("compiled shader", "file", name+".frag", "id", frag)

	id, err := linkProgram(vert, frag)
	if err != nil {
		slog.Error("shader program", "name", name, "err", err)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	slog.Info("shader program ready", "name", name, "id", id)

	return &Program{Name: name, ID: id, Loc: lookupLocations(id)}, nil
}

func (p *Program) Delete() {
	if p != nil && p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

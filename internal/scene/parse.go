package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrFormat = errors.New("scene format")

type ModelEntry struct {
	Path      string
	Scale     mgl32.Vec3
	Translate mgl32.Vec3
}

type CameraEntry struct {
	Position mgl32.Vec3
	At       mgl32.Vec3
	Up       mgl32.Vec3
}

// Description is the parsed content of a scene file:
//
//	<model count>
//	<path> <sx> <sy> <sz> <tx> <ty> <tz>
//	<camera count>
//	<px> <py> <pz> <ax> <ay> <az> <ux> <uy> <uz>
//
// Tokens are separated by any whitespace.
type Description struct {
	Models  []ModelEntry
	Cameras []CameraEntry
}

type tokenizer struct {
	sc *bufio.Scanner
	n  int
}

func (t *tokenizer) next(field string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of file reading %s (token %d)", ErrFormat, field, t.n)
	}
	t.n++
	return t.sc.Text(), nil
}

func (t *tokenizer) count(field string) (int, error) {
	s, err := t.next(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q (token %d)", ErrFormat, field, s, t.n)
	}
	return n, nil
}

func (t *tokenizer) vec3(field string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i := range v {
		s, err := t.next(field)
		if err != nil {
			return v, err
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return v, fmt.Errorf("%w: %s[%d] must be a number, got %q (token %d)", ErrFormat, field, i, s, t.n)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// Parse reads a scene description. Anything after the last camera is
// ignored.
func Parse(r io.Reader) (*Description, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	t := &tokenizer{sc: sc}
	d := &Description{}

	n, err := t.count("model count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		var e ModelEntry
		if e.Path, err = t.next(fmt.Sprintf("model %d path", i)); err != nil {
			return nil, err
		}
		if e.Scale, err = t.vec3(fmt.Sprintf("model %d scale", i)); err != nil {
			return nil, err
		}
		if e.Translate, err = t.vec3(fmt.Sprintf("model %d translate", i)); err != nil {
			return nil, err
		}
		d.Models = append(d.Models, e)
	}

	if n, err = t.count("camera count"); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		var c CameraEntry
		if c.Position, err = t.vec3(fmt.Sprintf("camera %d position", i)); err != nil {
			return nil, err
		}
		if c.At, err = t.vec3(fmt.Sprintf("camera %d at", i)); err != nil {
			return nil, err
		}
		if c.Up, err = t.vec3(fmt.Sprintf("camera %d up", i)); err != nil {
			return nil, err
		}
		d.Cameras = append(d.Cameras, c)
	}
	return d, nil
}

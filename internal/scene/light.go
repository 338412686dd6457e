package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Light is a single point light with Phong intensities.
type Light struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Position mgl32.Vec3
}

func DefaultLight() Light {
	return Light{
		Ambient:  mgl32.Vec3{0, 0, 0},
		Diffuse:  mgl32.Vec3{1, 1, 1},
		Specular: mgl32.Vec3{0.5, 0.5, 0.5},
		Position: mgl32.Vec3{1, 1, 1},
	}
}

// Lighting selects where the reflection model is evaluated.
type Lighting int

const (
	Phong   Lighting = iota // per fragment
	Gouraud                 // per vertex
)

func (l Lighting) String() string {
	if l == Gouraud {
		return "gouraud"
	}
	return "phong"
}

func (l Lighting) Toggle() Lighting {
	if l == Gouraud {
		return Phong
	}
	return Gouraud
}

func ParseLighting(s string) (Lighting, error) {
	switch strings.ToLower(s) {
	case "phong", "":
		return Phong, nil
	case "gouraud":
		return Gouraud, nil
	}
	return Phong, fmt.Errorf("unknown lighting model %q", s)
}

package mesh

import "github.com/go-gl/mathgl/mgl32"

const DefaultShininess = 5

// Material holds Phong reflection coefficients.
type Material struct {
	Name      string
	Ambient   mgl32.Vec3 // k_a
	Diffuse   mgl32.Vec3 // k_d
	Specular  mgl32.Vec3 // k_s
	Shininess float32
}

func DefaultMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{1, 1, 1},
		Shininess: DefaultShininess,
	}
}

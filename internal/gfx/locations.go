package gfx

import "github.com/go-gl/gl/v4.1-core/gl"

// Locations of the program's uniforms and attributes. A location of -1
// means the linker dropped the variable.
type Locations struct {
	PVM          int32
	ModelMatrix  int32
	NormalMatrix int32

	CameraPosition int32
	LightPosition  int32
	LightAmbient   int32
	LightDiffuse   int32
	LightSpecular  int32

	ObjAmbient   int32
	ObjDiffuse   int32
	ObjSpecular  int32
	ObjShininess int32

	Position int32
	Normal   int32
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func attrib(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func lookupLocations(p uint32) Locations {
	return Locations{
		PVM:          uniform(p, "u_PVM"),
		ModelMatrix:  uniform(p, "u_model_matrix"),
		NormalMatrix: uniform(p, "u_normal_matrix"),

		CameraPosition: uniform(p, "u_camera_position"),
		LightPosition:  uniform(p, "u_light_position"),
		LightAmbient:   uniform(p, "u_light_ambient"),
		LightDiffuse:   uniform(p, "u_light_diffuse"),
		LightSpecular:  uniform(p, "u_light_specular"),

		ObjAmbient:   uniform(p, "u_obj_ambient"),
		ObjDiffuse:   uniform(p, "u_obj_diffuse"),
		ObjSpecular:  uniform(p, "u_obj_specular"),
		ObjShininess: uniform(p, "u_obj_shininess"),

		Position: attrib(p, "a_position"),
		Normal:   attrib(p, "a_normal"),
	}
}

package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"example.com/shading/internal/mesh"
	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

// Load reads an OBJ file and the material library it names. A missing
// material library leaves every mesh with the default material.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	mtl, err := openMaterialLib(path)
	if err != nil {
		return nil, err
	}
	defer mtl.Close()

	dec, err := obj.DecodeReader(f, mtl)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromDecoder(path, dec)
}

// openMaterialLib looks for the mtllib named in the OBJ file, then for a
// file with the OBJ's base name and a .mtl extension.
func openMaterialLib(objPath string) (io.ReadCloser, error) {
	dir := filepath.Dir(objPath)
	candidates := []string{}
	if lib, err := scanMaterialLib(objPath); err != nil {
		return nil, err
	} else if lib != "" {
		candidates = append(candidates, filepath.Join(dir, lib))
	}
	candidates = append(candidates, strings.TrimSuffix(objPath, filepath.Ext(objPath))+".mtl")

	for _, c := range candidates {
		f, err := os.Open(c)
		if err == nil {
			return f, nil
		}
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func scanMaterialLib(objPath string) (string, error) {
	f, err := os.Open(objPath)
	if err != nil {
		return "", fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "mtllib" {
			return strings.Join(fields[1:], " "), nil
		}
	}
	return "", sc.Err()
}

type vertexKey struct {
	pos, norm int
}

type builder struct {
	mesh    *mesh.Mesh
	verts   map[vertexKey]uint32
	normals int // vertices that carry an imported normal
}

func (b *builder) vertex(dec *obj.Decoder, pos, norm int) (uint32, error) {
	if pos < 0 || 3*pos+2 >= len(dec.Vertices) {
		return 0, fmt.Errorf("%w: position %d", mesh.ErrIndexRange, pos)
	}
	if norm < 0 || 3*norm+2 >= len(dec.Normals) {
		norm = -1
	}
	k := vertexKey{pos, norm}
	if idx, ok := b.verts[k]; ok {
		return idx, nil
	}

	idx := uint32(len(b.mesh.Positions))
	b.mesh.Positions = append(b.mesh.Positions, mgl32.Vec3{
		dec.Vertices[3*pos], dec.Vertices[3*pos+1], dec.Vertices[3*pos+2],
	})
	var n mgl32.Vec3
	if norm >= 0 {
		n = mgl32.Vec3{dec.Normals[3*norm], dec.Normals[3*norm+1], dec.Normals[3*norm+2]}
		b.normals++
	}
	b.mesh.Normals = append(b.mesh.Normals, n)
	b.verts[k] = idx
	return idx, nil
}

// FromDecoder splits decoded objects into one mesh per (object, material)
// pair.
func FromDecoder(name string, dec *obj.Decoder) (*Model, error) {
	m := New(name)

	for oi := range dec.Objects {
		o := &dec.Objects[oi]
		byMat := map[string]*builder{}
		var order []string

		for fi, face := range o.Faces {
			b, ok := byMat[face.Material]
			if !ok {
				meshName := o.Name
				if face.Material != "" {
					meshName += "/" + face.Material
				}
				b = &builder{mesh: mesh.New(meshName), verts: map[vertexKey]uint32{}}
				b.mesh.Material = material(dec, face.Material)
				byMat[face.Material] = b
				order = append(order, face.Material)
			}

			idx := make([]uint32, len(face.Vertices))
			for i, v := range face.Vertices {
				norm := -1
				if i < len(face.Normals) {
					norm = face.Normals[i]
				}
				vi, err := b.vertex(dec, v, norm)
				if err != nil {
					return nil, fmt.Errorf("%s: object %q face %d: %w", name, o.Name, fi, err)
				}
				idx[i] = vi
			}
			if err := b.mesh.AddFace(idx...); err != nil {
				return nil, fmt.Errorf("%s: object %q face %d: %w", name, o.Name, fi, err)
			}
		}

		for _, k := range order {
			b := byMat[k]
			// imported normals are only trusted when every vertex has one
			if b.normals != len(b.mesh.Positions) {
				b.mesh.Normals = nil
			}
			if err := b.mesh.Update(); err != nil {
				return nil, fmt.Errorf("%s: mesh %q: %w", name, b.mesh.Name, err)
			}
			m.Meshes = append(m.Meshes, b.mesh)
		}
	}

	if len(m.Meshes) == 0 {
		return nil, fmt.Errorf("%s: no faces", name)
	}
	return m, nil
}

func material(dec *obj.Decoder, name string) mesh.Material {
	mat := mesh.DefaultMaterial()
	mat.Name = name
	src, ok := dec.Materials[name]
	if !ok || src == nil {
		if mat.Name == "" {
			mat.Name = "default"
		}
		return mat
	}
	mat.Ambient = mgl32.Vec3{src.Ambient.R, src.Ambient.G, src.Ambient.B}
	mat.Diffuse = mgl32.Vec3{src.Diffuse.R, src.Diffuse.G, src.Diffuse.B}
	mat.Specular = mgl32.Vec3{src.Specular.R, src.Specular.G, src.Specular.B}
	if src.Shininess > 0 {
		mat.Shininess = src.Shininess
	}
	return mat
}

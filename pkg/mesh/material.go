package mesh

import "github.com/go-gl/mathgl/mgl32"

// NoMaterial is the MaterialIndex of a group whose material was not found.
const NoMaterial = -1

// Material is a named surface description from a material library.
type Material struct {
	Name string

	Ambient  mgl32.Vec3 // Ka
	Diffuse  mgl32.Vec3 // Kd
	Specular mgl32.Vec3 // Ks
	Emission mgl32.Vec3 // Ke

	Shininess         float32 // Ns
	Opacity           float32 // d, or 1-Tr
	RefractiveIndex   float32 // Ni
	IlluminationModel int     // illum

	DiffuseMap      string // map_Kd
	NormalMap       string // map_Bump, bump
	SpecularMap     string // map_Ks
	AmbientMap      string // map_Ka
	OpacityMap      string // map_d
	DisplacementMap string // disp
}

// NewMaterial returns a material with library defaults.
func NewMaterial(name string) Material {
	return Material{
		Name:              name,
		Ambient:           mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:           mgl32.Vec3{0.8, 0.8, 0.8},
		Opacity:           1,
		RefractiveIndex:   1,
		IlluminationModel: 2,
	}
}

// TextureMaps returns the non-empty texture paths keyed by directive.
func (m *Material) TextureMaps() map[string]string {
	maps := make(map[string]string, 6)
	add := func(key, path string) {
		if path != "" {
			maps[key] = path
		}
	}
	add("map_Kd", m.DiffuseMap)
	add("map_Bump", m.NormalMap)
	add("map_Ks", m.SpecularMap)
	add("map_Ka", m.AmbientMap)
	add("map_d", m.OpacityMap)
	add("disp", m.DisplacementMap)
	return maps
}

// FindMaterial returns the index of the material called name, or NoMaterial.
func FindMaterial(materials []Material, name string) int {
	for i := range materials {
		if materials[i].Name == name {
			return i
		}
	}
	return NoMaterial
}

// MaterialGroup is the part of the index buffer drawn with one material.
type MaterialGroup struct {
	Name          string
	MaterialIndex int
	Indices       []uint32
}

// TriangleCount returns the number of triangles in the group.
func (g *MaterialGroup) TriangleCount() int {
	return len(g.Indices) / 3
}

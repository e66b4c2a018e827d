package main

import (
	"github.com/Faultbox/scop/pkg/formats"
	"github.com/Faultbox/scop/pkg/mesh"
)

// summary is the printable view of a loaded model.
type summary struct {
	Path           string            `yaml:"path"`
	Format         string            `yaml:"format"`
	Primitive      string            `yaml:"primitive"`
	Rows           int               `yaml:"rows,omitempty"`
	Cols           int               `yaml:"cols,omitempty"`
	Vertices       int               `yaml:"vertices"`
	Indices        int               `yaml:"indices"`
	Triangles      int               `yaml:"triangles,omitempty"`
	Lines          int               `yaml:"lines,omitempty"`
	Bounds         *boundsSummary    `yaml:"bounds,omitempty"`
	CameraDistance float32           `yaml:"camera_distance"`
	Materials      []materialSummary `yaml:"materials,omitempty"`
	Groups         []groupSummary    `yaml:"groups,omitempty"`
	Sample         []vertexSummary   `yaml:"sample,omitempty"`
}

type boundsSummary struct {
	Min      [3]float32 `yaml:"min,flow"`
	Max      [3]float32 `yaml:"max,flow"`
	Center   [3]float32 `yaml:"center,flow"`
	Size     [3]float32 `yaml:"size,flow"`
	Diagonal float32    `yaml:"diagonal"`
}

type materialSummary struct {
	Name     string            `yaml:"name"`
	Diffuse  [3]float32        `yaml:"diffuse,flow"`
	Opacity  float32           `yaml:"opacity"`
	Textures map[string]string `yaml:"textures,omitempty"`
}

type groupSummary struct {
	Name      string `yaml:"name"`
	Material  int    `yaml:"material"`
	Triangles int    `yaml:"triangles"`
}

type vertexSummary struct {
	Position [3]float32 `yaml:"position,flow"`
	TexCoord [2]float32 `yaml:"uv,flow"`
	Normal   [3]float32 `yaml:"normal,flow"`
}

func newSummary(path string, m *formats.Model) summary {
	s := summary{
		Path:           path,
		Format:         m.Format().String(),
		Primitive:      m.Primitive().String(),
		Rows:           m.Rows(),
		Cols:           m.Cols(),
		Vertices:       len(m.Vertices()),
		Indices:        len(m.Indices()),
		Triangles:      m.TriangleCount(),
		Lines:          m.LineCount(),
		CameraDistance: m.OptimalCameraDistance(),
	}

	if b := m.Bounds(); !b.Empty() {
		s.Bounds = &boundsSummary{
			Min:      b.Min,
			Max:      b.Max,
			Center:   b.Center(),
			Size:     b.Size(),
			Diagonal: b.Diagonal(),
		}
	}

	for i := range m.Materials() {
		mat := &m.Materials()[i]
		s.Materials = append(s.Materials, materialSummary{
			Name:     mat.Name,
			Diffuse:  mat.Diffuse,
			Opacity:  mat.Opacity,
			Textures: mat.TextureMaps(),
		})
	}

	for i := range m.Groups() {
		g := &m.Groups()[i]
		s.Groups = append(s.Groups, groupSummary{
			Name:      g.Name,
			Material:  g.MaterialIndex,
			Triangles: g.TriangleCount(),
		})
	}

	return s
}

// sampleVertices returns the first n vertices; negative n returns all of them.
func sampleVertices(vertices []mesh.Vertex, n int) []vertexSummary {
	if n < 0 || n > len(vertices) {
		n = len(vertices)
	}
	out := make([]vertexSummary, n)
	for i, v := range vertices[:n] {
		out[i] = vertexSummary{Position: v.Position, TexCoord: v.TexCoord, Normal: v.Normal}
	}
	return out
}

package formats

import "github.com/Faultbox/scop/pkg/mesh"

// Model is the indexed geometry produced by a loader.
// It is read-only; slices returned by accessors must not be modified.
type Model struct {
	format    Format
	primitive mesh.Primitive

	vertices  []mesh.Vertex
	indices   []uint32
	materials []mesh.Material
	groups    []mesh.MaterialGroup

	rows, cols int
	bounds     mesh.BoundingBox
}

// Format returns the source format.
func (m *Model) Format() Format { return m.format }

// Primitive returns how Indices is to be drawn.
func (m *Model) Primitive() mesh.Primitive { return m.primitive }

// Vertices returns the deduplicated vertex buffer.
func (m *Model) Vertices() []mesh.Vertex { return m.vertices }

// Indices returns the index buffer: triangles for OBJ, line pairs for FDF.
func (m *Model) Indices() []uint32 { return m.indices }

// Materials returns the parsed material list.
func (m *Model) Materials() []mesh.Material { return m.materials }

// Groups returns the per-material index partitions in order of first use.
func (m *Model) Groups() []mesh.MaterialGroup { return m.groups }

// Rows returns the heightmap row count (FDF only).
func (m *Model) Rows() int { return m.rows }

// Cols returns the heightmap column count (FDF only).
func (m *Model) Cols() int { return m.cols }

// Bounds returns the bounding box of all parsed positions.
func (m *Model) Bounds() mesh.BoundingBox { return m.bounds }

// ZRange returns the smallest and largest z seen.
func (m *Model) ZRange() (minZ, maxZ float32) {
	return m.bounds.Min[2], m.bounds.Max[2]
}

// OptimalCameraDistance returns a viewing distance that fits the model.
func (m *Model) OptimalCameraDistance() float32 {
	return m.bounds.OptimalCameraDistance()
}

// TriangleCount returns the number of triangles (0 for line models).
func (m *Model) TriangleCount() int {
	if m.primitive != mesh.Triangles {
		return 0
	}
	return len(m.indices) / 3
}

// LineCount returns the number of line segments (0 for triangle models).
func (m *Model) LineCount() int {
	if m.primitive != mesh.Lines {
		return 0
	}
	return len(m.indices) / 2
}

// Group returns the material group called name.
func (m *Model) Group(name string) (*mesh.MaterialGroup, bool) {
	for i := range m.groups {
		if m.groups[i].Name == name {
			return &m.groups[i], true
		}
	}
	return nil, false
}

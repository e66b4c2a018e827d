// Package mesh provides the indexed geometry building blocks shared by the
// model loaders: vertices, bounds, vertex deduplication and attribute synthesis.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a single renderable vertex.
// Two vertices are equal when all attributes are equal.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Primitive describes how an index buffer is to be drawn.
type Primitive int

// Primitive kinds.
const (
	Triangles Primitive = iota // Index triples
	Lines                      // Index pairs
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Stride returns the number of indices per primitive.
func (p Primitive) Stride() int {
	if p == Lines {
		return 2
	}
	return 3
}

// Up is the fallback normal for vertices without usable face data.
var Up = mgl32.Vec3{0, 1, 0}

// safeNormalize returns v scaled to unit length, or ok=false when v has no length.
func safeNormalize(v mgl32.Vec3) (n mgl32.Vec3, ok bool) {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

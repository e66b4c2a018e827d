package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// OptIndex is a 0-based pool index that may be absent.
type OptIndex struct {
	Index int
	Valid bool
}

// Some returns a present index.
func Some(i int) OptIndex {
	return OptIndex{Index: i, Valid: true}
}

// None is the absent index.
var None = OptIndex{}

// String returns the index or "-" when absent.
func (o OptIndex) String() string {
	if !o.Valid {
		return "-"
	}
	return fmt.Sprintf("%d", o.Index)
}

// FaceKey identifies one face-vertex reference by its pool indices.
type FaceKey struct {
	Pos  int
	Tex  OptIndex
	Norm OptIndex
}

// String returns the key in OBJ-like "p/t/n" form (0-based).
func (k FaceKey) String() string {
	return fmt.Sprintf("%d/%s/%s", k.Pos, k.Tex, k.Norm)
}

// Pools holds the raw attribute pools a FaceKey indexes into.
type Pools struct {
	Positions []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Normals   []mgl32.Vec3
}

// Resolve builds the vertex a key refers to.
// Absent or out-of-range components resolve to zero vectors.
func (p *Pools) Resolve(k FaceKey) Vertex {
	var v Vertex
	if k.Pos >= 0 && k.Pos < len(p.Positions) {
		v.Position = p.Positions[k.Pos]
	}
	if k.Tex.Valid && k.Tex.Index >= 0 && k.Tex.Index < len(p.TexCoords) {
		v.TexCoord = p.TexCoords[k.Tex.Index]
	}
	if k.Norm.Valid && k.Norm.Index >= 0 && k.Norm.Index < len(p.Normals) {
		v.Normal = p.Normals[k.Norm.Index]
	}
	return v
}

// Deduplicator maps face-vertex keys to output vertex slots.
// A key is assigned a slot the first time it is seen and keeps it.
type Deduplicator struct {
	pools    *Pools
	slots    map[FaceKey]uint32
	vertices []Vertex
}

// NewDeduplicator creates a deduplicator resolving keys against pools.
func NewDeduplicator(pools *Pools) *Deduplicator {
	return &Deduplicator{
		pools: pools,
		slots: make(map[FaceKey]uint32),
	}
}

// Lookup returns the vertex index for k, appending a new vertex if k is new.
func (d *Deduplicator) Lookup(k FaceKey) uint32 {
	if idx, ok := d.slots[k]; ok {
		return idx
	}
	idx := uint32(len(d.vertices))
	d.vertices = append(d.vertices, d.pools.Resolve(k))
	d.slots[k] = idx
	return idx
}

// Len returns the number of distinct keys seen.
func (d *Deduplicator) Len() int {
	return len(d.vertices)
}

// Vertices returns the output vertex buffer.
func (d *Deduplicator) Vertices() []Vertex {
	return d.vertices
}

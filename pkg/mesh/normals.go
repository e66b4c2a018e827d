package mesh

import "github.com/go-gl/mathgl/mgl32"

// GenerateNormals overwrites vertex normals with the averaged normals of the
// triangles referencing each vertex. Vertices touched by no triangle, or
// whose face normals cancel out, get Up.
func GenerateNormals(vertices []Vertex, indices []uint32) {
	sums := make([]mgl32.Vec3, len(vertices))
	hits := make([]int, len(vertices))
	n := uint32(len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		p0 := vertices[i0].Position
		e1 := vertices[i1].Position.Sub(p0)
		e2 := vertices[i2].Position.Sub(p0)
		face, ok := safeNormalize(e1.Cross(e2))
		if !ok {
			continue
		}
		for _, idx := range [3]uint32{i0, i1, i2} {
			sums[idx] = sums[idx].Add(face)
			hits[idx]++
		}
	}

	for i := range vertices {
		if hits[i] == 0 {
			vertices[i].Normal = Up
			continue
		}
		avg := sums[i].Mul(1 / float32(hits[i]))
		if nrm, ok := safeNormalize(avg); ok {
			vertices[i].Normal = nrm
		} else {
			vertices[i].Normal = Up
		}
	}
}

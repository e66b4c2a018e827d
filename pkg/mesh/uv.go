package mesh

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how texture coordinates are synthesized.
type Projection int

// Projection strategies.
const (
	ProjectionSpherical Projection = iota // Default
	ProjectionPlanar
	ProjectionCubic
)

// String returns the projection name as used in configuration.
func (p Projection) String() string {
	switch p {
	case ProjectionSpherical:
		return "spherical"
	case ProjectionPlanar:
		return "planar"
	case ProjectionCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection converts a configuration name into a Projection.
func ParseProjection(name string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "spherical", "sphere":
		return ProjectionSpherical, nil
	case "planar", "plane":
		return ProjectionPlanar, nil
	case "cubic", "cube", "box":
		return ProjectionCubic, nil
	default:
		return ProjectionSpherical, fmt.Errorf("unknown uv projection %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Projection) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Projection) UnmarshalText(text []byte) error {
	v, err := ParseProjection(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// GenerateUVs assigns texture coordinates to every vertex using the given
// projection relative to bounds.
// An empty bounds is treated as centred on the origin.
func GenerateUVs(vertices []Vertex, bounds BoundingBox, proj Projection) {
	var center mgl32.Vec3
	if !bounds.Empty() {
		center = bounds.Center()
	}

	switch proj {
	case ProjectionPlanar:
		planarUVs(vertices, bounds)
	case ProjectionCubic:
		for i := range vertices {
			vertices[i].TexCoord = CubicUV(vertices[i].Position.Sub(center))
		}
	default:
		for i := range vertices {
			vertices[i].TexCoord = SphericalUV(vertices[i].Position.Sub(center))
		}
	}
}

// planarAxes returns the two axes with the largest extent, in axis order.
// On ties the later axis is dropped.
func planarAxes(size mgl32.Vec3) (u, v int) {
	drop := 2
	for i := 1; i >= 0; i-- {
		if size[i] < size[drop] {
			drop = i
		}
	}
	switch drop {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func planarUVs(vertices []Vertex, bounds BoundingBox) {
	size := bounds.Size()
	u, v := planarAxes(size)
	norm := func(p mgl32.Vec3, axis int) float32 {
		if size[axis] <= 0 {
			return 0
		}
		return (p[axis] - bounds.Min[axis]) / size[axis]
	}
	for i := range vertices {
		p := vertices[i].Position
		vertices[i].TexCoord = mgl32.Vec2{norm(p, u), norm(p, v)}
	}
}

// SphericalUV maps a direction from the model centre onto the unit sphere.
func SphericalUV(d mgl32.Vec3) mgl32.Vec2 {
	n, ok := safeNormalize(d)
	if !ok {
		return mgl32.Vec2{0.5, 0.5}
	}
	u := (math32.Atan2(n[2], n[0]) + math32.Pi) / (2 * math32.Pi)
	v := math32.Acos(mgl32.Clamp(n[1], -1, 1)) / math32.Pi
	return mgl32.Vec2{u, v}
}

// CubicUV projects d onto the face of the cube selected by its dominant axis.
func CubicUV(d mgl32.Vec3) mgl32.Vec2 {
	ax, ay, az := math32.Abs(d[0]), math32.Abs(d[1]), math32.Abs(d[2])
	remap := func(a, b float32) float32 { return (a/b + 1) * 0.5 }

	switch {
	case ax == 0 && ay == 0 && az == 0:
		return mgl32.Vec2{0.5, 0.5}
	case ax >= ay && ax >= az:
		return mgl32.Vec2{remap(d[2], ax), remap(d[1], ax)}
	case ay >= az:
		return mgl32.Vec2{remap(d[0], ay), remap(d[2], ay)}
	default:
		return mgl32.Vec2{remap(d[0], az), remap(d[1], az)}
	}
}

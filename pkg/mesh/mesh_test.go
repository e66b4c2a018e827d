package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func TestBoundingBox_Update(t *testing.T) {
	b := NewBoundingBox()
	require.True(t, b.Empty())

	points := []mgl32.Vec3{{1, -2, 3}, {-4, 5, 0}, {2, 2, -6}}
	for _, p := range points {
		b.Update(p)
	}

	assert.False(t, b.Empty())
	assert.Equal(t, mgl32.Vec3{-4, -2, -6}, b.Min)
	assert.Equal(t, mgl32.Vec3{2, 5, 3}, b.Max)
	for _, p := range points {
		assert.True(t, b.Contains(p), "box should contain %v", p)
	}
	assert.False(t, b.Contains(mgl32.Vec3{3, 0, 0}))
}

func TestBoundingBox_FirstPointTightensBoth(t *testing.T) {
	b := NewBoundingBox()
	b.Update(mgl32.Vec3{7, 8, 9})

	assert.Equal(t, b.Min, b.Max)
	assert.Equal(t, float32(0), b.Diagonal())
}

func TestBoundingBox_Derived(t *testing.T) {
	b := BoundingBox{Min: mgl32.Vec3{-1, 0, 2}, Max: mgl32.Vec3{3, 2, 4}}

	assert.Equal(t, mgl32.Vec3{1, 1, 3}, b.Center())
	assert.Equal(t, mgl32.Vec3{4, 2, 2}, b.Size())
	assert.Equal(t, float32(4), b.MaxDimension())
	assert.InDelta(t, math32.Sqrt(24), b.Diagonal(), tol)
}

func TestOptimalCameraDistance(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want float32
	}{
		{"empty", NewBoundingBox(), 2},
		{"point", BoundingBox{}, 2},
		{"tiny", BoundingBox{Max: mgl32.Vec3{0.1, 0.1, 0.1}}, 2},
		{
			"large",
			BoundingBox{Min: mgl32.Vec3{-10, -10, -10}, Max: mgl32.Vec3{10, 10, 10}},
			(math32.Sqrt(1200) * 0.5 / math32.Tan(mgl32.DegToRad(22.5))) * 1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.box.OptimalCameraDistance(), 1e-3)
		})
	}
}

func TestDeduplicator_SameKeySameSlot(t *testing.T) {
	pools := &Pools{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		TexCoords: []mgl32.Vec2{{0.5, 0.5}},
	}
	d := NewDeduplicator(pools)

	a := d.Lookup(FaceKey{Pos: 0, Tex: Some(0)})
	b := d.Lookup(FaceKey{Pos: 1})
	c := d.Lookup(FaceKey{Pos: 0, Tex: Some(0)})
	e := d.Lookup(FaceKey{Pos: 0})

	assert.Equal(t, a, c)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, e, "absent texcoord is a different key")
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, d.Vertices()[a].TexCoord)
}

func TestPools_ResolveOutOfRange(t *testing.T) {
	pools := &Pools{
		Positions: []mgl32.Vec3{{1, 2, 3}},
		Normals:   []mgl32.Vec3{{0, 0, 1}},
	}

	v := pools.Resolve(FaceKey{Pos: 5, Tex: Some(3), Norm: Some(0)})
	assert.Equal(t, mgl32.Vec3{}, v.Position)
	assert.Equal(t, mgl32.Vec2{}, v.TexCoord)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)

	v = pools.Resolve(FaceKey{Pos: -2, Norm: Some(-1)})
	assert.Equal(t, Vertex{}, v)
}

func TestGenerateNormals_SingleTriangle(t *testing.T) {
	vertices := []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
	}
	GenerateNormals(vertices, []uint32{0, 1, 2})

	for i, v := range vertices {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal, "vertex %d", i)
	}
}

func TestGenerateNormals_Averaged(t *testing.T) {
	// Two triangles folded along the shared edge 0-1.
	vertices := []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{0, 0, -1}},
		{Position: mgl32.Vec3{5, 5, 5}},
	}
	GenerateNormals(vertices, []uint32{0, 1, 2, 0, 1, 3})

	s := float32(1 / math32.Sqrt(2))
	assertVec3(t, mgl32.Vec3{0, s, s}, vertices[0].Normal)
	assertVec3(t, mgl32.Vec3{0, s, s}, vertices[1].Normal)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, vertices[2].Normal)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, vertices[3].Normal)
	assert.Equal(t, Up, vertices[4].Normal, "untouched vertex gets the default")
}

func TestGenerateNormals_Degenerate(t *testing.T) {
	vertices := []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{2, 0, 0}},
	}
	GenerateNormals(vertices, []uint32{0, 1, 2, 0, 9})

	for _, v := range vertices {
		assert.Equal(t, Up, v.Normal)
	}
}

func TestGenerateUVs_PlanarCorners(t *testing.T) {
	b := BoundingBox{Min: mgl32.Vec3{-1, -2, 0}, Max: mgl32.Vec3{3, 2, 0.5}}
	vertices := []Vertex{
		{Position: b.Min},
		{Position: b.Max},
		{Position: b.Center()},
	}
	GenerateUVs(vertices, b, ProjectionPlanar)

	assertVec2 := func(want, got mgl32.Vec2) {
		t.Helper()
		assert.InDelta(t, want[0], got[0], tol)
		assert.InDelta(t, want[1], got[1], tol)
	}
	assertVec2(mgl32.Vec2{0, 0}, vertices[0].TexCoord)
	assertVec2(mgl32.Vec2{1, 1}, vertices[1].TexCoord)
	assertVec2(mgl32.Vec2{0.5, 0.5}, vertices[2].TexCoord)
}

func TestPlanarAxes(t *testing.T) {
	tests := []struct {
		size mgl32.Vec3
		u, v int
	}{
		{mgl32.Vec3{1, 1, 0}, 0, 1},
		{mgl32.Vec3{1, 0, 1}, 0, 2},
		{mgl32.Vec3{0, 1, 1}, 1, 2},
		{mgl32.Vec3{1, 1, 1}, 0, 1},
		{mgl32.Vec3{5, 3, 4}, 0, 2},
	}
	for _, tc := range tests {
		u, v := planarAxes(tc.size)
		if u != tc.u || v != tc.v {
			t.Errorf("planarAxes(%v) = (%d, %d), expected (%d, %d)", tc.size, u, v, tc.u, tc.v)
		}
	}
}

func TestGenerateUVs_PlanarFlatAxis(t *testing.T) {
	b := BoundingBox{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{0, 0, 0}}
	vertices := []Vertex{{Position: mgl32.Vec3{0, 0, 0}}}
	GenerateUVs(vertices, b, ProjectionPlanar)

	assert.Equal(t, mgl32.Vec2{0, 0}, vertices[0].TexCoord)
}

func TestSphericalUV(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl32.Vec3
		want mgl32.Vec2
	}{
		{"centre", mgl32.Vec3{}, mgl32.Vec2{0.5, 0.5}},
		{"up", mgl32.Vec3{0, 3, 0}, mgl32.Vec2{0.5, 0}},
		{"down", mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0.5, 1}},
		{"+x", mgl32.Vec3{2, 0, 0}, mgl32.Vec2{0.5, 0.5}},
		{"+z", mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0.75, 0.5}},
		{"-z", mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0.25, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphericalUV(tt.dir)
			assert.InDelta(t, tt.want[0], got[0], tol)
			assert.InDelta(t, tt.want[1], got[1], tol)
		})
	}
}

func TestCubicUV(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl32.Vec3
		want mgl32.Vec2
	}{
		{"centre", mgl32.Vec3{}, mgl32.Vec2{0.5, 0.5}},
		{"x dominant", mgl32.Vec3{2, 1, -2}, mgl32.Vec2{0, 0.75}},
		{"y dominant", mgl32.Vec3{1, -4, 2}, mgl32.Vec2{0.625, 0.75}},
		{"z dominant", mgl32.Vec3{-1, 1, 2}, mgl32.Vec2{0.25, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CubicUV(tt.dir)
			assert.InDelta(t, tt.want[0], got[0], tol)
			assert.InDelta(t, tt.want[1], got[1], tol)
		})
	}
}

func TestGenerateUVs_Range(t *testing.T) {
	b := BoundingBox{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	for _, proj := range []Projection{ProjectionPlanar, ProjectionSpherical, ProjectionCubic} {
		vertices := []Vertex{
			{Position: mgl32.Vec3{-1, -1, -1}},
			{Position: mgl32.Vec3{1, 0.5, -0.25}},
			{Position: mgl32.Vec3{0.3, 1, 0.9}},
			{Position: mgl32.Vec3{0, 0, 0}},
		}
		GenerateUVs(vertices, b, proj)
		for _, v := range vertices {
			for i := 0; i < 2; i++ {
				if v.TexCoord[i] < 0 || v.TexCoord[i] > 1 {
					t.Errorf("%s: uv %v out of [0,1] for %v", proj, v.TexCoord, v.Position)
				}
			}
		}
	}
}

func TestGenerateUVs_EmptyBounds(t *testing.T) {
	tests := []struct {
		proj Projection
		want mgl32.Vec2
	}{
		{ProjectionSpherical, mgl32.Vec2{0.5, 0.5}},
		{ProjectionCubic, mgl32.Vec2{0.5, 0.5}},
		{ProjectionPlanar, mgl32.Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.proj.String(), func(t *testing.T) {
			vertices := make([]Vertex, 3)
			GenerateUVs(vertices, NewBoundingBox(), tt.proj)
			for _, v := range vertices {
				assert.Equal(t, tt.want, v.TexCoord)
			}
		})
	}
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		in      string
		want    Projection
		wantErr bool
	}{
		{"", ProjectionSpherical, false},
		{"spherical", ProjectionSpherical, false},
		{"Planar", ProjectionPlanar, false},
		{" cubic ", ProjectionCubic, false},
		{"box", ProjectionCubic, false},
		{"cylindrical", ProjectionSpherical, true},
	}
	for _, tc := range tests {
		got, err := ParseProjection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseProjection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseProjection(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestProjection_TextRoundTrip(t *testing.T) {
	var p Projection
	require.NoError(t, p.UnmarshalText([]byte("cubic")))
	assert.Equal(t, ProjectionCubic, p)

	text, err := ProjectionPlanar.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "planar", string(text))

	assert.Error(t, p.UnmarshalText([]byte("nope")))
}

func TestFindMaterial(t *testing.T) {
	materials := []Material{NewMaterial("wood"), NewMaterial("steel")}

	assert.Equal(t, 1, FindMaterial(materials, "steel"))
	assert.Equal(t, NoMaterial, FindMaterial(materials, "glass"))
	assert.Equal(t, NoMaterial, FindMaterial(nil, "wood"))
}

func TestNewMaterial_Defaults(t *testing.T) {
	m := NewMaterial("default")

	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, m.Ambient)
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.8}, m.Diffuse)
	assert.Equal(t, float32(1), m.Opacity)
	assert.Equal(t, float32(1), m.RefractiveIndex)
	assert.Equal(t, 2, m.IlluminationModel)
	assert.Empty(t, m.TextureMaps())
}

func TestWireframe(t *testing.T) {
	assert.Nil(t, NewBoundingBox().Wireframe(0))

	b := BoundingBox{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 2, 3}}
	lines := b.Wireframe(0.5)
	require.Len(t, lines, 24)

	padded := BoundingBox{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{1.5, 2.5, 3.5}}
	for _, p := range lines {
		assert.True(t, padded.Contains(p), "endpoint %v outside padded box", p)
	}
	for i := 0; i < len(lines); i += 2 {
		d := lines[i+1].Sub(lines[i])
		nonZero := 0
		for _, c := range d {
			if c != 0 {
				nonZero++
			}
		}
		assert.Equal(t, 1, nonZero, "edge %d must be axis aligned", i/2)
	}
}

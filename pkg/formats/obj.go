package formats

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scop/pkg/mesh"
)

// objParser holds the state of one OBJ parse. It is never reused.
type objParser struct {
	dir string
	log *zap.Logger

	pools mesh.Pools
	dedup *mesh.Deduplicator

	indices   []uint32
	materials []mesh.Material
	groups    []mesh.MaterialGroup
	groupByID map[string]int
	active    int

	bounds  mesh.BoundingBox
	ignored map[string]bool
	line    int
}

// ParseOBJ parses a Wavefront OBJ stream. Material libraries are resolved
// against dir.
func ParseOBJ(r io.Reader, dir string, opts Options) (*Model, error) {
	p := &objParser{
		dir:       dir,
		log:       opts.logger(),
		groupByID: make(map[string]int),
		active:    -1,
		bounds:    mesh.NewBoundingBox(),
		ignored:   make(map[string]bool),
	}
	p.dedup = mesh.NewDeduplicator(&p.pools)

	sc := newLineScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, &ParseError{Line: p.line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &FileError{Err: fmt.Errorf("reading obj: %w", err)}
	}

	p.resolveGroups()
	if opts.CheckTextures {
		checkTextures(p.materials, p.log)
	}

	vertices := p.dedup.Vertices()
	if len(p.pools.TexCoords) == 0 {
		mesh.GenerateUVs(vertices, p.bounds, opts.Projection)
	}
	if len(p.pools.Normals) == 0 {
		mesh.GenerateNormals(vertices, p.indices)
	}

	return &Model{
		format:    FormatOBJ,
		primitive: mesh.Triangles,
		vertices:  vertices,
		indices:   p.indices,
		materials: p.materials,
		groups:    p.groups,
		bounds:    p.bounds,
	}, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, opts Options) (*Model, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := ParseOBJ(f, filepath.Dir(path), opts)
	if err != nil {
		return nil, withPath(err, path)
	}
	return model, nil
}

func (p *objParser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	args := fields[1:]
	switch fields[0] {
	case "v":
		var v [3]float32
		if err := parseFloats(args, v[:]); err != nil {
			return err
		}
		pos := mgl32.Vec3(v)
		p.pools.Positions = append(p.pools.Positions, pos)
		p.bounds.Update(pos)
	case "vt":
		var t [2]float32
		if err := parseFloats(args, t[:]); err != nil {
			return err
		}
		p.pools.TexCoords = append(p.pools.TexCoords, mgl32.Vec2(t))
	case "vn":
		var n [3]float32
		if err := parseFloats(args, n[:]); err != nil {
			return err
		}
		p.pools.Normals = append(p.pools.Normals, mgl32.Vec3(n))
	case "f":
		return p.parseFace(args)
	case "mtllib":
		p.loadMaterialLibrary(strings.Join(args, " "))
	case "usemtl":
		p.useMaterial(strings.Join(args, " "))
	default:
		if !p.ignored[fields[0]] {
			p.ignored[fields[0]] = true
			p.log.Debug("ignoring obj directive", zap.String("directive", fields[0]), zap.Int("line", p.line))
		}
	}
	return nil
}

// parseFace fan-triangulates a polygon around its first vertex.
func (p *objParser) parseFace(tokens []string) error {
	if len(tokens) < 3 {
		p.log.Debug("skipping degenerate face", zap.Int("line", p.line), zap.Int("vertices", len(tokens)))
		return nil
	}

	keys := make([]mesh.FaceKey, len(tokens))
	for i, tok := range tokens {
		k, err := ParseFaceVertex(tok)
		if err != nil {
			return err
		}
		keys[i] = k
	}

	for i := 1; i+1 < len(keys); i++ {
		tri := [3]uint32{
			p.dedup.Lookup(keys[0]),
			p.dedup.Lookup(keys[i]),
			p.dedup.Lookup(keys[i+1]),
		}
		p.indices = append(p.indices, tri[:]...)
		if p.active >= 0 {
			g := &p.groups[p.active]
			g.Indices = append(g.Indices, tri[:]...)
		}
	}
	return nil
}

// ParseFaceVertex parses a face token of the form p, p/t, p//n or p/t/n.
// Indices are converted from 1-based to 0-based.
func ParseFaceVertex(tok string) (mesh.FaceKey, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return mesh.FaceKey{}, fmt.Errorf("%w: %q", ErrInvalidFaceVertex, tok)
	}

	pos, err := strconv.Atoi(parts[0])
	if err != nil {
		return mesh.FaceKey{}, fmt.Errorf("%w: %q", ErrInvalidFaceVertex, tok)
	}
	key := mesh.FaceKey{Pos: pos - 1}

	optional := func(s string) (mesh.OptIndex, error) {
		if s == "" {
			return mesh.None, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return mesh.None, fmt.Errorf("%w: %q", ErrInvalidFaceVertex, tok)
		}
		// Zero and negative references carry no attribute, same as an omitted one.
		if i < 1 {
			return mesh.None, nil
		}
		return mesh.Some(i - 1), nil
	}
	if len(parts) > 1 {
		if key.Tex, err = optional(parts[1]); err != nil {
			return mesh.FaceKey{}, err
		}
	}
	if len(parts) > 2 {
		if key.Norm, err = optional(parts[2]); err != nil {
			return mesh.FaceKey{}, err
		}
	}
	return key, nil
}

// loadMaterialLibrary parses a referenced MTL file. Failures are not fatal.
func (p *objParser) loadMaterialLibrary(name string) {
	if name == "" {
		p.log.Warn("mtllib without file name", zap.Int("line", p.line))
		return
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, name)
	}

	materials, err := ParseMTLFile(path)
	if err != nil {
		p.log.Warn("material library not loaded, continuing without it",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	p.materials = append(p.materials, materials...)
	p.log.Debug("material library loaded", zap.String("path", path), zap.Int("materials", len(materials)))
}

// useMaterial activates the group for name, creating it on first use.
func (p *objParser) useMaterial(name string) {
	if name == "" {
		p.log.Warn("usemtl without material name, keeping current group", zap.Int("line", p.line))
		return
	}
	if idx, ok := p.groupByID[name]; ok {
		p.active = idx
		return
	}
	matIdx := mesh.FindMaterial(p.materials, name)
	if matIdx == mesh.NoMaterial {
		p.log.Debug("usemtl references unknown material", zap.String("material", name), zap.Int("line", p.line))
	}
	p.groups = append(p.groups, mesh.MaterialGroup{
		Name:          name,
		MaterialIndex: matIdx,
	})
	p.active = len(p.groups) - 1
	p.groupByID[name] = p.active
}

// resolveGroups retries the lookup for groups declared before their library.
func (p *objParser) resolveGroups() {
	for i := range p.groups {
		g := &p.groups[i]
		if g.MaterialIndex != mesh.NoMaterial {
			continue
		}
		g.MaterialIndex = mesh.FindMaterial(p.materials, g.Name)
		if g.MaterialIndex == mesh.NoMaterial && len(p.materials) > 0 {
			p.log.Warn("material not found in any library", zap.String("material", g.Name))
		}
	}
}

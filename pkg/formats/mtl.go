package formats

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scop/pkg/mesh"
)

// maxLineSize bounds a single text line in OBJ, MTL and FDF files. The
// scanner buffer only grows to it on demand.
const maxLineSize = 1 << 30

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// ParseMTL parses a material library. Texture paths are resolved against dir
// unless absolute.
func ParseMTL(r io.Reader, dir string) ([]mesh.Material, error) {
	var (
		materials []mesh.Material
		current   *mesh.Material
		lineNum   int
	)

	sc := newLineScanner(r)
	for sc.Scan() {
		lineNum++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		key, args := fields[0], fields[1:]
		if key == "newmtl" {
			name := strings.Join(args, " ")
			if name == "" {
				return nil, &ParseError{Line: lineNum, Err: fmt.Errorf("%w: newmtl", ErrMissingMaterialArg)}
			}
			materials = append(materials, mesh.NewMaterial(name))
			current = &materials[len(materials)-1]
			continue
		}
		if current == nil {
			continue
		}

		if err := applyMaterialDirective(current, key, args, dir); err != nil {
			return nil, &ParseError{Line: lineNum, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &FileError{Err: fmt.Errorf("reading material library: %w", err)}
	}

	return materials, nil
}

// ParseMTLFile parses a material library from disk.
func ParseMTLFile(path string) ([]mesh.Material, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	materials, err := ParseMTL(f, filepath.Dir(path))
	if err != nil {
		return nil, withPath(err, path)
	}
	return materials, nil
}

func applyMaterialDirective(m *mesh.Material, key string, args []string, dir string) error {
	var err error
	switch key {
	case "Ka":
		m.Ambient, err = parseColor(args)
	case "Kd":
		m.Diffuse, err = parseColor(args)
	case "Ks":
		m.Specular, err = parseColor(args)
	case "Ke":
		m.Emission, err = parseColor(args)
	case "Ns":
		m.Shininess, err = parseScalar(key, args)
	case "d":
		m.Opacity, err = parseScalar(key, args)
	case "Tr":
		var tr float32
		tr, err = parseScalar(key, args)
		m.Opacity = 1 - tr
	case "Ni":
		m.RefractiveIndex, err = parseScalar(key, args)
	case "illum":
		if len(args) == 0 {
			return fmt.Errorf("%w: illum", ErrMissingMaterialArg)
		}
		m.IlluminationModel, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, args[0])
		}
	case "map_Kd":
		m.DiffuseMap = texturePath(args, dir)
	case "map_Ka":
		m.AmbientMap = texturePath(args, dir)
	case "map_Ks":
		m.SpecularMap = texturePath(args, dir)
	case "map_Bump", "map_bump", "bump":
		m.NormalMap = texturePath(args, dir)
	case "map_d":
		m.OpacityMap = texturePath(args, dir)
	case "disp":
		m.DisplacementMap = texturePath(args, dir)
	}
	return err
}

// parseColor reads "r g b"; a single value applies to all channels.
func parseColor(args []string) (mgl32.Vec3, error) {
	if len(args) == 0 {
		return mgl32.Vec3{}, fmt.Errorf("%w: color", ErrMissingMaterialArg)
	}
	var c [3]float32
	if err := parseFloats(args, c[:]); err != nil {
		return mgl32.Vec3{}, err
	}
	if len(args) == 1 {
		c[1], c[2] = c[0], c[0]
	}
	return mgl32.Vec3(c), nil
}

func parseScalar(key string, args []string) (float32, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingMaterialArg, key)
	}
	return parseFloat(args[0])
}

// texturePath takes the last argument as the file name, skipping map options.
func texturePath(args []string, dir string) string {
	if len(args) == 0 {
		return ""
	}
	name := args[len(args)-1]
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scop/pkg/formats"
	"github.com/Faultbox/scop/pkg/mesh"
)

var errUsage = errors.New("missing model path")

// loadArg loads the single model path expected in args.
func loadArg(args []string, usage string, opts formats.Options) (string, *formats.Model, error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("%w: usage: %s", errUsage, usage)
	}
	m, err := formats.Load(args[0], opts)
	if err != nil {
		return args[0], nil, err
	}
	return args[0], m, nil
}

func cmdInfo(w io.Writer, args []string, opts formats.Options) error {
	path, m, err := loadArg(args, "scop info <model>", opts)
	if err != nil {
		return err
	}
	printInfo(w, newSummary(path, m))
	return nil
}

func printInfo(w io.Writer, s summary) {
	fmt.Fprintf(w, "Model:     %s\n", s.Path)
	fmt.Fprintf(w, "Format:    %s (%s)\n", s.Format, s.Primitive)
	if s.Rows > 0 {
		fmt.Fprintf(w, "Grid:      %d x %d\n", s.Rows, s.Cols)
	}
	fmt.Fprintf(w, "Vertices:  %d\n", s.Vertices)
	fmt.Fprintf(w, "Indices:   %d\n", s.Indices)
	if s.Lines > 0 {
		fmt.Fprintf(w, "Lines:     %d\n", s.Lines)
	} else {
		fmt.Fprintf(w, "Triangles: %d\n", s.Triangles)
	}
	fmt.Fprintf(w, "Materials: %d\n", len(s.Materials))
	fmt.Fprintf(w, "Groups:    %d\n", len(s.Groups))
	fmt.Fprintln(w)

	if s.Bounds == nil {
		fmt.Fprintln(w, "Bounds:    (empty)")
	} else {
		b := s.Bounds
		fmt.Fprintf(w, "Bounds:    min (%.3f, %.3f, %.3f)\n", b.Min[0], b.Min[1], b.Min[2])
		fmt.Fprintf(w, "           max (%.3f, %.3f, %.3f)\n", b.Max[0], b.Max[1], b.Max[2])
		fmt.Fprintf(w, "Center:    (%.3f, %.3f, %.3f)\n", b.Center[0], b.Center[1], b.Center[2])
		fmt.Fprintf(w, "Size:      (%.3f, %.3f, %.3f)\n", b.Size[0], b.Size[1], b.Size[2])
		fmt.Fprintf(w, "Diagonal:  %.3f\n", b.Diagonal)
	}
	fmt.Fprintf(w, "Camera:    %.3f\n", s.CameraDistance)
}

func cmdMaterials(w io.Writer, args []string, opts formats.Options) error {
	_, m, err := loadArg(args, "scop materials <model>", opts)
	if err != nil {
		return err
	}

	materials := m.Materials()
	if len(materials) == 0 {
		fmt.Fprintln(w, "(no materials)")
		return nil
	}

	for i := range materials {
		mat := &materials[i]
		fmt.Fprintf(w, "[%d] %s\n", i, mat.Name)
		fmt.Fprintf(w, "  Ka %v  Kd %v  Ks %v\n", mat.Ambient, mat.Diffuse, mat.Specular)
		fmt.Fprintf(w, "  Ns %.2f  d %.2f  Ni %.2f  illum %d\n",
			mat.Shininess, mat.Opacity, mat.RefractiveIndex, mat.IlluminationModel)

		maps := mat.TextureMaps()
		keys := make([]string, 0, len(maps))
		for k := range maps {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			status := "ok"
			if opts.CheckTextures {
				if err := formats.CheckTexture(maps[k]); err != nil {
					status = err.Error()
				}
			}
			fmt.Fprintf(w, "  %-9s %s (%s)\n", k, maps[k], status)
		}
	}
	return nil
}

func cmdGroups(w io.Writer, args []string, opts formats.Options) error {
	_, m, err := loadArg(args, "scop groups <model>", opts)
	if err != nil {
		return err
	}

	groups := m.Groups()
	if len(groups) == 0 {
		fmt.Fprintln(w, "(no material groups)")
		return nil
	}

	fmt.Fprintf(w, "%-24s %-10s %s\n", "GROUP", "MATERIAL", "TRIANGLES")
	for i := range groups {
		g := &groups[i]
		material := "-"
		if g.MaterialIndex != mesh.NoMaterial {
			material = fmt.Sprintf("%d", g.MaterialIndex)
		}
		fmt.Fprintf(w, "%-24s %-10s %d\n", g.Name, material, g.TriangleCount())
	}
	return nil
}

func cmdDump(w io.Writer, args []string, opts formats.Options) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	asYAML := fs.Bool("yaml", false, "Write the summary as YAML")
	limit := fs.Int("n", 8, "Number of vertices to print (0 = none, -1 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, m, err := loadArg(fs.Args(), "scop dump [-yaml] [-n N] <model>", opts)
	if err != nil {
		return err
	}

	s := newSummary(path, m)
	s.Sample = sampleVertices(m.Vertices(), *limit)

	if *asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		return enc.Close()
	}

	printInfo(w, s)
	if len(s.Sample) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-6s %-30s %-20s %s\n", "INDEX", "POSITION", "UV", "NORMAL")
		for i, v := range s.Sample {
			fmt.Fprintf(w, "%-6d %-30s %-20s %s\n", i,
				fmt.Sprintf("%.3f %.3f %.3f", v.Position[0], v.Position[1], v.Position[2]),
				fmt.Sprintf("%.3f %.3f", v.TexCoord[0], v.TexCoord[1]),
				fmt.Sprintf("%.3f %.3f %.3f", v.Normal[0], v.Normal[1], v.Normal[2]))
		}
	}
	return nil
}

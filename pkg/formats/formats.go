// Package formats provides loaders for Wavefront OBJ/MTL models and FDF
// heightmaps, producing indexed geometry ready for upload.
package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/scop/pkg/mesh"
)

// Format identifies a supported input format.
type Format int

// Supported formats.
const (
	FormatOBJ Format = iota
	FormatFDF
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "OBJ"
	case FormatFDF:
		return "FDF"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file extension handled by the format.
func (f Format) Extension() string {
	switch f {
	case FormatOBJ:
		return ".obj"
	case FormatFDF:
		return ".fdf"
	default:
		return ""
	}
}

// Options controls loading behaviour.
type Options struct {
	// Projection used when an OBJ declares no texture coordinates.
	Projection mesh.Projection
	// CheckTextures verifies that material texture maps exist and look like images.
	CheckTextures bool
	// Logger receives warnings for recoverable problems. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options used by Load when none are given.
func DefaultOptions() Options {
	return Options{
		Projection:    mesh.ProjectionSpherical,
		CheckTextures: true,
	}
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// DetectFormat validates path and returns the format selected by its extension.
// Extensions are case-sensitive. No file contents are read.
func DetectFormat(path string) (Format, error) {
	if path == "" {
		return 0, &FileError{Err: ErrEmptyPath}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, &FileError{Path: path, Err: ErrFileNotFound}
		}
		return 0, &FileError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return 0, &FileError{Path: path, Err: ErrNotRegularFile}
	}

	ext := filepath.Ext(path)
	switch ext {
	case "":
		return 0, &FormatError{Path: path, Err: ErrMissingExtension}
	case ".obj":
		return FormatOBJ, nil
	case ".fdf":
		return FormatFDF, nil
	default:
		return 0, &FormatError{Path: path, Ext: ext, Err: ErrUnsupportedExtension}
	}
}

// Load validates path and parses it with the loader for its format.
func Load(path string, opts Options) (*Model, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	log.Debug("loading model", zap.String("path", path), zap.Stringer("format", format))

	var model *Model
	switch format {
	case FormatOBJ:
		model, err = ParseOBJFile(path, opts)
	case FormatFDF:
		model, err = ParseFDFFile(path, opts)
	}
	if err != nil {
		return nil, err
	}

	log.Info("model loaded",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("vertices", len(model.vertices)),
		zap.Int("indices", len(model.indices)),
		zap.Int("materials", len(model.materials)),
	)
	return model, nil
}

// openFile opens path for a parser, mapping failures to FileError.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &FileError{Path: path, Err: err}
	}
	return f, nil
}

// parseFloat parses a float token.
func parseFloat(tok string) (float32, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
	}
	return float32(v), nil
}

// parseFloats parses up to len(dst) float tokens into dst; missing tokens leave zeros.
func parseFloats(fields []string, dst []float32) error {
	for i := range dst {
		if i >= len(fields) {
			return nil
		}
		v, err := parseFloat(fields[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

package formats

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyPath            = errors.New("file path cannot be empty")
	ErrFileNotFound         = errors.New("file does not exist")
	ErrNotRegularFile       = errors.New("not a regular file")
	ErrMissingExtension     = errors.New("file must have an extension")
	ErrUnsupportedExtension = errors.New("unsupported file extension: expected .obj or .fdf")
)

// Parse errors.
var (
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidFaceVertex  = errors.New("invalid face vertex")
	ErrEmptyHeightmap     = errors.New("empty heightmap")
	ErrRaggedRow          = errors.New("row width differs from first row")
	ErrMissingMaterialArg = errors.New("missing directive argument")
)

// FileError reports a path that is empty, missing or unreadable.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("file error: %v", e.Err)
	}
	return fmt.Sprintf("file error: %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatError reports a missing or unsupported file extension.
type FormatError struct {
	Path string
	Ext  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("format error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("format error: %s: %q: %v", e.Path, e.Ext, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseError reports a malformed token. Line is 1-based, 0 if unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %v", e.Path, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse error: line %d: %v", e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// withPath fills in the path of a ParseError or FileError produced by a
// reader-based parser.
func withPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	var fe *FileError
	if errors.As(err, &fe) && fe.Path == "" {
		fe.Path = path
	}
	return err
}

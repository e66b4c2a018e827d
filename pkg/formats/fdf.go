package formats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scop/pkg/mesh"
)

// Grid spacing thresholds, in samples along the largest grid dimension.
const (
	fdfMediumGrid = 50
	fdfLargeGrid  = 100
	fdfShrinkGrid = 20
	fdfHugeGrid   = 500
)

const (
	fdfHugeBoost = 5
	fdfMinPlanar = 0.1
	fdfMinHeight = 0.01
)

// GridSpacing holds the world-space distance between heightmap samples.
// X runs along columns, Z along rows and Y is the elevation axis.
type GridSpacing struct {
	X, Y, Z float32
}

// ComputeSpacing returns the adaptive spacing for a rows x cols grid.
// Bigger grids get tighter spacing so the model stays a manageable size.
func ComputeSpacing(rows, cols int) GridSpacing {
	maxDim := max(rows, cols)

	scale := float32(1)
	if maxDim > fdfMediumGrid {
		scale = 0.5
	}
	if maxDim > fdfLargeGrid {
		scale = 0.25
	}
	if maxDim > fdfShrinkGrid {
		scale *= fdfShrinkGrid / float32(maxDim)
	}

	s := GridSpacing{
		X: max(scale, fdfMinPlanar),
		Y: max(scale, fdfMinHeight),
		Z: max(scale, fdfMinPlanar),
	}
	if maxDim > fdfHugeGrid {
		s.X *= fdfHugeBoost
		s.Z *= fdfHugeBoost
	}
	return s
}

// fdfRow is one non-blank heightmap line.
type fdfRow struct {
	line   int
	tokens []string
}

// ParseFDF parses an FDF heightmap into a wireframe grid.
func ParseFDF(r io.Reader) (*Model, error) {
	rows, err := scanFDFRows(r)
	if err != nil {
		return nil, err
	}

	numRows, numCols := len(rows), len(rows[0].tokens)
	spacing := ComputeSpacing(numRows, numCols)
	midX := float32(numCols-1) / 2
	midZ := float32(numRows-1) / 2

	vertices := make([]mesh.Vertex, 0, numRows*numCols)
	bounds := mesh.NewBoundingBox()
	for rowIdx, row := range rows {
		for colIdx, tok := range row.tokens {
			h, err := parseElevation(tok)
			if err != nil {
				return nil, &ParseError{Line: row.line, Err: err}
			}
			pos := mgl32.Vec3{
				(float32(colIdx) - midX) * spacing.X,
				float32(h) * spacing.Y,
				(float32(rowIdx) - midZ) * spacing.Z,
			}
			bounds.Update(pos)
			vertices = append(vertices, mesh.Vertex{Position: pos, Normal: mesh.Up})
		}
	}

	return &Model{
		format:    FormatFDF,
		primitive: mesh.Lines,
		vertices:  vertices,
		indices:   gridLineIndices(numRows, numCols),
		rows:      numRows,
		cols:      numCols,
		bounds:    bounds,
	}, nil
}

// ParseFDFFile parses an FDF heightmap from disk.
func ParseFDFFile(path string, opts Options) (*Model, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := ParseFDF(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	opts.logger().Debug("heightmap parsed",
		zap.String("path", path),
		zap.Int("rows", model.rows),
		zap.Int("cols", model.cols),
	)
	return model, nil
}

// scanFDFRows collects non-blank lines and checks the grid is rectangular.
func scanFDFRows(r io.Reader) ([]fdfRow, error) {
	var rows []fdfRow
	lineNum := 0

	sc := newLineScanner(r)
	for sc.Scan() {
		lineNum++
		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		if len(rows) > 0 && len(tokens) != len(rows[0].tokens) {
			return nil, &ParseError{
				Line: lineNum,
				Err:  fmt.Errorf("%w: got %d columns, want %d", ErrRaggedRow, len(tokens), len(rows[0].tokens)),
			}
		}
		rows = append(rows, fdfRow{line: lineNum, tokens: tokens})
	}
	if err := sc.Err(); err != nil {
		return nil, &FileError{Err: fmt.Errorf("reading fdf: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Err: ErrEmptyHeightmap}
	}
	return rows, nil
}

// parseElevation reads "h" or "h,color"; the color is discarded.
func parseElevation(tok string) (int, error) {
	h := tok
	if i := strings.IndexByte(tok, ','); i >= 0 {
		h = tok[:i]
	}
	v, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
	}
	return v, nil
}

// gridLineIndices links every sample to its right and lower neighbour.
func gridLineIndices(rows, cols int) []uint32 {
	segments := (cols-1)*rows + (rows-1)*cols
	indices := make([]uint32, 0, 2*segments)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := uint32(row*cols + col)
			if col+1 < cols {
				indices = append(indices, idx, idx+1)
			}
			if row+1 < rows {
				indices = append(indices, idx, idx+uint32(cols))
			}
		}
	}
	return indices
}

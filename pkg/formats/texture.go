package formats

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/Faultbox/scop/pkg/mesh"
)

// Texture check errors.
var (
	ErrTextureMissing     = errors.New("texture file not found")
	ErrTextureUnsupported = errors.New("texture file is not a supported image")
)

// headerSize is enough for filetype to recognise every image matcher.
const headerSize = 262

// Extensions accepted without a recognisable magic number (TGA has none).
var headerlessImageExts = map[string]bool{
	".tga": true,
	".hdr": true,
	".pic": true,
}

// CheckTexture verifies that path exists and holds an image.
func CheckTexture(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrTextureMissing
		}
		return err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if filetype.IsImage(head[:n]) {
		return nil
	}
	if headerlessImageExts[strings.ToLower(filepath.Ext(path))] {
		return nil
	}
	return ErrTextureUnsupported
}

// checkTextures logs a warning for every texture map that cannot be used.
// It returns the number of problems found.
func checkTextures(materials []mesh.Material, log *zap.Logger) int {
	problems := 0
	for i := range materials {
		for key, path := range materials[i].TextureMaps() {
			if err := CheckTexture(path); err != nil {
				problems++
				log.Warn("unusable texture map",
					zap.String("material", materials[i].Name),
					zap.String("map", key),
					zap.String("path", path),
					zap.Error(err),
				)
			}
		}
	}
	return problems
}

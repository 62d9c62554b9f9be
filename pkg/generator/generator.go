// Package generator encodes rendered fixtures to disk.
//
// All output follows a unified pipeline: render an image.Image first,
// then write it in the format named by the file extension.
package generator

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Supported image formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// WriteImage creates an image file. The format is inferred from the file extension:
//   - ".png" → PNG image
//   - ".bmp" → 24-bit BMP image
func WriteImage(output string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, img)
	case ".bmp":
		return writeBMP(output, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}

// fonts.go - Font loading and text drawing.
// Uses golang.org/x/image/font for OpenType rendering. A single font file is
// loaded up front; faces are created lazily per point size and cached.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrFontLoad is wrapped by every font loading failure.
var ErrFontLoad = errors.New("font load failed")

// TextRenderer draws a string with its bounding box anchored at (x, y),
// the top-left corner of the text.
type TextRenderer interface {
	DrawText(dst draw.Image, text string, x, y int, size float64, col color.Color) error
}

// FontManager renders text with one parsed font.
type FontManager struct {
	name   string
	parsed *opentype.Font
	dpi    float64
	faces  map[float64]font.Face
}

// NewFontManager loads the font at path. ".ttc" collections use their first font.
func NewFontManager(path string) (*FontManager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	var parsed *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		parsed, err = parseFirstInCollection(data)
	} else {
		parsed, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrFontLoad, path, err)
	}

	return newFontManager(path, parsed), nil
}

// NewEmbeddedFontManager uses the embedded Go Regular font.
// It has no CJK glyphs, so CJK terms render as replacement boxes.
func NewEmbeddedFontManager() (*FontManager, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: parse embedded font: %w", ErrFontLoad, err)
	}
	return newFontManager("goregular", parsed), nil
}

func newFontManager(name string, parsed *opentype.Font) *FontManager {
	return &FontManager{
		name:   name,
		parsed: parsed,
		dpi:    72,
		faces:  make(map[float64]font.Face),
	}
}

func parseFirstInCollection(data []byte) (*opentype.Font, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if coll.NumFonts() == 0 {
		return nil, errors.New("empty font collection")
	}
	return coll.Font(0)
}

// Name returns the font path, or "goregular" for the embedded font.
func (fm *FontManager) Name() string {
	return fm.name
}

// Face returns a cached font.Face at the specified size.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := fm.faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fm.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	fm.faces[size] = face
	return face, nil
}

// DrawText implements TextRenderer.
func (fm *FontManager) DrawText(dst draw.Image, text string, x, y int, size float64, col color.Color) error {
	face, err := fm.Face(size)
	if err != nil {
		return err
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	drawer.DrawString(text)
	return nil
}

// Close releases all cached faces.
func (fm *FontManager) Close() error {
	var errs []error
	for size, face := range fm.faces {
		errs = append(errs, face.Close())
		delete(fm.faces, size)
	}
	return errors.Join(errs...)
}

// Package imagegen renders raster fixtures: a pale background, random outline
// shapes spanning the canvas, vocabulary text overlays and a smoothing pass.
package imagegen

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"path/filepath"

	"github.com/xob0t/fixturegen/pkg/generator"
	"github.com/xob0t/fixturegen/pkg/render"
	"github.com/xob0t/fixturegen/pkg/vocab"
)

const (
	shapeRect = iota
	shapeEllipse
	shapeLine
	numShapes
)

// Options configures image fixtures.
type Options struct {
	Width      int
	Height     int
	Format     string // generator.FormatPNG or generator.FormatBMP
	Background generator.Range
	Shapes     generator.Range
	ShapeColor generator.Range
	Stroke     generator.Range
	Words      generator.Range
	FontSize   generator.Range
	TextColor  generator.Range
	MarginX    int // text anchors stay at least this far from the right edge
	MarginY    int // and this far from the bottom edge
	Smooth     bool
	Terms      vocab.List
}

// Generator renders image fixtures into one output directory.
type Generator struct {
	opts Options
	dir  string
	text render.TextRenderer
	rng  *rand.Rand
}

// New creates a generator writing into dir.
func New(dir string, opts Options, text render.TextRenderer, rng *rand.Rand) *Generator {
	return &Generator{
		opts: opts,
		dir:  dir,
		text: text,
		rng:  rng,
	}
}

// FileName returns the fixture name for a 1-based index, e.g. "test_image_03.png".
func FileName(index int, format string) string {
	return fmt.Sprintf("test_image_%02d.%s", index, format)
}

// Generate renders one image and writes it to the output directory.
// It returns the written path.
func (g *Generator) Generate(index int) (string, error) {
	img, err := g.Render()
	if err != nil {
		return "", fmt.Errorf("render image %d: %w", index, err)
	}

	path := filepath.Join(g.dir, FileName(index, g.opts.Format))
	if err := generator.WriteImage(path, img); err != nil {
		return "", fmt.Errorf("write image %d: %w", index, err)
	}
	return path, nil
}

// Render composes one image in memory. It follows a layered approach:
// 1. Fills the background with a light random color
// 2. Strokes random rectangles, ellipses and lines
// 3. Draws sampled vocabulary terms in dark colors
// 4. Softens the result when smoothing is enabled.
func (g *Generator) Render() (*image.RGBA, error) {
	o := g.opts
	img := generator.NewSolidImage(o.Width, o.Height, generator.RandomColor(g.rng, o.Background))

	g.drawShapes(img)
	if err := g.drawTerms(img); err != nil {
		return nil, err
	}

	if o.Smooth {
		img = render.SmoothMore(img)
	}
	return img, nil
}

// shape is one outline to stroke.
type shape struct {
	kind  int
	box   render.Box
	width int
	col   color.RGBA
}

// pickShape chooses a shape whose first corner lies in the top-left quadrant
// and second corner in the bottom-right one.
func (g *Generator) pickShape() shape {
	o := g.opts
	halfW, halfH := o.Width/2, o.Height/2

	kind := g.rng.IntN(numShapes)
	box := render.Box{
		X1: g.rng.IntN(halfW + 1),
		Y1: g.rng.IntN(halfH + 1),
		X2: halfW + g.rng.IntN(o.Width-halfW+1),
		Y2: halfH + g.rng.IntN(o.Height-halfH+1),
	}
	col := generator.RandomColor(g.rng, o.ShapeColor)
	return shape{kind: kind, box: box, width: o.Stroke.Pick(g.rng), col: col}
}

func (g *Generator) drawShapes(img *image.RGBA) {
	n := g.opts.Shapes.Pick(g.rng)
	for range n {
		s := g.pickShape()
		switch s.kind {
		case shapeRect:
			render.StrokeRect(img, s.box, s.width, s.col)
		case shapeEllipse:
			render.StrokeEllipse(img, s.box, s.width, s.col)
		case shapeLine:
			render.StrokeLine(img, s.box.X1, s.box.Y1, s.box.X2, s.box.Y2, s.width, s.col)
		}
	}
}

// drawTerms overlays distinct vocabulary terms at random positions.
func (g *Generator) drawTerms(img *image.RGBA) error {
	o := g.opts
	terms := o.Terms.Sample(g.rng, o.Words.Pick(g.rng))
	for _, term := range terms {
		size := o.FontSize.Pick(g.rng)
		x := g.rng.IntN(o.Width - o.MarginX + 1)
		y := g.rng.IntN(o.Height - o.MarginY + 1)
		col := generator.RandomColor(g.rng, o.TextColor)

		if err := g.text.DrawText(img, term, x, y, float64(size), col); err != nil {
			return fmt.Errorf("draw %q: %w", term, err)
		}
	}
	return nil
}

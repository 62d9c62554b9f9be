package imagegen

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/xob0t/fixturegen/pkg/generator"
	"github.com/xob0t/fixturegen/pkg/render"
	"github.com/xob0t/fixturegen/pkg/vocab"
)

type drawCall struct {
	text string
	x, y int
	size float64
	col  color.RGBA
}

// recorder is a TextRenderer that records calls and stamps a dark pixel.
type recorder struct {
	calls []drawCall
	err   error
}

func (r *recorder) DrawText(dst draw.Image, text string, x, y int, size float64, col color.Color) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, drawCall{text, x, y, size, color.RGBAModel.Convert(col).(color.RGBA)})
	dst.Set(x, y, col)
	return nil
}

func defaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     800,
		Format:     generator.FormatPNG,
		Background: generator.Range{Min: 200, Max: 240},
		Shapes:     generator.Range{Min: 5, Max: 10},
		ShapeColor: generator.Range{Min: 120, Max: 220},
		Stroke:     generator.Range{Min: 2, Max: 5},
		Words:      generator.Range{Min: 8, Max: 15},
		FontSize:   generator.Range{Min: 40, Max: 80},
		TextColor:  generator.Range{Min: 0, Max: 100},
		MarginX:    200,
		MarginY:    100,
		Smooth:     true,
		Terms:      vocab.Terms,
	}
}

func distinctColors(img image.Image) int {
	seen := make(map[color.Color]struct{})
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[img.At(x, y)] = struct{}{}
		}
	}
	return len(seen)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "test_image_03.png", FileName(3, "png"))
	require.Equal(t, "test_image_12.bmp", FileName(12, "bmp"))
}

func TestRenderTermOverlay(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rec := &recorder{}
		g := New(t.TempDir(), defaultOptions(), rec, rand.New(rand.NewPCG(seed, 99)))

		img, err := g.Render()
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, 1000, 800), img.Bounds())

		require.GreaterOrEqual(t, len(rec.calls), 8)
		require.LessOrEqual(t, len(rec.calls), 15)

		seen := make(map[string]bool)
		for _, c := range rec.calls {
			require.False(t, seen[c.text], "term %q drawn twice", c.text)
			seen[c.text] = true
			require.Contains(t, vocab.Terms, c.text)

			require.GreaterOrEqual(t, c.x, 0)
			require.LessOrEqual(t, c.x, 800)
			require.GreaterOrEqual(t, c.y, 0)
			require.LessOrEqual(t, c.y, 700)
			require.GreaterOrEqual(t, c.size, 40.0)
			require.LessOrEqual(t, c.size, 80.0)
			for _, ch := range []uint8{c.col.R, c.col.G, c.col.B} {
				require.LessOrEqual(t, ch, uint8(100))
			}
		}
	}
}

func TestRenderBackgroundIsLight(t *testing.T) {
	opts := defaultOptions()
	opts.Shapes = generator.Range{Min: 0, Max: 0}
	opts.Words = generator.Range{Min: 0, Max: 0}

	img, err := New(t.TempDir(), opts, &recorder{}, rand.New(rand.NewPCG(5, 5))).Render()
	require.NoError(t, err)
	require.Equal(t, 1, distinctColors(img))

	c := img.RGBAAt(0, 0)
	for _, ch := range []uint8{c.R, c.G, c.B} {
		require.GreaterOrEqual(t, ch, uint8(200))
		require.LessOrEqual(t, ch, uint8(240))
	}
}

func TestRenderDrawsShapes(t *testing.T) {
	opts := defaultOptions()
	opts.Words = generator.Range{Min: 0, Max: 0}
	opts.Smooth = false

	img, err := New(t.TempDir(), opts, &recorder{}, rand.New(rand.NewPCG(8, 1))).Render()
	require.NoError(t, err)
	require.Greater(t, distinctColors(img), 1)
}

func TestPickShapeBounds(t *testing.T) {
	opts := defaultOptions()
	kinds := make(map[int]int)
	widths := make(map[int]bool)

	for seed := uint64(0); seed < 300; seed++ {
		g := New(t.TempDir(), opts, &recorder{}, rand.New(rand.NewPCG(seed, 9)))
		s := g.pickShape()

		kinds[s.kind]++
		require.GreaterOrEqual(t, s.box.X1, 0)
		require.LessOrEqual(t, s.box.X1, 500)
		require.GreaterOrEqual(t, s.box.Y1, 0)
		require.LessOrEqual(t, s.box.Y1, 400)
		require.GreaterOrEqual(t, s.box.X2, 500)
		require.LessOrEqual(t, s.box.X2, 1000)
		require.GreaterOrEqual(t, s.box.Y2, 400)
		require.LessOrEqual(t, s.box.Y2, 800)

		require.GreaterOrEqual(t, s.width, 2)
		require.LessOrEqual(t, s.width, 5)
		widths[s.width] = true

		for _, ch := range []uint8{s.col.R, s.col.G, s.col.B} {
			require.GreaterOrEqual(t, ch, uint8(120))
			require.LessOrEqual(t, ch, uint8(220))
		}
	}

	require.Len(t, kinds, numShapes)
	for kind := range numShapes {
		require.Greater(t, kinds[kind], 50, "kind %d", kind)
	}
	require.Len(t, widths, 4)
}

func TestPickShapeReachesCanvasEdges(t *testing.T) {
	opts := defaultOptions()
	opts.Width, opts.Height = 4, 4
	var minX1, maxX2 = 4, 0
	g := New(t.TempDir(), opts, &recorder{}, rand.New(rand.NewPCG(11, 12)))
	for range 200 {
		s := g.pickShape()
		minX1 = min(minX1, s.box.X1)
		maxX2 = max(maxX2, s.box.X2)
		require.LessOrEqual(t, s.box.X1, 2)
		require.GreaterOrEqual(t, s.box.X2, 2)
	}
	require.Equal(t, 0, minX1)
	require.Equal(t, 4, maxX2)
}

func TestRenderPropagatesTextError(t *testing.T) {
	boom := errors.New("boom")
	g := New(t.TempDir(), defaultOptions(), &recorder{err: boom}, rand.New(rand.NewPCG(1, 1)))

	_, err := g.Generate(3)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "render image 3")
}

func TestGenerateWritesDecodablePNG(t *testing.T) {
	fm, err := render.NewEmbeddedFontManager()
	require.NoError(t, err)
	defer fm.Close()

	dir := t.TempDir()
	g := New(dir, defaultOptions(), fm, rand.New(rand.NewPCG(3, 3)))

	path, err := g.Generate(3)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "test_image_03.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1000, 800), img.Bounds())
	require.Greater(t, distinctColors(img), 1)
}

func TestGenerateBMP(t *testing.T) {
	opts := defaultOptions()
	opts.Format = generator.FormatBMP
	opts.Width, opts.Height = 400, 300

	path, err := New(t.TempDir(), opts, &recorder{}, rand.New(rand.NewPCG(4, 4))).Generate(1)
	require.NoError(t, err)
	require.Equal(t, "test_image_01.bmp", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := bmp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	pa, err := New(dirA, defaultOptions(), &recorder{}, rand.New(rand.NewPCG(1, 2))).Generate(1)
	require.NoError(t, err)
	pb, err := New(dirB, defaultOptions(), &recorder{}, rand.New(rand.NewPCG(3, 4))).Generate(1)
	require.NoError(t, err)

	a, err := os.ReadFile(pa)
	require.NoError(t, err)
	b, err := os.ReadFile(pb)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerateMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	_, err := New(dir, defaultOptions(), &recorder{}, rand.New(rand.NewPCG(1, 1))).Generate(2)
	require.ErrorContains(t, err, "write image 2")
}

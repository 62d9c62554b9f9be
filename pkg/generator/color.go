// color.go — Random color sampling and solid image creation.
package generator

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
)

// RandomColor samples each RGB channel uniformly from span.
// The span must lie within 0..255.
func RandomColor(rng *rand.Rand, span Range) color.RGBA {
	r := uint8(span.Pick(rng))
	g := uint8(span.Pick(rng))
	b := uint8(span.Pick(rng))
	return toRGBA(r, g, b)
}

// NewSolidImage creates a uniform solid-color image using draw.Draw (O(1) fill).
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

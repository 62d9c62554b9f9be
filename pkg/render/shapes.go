// shapes.go - Anti-aliased outline shapes rasterized with golang.org/x/image/vector.
//
// Outlines are built as an outer loop plus an inner loop of opposite winding,
// so the rasterizer's accumulated coverage cancels inside the stroke.
// Rectangle and ellipse strokes grow inward from the bounding box.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Bezier constant for approximating a quarter ellipse with one cubic.
const kappa = 0.5522847498

// Box is an axis-aligned bounding box in pixel coordinates, corners inclusive.
type Box struct {
	X1, Y1, X2, Y2 int
}

// normalize orders the corners so X1 <= X2 and Y1 <= Y2.
func (b Box) normalize() Box {
	if b.X1 > b.X2 {
		b.X1, b.X2 = b.X2, b.X1
	}
	if b.Y1 > b.Y2 {
		b.Y1, b.Y2 = b.Y2, b.Y1
	}
	return b
}

// StrokeRect draws the outline of b with the given stroke width.
func StrokeRect(dst draw.Image, b Box, width int, col color.Color) {
	b = b.normalize()
	x1, y1 := float32(b.X1), float32(b.Y1)
	x2, y2 := float32(b.X2+1), float32(b.Y2+1)
	w := float32(max(width, 1))

	r := newRasterizer(dst)
	r.MoveTo(x1, y1)
	r.LineTo(x2, y1)
	r.LineTo(x2, y2)
	r.LineTo(x1, y2)
	r.ClosePath()

	if x2-x1 > 2*w && y2-y1 > 2*w {
		r.MoveTo(x1+w, y1+w)
		r.LineTo(x1+w, y2-w)
		r.LineTo(x2-w, y2-w)
		r.LineTo(x2-w, y1+w)
		r.ClosePath()
	}
	paint(r, dst, col)
}

// StrokeEllipse draws the outline of the ellipse inscribed in b.
func StrokeEllipse(dst draw.Image, b Box, width int, col color.Color) {
	b = b.normalize()
	cx := float32(b.X1+b.X2+1) / 2
	cy := float32(b.Y1+b.Y2+1) / 2
	rx := float32(b.X2-b.X1+1) / 2
	ry := float32(b.Y2-b.Y1+1) / 2
	w := float32(max(width, 1))

	r := newRasterizer(dst)
	addEllipse(r, cx, cy, rx, ry, false)
	if rx > w && ry > w {
		addEllipse(r, cx, cy, rx-w, ry-w, true)
	}
	paint(r, dst, col)
}

// StrokeLine draws a straight segment from (x1, y1) to (x2, y2).
func StrokeLine(dst draw.Image, x1, y1, x2, y2, width int, col color.Color) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	half := float64(max(width, 1)) / 2
	nx := float32(-dy / length * half)
	ny := float32(dx / length * half)
	ax, ay := float32(x1)+0.5, float32(y1)+0.5
	bx, by := float32(x2)+0.5, float32(y2)+0.5

	r := newRasterizer(dst)
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
	paint(r, dst, col)
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func paint(r *vector.Rasterizer, dst draw.Image, col color.Color) {
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// addEllipse appends a closed ellipse made of four cubic segments.
func addEllipse(r *vector.Rasterizer, cx, cy, rx, ry float32, clockwise bool) {
	kx := kappa * rx
	ky := kappa * ry

	r.MoveTo(cx, cy-ry)
	if clockwise {
		r.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		r.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		r.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
		r.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
	} else {
		r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	}
	r.ClosePath()
}

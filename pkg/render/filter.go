// filter.go - 5x5 smoothing convolution applied after drawing.
package render

import "image"

// smoothMore weights, row-major. They sum to smoothMoreDiv.
var smoothMore = [25]int{
	1, 1, 1, 1, 1,
	1, 5, 5, 5, 1,
	1, 5, 44, 5, 1,
	1, 5, 5, 5, 1,
	1, 1, 1, 1, 1,
}

const smoothMoreDiv = 100

// SmoothMore returns a softened copy of src. Samples beyond the edge are
// clamped to the nearest border pixel. Alpha is carried over unchanged.
func SmoothMore(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return dst
	}

	clamp := func(v, hi int) int {
		return min(max(v, 0), hi-1)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb int
			k := 0
			for dy := -2; dy <= 2; dy++ {
				sy := b.Min.Y + clamp(y+dy, h)
				for dx := -2; dx <= 2; dx++ {
					i := src.PixOffset(b.Min.X+clamp(x+dx, w), sy)
					wt := smoothMore[k]
					sr += wt * int(src.Pix[i])
					sg += wt * int(src.Pix[i+1])
					sb += wt * int(src.Pix[i+2])
					k++
				}
			}

			o := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			dst.Pix[o] = uint8((sr + smoothMoreDiv/2) / smoothMoreDiv)
			dst.Pix[o+1] = uint8((sg + smoothMoreDiv/2) / smoothMoreDiv)
			dst.Pix[o+2] = uint8((sb + smoothMoreDiv/2) / smoothMoreDiv)
			dst.Pix[o+3] = src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
		}
	}
	return dst
}

package brandgen

import (
	"image"
	"image/draw"
)

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// Rasterized contexts produce premultiplied RGBA; normalizing before encoding
// keeps the emitted bytes independent of which renderer produced the image.
func imgToNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

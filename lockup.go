package brandgen

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Lockup composes the icon and the wordmark side by side on a shared canvas.
// The gap between them equals one rectangle width, scaled to the icon size.
func (r *Renderer) Lockup(iconSize int, fill, bg color.Color) image.Image {
	gap := r.cfg.Geometry.Scale(r.cfg.Geometry.RectWidth, iconSize)

	face := r.font.Face(math.Round(float64(iconSize) * wordmarkFontRatio))
	defer face.Close()

	tb := measureString(face, r.cfg.Text)
	pad := int(math.Round(float64(iconSize) * wordmarkPadRatio))
	total := iconSize + gap + tb.w + pad*2

	canvas := image.NewNRGBA(image.Rect(0, 0, total, iconSize))
	if bg != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	icon := r.Icon(iconSize, fill, nil)
	draw.Draw(canvas, image.Rect(0, 0, iconSize, iconSize), icon, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.P(iconSize+gap+pad-tb.minX, (iconSize-tb.h)/2-tb.minY),
	}
	d.DrawString(r.cfg.Text)

	return canvas
}

package brandgen

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// wordmarkFontRatio sizes the wordmark text relative to its canvas height.
	wordmarkFontRatio = 0.62
	// wordmarkPadRatio is the horizontal padding around the wordmark text.
	wordmarkPadRatio = 0.1
	// letterFontRatio sizes the letter mark glyph relative to the icon size.
	// Larger than the wordmark ratio for legibility at small favicon cuts.
	letterFontRatio = 0.9
)

// Wordmark renders the brand text on a canvas of the given height, with the
// glyph box centered vertically. The canvas width follows the measured text.
func (r *Renderer) Wordmark(height int, fill, bg color.Color) image.Image {
	face := r.font.Face(math.Round(float64(height) * wordmarkFontRatio))
	defer face.Close()

	tb := measureString(face, r.cfg.Text)
	pad := int(math.Round(float64(height) * wordmarkPadRatio))

	canvas := image.NewNRGBA(image.Rect(0, 0, tb.w+pad*2, height))
	if bg != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.P(pad-tb.minX, (height-tb.h)/2-tb.minY),
	}
	d.DrawString(r.cfg.Text)

	return canvas
}

// LetterIcon renders the single glyph favicon: one character centered on a
// square canvas.
func (r *Renderer) LetterIcon(size int, fill, bg color.Color) image.Image {
	face := r.font.Face(math.Round(float64(size) * letterFontRatio))
	defer face.Close()

	letter := r.cfg.Letter.Char
	tb := measureString(face, letter)

	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	if bg != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.P((size-tb.w)/2-tb.minX, (size-tb.h)/2-tb.minY),
	}
	d.DrawString(letter)

	return canvas
}

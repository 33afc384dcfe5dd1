package brandgen

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Rect is a rounded rectangle positioned on the icon artboard.
type Rect struct {
	X, Y, W, H, Radius int
}

// Scale maps a length defined on the base artboard to the target size.
func (g Geometry) Scale(v, size int) int {
	return int(math.Round(float64(v) * float64(size) / float64(g.Base)))
}

// IconRects lays out the four rounded rectangles of the logo glyph,
// scaled to the target size: two columns, a shorter top row and a
// taller bottom row.
func (g Geometry) IconRects(size int) [4]Rect {
	x0 := g.Scale(g.MarginX, size)
	y0 := g.Scale(g.MarginY, size)
	w := g.Scale(g.RectWidth, size)
	hTop := g.Scale(g.RectHeightTop, size)
	hBottom := g.Scale(g.RectHeightBottom, size)
	gapX := g.Scale(g.ColGap, size)
	gapY := g.Scale(g.RowGap, size)
	radius := g.Scale(g.Radius, size)

	leftX, rightX := x0, x0+w+gapX
	topY, bottomY := y0, y0+hTop+gapY

	return [4]Rect{
		{leftX, topY, w, hTop, radius},
		{rightX, topY, w, hTop, radius},
		{leftX, bottomY, w, hBottom, radius},
		{rightX, bottomY, w, hBottom, radius},
	}
}

// Icon renders the logo glyph at the given pixel size.
// A nil background leaves the canvas transparent.
func (r *Renderer) Icon(size int, fill, bg color.Color) image.Image {
	dc := gg.NewContext(size, size)
	if bg != nil {
		dc.SetColor(bg)
		dc.Clear()
	}

	dc.SetColor(fill)
	for _, rc := range r.cfg.Geometry.IconRects(size) {
		dc.DrawRoundedRectangle(float64(rc.X), float64(rc.Y), float64(rc.W), float64(rc.H), float64(rc.Radius))
	}
	dc.Fill()

	return dc.Image()
}

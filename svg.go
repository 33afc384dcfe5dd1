package brandgen

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// svgFontSize is the wordmark text size on the base artboard. The raster font
// face at the same size is used to measure the text, so the vector and raster
// outputs agree on the wordmark width.
const svgFontSize = 40

// IconSVG writes the logo glyph as vector markup on the base artboard.
func (r *Renderer) IconSVG(w io.Writer, t Theme) {
	g := r.cfg.Geometry

	canvas := svg.New(w)
	canvas.Start(g.Base, g.Base, fmt.Sprintf(`viewBox="0 0 %d %d"`, g.Base, g.Base), `fill="none"`)
	for _, rc := range g.IconRects(g.Base) {
		canvas.Roundrect(rc.X, rc.Y, rc.W, rc.H, rc.Radius, rc.Radius, "fill:"+t.Fill)
	}
	canvas.End()
}

// WordmarkSVG writes the brand text as vector markup. The width is derived
// from the measured text so the markup carries no overhang.
func (r *Renderer) WordmarkSVG(w io.Writer, t Theme) {
	g := r.cfg.Geometry

	face := r.font.Face(svgFontSize)
	defer face.Close()
	tb := measureString(face, r.cfg.Text)

	pad := g.Scale(g.MarginX, g.Base)
	width, height := tb.w+pad*2, g.Base

	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height), `fill="none"`)
	canvas.Text(pad, height/2, r.cfg.Text, r.textAttrs(t.Fill))
	canvas.End()
}

// LockupSVG writes the icon and wordmark combination as vector markup.
func (r *Renderer) LockupSVG(w io.Writer, t Theme) {
	g := r.cfg.Geometry

	face := r.font.Face(svgFontSize)
	defer face.Close()
	tb := measureString(face, r.cfg.Text)

	pad := g.Scale(g.MarginX, g.Base)
	gap := g.RectWidth
	width, height := g.Base+gap+tb.w+pad*2, g.Base

	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height), `fill="none"`)
	canvas.Group()
	for _, rc := range g.IconRects(g.Base) {
		canvas.Roundrect(rc.X, rc.Y, rc.W, rc.H, rc.Radius, rc.Radius, "fill:"+t.Fill)
	}
	canvas.Gend()
	canvas.Text(g.Base+gap+pad, height/2, r.cfg.Text, r.textAttrs(t.Fill))
	canvas.End()
}

// textAttrs builds the attribute list of the wordmark text element.
// The font weight matches the wordmark cut of the brand font.
func (r *Renderer) textAttrs(fill string) string {
	return fmt.Sprintf(
		`fill="%s" font-family="%s" font-size="%d" font-weight="600" dominant-baseline="middle"`,
		fill, r.cfg.FontFamily, svgFontSize,
	)
}

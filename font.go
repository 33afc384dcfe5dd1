package brandgen

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/baremoney/brandgen/utils"
)

// Font wraps a parsed TrueType font and derives fixed-size faces from it.
type Font struct {
	ttf *truetype.Font
}

// LoadFont parses the font the wordmark is set in. The source is either a
// local file path or a URL; when empty the embedded Go Bold face is used.
func LoadFont(source string) (*Font, error) {
	var data []byte

	switch {
	case source == "":
		data = gobold.TTF
	case utils.IsValidUrl(source):
		tmp, err := utils.DownloadFile(source)
		if tmp != nil {
			defer os.Remove(tmp.Name())
		}
		if err != nil {
			return nil, fmt.Errorf("could not download the font file: %w", err)
		}
		if data, err = os.ReadFile(tmp.Name()); err != nil {
			return nil, fmt.Errorf("could not read the downloaded font file: %w", err)
		}
	default:
		var err error
		if data, err = os.ReadFile(source); err != nil {
			return nil, fmt.Errorf("could not read the font file: %w", err)
		}
	}

	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse the font file: %w", err)
	}
	return &Font{ttf: ttf}, nil
}

// Face returns a new face of the font at the given pixel size.
func (f *Font) Face(size float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// textBounds holds the measured pixel bounds of a rendered string.
// minX and minY locate the glyph box relative to the drawing origin and are
// used to convert box placement into a baseline position.
type textBounds struct {
	w, h       int
	minX, minY int
}

func measureString(face font.Face, s string) textBounds {
	bounds, _ := font.BoundString(face, s)
	return textBounds{
		w:    (bounds.Max.X - bounds.Min.X).Ceil(),
		h:    (bounds.Max.Y - bounds.Min.Y).Ceil(),
		minX: bounds.Min.X.Floor(),
		minY: bounds.Min.Y.Floor(),
	}
}

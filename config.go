package brandgen

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baremoney/brandgen/utils"
)

// Geometry defines the logo glyph proportions laid out on a square base
// artboard. Every raster and vector output size is derived from these values
// by linear scaling.
type Geometry struct {
	Base             int `yaml:"base"`
	RectWidth        int `yaml:"rect_width"`
	RectHeightTop    int `yaml:"rect_height_top"`
	RectHeightBottom int `yaml:"rect_height_bottom"`
	Radius           int `yaml:"radius"`
	MarginX          int `yaml:"margin_x"`
	MarginY          int `yaml:"margin_y"`
	ColGap           int `yaml:"col_gap"`
	RowGap           int `yaml:"row_gap"`
}

// Theme pairs a fill color with an optional background color.
// An empty background means transparent.
type Theme struct {
	Name       string `yaml:"name"`
	Fill       string `yaml:"fill"`
	Background string `yaml:"background,omitempty"`
}

// LetterMark describes the single glyph favicon generated alongside the
// themed icon favicons.
type LetterMark struct {
	Char       string `yaml:"char"`
	Fill       string `yaml:"fill"`
	Background string `yaml:"background,omitempty"`
}

// Config holds the full brand definition. It is treated as immutable once
// handed to a Renderer.
type Config struct {
	Text        string     `yaml:"text"`
	FontSource  string     `yaml:"font"`
	FontFamily  string     `yaml:"font_family"`
	Geometry    Geometry   `yaml:"geometry"`
	Themes      []Theme    `yaml:"themes"`
	Letter      LetterMark `yaml:"letter"`
	IconSizes   []int      `yaml:"icon_sizes"`
	IcoSizes    []int      `yaml:"ico_sizes"`
	ExportSizes []int      `yaml:"export_sizes"`
}

// DefaultConfig returns the built-in brand definition.
func DefaultConfig() *Config {
	return &Config{
		Text:       "bare",
		FontFamily: `Outfit, 'Outfit Variable', sans-serif`,
		Geometry: Geometry{
			Base:             64,
			RectWidth:        22,
			RectHeightTop:    14,
			RectHeightBottom: 18,
			Radius:           6,
			MarginX:          8,
			MarginY:          8,
			ColGap:           6,
			RowGap:           8,
		},
		Themes: []Theme{
			{Name: "light", Fill: "#000000"},
			{Name: "dark", Fill: "#FFFFFF"},
		},
		Letter: LetterMark{Char: "b", Fill: "#715B64"},
		// 1x, 2x, 3x scales.
		IconSizes: []int{256, 512, 768},
		// The ICO directory maxes out at 256px per entry.
		IcoSizes:    []int{256, 128, 64, 32, 16},
		ExportSizes: []int{512, 256, 128, 64, 32, 16},
	}
}

// LoadConfig reads a YAML brand definition and overlays it on the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse the config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Text == "" {
		return fmt.Errorf("the brand text cannot be empty")
	}
	if c.Letter.Char == "" {
		return fmt.Errorf("the letter mark glyph cannot be empty")
	}
	if c.Geometry.Base <= 0 {
		return fmt.Errorf("the artboard base size must be positive, got %d", c.Geometry.Base)
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("at least one theme is required")
	}
	for _, size := range c.IcoSizes {
		if size < 1 || size > 256 {
			return fmt.Errorf("favicon size %d is outside the 1-256 range the ICO format supports", size)
		}
	}
	return nil
}

// Colors resolves the theme's hex values to drawable colors.
// A nil background means transparent.
func (t Theme) Colors() (fill, bg color.Color, err error) {
	fill, bg, err = resolveColors(t.Fill, t.Background)
	if err != nil {
		err = fmt.Errorf("theme %q: %w", t.Name, err)
	}
	return fill, bg, err
}

// Colors resolves the letter mark's hex values to drawable colors.
func (l LetterMark) Colors() (fill, bg color.Color, err error) {
	fill, bg, err = resolveColors(l.Fill, l.Background)
	if err != nil {
		err = fmt.Errorf("letter mark: %w", err)
	}
	return fill, bg, err
}

func resolveColors(fillHex, bgHex string) (color.Color, color.Color, error) {
	fill, err := utils.ParseHexColor(fillHex)
	if err != nil {
		return nil, nil, err
	}
	if bgHex == "" {
		return fill, nil, nil
	}
	bg, err := utils.ParseHexColor(bgHex)
	if err != nil {
		return nil, nil, err
	}
	return fill, bg, nil
}

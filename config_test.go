package brandgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.validate())
	assert.Equal("bare", cfg.Text)
	assert.Equal(64, cfg.Geometry.Base)
	assert.Equal([]int{256, 128, 64, 32, 16}, cfg.IcoSizes)
	assert.Len(cfg.Themes, 2)
	assert.Equal("light", cfg.Themes[0].Name)
	assert.Empty(cfg.Themes[0].Background)
}

func TestConfig_LoadOverlaysDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "brand.yaml")
	data := []byte(`
text: acme
themes:
  - name: mono
    fill: "#112233"
    background: "#FFFFFF"
`)
	assert.NoError(os.WriteFile(path, data, 0644))

	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal("acme", cfg.Text)
	assert.Equal([]Theme{{Name: "mono", Fill: "#112233", Background: "#FFFFFF"}}, cfg.Themes)

	// Untouched sections keep their defaults.
	assert.Equal(64, cfg.Geometry.Base)
	assert.Equal(22, cfg.Geometry.RectWidth)
	assert.Equal([]int{256, 512, 768}, cfg.IconSizes)
}

func TestConfig_LoadRejectsInvalidDefinitions(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "brand.yaml")
	assert.NoError(os.WriteFile(path, []byte("ico_sizes: [300]"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(err, "300")

	assert.NoError(os.WriteFile(path, []byte(`text: ""`), 0644))
	_, err = LoadConfig(path)
	assert.Error(err)
}

func TestTheme_Colors(t *testing.T) {
	assert := assert.New(t)

	fill, bg, err := Theme{Name: "light", Fill: "#000000"}.Colors()
	assert.NoError(err)
	assert.NotNil(fill)
	assert.Nil(bg, "an empty background means transparent")

	_, _, err = Theme{Name: "broken", Fill: "nope"}.Colors()
	assert.ErrorContains(err, "broken")
}

func TestGeometry_Scale(t *testing.T) {
	g := DefaultConfig().Geometry

	// Identity at the base size, linear beyond it.
	assert.Equal(t, 22, g.Scale(22, 64))
	assert.Equal(t, 44, g.Scale(22, 128))
	assert.Equal(t, 88, g.Scale(22, 256))
	assert.Equal(t, 3, g.Scale(6, 32))
}

func TestGeometry_IconRects(t *testing.T) {
	assert := assert.New(t)
	g := DefaultConfig().Geometry

	rects := g.IconRects(g.Base)
	assert.Equal([4]Rect{
		{8, 8, 22, 14, 6},
		{36, 8, 22, 14, 6},
		{8, 30, 22, 18, 6},
		{36, 30, 22, 18, 6},
	}, rects)

	// Doubling the target size doubles every coordinate.
	doubled := g.IconRects(g.Base * 2)
	for i := range rects {
		assert.Equal(rects[i].X*2, doubled[i].X)
		assert.Equal(rects[i].Y*2, doubled[i].Y)
		assert.Equal(rects[i].W*2, doubled[i].W)
		assert.Equal(rects[i].H*2, doubled[i].H)
		assert.Equal(rects[i].Radius*2, doubled[i].Radius)
	}
}

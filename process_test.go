package brandgen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_ProcessWritesFullAssetSet(t *testing.T) {
	assert := assert.New(t)

	gen, err := NewGenerator(DefaultConfig())
	assert.NoError(err)

	outDir := t.TempDir()
	assert.NoError(gen.Process(outDir))

	var expected []string
	for _, theme := range []string{"light", "dark"} {
		expected = append(expected,
			fmt.Sprintf("icon-%s.svg", theme),
			fmt.Sprintf("wordmark-%s.svg", theme),
			fmt.Sprintf("logo-lockup-%s.svg", theme),
			fmt.Sprintf("favicon-%s.ico", theme),
		)
		for scale := 1; scale <= 3; scale++ {
			expected = append(expected,
				fmt.Sprintf("icon-%s@%dx.png", theme, scale),
				fmt.Sprintf("logo-lockup-%s@%dx.png", theme, scale),
			)
		}
		for _, size := range []int{512, 256, 128, 64, 32, 16} {
			expected = append(expected, fmt.Sprintf("favicon-%s-%d.png", theme, size))
		}
	}
	expected = append(expected, "favicon.ico", "favicon-32.png")

	for _, name := range expected {
		assert.FileExists(filepath.Join(outDir, name))
	}
}

func TestGenerator_PNGScales(t *testing.T) {
	assert := assert.New(t)

	gen, err := NewGenerator(DefaultConfig())
	assert.NoError(err)

	outDir := t.TempDir()
	assert.NoError(gen.WritePNGs(outDir))

	for scale, size := range map[int]int{1: 256, 2: 512, 3: 768} {
		data, err := os.ReadFile(filepath.Join(outDir, fmt.Sprintf("icon-light@%dx.png", scale)))
		assert.NoError(err)

		img, err := png.Decode(bytes.NewReader(data))
		assert.NoError(err)
		assert.Equal(size, img.Bounds().Dx())
		assert.Equal(size, img.Bounds().Dy())
	}
}

func TestGenerator_FaviconContainers(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	gen, err := NewGenerator(cfg)
	assert.NoError(err)

	outDir := t.TempDir()
	assert.NoError(gen.WriteFavicons(outDir))

	for _, name := range []string{"favicon-light.ico", "favicon-dark.ico", "favicon.ico"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		assert.NoError(err)

		assert.Equal(uint16(1), binary.LittleEndian.Uint16(data[2:4]), "%s type field", name)
		count := int(binary.LittleEndian.Uint16(data[4:6]))
		assert.Equal(len(cfg.IcoSizes), count, "%s entry count", name)

		// The 256px entry encodes its dimensions as byte 0.
		assert.Equal(byte(0), data[6], "%s width byte", name)
		assert.Equal(byte(0), data[7], "%s height byte", name)
	}
}

func TestGenerator_ProcessIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	gen, err := NewGenerator(DefaultConfig())
	assert.NoError(err)

	first, second := t.TempDir(), t.TempDir()
	assert.NoError(gen.Process(first))
	assert.NoError(gen.Process(second))

	a, err := os.ReadFile(filepath.Join(first, "favicon-light.ico"))
	assert.NoError(err)
	b, err := os.ReadFile(filepath.Join(second, "favicon-light.ico"))
	assert.NoError(err)
	assert.Equal(a, b)
}

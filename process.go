package brandgen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/baremoney/brandgen/ico"
)

// Generator renders the complete brand asset set into an output directory.
// It is the only part of the package that touches the filesystem.
type Generator struct {
	cfg *Config
	r   *Renderer
}

// NewGenerator builds a Generator from the brand definition.
func NewGenerator(cfg *Config) (*Generator, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, r: r}, nil
}

// Process renders every asset group: the vector set, the raster set and the
// favicons, for each configured theme.
func (gen *Generator) Process(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrap(err, "creating the output directory")
	}
	if err := gen.WriteSVGs(outDir); err != nil {
		return err
	}
	if err := gen.WritePNGs(outDir); err != nil {
		return err
	}
	return gen.WriteFavicons(outDir)
}

// WriteSVGs writes the icon, wordmark and lockup vector files per theme.
func (gen *Generator) WriteSVGs(outDir string) error {
	var buf bytes.Buffer
	for _, t := range gen.cfg.Themes {
		buf.Reset()
		gen.r.IconSVG(&buf, t)
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("icon-%s.svg", t.Name)), buf.Bytes()); err != nil {
			return err
		}

		buf.Reset()
		gen.r.WordmarkSVG(&buf, t)
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("wordmark-%s.svg", t.Name)), buf.Bytes()); err != nil {
			return err
		}

		buf.Reset()
		gen.r.LockupSVG(&buf, t)
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("logo-lockup-%s.svg", t.Name)), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// WritePNGs writes the icon and lockup rasters at each configured scale.
func (gen *Generator) WritePNGs(outDir string) error {
	for _, t := range gen.cfg.Themes {
		fill, bg, err := t.Colors()
		if err != nil {
			return err
		}
		for i, size := range gen.cfg.IconSizes {
			scale := i + 1
			icon := filepath.Join(outDir, fmt.Sprintf("icon-%s@%dx.png", t.Name, scale))
			if err := savePNG(icon, gen.r.Icon(size, fill, bg)); err != nil {
				return err
			}
			lockup := filepath.Join(outDir, fmt.Sprintf("logo-lockup-%s@%dx.png", t.Name, scale))
			if err := savePNG(lockup, gen.r.Lockup(size, fill, bg)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFavicons writes a multi-resolution ICO per theme, the per-size favicon
// PNG exports, and the letter mark favicon with its PNG fallback.
func (gen *Generator) WriteFavicons(outDir string) error {
	for _, t := range gen.cfg.Themes {
		fill, bg, err := t.Colors()
		if err != nil {
			return err
		}

		// The geometry scales cleanly, so each ICO cut is rendered at its
		// native size rather than downsampled from a master.
		images := make([]image.Image, 0, len(gen.cfg.IcoSizes))
		for _, size := range gen.cfg.IcoSizes {
			images = append(images, imgToNRGBA(gen.r.Icon(size, fill, bg)))
		}

		var buf bytes.Buffer
		if err := ico.Encode(&buf, images); err != nil {
			return errors.Wrapf(err, "packing favicon-%s.ico", t.Name)
		}
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("favicon-%s.ico", t.Name)), buf.Bytes()); err != nil {
			return err
		}

		for _, size := range gen.cfg.ExportSizes {
			path := filepath.Join(outDir, fmt.Sprintf("favicon-%s-%d.png", t.Name, size))
			if err := savePNG(path, gen.r.Icon(size, fill, bg)); err != nil {
				return err
			}
		}
	}
	return gen.writeLetterFavicon(outDir)
}

// writeLetterFavicon writes the single glyph favicon.ico plus a 32px PNG
// fallback. Unlike the rect glyph, tiny text cuts hint poorly, so the small
// sizes are downscaled from the largest master render instead.
func (gen *Generator) writeLetterFavicon(outDir string) error {
	fill, bg, err := gen.cfg.Letter.Colors()
	if err != nil {
		return err
	}

	masterSize := gen.cfg.IcoSizes[0]
	for _, size := range gen.cfg.IcoSizes[1:] {
		masterSize = max(masterSize, size)
	}
	master := gen.r.LetterIcon(masterSize, fill, bg)

	images := make([]image.Image, 0, len(gen.cfg.IcoSizes))
	for _, size := range gen.cfg.IcoSizes {
		if size == masterSize {
			images = append(images, master)
			continue
		}
		images = append(images, imaging.Resize(master, size, size, imaging.Lanczos))
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, images); err != nil {
		return errors.Wrap(err, "packing favicon.ico")
	}
	if err := writeFile(filepath.Join(outDir, "favicon.ico"), buf.Bytes()); err != nil {
		return err
	}

	fallback := imaging.Resize(master, 32, 32, imaging.Lanczos)
	return savePNG(filepath.Join(outDir, "favicon-32.png"), fallback)
}

func savePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, imgToNRGBA(img)); err != nil {
		return errors.Wrapf(err, "encoding %s", filepath.Base(path))
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", filepath.Base(path))
	}
	return nil
}

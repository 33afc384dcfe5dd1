// Package ico assembles square raster images into a multi-resolution ICO
// container, embedding each image as a PNG-compressed payload.
//
// The container layout is a 6-byte file header, followed by one 16-byte
// directory entry per image, followed by the payloads concatenated in input
// order. All multi-byte fields are little-endian.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// MaxDim is the largest image dimension the directory entry can describe.
const MaxDim = 256

var (
	// ErrEmptyInput is returned when no images are supplied. A count=0
	// container is technically tolerated by the format but degenerate.
	ErrEmptyInput = errors.New("ico: at least one image is required")

	// ErrInvalidImage is returned when an image is non-square or exceeds
	// the 256px format ceiling in either dimension.
	ErrInvalidImage = errors.New("ico: images must be square and at most 256x256 pixels")
)

type fileHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type dirEntry struct {
	Width    uint8
	Height   uint8
	Colors   uint8
	Reserved uint8
	Planes   uint16
	BitDepth uint16
	Size     uint32
	Offset   uint32
}

// Encode writes the images as a single ICO container. The input is validated
// and every payload is compressed before any byte is emitted, so on error no
// partial output reaches the writer.
func Encode(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return ErrEmptyInput
	}
	for _, img := range images {
		b := img.Bounds()
		if b.Dx() < 1 || b.Dx() != b.Dy() || b.Dx() > MaxDim {
			return fmt.Errorf("%w, got %dx%d", ErrInvalidImage, b.Dx(), b.Dy())
		}
	}

	payloads := make([][]byte, len(images))
	for i, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("ico: could not compress payload %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	out := new(bytes.Buffer)
	header := fileHeader{Type: 1, Count: uint16(len(images))}
	if err := binary.Write(out, binary.LittleEndian, header); err != nil {
		return err
	}

	// The first payload starts right after the directory; every subsequent
	// offset accumulates the preceding payload lengths.
	offset := uint32(6 + 16*len(images))
	for i, img := range images {
		b := img.Bounds()
		entry := dirEntry{
			Width:    dimByte(b.Dx()),
			Height:   dimByte(b.Dy()),
			Planes:   1,
			BitDepth: 32,
			Size:     uint32(len(payloads[i])),
			Offset:   offset,
		}
		if err := binary.Write(out, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += entry.Size
	}
	for _, p := range payloads {
		out.Write(p)
	}

	_, err := w.Write(out.Bytes())
	return err
}

// dimByte encodes an image dimension as a directory byte.
// The value 256 wraps to 0, a quirk strict ICO parsers rely on.
func dimByte(v int) uint8 {
	if v == MaxDim {
		return 0
	}
	return uint8(v)
}

// Package export writes generated terrain to image files and JSON metadata.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/tiff"

	"terrasim/internal/core"
)

// Heightmap16 maps f onto the full 16-bit range using its own min and max.
// A constant field becomes mid grey. f is not modified.
func Heightmap16(f *core.HeightField) *image.Gray16 {
	n := f.Size()
	return Gray16(n, n, f.Data())
}

// Gray16 normalizes a w*h row-major height buffer into a 16-bit image.
func Gray16(w, h int, data []float32) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, w, h))
	if len(data) < w*h || w*h == 0 {
		return img
	}
	lo, hi := data[0], data[0]
	for _, v := range data[:w*h] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint16(0x8000)
			if span > 0 {
				v = uint16((data[y*w+x] - lo) / span * 0xffff)
			}
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	return img
}

// WritePNG encodes img as PNG at path.
func WritePNG(path string, img image.Image) error {
	return writeFile(path, func(f *os.File) error { return png.Encode(f, img) })
}

// WriteTIFF encodes img as a deflate-compressed TIFF at path.
func WriteTIFF(path string, img image.Image) error {
	return writeFile(path, func(f *os.File) error {
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	})
}

// WriteJSON writes v as indented JSON at path.
func WriteJSON(path string, v any) error {
	return writeFile(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func writeFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

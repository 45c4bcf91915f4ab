package export

import (
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/tiff"

	"terrasim/internal/atlas"
	"terrasim/internal/biome"
	"terrasim/internal/core"
	"terrasim/internal/hydrology"
)

func ramp(n int) *core.HeightField {
	f := core.New(n)
	for i := range f.Data() {
		f.Data()[i] = float32(i) - 3
	}
	return f
}

func TestHeightmap16Range(t *testing.T) {
	f := ramp(4)
	img := Heightmap16(f)
	if got := img.Gray16At(0, 0).Y; got != 0 {
		t.Fatalf("min = %d, want 0", got)
	}
	if got := img.Gray16At(3, 3).Y; got != 0xffff {
		t.Fatalf("max = %d, want 65535", got)
	}
	if f.At(0, 0) != -3 {
		t.Fatalf("source field was modified")
	}
	flat := Heightmap16(core.NewFilled(3, 2))
	if got := flat.Gray16At(1, 1).Y; got != 0x8000 {
		t.Fatalf("constant field = %d, want mid grey", got)
	}
}

func TestWritePNGAndTIFF(t *testing.T) {
	dir := t.TempDir()
	img := Heightmap16(ramp(8))

	pngPath := filepath.Join(dir, "h.png")
	if err := WritePNG(pngPath, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	tiffPath := filepath.Join(dir, "h.tiff")
	if err := WriteTIFF(tiffPath, img); err != nil {
		t.Fatalf("WriteTIFF: %v", err)
	}

	for path, decode := range map[string]func(*os.File) (image.Image, error){
		pngPath:  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		tiffPath: func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	} {
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		got, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if got.Bounds() != img.Bounds() {
			t.Fatalf("%s bounds = %v", path, got.Bounds())
		}
		r, _, _, _ := got.At(7, 7).RGBA()
		if r != 0xffff {
			t.Fatalf("%s max pixel = %d", path, r)
		}
	}
}

func TestWriteFailsOnMissingDirectory(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "nope", "h.png"), Heightmap16(ramp(2)))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestWriteMeta(t *testing.T) {
	f := ramp(4)
	water := &hydrology.Features{Size: 4, Water: make([]float32, 16), River: make([]float32, 16)}
	for i := 0; i < 4; i++ {
		water.Water[i] = 1
	}
	a, err := atlas.Pack(f, 1, 2, 2, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	m := NewMeta(f, 9, biome.Desert, 250, water).
		WithAtlas(a).
		WithTimings([]core.StageTiming{{Name: "ridge", Duration: 1500 * time.Microsecond}})

	path := filepath.Join(t.TempDir(), "meta.json")
	if err := WriteMeta(path, m); err != nil {
		t.Fatalf("WriteMeta: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["biome"] != "desert" || decoded["height_scale"] != 600.0 {
		t.Fatalf("decoded = %v", decoded)
	}
	if decoded["water_coverage"] != 0.25 {
		t.Fatalf("water coverage = %v", decoded["water_coverage"])
	}
	if rects, ok := decoded["rects"].([]any); !ok || len(rects) != 2 {
		t.Fatalf("rects = %v", decoded["rects"])
	}
	if timings, ok := decoded["timings"].(map[string]any); !ok || timings["ridge"] != "1.5ms" {
		t.Fatalf("timings = %v", decoded["timings"])
	}
}

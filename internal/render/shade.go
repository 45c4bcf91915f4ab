package render

import (
	"image"
	"image/color"
	"math"

	"terrasim/internal/core"
	"terrasim/internal/hydrology"
)

// Options selects which layers Shade draws.
type Options struct {
	// SeaLevel is in field units. Cells at or below it use the sea ramp.
	SeaLevel  float32
	Rivers    bool
	Beaches   bool
	Hillshade bool
}

// DefaultOptions draws rivers and hillshading at the given sea level.
func DefaultOptions(seaLevel float32) Options {
	return Options{SeaLevel: seaLevel, Rivers: true, Hillshade: true}
}

// Shade renders f into a new RGBA image, one pixel per cell.
func Shade(f *core.HeightField, water *hydrology.Features, opts Options) *image.RGBA {
	n := f.Size()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	FillRGBA(img.Pix, f, water, opts)
	return img
}

// FillRGBA writes 4*size*size bytes of shaded terrain into buf. Water
// features whose size does not match f are ignored.
func FillRGBA(buf []byte, f *core.HeightField, water *hydrology.Features, opts Options) {
	n := f.Size()
	if len(buf) < 4*n*n || n == 0 {
		return
	}
	if water != nil && water.Size != n {
		water = nil
	}
	lo, hi := f.MinMax()
	sea := opts.SeaLevel
	landSpan := float64(hi - max(sea, lo))
	seaSpan := float64(min(sea, hi) - lo)

	core.ForRows(n, func(y int) {
		for x := 0; x < n; x++ {
			idx := y*n + x
			h := f.At(x, y)

			var col color.RGBA
			if h <= sea {
				t := 1.0
				if seaSpan > 0 {
					t = float64(h-lo) / seaSpan
				}
				col = SeaColor(t)
			} else {
				var t float64
				if landSpan > 0 {
					t = float64(h-max(sea, lo)) / landSpan
				}
				col = LandColor(t)
				if opts.Hillshade {
					col = scaleColor(col, hillshade(f, x, y, hi-lo))
				}
				if water != nil {
					if opts.Beaches {
						col = blendColors(col, beachTint, 0.5*float64(water.Beach[idx]))
					}
					if opts.Rivers {
						col = blendColors(col, riverTint, float64(water.River[idx]))
					}
				}
			}

			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	})
}

// hillshade lights the cell from the north-west. Flat ground returns 1.
func hillshade(f *core.HeightField, x, y int, span float32) float64 {
	if span <= 0 {
		return 1
	}
	n := float64(f.Size())
	dx := float64(f.At(x+1, y)-f.At(x-1, y)) / float64(span) * n * 0.25
	dy := float64(f.At(x, y+1)-f.At(x, y-1)) / float64(span) * n * 0.25
	// Light direction (-1, -1, 1) normalized.
	const l = 0.5773502691896258
	nz := 1 / math.Sqrt(dx*dx+dy*dy+1)
	lambert := (dx*l + dy*l + l) * nz
	return 0.6 + 0.4*clamp01(lambert)/l
}

// MaskRGBA renders a [0,1] mask as a translucent tint. Zero cells are fully
// transparent; stronger cells get both more alpha and a brighter tint.
func MaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	if len(buf) < 4*len(mask) {
		return
	}
	for i, m := range mask {
		base := i * 4
		intensity := clamp01(float64(m))
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleColorComponent(tint.R, glow)
		buf[base+1] = scaleColorComponent(tint.G, glow)
		buf[base+2] = scaleColorComponent(tint.B, glow)
		buf[base+3] = alpha
	}
}

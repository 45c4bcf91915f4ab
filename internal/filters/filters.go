// Package filters holds local convolution-style operators applied to height
// fields between generation steps.
package filters

import (
	"math"

	"terrasim/internal/core"
)

// SlopeBlurParams controls the slope-adaptive box blur.
type SlopeBlurParams struct {
	Radius     float32
	K          float32
	Iterations int
}

// DuneParams describes a directional sinusoidal ripple.
type DuneParams struct {
	Scale     float32
	Amplitude float32
	// Direction is the ripple heading in radians.
	Direction float32
}

// slopeAt estimates gradient magnitude with central differences.
func slopeAt(f *core.HeightField, x, y int) float32 {
	dx := (f.At(x+1, y) - f.At(x-1, y)) * 0.5
	dy := (f.At(x, y+1) - f.At(x, y-1)) * 0.5
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// blurRadius shrinks the base radius on steep cells so ridges survive.
func blurRadius(p SlopeBlurParams, slope float32) int {
	r := p.Radius * (1 - p.K*min(slope*10, 1))
	return int(max(r, 1))
}

// SlopeBlur averages each cell over a box whose radius narrows with local
// slope. Every iteration reads the previous iteration's state only.
func SlopeBlur(f *core.HeightField, p SlopeBlurParams) {
	n := f.Size()
	if n == 0 || p.Iterations <= 0 {
		return
	}
	tmp := make([]float32, n*n)

	for it := 0; it < p.Iterations; it++ {
		core.ForRows(n, func(y int) {
			for x := 0; x < n; x++ {
				r := blurRadius(p, slopeAt(f, x, y))
				var sum float32
				cnt := 0
				for j := -r; j <= r; j++ {
					for i := -r; i <= r; i++ {
						sum += f.At(x+i, y+j)
						cnt++
					}
				}
				tmp[y*n+x] = sum / float32(cnt)
			}
		})
		copy(f.Data(), tmp)
	}
}

// RidgeSharpen applies a single unsharp-mask pass: each cell loses strength
// times its 4-neighbour Laplacian.
func RidgeSharpen(f *core.HeightField, strength float32) {
	n := f.Size()
	if n == 0 {
		return
	}
	out := make([]float32, n*n)
	core.ForRows(n, func(y int) {
		for x := 0; x < n; x++ {
			c := f.At(x, y)
			lap := f.At(x-1, y) + f.At(x+1, y) + f.At(x, y-1) + f.At(x, y+1) - 4*c
			out[y*n+x] = c - strength*lap
		}
	})
	copy(f.Data(), out)
}

// Dunes adds a sinusoidal ripple aligned with the configured direction.
func Dunes(f *core.HeightField, p DuneParams) {
	n := f.Size()
	if n == 0 {
		return
	}
	dx := float32(math.Cos(float64(p.Direction)))
	dy := float32(math.Sin(float64(p.Direction)))
	size := float32(n)
	data := f.Data()
	core.ForRows(n, func(y int) {
		for x := 0; x < n; x++ {
			u := (float32(x)*dx + float32(y)*dy) / size
			w := float32(math.Sin(float64(u*p.Scale*math.Pi*2))) * p.Amplitude
			data[y*n+x] += w
		}
	})
}

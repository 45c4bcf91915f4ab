package hydrology

import (
	"math"

	"terrasim/internal/core"
)

const (
	bankFraction  = 0.3
	bankStrength  = 0.3
	dilateTrigger = 0.5
	dilateRadius  = 1.5
	dilateGain    = 0.6
)

// RiverMask turns flow accumulation into a river strength map in [0, 1].
// Flow is normalized by its maximum. Cells above threshold are rivers scaled
// from [threshold,1] to [0,1]; cells above 0.3*threshold become weak banks.
// Strong interior river cells then bleed into their 3x3 neighbourhood with
// linear falloff, never weakening an existing value.
func RiverMask(f *core.HeightField, flow []float32, threshold float32) []float32 {
	n := f.Size()
	mask := make([]float32, n*n)
	maxFlow := maxOf(flow)
	if maxFlow == 0 || len(flow) != len(mask) {
		return mask
	}
	threshold = min(max(threshold, 0), 1)

	bank := threshold * bankFraction
	for i, fl := range flow {
		nf := fl / maxFlow
		switch {
		case nf > threshold:
			mask[i] = min((nf-threshold)/(1-threshold), 1)
		case nf > bank:
			mask[i] = (nf - bank) / (threshold - bank) * bankStrength
		}
	}

	out := append([]float32(nil), mask...)
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			v := mask[y*n+x]
			if v <= dilateTrigger {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
					if d > dilateRadius {
						continue
					}
					nIdx := (y+dy)*n + (x + dx)
					out[nIdx] = max(out[nIdx], v*dilateGain*(1-d/dilateRadius))
				}
			}
		}
	}
	return out
}

// BeachMask marks cells at or below seaLevel as 1 and gives dry cells within
// width of water a linear falloff 1 - d/width. The window is scanned row by
// row and the first wet cell found decides the value, which is not always
// the nearest one.
func BeachMask(f *core.HeightField, seaLevel, width float32) []float32 {
	n := f.Size()
	data := f.Data()
	mask := make([]float32, n*n)
	wet := make([]bool, n*n)
	for i, h := range data {
		wet[i] = h <= seaLevel
	}

	reach := int(math.Ceil(float64(width)))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := y*n + x
			if wet[idx] {
				mask[idx] = 1
				continue
			}
			mask[idx] = shoreFalloff(wet, n, x, y, reach, width)
		}
	}
	return mask
}

func shoreFalloff(wet []bool, n, x, y, reach int, width float32) float32 {
	for dy := -reach; dy <= reach; dy++ {
		ny := y + dy
		if ny < 0 || ny >= n {
			continue
		}
		for dx := -reach; dx <= reach; dx++ {
			nx := x + dx
			if nx < 0 || nx >= n || !wet[ny*n+nx] {
				continue
			}
			d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if d <= width {
				return max(1-d/width, 0)
			}
		}
	}
	return 0
}

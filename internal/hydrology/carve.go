package hydrology

import (
	"math"

	"terrasim/internal/core"
)

// Hardness estimates how resistant each cell is to carving: steep or high
// ground is harder. Values are in [0, 1].
func Hardness(f *core.HeightField) []float32 {
	n := f.Size()
	data := f.Data()
	hard := make([]float32, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			h := data[y*n+x]
			var slope float32
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					d := h - f.At(x+dx, y+dy)
					slope += float32(math.Abs(float64(d)))
				}
			}
			slope /= 8
			hard[y*n+x] = min(slope*3+max(h+0.3, 0)*0.4, 1)
		}
	}
	return hard
}

func carveTier(hardness float32) float32 {
	switch {
	case hardness > 0.7:
		return 2
	case hardness > 0.4:
		return 1.2
	default:
		return 0.4
	}
}

// CarveRivers lowers every cell with a positive river value. Hard rock cuts
// deeper channels than soft sediment. Heights never drop below zero.
func CarveRivers(f *core.HeightField, river []float32, depth float32) {
	data := f.Data()
	if len(river) != len(data) {
		return
	}
	hard := Hardness(f)
	for i, strength := range river {
		if strength <= 0 {
			continue
		}
		cut := carveTier(hard[i]) * depth * strength * 0.7
		data[i] = max(data[i]-cut, 0)
	}
}

// CoastalErosion wears down shore cells by rate*beach, keeping at least 30%
// of the cell height.
func CoastalErosion(f *core.HeightField, beach []float32, rate float32) {
	data := f.Data()
	if len(beach) != len(data) {
		return
	}
	for i, b := range beach {
		if b <= 0 {
			continue
		}
		h := data[i]
		data[i] = max(h-rate*b, h*0.3)
	}
}

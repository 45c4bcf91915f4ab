package erosion

import (
	"math"

	"terrasim/internal/core"
	"terrasim/internal/hydrology"
)

// Wind strips exposed interior cells: a cell standing up to 0.1 below its
// highest neighbour or above it loses strength*exposure*0.01 per sweep.
// Sweeps update the field in place, so later cells see earlier results.
// The neighbour maximum starts from zero, so cells surrounded by negative
// heights are measured against sea level.
func Wind(f *core.HeightField, strength float32, iterations int, removed []float32) {
	n := f.Size()
	if n < 3 {
		return
	}
	data := f.Data()
	for it := 0; it < iterations; it++ {
		for y := 1; y < n-1; y++ {
			for x := 1; x < n-1; x++ {
				idx := y*n + x
				var highest float32
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						highest = max(highest, data[(y+dy)*n+x+dx])
					}
				}
				exposure := max(data[idx]-highest+0.1, 0)
				loss := strength * exposure * 0.01
				if loss > 0 {
					data[idx] -= loss
					removed[idx] += loss
				}
			}
		}
	}
}

// Hydraulic erodes interior cells in proportion to normalized flow, river
// strength, local slope and rain. Thirty percent of the removed material is
// dropped on the steepest lower neighbour; the rest leaves the system.
// The sweep is in place and the water features are not refreshed between
// iterations.
func Hydraulic(f *core.HeightField, water *hydrology.Features, rain float32, iterations int, removed, deposited []float32) {
	n := f.Size()
	if n < 3 || water == nil {
		return
	}
	maxFlow := water.MaxFlow()
	if maxFlow == 0 {
		return
	}
	data := f.Data()
	for it := 0; it < iterations; it++ {
		for y := 1; y < n-1; y++ {
			for x := 1; x < n-1; x++ {
				idx := y*n + x
				flow := water.Flow[idx] / maxFlow
				river := water.River[idx]

				var total float32
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						d := data[idx] - data[(y+dy)*n+x+dx]
						total += float32(math.Abs(float64(d)))
					}
				}
				slope := total / 8

				loss := flow*slope*rain*0.02 + river*slope*rain*0.05
				if loss <= 0 {
					continue
				}
				data[idx] -= loss
				removed[idx] += loss

				if target, ok := steepestLower(data, n, x, y); ok {
					drop := loss * 0.3
					data[target] += drop
					deposited[target] += drop
				}
			}
		}
	}
}

// steepestLower finds the 8-neighbour with the largest plain height drop
// from an interior cell.
func steepestLower(data []float32, n, x, y int) (int, bool) {
	here := data[y*n+x]
	var steepest float32
	target, ok := 0, false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nIdx := (y+dy)*n + x + dx
			if drop := here - data[nIdx]; drop > steepest {
				steepest = drop
				target, ok = nIdx, true
			}
		}
	}
	return target, ok
}

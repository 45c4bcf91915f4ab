package filters

import "terrasim/internal/core"

// DefaultThermalRate is the share of over-talus height difference moved per
// unstable pair by the stand-alone thermal filter.
const DefaultThermalRate = 0.1

// Thermal relaxes slopes steeper than talus. For every interior cell and
// each of its eight neighbours lower by more than talus, half of
// (diff-talus)*rate moves from the cell to that neighbour. Each iteration
// reads the state left by the previous one. The returned slice holds the
// material removed from each cell over all iterations.
func Thermal(f *core.HeightField, iterations int, talus, rate float32) []float32 {
	n := f.Size()
	removed := make([]float32, n*n)
	if n < 3 || iterations <= 0 {
		return removed
	}
	data := f.Data()
	next := make([]float32, n*n)

	for it := 0; it < iterations; it++ {
		copy(next, data)
		for y := 1; y < n-1; y++ {
			for x := 1; x < n-1; x++ {
				idx := y*n + x
				h := data[idx]
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nIdx := (y+dy)*n + (x + dx)
						diff := h - data[nIdx]
						if diff <= talus {
							continue
						}
						moved := (diff - talus) * rate * 0.5
						next[idx] -= moved
						next[nIdx] += moved
						removed[idx] += moved
					}
				}
			}
		}
		copy(data, next)
	}
	return removed
}

// Smooth blends every cell toward its clamped 3x3 box average by strength.
func Smooth(f *core.HeightField, iterations int, strength float32) {
	n := f.Size()
	if n == 0 || iterations <= 0 {
		return
	}
	tmp := make([]float32, n*n)
	for it := 0; it < iterations; it++ {
		core.ForRows(n, func(y int) {
			for x := 0; x < n; x++ {
				var sum float32
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += f.At(x+dx, y+dy)
					}
				}
				avg := sum / 9
				c := f.At(x, y)
				tmp[y*n+x] = c + (avg-c)*strength
			}
		})
		copy(f.Data(), tmp)
	}
}

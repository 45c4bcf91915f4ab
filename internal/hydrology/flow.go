package hydrology

import (
	"cmp"
	"math"
	"slices"

	"terrasim/internal/core"
)

// D8 neighbour offsets: N, NE, E, SE, S, SW, W, NW.
var (
	d8X = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	d8Y = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

var d8Dist = [8]float32{1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2}

// Downhill returns the index of the steepest strictly-downhill D8 neighbour
// of cell (x, y), measured as height drop over distance. The first direction
// found wins a tie. ok is false for pits and flats.
func Downhill(f *core.HeightField, x, y int) (idx int, ok bool) {
	n := f.Size()
	data := f.Data()
	here := data[y*n+x]
	var steepest float32
	for dir := 0; dir < 8; dir++ {
		nx := x + d8X[dir]
		ny := y + d8Y[dir]
		if nx < 0 || ny < 0 || nx >= n || ny >= n {
			continue
		}
		nIdx := ny*n + nx
		slope := (here - data[nIdx]) / d8Dist[dir]
		if slope > steepest {
			steepest = slope
			idx = nIdx
			ok = true
		}
	}
	return idx, ok
}

// FlowAccumulation seeds every cell with one unit of flow and routes it D8
// style, visiting cells from highest to lowest so each cell has received all
// of its upstream flow before passing it on. Pits keep what they collect.
func FlowAccumulation(f *core.HeightField) []float32 {
	n := f.Size()
	flow := make([]float32, n*n)
	if n == 0 {
		return flow
	}
	for i := range flow {
		flow[i] = 1
	}

	data := f.Data()
	order := make([]int, n*n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(data[b], data[a])
	})

	for _, idx := range order {
		if target, ok := Downhill(f, idx%n, idx/n); ok {
			flow[target] += flow[idx]
		}
	}
	return flow
}

package core

import "github.com/dgravesa/go-parallel/parallel"

// parallelRows is the grid height below which row sweeps stay on the calling
// goroutine.
const parallelRows = 128

// ForRows calls fn once per row in [0, rows). Large grids fan rows out across
// goroutines, so fn must only write cells of its own row and only read
// buffers that no other row writes during the sweep.
func ForRows(rows int, fn func(y int)) {
	if rows < parallelRows {
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	}
	parallel.For(rows, func(y, _ int) {
		fn(y)
	})
}

package core

import "math"

// HeightField stores a square grid of float32 elevations in row-major order.
type HeightField struct {
	size int
	data []float32
}

// New allocates a zero-filled field with the given side length. Negative
// sides and sides whose cell count overflows int yield an empty field.
func New(size int) *HeightField {
	if size < 0 || (size > 0 && (size*size)/size != size) {
		size = 0
	}
	return &HeightField{size: size, data: make([]float32, size*size)}
}

// NewFilled allocates a field with every cell set to fill.
func NewFilled(size int, fill float32) *HeightField {
	f := New(size)
	for i := range f.data {
		f.data[i] = fill
	}
	return f
}

// Size returns the side length of the grid.
func (f *HeightField) Size() int { return f.size }

// Data exposes the backing slice so callers can read/write values directly.
func (f *HeightField) Data() []float32 { return f.data }

// SetData copies values into the field. A length mismatch leaves the field
// untouched and reports false.
func (f *HeightField) SetData(values []float32) bool {
	if len(values) != len(f.data) {
		return false
	}
	copy(f.data, values)
	return true
}

// Index returns the linear slice index for coordinates (x, y).
func (f *HeightField) Index(x, y int) int { return y*f.size + x }

// Clamp pins the provided coordinates to the grid.
func (f *HeightField) Clamp(x, y int) (int, int) {
	last := f.size - 1
	if x < 0 {
		x = 0
	} else if x > last {
		x = last
	}
	if y < 0 {
		y = 0
	} else if y > last {
		y = last
	}
	return x, y
}

// At returns the elevation at (x, y), clamping out-of-range coordinates to
// the nearest edge. An empty field reads as zero.
func (f *HeightField) At(x, y int) float32 {
	if f.size == 0 {
		return 0
	}
	x, y = f.Clamp(x, y)
	return f.data[y*f.size+x]
}

// Set writes value at (x, y). Out-of-bounds writes are ignored.
func (f *HeightField) Set(x, y int, value float32) {
	if x < 0 || y < 0 || x >= f.size || y >= f.size {
		return
	}
	f.data[y*f.size+x] = value
}

// Clone returns a deep copy of the field.
func (f *HeightField) Clone() *HeightField {
	out := &HeightField{size: f.size, data: make([]float32, len(f.data))}
	copy(out.data, f.data)
	return out
}

// Resample returns a new field of side newSize, bilinearly interpolated from
// f. Target index i maps to source coordinate i*(old-1)/(new-1).
func (f *HeightField) Resample(newSize int) *HeightField {
	if newSize == f.size {
		return f.Clone()
	}
	out := New(newSize)
	n, m := f.size, out.size
	if n == 0 || m == 0 {
		return out
	}

	for j := 0; j < m; j++ {
		v := resampleCoord(j, n, m)
		y0 := int(v)
		y1 := min(y0+1, n-1)
		fy := v - float32(y0)

		for i := 0; i < m; i++ {
			u := resampleCoord(i, n, m)
			x0 := int(u)
			x1 := min(x0+1, n-1)
			fx := u - float32(x0)

			h00 := f.At(x0, y0)
			h10 := f.At(x1, y0)
			h01 := f.At(x0, y1)
			h11 := f.At(x1, y1)

			a := h00*(1-fx) + h10*fx
			b := h01*(1-fx) + h11*fx
			out.data[j*m+i] = a*(1-fy) + b*fy
		}
	}
	return out
}

// resampleCoord maps target index i of an m-wide grid onto an n-wide source.
func resampleCoord(i, n, m int) float32 {
	if m <= 1 {
		return 0
	}
	return float32(i*(n-1)) / float32(m-1)
}

// MinMax reports the smallest and largest elevation. Both are zero for an
// empty field.
func (f *HeightField) MinMax() (float32, float32) {
	if len(f.data) == 0 {
		return 0, 0
	}
	lo, hi := f.data[0], f.data[0]
	for _, v := range f.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Normalize linearly rescales the field into [0, 1] using its own min/max.
// Empty and constant fields are left unchanged.
func (f *HeightField) Normalize() {
	if len(f.data) == 0 {
		return
	}
	lo, hi := f.MinMax()
	span := hi - lo
	if span <= 0 || math.IsNaN(float64(span)) {
		return
	}
	for i, v := range f.data {
		f.data[i] = (v - lo) / span
	}
}

// Mean returns the average elevation, or zero for an empty field.
func (f *HeightField) Mean() float32 {
	if len(f.data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range f.data {
		sum += float64(v)
	}
	return float32(sum / float64(len(f.data)))
}

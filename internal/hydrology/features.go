// Package hydrology routes surface flow over a height field and derives the
// river, beach and water masks that go with it.
package hydrology

// Features is the matched set of water grids derived from one height field.
// All four slices have Size*Size entries. They describe the field as it was
// when they were computed and go stale on the next mutation.
type Features struct {
	Size int

	Water []float32
	River []float32
	Beach []float32
	Flow  []float32
}

// Clone returns an independent copy of the feature set.
func (f *Features) Clone() *Features {
	if f == nil {
		return nil
	}
	out := &Features{Size: f.Size}
	out.Water = append([]float32(nil), f.Water...)
	out.River = append([]float32(nil), f.River...)
	out.Beach = append([]float32(nil), f.Beach...)
	out.Flow = append([]float32(nil), f.Flow...)
	return out
}

// MaxFlow returns the largest flow accumulation value.
func (f *Features) MaxFlow() float32 {
	return maxOf(f.Flow)
}

// Coverage reports the share of cells whose mask value exceeds threshold.
func Coverage(mask []float32, threshold float32) float32 {
	if len(mask) == 0 {
		return 0
	}
	n := 0
	for _, v := range mask {
		if v > threshold {
			n++
		}
	}
	return float32(n) / float32(len(mask))
}

func maxOf(values []float32) float32 {
	var m float32
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns a terrain seed. Zero is skipped so callers can keep using it
// as the "pick one for me" sentinel.
func (r *RNG) Seed() uint32 {
	for {
		if s := r.r.Uint32(); s != 0 {
			return s
		}
	}
}

// Seeds returns n consecutive terrain seeds.
func (r *RNG) Seeds(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Seed()
	}
	return out
}

// Float32Range returns a value in [lo, hi).
func (r *RNG) Float32Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float32()*(hi-lo)
}

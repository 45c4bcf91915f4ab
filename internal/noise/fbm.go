// Package noise synthesizes fractal, domain-warped noise and stamps it
// additively onto height fields.
package noise

import "terrasim/internal/core"

// MaxOctaves caps the number of octaves FBM evaluates regardless of the
// requested count.
const MaxOctaves = 6

// FBMParams shapes a fractal Brownian motion stack.
type FBMParams struct {
	Amplitude  float32
	Frequency  float32
	Octaves    int
	Lacunarity float32
	Gain       float32
	Warp       float32
	Seed       uint32
}

// EffectiveOctaves returns the octave count after the MaxOctaves cap.
func (p FBMParams) EffectiveOctaves() int {
	if p.Octaves < 0 {
		return 0
	}
	return min(p.Octaves, MaxOctaves)
}

// Sample evaluates the raw octave sum at normalized coordinate (u, v). The
// sum starts from unit amplitude and is not renormalized, so strong gain can
// push it past 1.
func Sample(p FBMParams, seed uint32, u, v float32) float32 {
	return sample(ValueNoise2D, p, seed, u, v)
}

func sample(octave sampler, p FBMParams, seed uint32, u, v float32) float32 {
	s := float32(seed)

	// Warp lookups always use the value basis so every basis shares the same
	// distortion field.
	wx := ValueNoise2D((u+s)*8.123, (v-s)*7.321) * p.Warp
	wy := ValueNoise2D((u-s)*5.551, (v+s)*9.173) * p.Warp

	amp := float32(1)
	freq := p.Frequency
	var sum float32
	for o := 0; o < p.EffectiveOctaves(); o++ {
		sum += octave((u+wx)*freq+s*1.7, (v+wy)*freq-s*2.1) * amp
		freq *= p.Lacunarity
		amp *= p.Gain
	}
	return sum
}

// ApplyFBM adds value-noise FBM to every cell of field. The octave sum is
// remapped from [0,1] to [-1,1] and scaled by the amplitude before it is
// added to the existing height.
func ApplyFBM(field *core.HeightField, p FBMParams, seed uint32) {
	ApplyFBMWith(field, p, seed, BasisValue)
}

// ApplyFBMWith is ApplyFBM using the given octave basis.
func ApplyFBMWith(field *core.HeightField, p FBMParams, seed uint32, basis Basis) {
	n := field.Size()
	if n == 0 {
		return
	}
	octave := newSampler(basis, seed)
	size := float32(n)
	data := field.Data()
	core.ForRows(n, func(y int) {
		v := float32(y) / size
		row := data[y*n : (y+1)*n]
		for x := range row {
			u := float32(x) / size
			sum := sample(octave, p, seed, u, v)
			row[x] += (sum*2 - 1) * p.Amplitude
		}
	})
}

// ApplyFBMForTile adds value-noise FBM sampled in world space for the tile at
// (tileRow, tileCol). Cell (x, y) samples ((tileCol + x/n)*worldScale,
// (tileRow + y/n)*worldScale), so tiles generated separately agree with a
// single Sample call at the same world coordinate.
func ApplyFBMForTile(field *core.HeightField, p FBMParams, seed uint32, tileRow, tileCol, worldScale float32) {
	n := field.Size()
	if n == 0 {
		return
	}
	data := field.Data()
	core.ForRows(n, func(y int) {
		row := data[y*n : (y+1)*n]
		for x := range row {
			u, v := TileUV(x, y, n, tileRow, tileCol, worldScale)
			sum := Sample(p, seed, u, v)
			row[x] += (sum*2 - 1) * p.Amplitude
		}
	})
}

// TileUV maps a tile-local cell to world noise coordinates.
func TileUV(x, y, size int, tileRow, tileCol, worldScale float32) (float32, float32) {
	n := float32(size)
	u := float32(x) / n
	v := float32(y) / n
	return (tileCol + u) * worldScale, (tileRow + v) * worldScale
}

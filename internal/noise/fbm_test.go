package noise

import (
	"math"
	"slices"
	"testing"

	"terrasim/internal/core"
)

func TestValueNoiseRangeAndDeterminism(t *testing.T) {
	for i := 0; i < 5000; i++ {
		x := float32(i)*0.173 - 300
		y := float32(i)*0.291 - 150
		v := ValueNoise2D(x, y)
		if v < 0 || v > 1 {
			t.Fatalf("ValueNoise2D(%f,%f)=%f outside [0,1]", x, y, v)
		}
		if v != ValueNoise2D(x, y) {
			t.Fatalf("ValueNoise2D not deterministic at (%f,%f)", x, y)
		}
	}
}

func TestValueNoiseLatticeMatchesHash(t *testing.T) {
	for _, p := range [][2]float32{{0, 0}, {3, 5}, {-2, 7}} {
		want := hash(p[0]*15731.0 + p[1]*789221.0)
		if got := ValueNoise2D(p[0], p[1]); got != want {
			t.Fatalf("lattice point %v: got %f want %f", p, got, want)
		}
	}
}

func TestApplyFBMDeterministicAcrossAllocations(t *testing.T) {
	p := FBMParams{Amplitude: 0.3, Frequency: 1.7, Octaves: 5, Lacunarity: 2, Gain: 0.5, Warp: 0.12}
	a := core.New(48)
	b := core.New(48)
	ApplyFBM(a, p, 1234)
	ApplyFBM(b, p, 1234)
	if !slices.Equal(a.Data(), b.Data()) {
		t.Fatal("identical params and seed must produce identical fields")
	}

	c := core.New(48)
	ApplyFBM(c, p, 4321)
	if slices.Equal(a.Data(), c.Data()) {
		t.Fatal("different seeds should produce different fields")
	}
}

func TestApplyFBMSingleOctaveBounded(t *testing.T) {
	f := core.NewFilled(64, 0.5)
	p := FBMParams{Amplitude: 0.2, Frequency: 1, Octaves: 1, Lacunarity: 2, Gain: 0.5, Warp: 0}
	ApplyFBM(f, p, 42)

	const eps = 1e-6
	for i, v := range f.Data() {
		if v < 0.3-eps || v > 0.7+eps {
			t.Fatalf("cell %d = %f outside [0.3, 0.7]", i, v)
		}
	}
}

func TestApplyFBMIsAdditive(t *testing.T) {
	p := FBMParams{Amplitude: 0.25, Frequency: 2, Octaves: 4, Lacunarity: 2, Gain: 0.5, Warp: 0.1}
	zero := core.New(32)
	base := core.NewFilled(32, 1)
	ApplyFBM(zero, p, 9)
	ApplyFBM(base, p, 9)
	for i := range zero.Data() {
		diff := base.Data()[i] - zero.Data()[i]
		if math.Abs(float64(diff-1)) > 1e-5 {
			t.Fatalf("cell %d: noise should add on top of existing height, diff %f", i, diff)
		}
	}
}

func TestOctaveCap(t *testing.T) {
	p := FBMParams{Amplitude: 0.3, Frequency: 1.3, Octaves: 6, Lacunarity: 2, Gain: 0.5, Warp: 0.1}
	six := core.New(24)
	ApplyFBM(six, p, 5)

	p.Octaves = 12
	twelve := core.New(24)
	ApplyFBM(twelve, p, 5)

	if !slices.Equal(six.Data(), twelve.Data()) {
		t.Fatal("octaves beyond the cap must not change the output")
	}
	if got := p.EffectiveOctaves(); got != MaxOctaves {
		t.Fatalf("EffectiveOctaves = %d, want %d", got, MaxOctaves)
	}
}

func TestZeroOctavesShiftsByMinusAmplitude(t *testing.T) {
	f := core.NewFilled(8, 1)
	ApplyFBM(f, FBMParams{Amplitude: 0.5, Frequency: 1, Octaves: 0}, 3)
	for _, v := range f.Data() {
		if v != 0.5 {
			t.Fatalf("expected empty octave sum to remap to -amplitude, got %f", v)
		}
	}
}

func TestTileCellsMatchWorldSamples(t *testing.T) {
	p := FBMParams{Amplitude: 0.2, Frequency: 1.6, Octaves: 5, Lacunarity: 2, Gain: 0.5, Warp: 0.1}
	const size = 16
	for _, tile := range [][2]float32{{0, 0}, {0, 1}, {1, 0}, {2, 3}} {
		f := core.New(size)
		ApplyFBMForTile(f, p, 77, tile[0], tile[1], 1)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				u, v := TileUV(x, y, size, tile[0], tile[1], 1)
				want := (Sample(p, 77, u, v)*2 - 1) * p.Amplitude
				if got := f.At(x, y); got != want {
					t.Fatalf("tile %v cell (%d,%d) = %f, want %f", tile, x, y, got, want)
				}
			}
		}
	}
}

func TestSeamCoordinatesAgree(t *testing.T) {
	p := FBMParams{Amplitude: 0.2, Frequency: 2, Octaves: 5, Lacunarity: 2, Gain: 0.5, Warp: 0.15}
	// Right edge of tile (0,0) one step past its last cell lands on the first
	// column of tile (0,1).
	for y := 0; y < 16; y++ {
		u0, v0 := TileUV(16, y, 16, 0, 0, 1)
		u1, v1 := TileUV(0, y, 16, 0, 1, 1)
		if Sample(p, 11, u0, v0) != Sample(p, 11, u1, v1) {
			t.Fatalf("row %d: seam samples disagree", y)
		}
	}
}

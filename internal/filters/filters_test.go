package filters

import (
	"math"
	"slices"
	"testing"

	"terrasim/internal/core"
)

func sum(values []float32) float64 {
	var s float64
	for _, v := range values {
		s += float64(v)
	}
	return s
}

func TestSlopeBlurLeavesConstantFieldUnchanged(t *testing.T) {
	f := core.NewFilled(16, 0.4)
	SlopeBlur(f, SlopeBlurParams{Radius: 2, K: 0.6, Iterations: 3})
	for i, v := range f.Data() {
		if math.Abs(float64(v-0.4)) > 1e-6 {
			t.Fatalf("cell %d drifted to %f", i, v)
		}
	}
}

func TestSlopeBlurSpreadsSpike(t *testing.T) {
	f := core.New(9)
	f.Set(4, 4, 9)
	SlopeBlur(f, SlopeBlurParams{Radius: 1, K: 0, Iterations: 1})
	if got := f.At(4, 4); got != 1 {
		t.Fatalf("spike centre = %f, want 1 after a 3x3 average", got)
	}
	if got := f.At(3, 3); got != 1 {
		t.Fatalf("neighbour = %f, want 1", got)
	}
	if got := f.At(0, 0); got != 0 {
		t.Fatalf("far cell = %f, want 0", got)
	}
}

func TestBlurRadiusShrinksWithSlope(t *testing.T) {
	p := SlopeBlurParams{Radius: 4, K: 0.5}
	if got := blurRadius(p, 0); got != 4 {
		t.Fatalf("flat radius = %d, want 4", got)
	}
	if got := blurRadius(p, 1); got != 2 {
		t.Fatalf("steep radius = %d, want 2", got)
	}
	if got := blurRadius(SlopeBlurParams{Radius: 1, K: 0.9}, 1); got != 1 {
		t.Fatalf("radius must floor at 1, got %d", got)
	}
}

func TestSlopeBlurZeroIterationsIsNoop(t *testing.T) {
	f := core.New(5)
	f.Set(2, 2, 1)
	before := slices.Clone(f.Data())
	SlopeBlur(f, SlopeBlurParams{Radius: 2, K: 0.5})
	if !slices.Equal(before, f.Data()) {
		t.Fatal("zero iterations must not modify the field")
	}
}

func TestRidgeSharpen(t *testing.T) {
	flat := core.NewFilled(6, 0.3)
	RidgeSharpen(flat, 0.6)
	for _, v := range flat.Data() {
		if v != 0.3 {
			t.Fatalf("constant field changed to %f", v)
		}
	}

	f := core.New(5)
	f.Set(2, 2, 1)
	RidgeSharpen(f, 0.25)
	if got := f.At(2, 2); got != 2 {
		t.Fatalf("peak = %f, want 1 + 0.25*4", got)
	}
	if got := f.At(2, 1); got != -0.25 {
		t.Fatalf("flank = %f, want -0.25", got)
	}
}

func TestDunes(t *testing.T) {
	f := core.NewFilled(8, 1)
	Dunes(f, DuneParams{Scale: 16, Amplitude: 0, Direction: 0.7})
	for _, v := range f.Data() {
		if v != 1 {
			t.Fatal("zero amplitude dunes must not change heights")
		}
	}

	g := core.New(16)
	Dunes(g, DuneParams{Scale: 4, Amplitude: 0.1, Direction: 0})
	// Direction 0 ripples along x only.
	for y := 1; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if g.At(x, y) != g.At(x, 0) {
				t.Fatalf("ripple varies along y at (%d,%d)", x, y)
			}
		}
	}
	for _, v := range g.Data() {
		if v < -0.1-1e-6 || v > 0.1+1e-6 {
			t.Fatalf("ripple %f exceeds amplitude", v)
		}
	}
	if got := g.At(1, 0); math.Abs(float64(got-0.1)) > 1e-5 {
		t.Fatalf("quarter-wavelength cell = %f, want 0.1", got)
	}
}

func TestThermalConservesMassAndFlattensCliffs(t *testing.T) {
	f := core.New(7)
	f.Set(3, 3, 5)
	before := sum(f.Data())

	removed := Thermal(f, 10, 0.8, DefaultThermalRate)

	if math.Abs(sum(f.Data())-before) > 1e-4 {
		t.Fatalf("thermal relaxation changed total mass: %f -> %f", before, sum(f.Data()))
	}
	if f.At(3, 3) >= 5 {
		t.Fatalf("peak did not relax: %f", f.At(3, 3))
	}
	if removed[3*7+3] <= 0 {
		t.Fatal("removed mask should record material leaving the peak")
	}
}

func TestThermalBelowTalusIsStable(t *testing.T) {
	f := core.New(5)
	f.Set(2, 2, 0.5)
	before := slices.Clone(f.Data())
	Thermal(f, 5, 0.8, DefaultThermalRate)
	if !slices.Equal(before, f.Data()) {
		t.Fatal("slopes within talus must not move")
	}
}

func TestSmooth(t *testing.T) {
	f := core.New(5)
	f.Set(2, 2, 9)
	before := slices.Clone(f.Data())
	Smooth(f, 3, 0)
	if !slices.Equal(before, f.Data()) {
		t.Fatal("zero strength must leave the field unchanged")
	}

	Smooth(f, 1, 1)
	if got := f.At(2, 2); got != 1 {
		t.Fatalf("full-strength smoothing centre = %f, want 1", got)
	}
	if got := f.At(1, 1); got != 1 {
		t.Fatalf("neighbour = %f, want 1", got)
	}
}

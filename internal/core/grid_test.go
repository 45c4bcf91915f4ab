package core

import (
	"math"
	"slices"
	"testing"
)

func TestGetSetRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 7, 32} {
		f := New(size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				v := float32(y*size+x) * 0.25
				f.Set(x, y, v)
				if got := f.At(x, y); got != v {
					t.Fatalf("size %d: At(%d,%d)=%f, want %f", size, x, y, got, v)
				}
			}
		}
		if len(f.Data()) != size*size {
			t.Fatalf("size %d: data length %d", size, len(f.Data()))
		}
	}
}

func TestAtClampsOutOfRange(t *testing.T) {
	f := New(4)
	f.Set(0, 0, 1)
	f.Set(3, 3, 9)
	if got := f.At(-5, -1); got != 1 {
		t.Fatalf("expected negative coords to clamp to origin, got %f", got)
	}
	if got := f.At(100, 7); got != 9 {
		t.Fatalf("expected large coords to clamp to far corner, got %f", got)
	}
}

func TestSetOutOfBoundsIsNoop(t *testing.T) {
	f := NewFilled(3, 0.5)
	before := slices.Clone(f.Data())
	f.Set(-1, 0, 9)
	f.Set(0, 3, 9)
	f.Set(3, 3, 9)
	if !slices.Equal(before, f.Data()) {
		t.Fatal("out-of-bounds Set must not modify the field")
	}
}

func TestSetDataLengthMismatch(t *testing.T) {
	f := NewFilled(2, 1)
	if f.SetData([]float32{1, 2, 3}) {
		t.Fatal("expected SetData to reject mismatched length")
	}
	if !slices.Equal(f.Data(), []float32{1, 1, 1, 1}) {
		t.Fatalf("field changed after rejected SetData: %v", f.Data())
	}
	if !f.SetData([]float32{4, 3, 2, 1}) {
		t.Fatal("expected SetData to accept matching length")
	}
	if f.At(1, 1) != 1 || f.At(0, 0) != 4 {
		t.Fatalf("unexpected data after SetData: %v", f.Data())
	}
}

func TestResampleSameSizeIsIdentity(t *testing.T) {
	f := New(9)
	for i := range f.Data() {
		f.Data()[i] = float32(i%5) - 1.5
	}
	out := f.Resample(9)
	if !slices.Equal(out.Data(), f.Data()) {
		t.Fatal("resample to the same size must reproduce every cell")
	}
	out.Set(0, 0, 42)
	if f.At(0, 0) == 42 {
		t.Fatal("resample must return an independent field")
	}
}

func TestResampleUpPreservesCornersAndInterpolates(t *testing.T) {
	f := New(2)
	f.Set(0, 0, 0)
	f.Set(1, 0, 1)
	f.Set(0, 1, 2)
	f.Set(1, 1, 3)

	out := f.Resample(3)
	if out.Size() != 3 {
		t.Fatalf("expected size 3, got %d", out.Size())
	}
	corners := map[[2]int]float32{{0, 0}: 0, {2, 0}: 1, {0, 2}: 2, {2, 2}: 3}
	for c, want := range corners {
		if got := out.At(c[0], c[1]); got != want {
			t.Fatalf("corner %v = %f, want %f", c, got, want)
		}
	}
	if got := out.At(1, 1); got != 1.5 {
		t.Fatalf("centre = %f, want 1.5", got)
	}
}

func TestResampleDegenerateSizes(t *testing.T) {
	f := NewFilled(4, 2)
	if got := f.Resample(1); got.Size() != 1 || got.At(0, 0) != 2 {
		t.Fatalf("resample to 1 should keep the origin sample, got %v", got.Data())
	}
	if got := New(0).Resample(3); got.Size() != 3 || got.At(1, 1) != 0 {
		t.Fatal("resampling an empty field should yield zeros")
	}
}

func TestNormalize(t *testing.T) {
	f := New(3)
	copy(f.Data(), []float32{-2, 0, 2, 4, 6, 1, 1, 1, 3})
	f.Normalize()
	lo, hi := f.MinMax()
	if lo != 0 || hi != 1 {
		t.Fatalf("normalized range [%f,%f], want [0,1]", lo, hi)
	}
	if got := f.At(1, 0); got != 0.25 {
		t.Fatalf("expected 0 to map to 0.25, got %f", got)
	}
}

func TestNormalizeConstantAndEmptyAreNoops(t *testing.T) {
	f := NewFilled(4, 0.7)
	f.Normalize()
	for _, v := range f.Data() {
		if v != 0.7 {
			t.Fatalf("constant field changed to %f", v)
		}
	}
	empty := New(0)
	empty.Normalize()
	if len(empty.Data()) != 0 {
		t.Fatal("empty field grew during normalize")
	}
}

func TestCloneIsDeep(t *testing.T) {
	f := NewFilled(3, 1)
	c := f.Clone()
	c.Set(1, 1, 5)
	if f.At(1, 1) != 1 {
		t.Fatal("mutating a clone must not affect the source")
	}
}

func TestNewKeepsCellCountConsistent(t *testing.T) {
	for _, size := range []int{-3, math.MaxInt / 2, math.MaxInt} {
		f := New(size)
		if f.Size() != 0 || len(f.Data()) != 0 {
			t.Fatalf("New(%d) = size %d with %d cells, want an empty field", size, f.Size(), len(f.Data()))
		}
	}
	if f := New(5); len(f.Data()) != 25 {
		t.Fatalf("New(5) has %d cells", len(f.Data()))
	}
}

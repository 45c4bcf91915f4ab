package terrain

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"terrasim/internal/biome"
	"terrasim/internal/core"
	"terrasim/internal/erosion"
	"terrasim/internal/filters"
	"terrasim/internal/noise"
)

var _ core.ParameterProvider = Request{}

func TestGenerateWithoutErosion(t *testing.T) {
	res, err := Generate(context.Background(), Request{BaseSize: 32, Steps: 1, Seed: 1, Biome: biome.Desert, SeaLevel: 0.1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Field.Size() != 32 || len(res.Field.Data()) != 32*32 {
		t.Fatalf("size = %d with %d cells, want 32", res.Field.Size(), len(res.Field.Data()))
	}
	if res.Water != nil || res.Erosion != nil {
		t.Fatalf("expected no water features without erosion")
	}
	lo, hi := res.Field.MinMax()
	if lo == hi {
		t.Fatalf("expected non-flat terrain")
	}
	if len(res.Timings) == 0 {
		t.Fatalf("expected stage timings")
	}
}

func TestGenerateWithShortErosionHasWater(t *testing.T) {
	res, err := Generate(context.Background(), Request{BaseSize: 32, Steps: 1, Seed: 1, Biome: biome.Desert, SeaLevel: 0.1, ErosionYears: 5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Field.Size() != 32 {
		t.Fatalf("size = %d, want 32", res.Field.Size())
	}
	if res.Water == nil || len(res.Water.Water) != 32*32 {
		t.Fatalf("expected water features, got %+v", res.Water)
	}
	if res.Erosion == nil || res.Erosion.Iterations != (erosion.IterationCounts{}) {
		t.Fatalf("expected the water-only fast path, got %+v", res.Erosion)
	}
}

func TestOutputSizeSaturatesPastMaxSize(t *testing.T) {
	cases := []struct {
		req  Request
		want int
	}{
		{Request{BaseSize: 32, Steps: 3}, 128},
		{Request{BaseSize: 1024, Steps: 4}, MaxSize},
		{Request{BaseSize: 1025, Steps: 4}, MaxSize + 1},
		{Request{BaseSize: math.MaxInt / 4, Steps: 30}, MaxSize + 1},
		{Request{BaseSize: 2, Steps: 64}, MaxSize + 1},
	}
	for _, tc := range cases {
		if got := tc.req.OutputSize(); got != tc.want {
			t.Fatalf("OutputSize(%d, %d) = %d, want %d", tc.req.BaseSize, tc.req.Steps, got, tc.want)
		}
	}
	if err := (Request{BaseSize: 1024, Steps: 4}).Validate(); err != nil {
		t.Fatalf("Validate at MaxSize: %v", err)
	}
}

func TestGenerateStepsDoubleSize(t *testing.T) {
	req := Request{BaseSize: 32, Steps: 2, Seed: 3, Biome: biome.Desert}
	res, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Field.Size() != 64 || req.OutputSize() != 64 {
		t.Fatalf("size = %d (predicted %d), want 64", res.Field.Size(), req.OutputSize())
	}
}

func TestGenerateZeroStepsOnlySharpens(t *testing.T) {
	res, err := Generate(context.Background(), Request{BaseSize: 8, Steps: 0, Biome: biome.Alpine})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, v := range res.Field.Data() {
		if v != 0 {
			t.Fatalf("expected a flat zero field, got %v", v)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	req := Request{BaseSize: 16, Steps: 2, Seed: 99, Biome: biome.Temperate, SeaLevel: 80, ErosionYears: 120}
	a, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(a.Field.Data(), b.Field.Data()) {
		t.Fatalf("heights differ between identical requests")
	}
	if !slices.Equal(a.Water.River, b.Water.River) {
		t.Fatalf("river masks differ between identical requests")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := Generate(context.Background(), Request{BaseSize: 16, Steps: 1, Seed: 1})
	b, _ := Generate(context.Background(), Request{BaseSize: 16, Steps: 1, Seed: 2})
	if slices.Equal(a.Field.Data(), b.Field.Data()) {
		t.Fatalf("different seeds produced identical terrain")
	}
}

func TestGenerateRejectsInvalidRequests(t *testing.T) {
	cases := []Request{
		{BaseSize: 1, Steps: 1},
		{BaseSize: 32, Steps: -1},
		{BaseSize: 32, Steps: 12},
		{BaseSize: MaxSize + 1, Steps: 1},
		{BaseSize: MaxSize + 1, Steps: 0},
		{BaseSize: math.MaxInt / 4, Steps: 30},
		{BaseSize: 2, Steps: 64},
		{BaseSize: 2, Steps: 200},
		{BaseSize: 32, Steps: 1, SmoothIterations: -1},
	}
	for _, req := range cases {
		if _, err := Generate(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("Generate(%+v) err = %v, want ErrInvalidRequest", req, err)
		}
	}
}

func TestGenerateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, Request{BaseSize: 16, Steps: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestGenerateSmoothingFlattens(t *testing.T) {
	req := Request{BaseSize: 32, Steps: 1, Seed: 5, Biome: biome.Alpine}
	rough, _ := Generate(context.Background(), req)
	req.SmoothIterations, req.SmoothStrength = 4, 1
	smooth, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rlo, rhi := rough.Field.MinMax()
	slo, shi := smooth.Field.MinMax()
	if shi-slo >= rhi-rlo {
		t.Fatalf("smoothing did not reduce the range: %v >= %v", shi-slo, rhi-rlo)
	}
}

func TestErosionParamsFollowBiome(t *testing.T) {
	cases := map[biome.Kind]float32{biome.Alpine: 50, biome.Temperate: 25, biome.Desert: 10}
	for kind, cycles := range cases {
		p := Request{Biome: kind, ErosionYears: 100, SeaLevel: 50}.ErosionParams()
		if p.TemperatureCycles != cycles || p.RainIntensity != 1 {
			t.Fatalf("%s erosion params = %+v", kind, p)
		}
		if p.WindStrength != biome.FBM(kind).Amplitude*0.5 {
			t.Fatalf("%s wind = %v", kind, p.WindStrength)
		}
	}
}

func TestRequestParameters(t *testing.T) {
	snap := Request{BaseSize: 32, Steps: 2, Seed: 7, Biome: biome.Desert, ErosionYears: 100}.Parameters()
	if p, ok := snap.Lookup("size"); !ok || p.Value != "64" {
		t.Fatalf("size param = %+v", p)
	}
	if _, ok := snap.Lookup("hydraulic_iterations"); !ok {
		t.Fatalf("expected erosion group when years > 0")
	}
	plain := Request{BaseSize: 32, Steps: 1}.Parameters()
	if _, ok := plain.Lookup("years"); ok {
		t.Fatalf("unexpected erosion group without erosion")
	}
}

// buildByHand replays the generation steps without the erosion stage.
func buildByHand(req Request, dunes bool) []float32 {
	preset := biome.Lookup(req.Biome)
	field := core.New(req.BaseSize)
	target := req.BaseSize
	for range req.Steps {
		if target > field.Size() {
			field = field.Resample(target)
		}
		noise.ApplyFBM(field, preset.FBM, req.Seed)
		filters.SlopeBlur(field, preset.SlopeBlur)
		if dunes && target >= 256 {
			filters.Dunes(field, preset.Dunes)
		}
		target *= 2
	}
	filters.RidgeSharpen(field, preset.RidgeStrength)
	return field.Data()
}

func TestDunesOnlyOnLargeDesertSteps(t *testing.T) {
	cases := []struct {
		name  string
		req   Request
		dunes bool
	}{
		{"desert reaching 256", Request{BaseSize: 128, Steps: 2, Seed: 4, Biome: biome.Desert}, true},
		{"desert at 128", Request{BaseSize: 128, Steps: 1, Seed: 4, Biome: biome.Desert}, false},
		{"alpine reaching 256", Request{BaseSize: 128, Steps: 2, Seed: 4, Biome: biome.Alpine}, false},
	}
	for _, tc := range cases {
		res, err := Generate(context.Background(), tc.req)
		if err != nil {
			t.Fatalf("%s: Generate: %v", tc.name, err)
		}
		if !slices.Equal(res.Field.Data(), buildByHand(tc.req, tc.dunes)) {
			t.Fatalf("%s: terrain does not match the pipeline with dunes=%v", tc.name, tc.dunes)
		}
		if tc.dunes && slices.Equal(res.Field.Data(), buildByHand(tc.req, false)) {
			t.Fatalf("%s: dune ripple had no effect", tc.name)
		}
	}
}

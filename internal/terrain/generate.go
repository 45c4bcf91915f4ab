package terrain

import (
	"context"
	"fmt"
	"log/slog"

	"terrasim/internal/biome"
	"terrasim/internal/core"
	"terrasim/internal/erosion"
	"terrasim/internal/filters"
	"terrasim/internal/hydrology"
	"terrasim/internal/noise"
)

// duneMinSize is the smallest step resolution that receives dune ripples.
const duneMinSize = 256

// Result is a generated terrain. Water and Erosion are nil unless the
// request asked for ageing.
type Result struct {
	Field   *core.HeightField
	Water   *hydrology.Features
	Erosion *erosion.Result
	Timings []core.StageTiming
}

// Generator runs requests and logs stage timings.
type Generator struct {
	log     *slog.Logger
	erosion *erosion.Simulator
}

// New returns a Generator. A nil logger discards output.
func New(log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{log: log, erosion: erosion.New(log)}
}

// Generate runs req with a silent Generator.
func Generate(ctx context.Context, req Request) (Result, error) {
	return New(nil).Generate(ctx, req)
}

// Generate builds the terrain for req. The context is checked between
// stages; a running pass is never interrupted.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	preset := biome.Lookup(req.Biome)
	log := g.log.With("biome", req.Biome.String(), "seed", req.Seed)
	log.Info("terrain generation started", "base_size", req.BaseSize, "steps", req.Steps)

	timer := core.NewStageTimer()
	field := core.New(req.BaseSize)
	target := req.BaseSize

	for step := 0; step < req.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("terrain: step %d: %w", step, err)
		}
		if target > field.Size() {
			timer.Track(fmt.Sprintf("step%d.resample", step), func() {
				field = field.Resample(target)
			})
		}
		timer.Track(fmt.Sprintf("step%d.fbm", step), func() {
			noise.ApplyFBMWith(field, preset.FBM, req.Seed, req.Basis)
		})
		timer.Track(fmt.Sprintf("step%d.filters", step), func() {
			filters.SlopeBlur(field, preset.SlopeBlur)
			if preset.HasDunes && target >= duneMinSize {
				filters.Dunes(field, preset.Dunes)
			}
		})
		log.Debug("terrain step", "step", step, "size", field.Size())
		target *= 2
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("terrain: ridge: %w", err)
	}
	timer.Track("ridge", func() {
		filters.RidgeSharpen(field, preset.RidgeStrength)
	})

	res := Result{Field: field}
	if req.Eroded() {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("terrain: erosion: %w", err)
		}
		timer.Track("erosion", func() {
			er := g.erosion.Run(field, req.ErosionParams())
			res.Erosion = &er
			res.Water = er.Water
		})
	} else {
		log.Debug("erosion skipped")
	}

	if req.SmoothIterations > 0 {
		timer.Track("smooth", func() {
			filters.Smooth(field, req.SmoothIterations, req.SmoothStrength)
		})
	}

	res.Timings = timer.Stages()
	log.Info("terrain generation finished", "size", field.Size(), "timings", timer)
	return res, nil
}

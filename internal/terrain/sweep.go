package terrain

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"terrasim/internal/hydrology"
)

// SweepResult summarises one run of an erosion sweep.
type SweepResult struct {
	Years         float32
	Size          int
	Mean          float32
	Min           float32
	Max           float32
	RiverCoverage float32
	WaterCoverage float32
	Eroded        float64
	Deposited     float64
	Duration      time.Duration
}

// ErosionSweep generates base once per entry of years, at most workers at a
// time, and returns the results in input order. The first failure cancels
// the remaining runs.
func (g *Generator) ErosionSweep(ctx context.Context, base Request, years []float32, workers int) ([]SweepResult, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]SweepResult, len(years))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, y := range years {
		eg.Go(func() error {
			req := base
			req.ErosionYears = y
			start := time.Now()
			res, err := g.Generate(ctx, req)
			if err != nil {
				return fmt.Errorf("sweep %v years: %w", y, err)
			}
			results[i] = summarise(y, res, time.Since(start))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ErosionSweep runs a sweep with a silent Generator.
func ErosionSweep(ctx context.Context, base Request, years []float32, workers int) ([]SweepResult, error) {
	return New(nil).ErosionSweep(ctx, base, years, workers)
}

func summarise(years float32, res Result, d time.Duration) SweepResult {
	lo, hi := res.Field.MinMax()
	out := SweepResult{
		Years:    years,
		Size:     res.Field.Size(),
		Mean:     res.Field.Mean(),
		Min:      lo,
		Max:      hi,
		Duration: d,
	}
	if res.Water != nil {
		out.RiverCoverage = hydrology.Coverage(res.Water.River, 0.5)
		out.WaterCoverage = hydrology.Coverage(res.Water.Water, 0.5)
	}
	if res.Erosion != nil {
		for _, v := range res.Erosion.Eroded {
			out.Eroded += float64(v)
		}
		for _, v := range res.Erosion.Deposited {
			out.Deposited += float64(v)
		}
	}
	return out
}

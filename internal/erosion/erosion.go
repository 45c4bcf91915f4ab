package erosion

import (
	"log/slog"

	"terrasim/internal/core"
	"terrasim/internal/filters"
	"terrasim/internal/hydrology"
)

// Result carries the final water features plus per-cell bookkeeping of
// material removed and deposited during the run.
type Result struct {
	Water      *hydrology.Features
	Eroded     []float32
	Deposited  []float32
	Iterations IterationCounts
}

// Simulator runs ageing passes and reports progress through its logger.
type Simulator struct {
	log *slog.Logger
}

// New returns a Simulator. A nil logger discards output.
func New(log *slog.Logger) *Simulator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Simulator{log: log}
}

// Run ages f in place. Spans under FastPathYears only route water; longer
// spans route water, then apply wind, thermal and hydraulic erosion, each
// skipped when its driving parameter is not positive. Water is re-routed
// before and after the hydraulic stage.
func (s *Simulator) Run(f *core.HeightField, p Params) Result {
	n := f.Size()
	res := Result{
		Eroded:    make([]float32, n*n),
		Deposited: make([]float32, n*n),
	}
	log := s.log.With("size", n, "years", p.Years)

	if p.Years < FastPathYears {
		log.Debug("erosion fast path")
		res.Water = hydrology.ApplyWaterSystem(f, FastWaterParams(p.SeaLevel))
		return res
	}

	res.Iterations = Iterations(p.Years)
	log.Debug("erosion iterations",
		"wind", res.Iterations.Wind,
		"thermal", res.Iterations.Thermal,
		"hydraulic", res.Iterations.Hydraulic,
	)

	wp := WaterParams(p.SeaLevel)
	res.Water = hydrology.ApplyWaterSystem(f, wp)

	if p.WindStrength > 0 {
		Wind(f, p.WindStrength, res.Iterations.Wind, res.Eroded)
	}
	if p.TemperatureCycles > 0 {
		removed := filters.Thermal(f, res.Iterations.Thermal, talus, p.TemperatureCycles*0.001)
		for i, v := range removed {
			res.Eroded[i] += v
		}
	}
	if p.RainIntensity > 0 {
		res.Water = hydrology.ApplyWaterSystem(f, wp)
		Hydraulic(f, res.Water, p.RainIntensity, res.Iterations.Hydraulic, res.Eroded, res.Deposited)
		res.Water = hydrology.ApplyWaterSystem(f, wp)
	}

	log.Debug("erosion complete",
		"eroded", sum(res.Eroded),
		"deposited", sum(res.Deposited),
	)
	return res
}

// ApplyGeologicalErosion ages f without logging and returns the final water
// features.
func ApplyGeologicalErosion(f *core.HeightField, p Params) *hydrology.Features {
	return New(nil).Run(f, p).Water
}

func sum(values []float32) float64 {
	var total float64
	for _, v := range values {
		total += float64(v)
	}
	return total
}

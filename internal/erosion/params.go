// Package erosion ages a height field over a notional span of years by
// running wind, thermal and hydraulic erosion between hydrology passes.
package erosion

import (
	"math"

	"terrasim/internal/core"
	"terrasim/internal/hydrology"
)

// Params describes one ageing run. SeaLevel is given in the same per-mille
// units the front-end uses and is divided by 1000 before it reaches the
// hydrology engine.
type Params struct {
	Years             float32 `json:"years"`
	SeaLevel          float32 `json:"sea_level"`
	WindStrength      float32 `json:"wind_strength"`
	RainIntensity     float32 `json:"rain_intensity"`
	TemperatureCycles float32 `json:"temperature_cycles"`
}

// FastPathYears is the span below which only a single water-system pass runs.
const FastPathYears = 10

const (
	windYearsPerIter      = 100
	thermalYearsPerIter   = 50
	hydraulicYearsPerIter = 25

	maxWindIters      = 20
	maxThermalIters   = 40
	maxHydraulicIters = 80

	talus = 0.8
)

// IterationCounts is the number of sweeps each process runs.
type IterationCounts struct {
	Wind      int
	Thermal   int
	Hydraulic int
}

// Iterations converts a span of years into capped sweep counts.
func Iterations(years float32) IterationCounts {
	return IterationCounts{
		Wind:      iterFor(years, windYearsPerIter, maxWindIters),
		Thermal:   iterFor(years, thermalYearsPerIter, maxThermalIters),
		Hydraulic: iterFor(years, hydraulicYearsPerIter, maxHydraulicIters),
	}
}

func iterFor(years, perIter float32, limit int) int {
	if years <= 0 {
		return 0
	}
	return min(int(math.Ceil(float64(years/perIter))), limit)
}

// WaterParams returns the hydrology settings used between erosion passes.
func WaterParams(seaLevel float32) hydrology.Params {
	return hydrology.Params{
		SeaLevel:       seaLevel / 1000,
		RiverThreshold: 0.08,
		RiverWidth:     8,
		RiverDepth:     0.05,
		CoastalErosion: 0.04,
		BeachWidth:     8,
	}
}

// FastWaterParams returns the hydrology settings for spans below
// FastPathYears.
func FastWaterParams(seaLevel float32) hydrology.Params {
	p := WaterParams(seaLevel)
	p.RiverThreshold = 0.1
	return p
}

// Parameters describes p as a snapshot group.
func (p Params) Parameters() core.ParameterGroup {
	it := Iterations(p.Years)
	return core.ParameterGroup{
		Name: "Erosion",
		Params: []core.Parameter{
			core.FloatParam("years", "Years", p.Years),
			core.FloatParam("erosion_sea_level", "Sea level (per mille)", p.SeaLevel),
			core.FloatParam("wind_strength", "Wind strength", p.WindStrength),
			core.FloatParam("rain_intensity", "Rain intensity", p.RainIntensity),
			core.FloatParam("temperature_cycles", "Temperature cycles", p.TemperatureCycles),
			core.IntParam("wind_iterations", "Wind iterations", it.Wind),
			core.IntParam("thermal_iterations", "Thermal iterations", it.Thermal),
			core.IntParam("hydraulic_iterations", "Hydraulic iterations", it.Hydraulic),
		},
	}
}

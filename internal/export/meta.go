package export

import (
	"time"

	"terrasim/internal/atlas"
	"terrasim/internal/biome"
	"terrasim/internal/core"
	"terrasim/internal/hydrology"
)

// Meta is the sidecar written next to exported height maps.
type Meta struct {
	Size        int        `json:"size"`
	Seed        uint32     `json:"seed"`
	Biome       biome.Kind `json:"biome"`
	HeightScale float32    `json:"height_scale"`
	Min         float32    `json:"min"`
	Max         float32    `json:"max"`
	Mean        float32    `json:"mean"`

	ErosionYears  float32 `json:"erosion_years,omitempty"`
	WaterCoverage float32 `json:"water_coverage,omitempty"`
	RiverCoverage float32 `json:"river_coverage,omitempty"`

	Atlas *atlas.Layout `json:"atlas,omitempty"`
	Rects []atlas.Rect  `json:"rects,omitempty"`

	Timings map[string]string `json:"timings,omitempty"`
}

// NewMeta summarises a generated field.
func NewMeta(f *core.HeightField, seed uint32, kind biome.Kind, years float32, water *hydrology.Features) Meta {
	lo, hi := f.MinMax()
	m := Meta{
		Size:         f.Size(),
		Seed:         seed,
		Biome:        kind,
		HeightScale:  biome.HeightScale(kind),
		Min:          lo,
		Max:          hi,
		Mean:         f.Mean(),
		ErosionYears: years,
	}
	if water != nil {
		m.WaterCoverage = hydrology.Coverage(water.Water, 0.5)
		m.RiverCoverage = hydrology.Coverage(water.River, 0.5)
	}
	return m
}

// WithAtlas records the tile layout and UV rectangles.
func (m Meta) WithAtlas(a *atlas.Atlas) Meta {
	if a == nil {
		return m
	}
	layout := a.Layout
	m.Atlas = &layout
	m.Rects = a.Rects
	return m
}

// WithTimings records stage durations.
func (m Meta) WithTimings(stages []core.StageTiming) Meta {
	if len(stages) == 0 {
		return m
	}
	m.Timings = make(map[string]string, len(stages))
	for _, s := range stages {
		m.Timings[s.Name] = s.Duration.Round(time.Microsecond).String()
	}
	return m
}

// WriteMeta writes m as JSON at path.
func WriteMeta(path string, m Meta) error { return WriteJSON(path, m) }

package hydrology

import "terrasim/internal/core"

// Params controls one water-system pass. SeaLevel is in field units; the
// biome table stores it as an offset that callers scale before use.
type Params struct {
	SeaLevel       float32 `json:"sea_level"`
	RiverThreshold float32 `json:"river_threshold"`
	RiverWidth     float32 `json:"river_width"`
	RiverDepth     float32 `json:"river_depth"`
	CoastalErosion float32 `json:"coastal_erosion"`
	BeachWidth     float32 `json:"beach_width"`
}

// ApplyWaterSystem routes flow, derives river and beach masks from the
// unmodified field, carves channels, erodes the coast and finally marks water
// as everything at or below sea level plus the river mask. The field is
// modified in place.
func ApplyWaterSystem(f *core.HeightField, p Params) *Features {
	feat := &Features{Size: f.Size()}
	feat.Flow = FlowAccumulation(f)
	feat.River = RiverMask(f, feat.Flow, p.RiverThreshold)
	feat.Beach = BeachMask(f, p.SeaLevel, p.BeachWidth)

	CarveRivers(f, feat.River, p.RiverDepth)
	CoastalErosion(f, feat.Beach, p.CoastalErosion)

	data := f.Data()
	feat.Water = make([]float32, len(data))
	for i, h := range data {
		var sea float32
		if h <= p.SeaLevel {
			sea = 1
		}
		feat.Water[i] = max(sea, feat.River[i])
	}
	return feat
}

package terrain

import (
	"terrasim/internal/biome"
	"terrasim/internal/core"
)

// Parameters describes the request and the biome preset it resolves to.
func (r Request) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("base_size", "Base size", r.BaseSize),
				core.IntParam("steps", "Steps", r.Steps),
				core.IntParam("size", "Output size", r.OutputSize()),
				core.Uint32Param("seed", "Seed", r.Seed),
				core.StringParam("biome", "Biome", r.Biome.String()),
				core.StringParam("basis", "Noise basis", r.Basis.String()),
				core.FloatParam("sea_level", "Sea level (per mille)", r.SeaLevel),
			},
		},
	}
	groups = append(groups, biome.Groups(r.Biome, biome.Lookup(r.Biome))...)
	if r.Eroded() {
		groups = append(groups, r.ErosionParams().Parameters())
	}
	if r.SmoothIterations > 0 {
		groups = append(groups, core.ParameterGroup{
			Name: "Post",
			Params: []core.Parameter{
				core.IntParam("smooth_iterations", "Smooth iterations", r.SmoothIterations),
				core.FloatParam("smooth_strength", "Smooth strength", r.SmoothStrength),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

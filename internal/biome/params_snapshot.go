package biome

import "terrasim/internal/core"

// Parameters describes the preset for k as snapshot groups.
func Parameters(k Kind) core.ParameterSnapshot {
	p := Lookup(k)
	return core.ParameterSnapshot{Groups: Groups(k, p)}
}

// Groups renders p as the noise, filter and water groups used by the
// terrain request snapshot.
func Groups(k Kind, p Params) []core.ParameterGroup {
	return []core.ParameterGroup{
		{
			Name:    "Biome Noise",
			Summary: k.normalize().String(),
			Params: []core.Parameter{
				core.FloatParam("fbm_amplitude", "FBM amplitude", p.FBM.Amplitude),
				core.FloatParam("fbm_frequency", "FBM frequency", p.FBM.Frequency),
				core.IntParam("fbm_octaves", "FBM octaves", p.FBM.Octaves),
				core.FloatParam("fbm_lacunarity", "FBM lacunarity", p.FBM.Lacunarity),
				core.FloatParam("fbm_gain", "FBM gain", p.FBM.Gain),
				core.FloatParam("fbm_warp", "FBM warp", p.FBM.Warp),
				core.FloatParam("height_scale", "Height scale (m)", p.HeightScale),
			},
		},
		{
			Name: "Filters",
			Params: []core.Parameter{
				core.FloatParam("blur_radius", "Slope blur radius", p.SlopeBlur.Radius),
				core.FloatParam("blur_k", "Slope blur k", p.SlopeBlur.K),
				core.IntParam("blur_iterations", "Slope blur iterations", p.SlopeBlur.Iterations),
				core.FloatParam("ridge_strength", "Ridge strength", p.RidgeStrength),
				core.BoolParam("dunes", "Dunes", p.HasDunes),
				core.FloatParam("dune_scale", "Dune scale", p.Dunes.Scale),
				core.FloatParam("dune_amplitude", "Dune amplitude", p.Dunes.Amplitude),
				core.FloatParam("dune_direction", "Dune direction (rad)", p.Dunes.Direction),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				core.FloatParam("sea_level_offset", "Sea level offset", p.Water.SeaLevel),
				core.FloatParam("river_threshold", "River threshold", p.Water.RiverThreshold),
				core.FloatParam("river_width", "River width", p.Water.RiverWidth),
				core.FloatParam("river_depth", "River depth", p.Water.RiverDepth),
				core.FloatParam("coastal_erosion", "Coastal erosion", p.Water.CoastalErosion),
				core.FloatParam("beach_width", "Beach width", p.Water.BeachWidth),
				core.FloatParam("thermal_cycles", "Thermal cycles", p.ThermalCycles),
			},
		},
	}
}

// Package biome maps a small set of climate presets to the generation,
// filter and water parameters that shape a terrain.
package biome

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"terrasim/internal/filters"
	"terrasim/internal/hydrology"
	"terrasim/internal/noise"
)

// Kind selects a biome preset.
type Kind int

const (
	Desert Kind = iota
	Alpine
	Temperate

	kindCount
)

// ErrUnknownKind is returned when a biome name does not match any preset.
var ErrUnknownKind = errors.New("biome: unknown kind")

var kindNames = [kindCount]string{"desert", "alpine", "temperate"}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a preset in the table.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// Kinds lists every preset in table order.
func Kinds() []Kind { return []Kind{Desert, Alpine, Temperate} }

// Parse resolves a case-insensitive biome name or its numeric index.
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if name == n || name == fmt.Sprint(i) {
			return Kind(i), nil
		}
	}
	return Temperate, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler so kinds read naturally in
// JSON configs and metadata.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.normalize().String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) normalize() Kind {
	if !k.Valid() {
		return Temperate
	}
	return k
}

// Params is the full preset for one biome. Water.SeaLevel holds an offset in
// the same units as the preset table, not an absolute height.
type Params struct {
	FBM           noise.FBMParams
	SlopeBlur     filters.SlopeBlurParams
	RidgeStrength float32
	HasDunes      bool
	Dunes         filters.DuneParams
	HeightScale   float32
	Water         hydrology.Params
	ThermalCycles float32
}

var table = [kindCount]Params{
	Desert: {
		FBM:           noise.FBMParams{Amplitude: 0.15, Frequency: 2.0, Octaves: 5, Lacunarity: 2, Gain: 0.5, Warp: 0.15},
		SlopeBlur:     filters.SlopeBlurParams{Radius: 2, K: 0.6, Iterations: 2},
		RidgeStrength: 0.2,
		HasDunes:      true,
		Dunes:         filters.DuneParams{Scale: 16, Amplitude: 0.03, Direction: math.Pi / 4},
		HeightScale:   600,
		Water: hydrology.Params{
			SeaLevel: 0.1, RiverThreshold: 0.2, RiverWidth: 2.0,
			RiverDepth: 0.03, CoastalErosion: 0.05, BeachWidth: 8,
		},
		ThermalCycles: 10,
	},
	Alpine: {
		FBM:           noise.FBMParams{Amplitude: 0.35, Frequency: 1.3, Octaves: 6, Lacunarity: 2, Gain: 0.5, Warp: 0.12},
		SlopeBlur:     filters.SlopeBlurParams{Radius: 1, K: 0.2, Iterations: 1},
		RidgeStrength: 0.6,
		HeightScale:   1800,
		Water: hydrology.Params{
			SeaLevel: 0.05, RiverThreshold: 0.15, RiverWidth: 1.5,
			RiverDepth: 0.04, CoastalErosion: 0.03, BeachWidth: 6,
		},
		ThermalCycles: 50,
	},
	Temperate: {
		FBM:           noise.FBMParams{Amplitude: 0.22, Frequency: 1.6, Octaves: 5, Lacunarity: 2, Gain: 0.5, Warp: 0.1},
		SlopeBlur:     filters.SlopeBlurParams{Radius: 2, K: 0.4, Iterations: 2},
		RidgeStrength: 0.35,
		HeightScale:   900,
		Water: hydrology.Params{
			SeaLevel: 0.08, RiverThreshold: 0.12, RiverWidth: 3.0,
			RiverDepth: 0.025, CoastalErosion: 0.04, BeachWidth: 10,
		},
		ThermalCycles: 25,
	},
}

// Lookup returns the preset for k. Kinds outside the table resolve to
// Temperate.
func Lookup(k Kind) Params { return table[k.normalize()] }

// FBM returns the noise parameters for k.
func FBM(k Kind) noise.FBMParams { return Lookup(k).FBM }

// SlopeBlur returns the slope-blur parameters for k.
func SlopeBlur(k Kind) filters.SlopeBlurParams { return Lookup(k).SlopeBlur }

// RidgeStrength returns the ridge sharpening strength for k.
func RidgeStrength(k Kind) float32 { return Lookup(k).RidgeStrength }

// HasDunes reports whether k lays dune ripples over the terrain.
func HasDunes(k Kind) bool { return Lookup(k).HasDunes }

// Dunes returns the ripple parameters for k; all zero when HasDunes is false.
func Dunes(k Kind) filters.DuneParams { return Lookup(k).Dunes }

// HeightScale returns the metres represented by one height unit.
func HeightScale(k Kind) float32 { return Lookup(k).HeightScale }

// Water returns the hydrology preset for k. SeaLevel is an offset.
func Water(k Kind) hydrology.Params { return Lookup(k).Water }

// ThermalCycles returns the freeze/thaw intensity used when ageing k.
func ThermalCycles(k Kind) float32 { return Lookup(k).ThermalCycles }

// Package terrain drives the full generation pipeline: progressive noise
// refinement, filtering, and optional geological ageing.
package terrain

import (
	"errors"
	"fmt"

	"terrasim/internal/biome"
	"terrasim/internal/erosion"
	"terrasim/internal/noise"
)

// ErrInvalidRequest wraps every request validation failure.
var ErrInvalidRequest = errors.New("terrain: invalid request")

// MaxSize bounds the output side so a stray step count cannot exhaust memory.
const MaxSize = 8192

// Request describes one terrain to generate.
type Request struct {
	BaseSize     int
	Steps        int
	Seed         uint32
	Biome        biome.Kind
	SeaLevel     float32
	ErosionYears float32

	// Basis picks the octave primitive. The zero value is value noise.
	Basis noise.Basis
	// SmoothIterations runs a 3x3 smoothing pass after everything else.
	SmoothIterations int
	SmoothStrength   float32
}

// OutputSize is the side of the field Generate returns. Each step after the
// first doubles the base size. Sides past MaxSize report MaxSize+1.
func (r Request) OutputSize() int {
	if r.Steps <= 1 {
		return r.BaseSize
	}
	if r.exceedsMaxSize() {
		return MaxSize + 1
	}
	return r.BaseSize << (r.Steps - 1)
}

// exceedsMaxSize compares against MaxSize shifted down so a large step count
// cannot overflow the doubled base.
func (r Request) exceedsMaxSize() bool {
	if r.BaseSize > MaxSize {
		return true
	}
	if r.Steps <= 1 {
		return false
	}
	return r.BaseSize > MaxSize>>(r.Steps-1)
}

// Validate reports request errors wrapped in ErrInvalidRequest.
func (r Request) Validate() error {
	switch {
	case r.BaseSize < 2:
		return fmt.Errorf("%w: base size %d is below 2", ErrInvalidRequest, r.BaseSize)
	case r.Steps < 0:
		return fmt.Errorf("%w: negative steps %d", ErrInvalidRequest, r.Steps)
	case r.exceedsMaxSize():
		return fmt.Errorf("%w: %d steps from %d exceed %d cells per side", ErrInvalidRequest, r.Steps, r.BaseSize, MaxSize)
	case r.SmoothIterations < 0:
		return fmt.Errorf("%w: negative smoothing iterations %d", ErrInvalidRequest, r.SmoothIterations)
	}
	return nil
}

// Eroded reports whether the request ages the terrain.
func (r Request) Eroded() bool { return r.ErosionYears > 0 }

// ErosionParams derives the ageing parameters from the biome preset.
func (r Request) ErosionParams() erosion.Params {
	p := biome.Lookup(r.Biome)
	return erosion.Params{
		Years:             r.ErosionYears,
		SeaLevel:          r.SeaLevel,
		WindStrength:      p.FBM.Amplitude * 0.5,
		RainIntensity:     1,
		TemperatureCycles: p.ThermalCycles,
	}
}

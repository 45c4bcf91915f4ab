// Package render turns height fields and water masks into RGBA pixels.
package render

import (
	"image/color"
	"math"
)

type colorStop struct {
	t   float64
	col color.RGBA
}

// Land colours run from the shoreline (0) to the highest peak (1).
var landStops = []colorStop{
	{0.0, color.RGBA{R: 194, G: 178, B: 128, A: 255}},
	{0.08, color.RGBA{R: 120, G: 160, B: 80, A: 255}},
	{0.35, color.RGBA{R: 70, G: 125, B: 60, A: 255}},
	{0.6, color.RGBA{R: 125, G: 110, B: 90, A: 255}},
	{0.82, color.RGBA{R: 150, G: 145, B: 140, A: 255}},
	{1.0, color.RGBA{R: 245, G: 245, B: 250, A: 255}},
}

// Sea colours run from the deepest cell (0) to the surface (1).
var seaStops = []colorStop{
	{0.0, color.RGBA{R: 15, G: 35, B: 85, A: 255}},
	{0.7, color.RGBA{R: 40, G: 80, B: 150, A: 255}},
	{1.0, color.RGBA{R: 70, G: 130, B: 180, A: 255}},
}

var (
	riverTint = color.RGBA{R: 60, G: 120, B: 210, A: 255}
	beachTint = color.RGBA{R: 230, G: 210, B: 150, A: 255}
)

// LandColor returns the colour for a normalized height above sea level.
func LandColor(t float64) color.RGBA { return rampColor(landStops, t) }

// SeaColor returns the colour for a normalized depth, 1 being the surface.
func SeaColor(t float64) color.RGBA { return rampColor(seaStops, t) }

func rampColor(stops []colorStop, t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	return lerpRGBA(base, overlay, overlayWeight)
}

func scaleColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: scaleColorComponent(c.R, factor),
		G: scaleColorComponent(c.G, factor),
		B: scaleColorComponent(c.B, factor),
		A: c.A,
	}
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package noise

import "math"

// precision is the decimal grid that sample coordinates and hash inputs are
// snapped to. Abutting tiles that compute the same world coordinate through
// different arithmetic paths land on identical lattice inputs after rounding.
const precision = 1_000_000.0

func round6(v float32) float32 {
	return float32(math.Round(float64(v)*precision) / precision)
}

// hash maps n to [0, 1) with a stateless sine hash.
func hash(n float32) float32 {
	x := float32(math.Sin(float64(round6(n)))) * 43758.5453123
	return x - float32(math.Floor(float64(x)))
}

// ValueNoise2D samples smoothstep-interpolated lattice value noise in [0, 1].
func ValueNoise2D(x, y float32) float32 {
	px := round6(x)
	py := round6(y)

	xi := float32(math.Floor(float64(px)))
	yi := float32(math.Floor(float64(py)))
	xf := px - xi
	yf := py - yi

	corner := func(i, j float32) float32 {
		return hash((xi+i)*15731.0 + (yi+j)*789221.0)
	}

	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	a := corner(0, 0)
	b := corner(1, 0)
	c := corner(0, 1)
	d := corner(1, 1)

	return a*(1-u)*(1-v) + b*u*(1-v) + c*(1-u)*v + d*u*v
}

package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Basis selects the primitive that each FBM octave samples. Every basis
// returns values in roughly [0, 1].
type Basis uint8

const (
	// BasisValue is the stateless sine-hash value noise. It is the only basis
	// with the cross-tile rounding guarantee.
	BasisValue Basis = iota
	// BasisPerlin samples gradient noise from a seeded permutation table.
	BasisPerlin
	// BasisSimplex samples normalized OpenSimplex noise.
	BasisSimplex
)

func (b Basis) String() string {
	switch b {
	case BasisValue:
		return "value"
	case BasisPerlin:
		return "perlin"
	case BasisSimplex:
		return "simplex"
	default:
		return fmt.Sprintf("basis(%d)", uint8(b))
	}
}

// ParseBasis converts a basis name into a Basis.
func ParseBasis(name string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "value":
		return BasisValue, nil
	case "perlin":
		return BasisPerlin, nil
	case "simplex", "opensimplex":
		return BasisSimplex, nil
	}
	return BasisValue, fmt.Errorf("unknown noise basis %q", name)
}

// sampler evaluates one octave primitive at (x, y).
type sampler func(x, y float32) float32

func newSampler(b Basis, seed uint32) sampler {
	switch b {
	case BasisPerlin:
		p := perlin.NewPerlin(2, 2, 3, int64(seed))
		return func(x, y float32) float32 {
			v := (p.Noise2D(float64(x), float64(y)) + 1) * 0.5
			return float32(clamp01(v))
		}
	case BasisSimplex:
		n := opensimplex.NewNormalized(int64(seed))
		return func(x, y float32) float32 {
			return float32(clamp01(n.Eval2(float64(x), float64(y))))
		}
	default:
		return ValueNoise2D
	}
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

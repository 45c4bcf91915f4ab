package terrain

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	getter "github.com/hashicorp/go-getter"

	"terrasim/internal/biome"
	"terrasim/internal/noise"
)

// TileConfig describes an optional tile grid cut from the generated terrain.
type TileConfig struct {
	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	TileSize int `json:"tile_size"`
	Overlap  int `json:"overlap"`
}

// Enabled reports whether a tile grid was requested.
func (t TileConfig) Enabled() bool { return t.Rows > 0 && t.Cols > 0 }

// Config is the user-facing form of a Request, loadable from JSON files and
// command-line flags.
type Config struct {
	BaseSize     int     `json:"base_size"`
	Steps        int     `json:"steps"`
	Seed         uint32  `json:"seed"`
	Biome        string  `json:"biome"`
	SeaLevel     float64 `json:"sea_level"`
	ErosionYears float64 `json:"erosion_years"`
	Basis        string  `json:"basis"`

	SmoothIterations int     `json:"smooth_iterations"`
	SmoothStrength   float64 `json:"smooth_strength"`

	Tiles TileConfig `json:"tiles"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		BaseSize:     64,
		Steps:        3,
		Seed:         1337,
		Biome:        biome.Temperate.String(),
		SeaLevel:     100,
		ErosionYears: 0,
		Basis:        noise.BasisValue.String(),
		Tiles:        TileConfig{TileSize: 128, Overlap: 2},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.BaseSize, "base", c.BaseSize, "base grid size")
	fs.IntVar(&c.Steps, "steps", c.Steps, "refinement steps; each after the first doubles the size")
	fs.Func("seed", fmt.Sprintf("noise seed, 0 picks one (default %d)", c.Seed), func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return err
		}
		c.Seed = uint32(v)
		return nil
	})
	fs.StringVar(&c.Biome, "biome", c.Biome, "biome preset: desert, alpine or temperate")
	fs.Float64Var(&c.SeaLevel, "sea", c.SeaLevel, "sea level in per mille of the height range")
	fs.Float64Var(&c.ErosionYears, "years", c.ErosionYears, "years of geological erosion, 0 to skip")
	fs.StringVar(&c.Basis, "basis", c.Basis, "noise basis: value, perlin or simplex")
	fs.IntVar(&c.SmoothIterations, "smooth", c.SmoothIterations, "post smoothing iterations")
	fs.Float64Var(&c.SmoothStrength, "smooth-strength", c.SmoothStrength, "post smoothing strength")
	fs.IntVar(&c.Tiles.Rows, "rows", c.Tiles.Rows, "tile grid rows, 0 disables tiling")
	fs.IntVar(&c.Tiles.Cols, "cols", c.Tiles.Cols, "tile grid columns")
	fs.IntVar(&c.Tiles.TileSize, "tile", c.Tiles.TileSize, "tile size in cells")
	fs.IntVar(&c.Tiles.Overlap, "overlap", c.Tiles.Overlap, "tile overlap in cells")
}

// Apply overlays flag-style key/value pairs onto c. Unknown keys and values
// that fail to parse or validate are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["base_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.BaseSize = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := cfg["biome"]; ok {
		if k, err := biome.Parse(v); err == nil {
			c.Biome = k.String()
		}
	}
	if v, ok := cfg["sea_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SeaLevel = parsed
		}
	}
	if v, ok := cfg["erosion_years"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ErosionYears = parsed
		}
	}
	if v, ok := cfg["basis"]; ok {
		if b, err := noise.ParseBasis(v); err == nil {
			c.Basis = b.String()
		}
	}
	if v, ok := cfg["smooth_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SmoothIterations = parsed
		}
	}
	if v, ok := cfg["smooth_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SmoothStrength = min(max(parsed, 0), 1)
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiles.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiles.Cols = parsed
		}
	}
	if v, ok := cfg["tile_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Tiles.TileSize = parsed
		}
	}
	if v, ok := cfg["overlap"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiles.Overlap = parsed
		}
	}
	return c
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["base"] {
		cfg.BaseSize = fromFile.BaseSize
	}
	if !explicitFlags["steps"] {
		cfg.Steps = fromFile.Steps
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["biome"] {
		cfg.Biome = fromFile.Biome
	}
	if !explicitFlags["sea"] {
		cfg.SeaLevel = fromFile.SeaLevel
	}
	if !explicitFlags["years"] {
		cfg.ErosionYears = fromFile.ErosionYears
	}
	if !explicitFlags["basis"] {
		cfg.Basis = fromFile.Basis
	}
	if !explicitFlags["smooth"] {
		cfg.SmoothIterations = fromFile.SmoothIterations
	}
	if !explicitFlags["smooth-strength"] {
		cfg.SmoothStrength = fromFile.SmoothStrength
	}
	if !explicitFlags["rows"] {
		cfg.Tiles.Rows = fromFile.Tiles.Rows
	}
	if !explicitFlags["cols"] {
		cfg.Tiles.Cols = fromFile.Tiles.Cols
	}
	if !explicitFlags["tile"] {
		cfg.Tiles.TileSize = fromFile.Tiles.TileSize
	}
	if !explicitFlags["overlap"] {
		cfg.Tiles.Overlap = fromFile.Tiles.Overlap
	}
}

// ExplicitFlags collects the names of flags set on the command line.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// LoadConfig fetches a JSON config from src, which may be a local path or
// any source go-getter understands (https, s3, git, ...). Fields missing from
// the file keep their defaults.
func LoadConfig(ctx context.Context, src string) (*Config, error) {
	dir, err := os.MkdirTemp("", "terrasim-config-")
	if err != nil {
		return nil, fmt.Errorf("terrain: config temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("terrain: working directory: %w", err)
	}
	dst := filepath.Join(dir, "config.json")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("terrain: fetch config %q: %w", src, err)
	}

	raw, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("terrain: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("terrain: decode config %q: %w", src, err)
	}
	return &cfg, nil
}

// Request converts the config into a validated Request.
func (c Config) Request() (Request, error) {
	kind, err := biome.Parse(c.Biome)
	if err != nil {
		return Request{}, err
	}
	basis, err := noise.ParseBasis(c.Basis)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	req := Request{
		BaseSize:         c.BaseSize,
		Steps:            c.Steps,
		Seed:             c.Seed,
		Biome:            kind,
		SeaLevel:         float32(c.SeaLevel),
		ErosionYears:     float32(c.ErosionYears),
		Basis:            basis,
		SmoothIterations: c.SmoothIterations,
		SmoothStrength:   float32(c.SmoothStrength),
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// TileGridRequest converts the config into a tile grid request.
func (c Config) TileGridRequest() (TileGridRequest, error) {
	req, err := c.Request()
	if err != nil {
		return TileGridRequest{}, err
	}
	return TileGridRequest{
		Request:  req,
		Rows:     c.Tiles.Rows,
		Cols:     c.Tiles.Cols,
		TileSize: c.Tiles.TileSize,
		Overlap:  c.Tiles.Overlap,
	}, nil
}

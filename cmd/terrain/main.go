package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"terrasim/internal/core"
	"terrasim/internal/export"
	"terrasim/internal/render"
	"terrasim/internal/terrain"
	pcore "terrasim/pkg/core"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := terrain.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	configSrc := flag.String("config", "", "JSON config file or go-getter URL")
	outDir := flag.String("out", ".", "output directory")
	name := flag.String("name", "terrain", "output file prefix")
	writeTIFF := flag.Bool("tiff", false, "also write a 16-bit TIFF height map")
	writeShaded := flag.Bool("shade", true, "write a colour-shaded PNG")
	describe := flag.Bool("describe", false, "print the resolved parameters and exit")
	verbose := flag.Bool("v", false, "debug logging")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *configSrc != "" {
		fromFile, err := terrain.LoadConfig(ctx, *configSrc)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		terrain.Merge(&cfg, fromFile, terrain.ExplicitFlags(flag.CommandLine))
	}
	cfg = cfg.Apply(parseOverrides(overrides, log))
	if cfg.Seed == 0 {
		cfg.Seed = pcore.NewRNG(time.Now().UnixNano()).Seed()
		log.Info("picked seed", "seed", cfg.Seed)
	}

	if *describe {
		req, err := cfg.Request()
		if err != nil {
			log.Error("invalid config", "error", err)
			os.Exit(1)
		}
		printSnapshot(req.Parameters())
		return
	}

	if err := run(ctx, log, cfg, outputs{dir: *outDir, name: *name, tiff: *writeTIFF, shaded: *writeShaded}); err != nil {
		log.Error("generate", "error", err)
		os.Exit(1)
	}
}

type outputs struct {
	dir    string
	name   string
	tiff   bool
	shaded bool
}

func (o outputs) path(suffix string) string {
	return filepath.Join(o.dir, o.name+suffix)
}

func run(ctx context.Context, log *slog.Logger, cfg terrain.Config, out outputs) error {
	if err := os.MkdirAll(out.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	gen := terrain.New(log)

	if cfg.Tiles.Enabled() {
		req, err := cfg.TileGridRequest()
		if err != nil {
			return err
		}
		grid, err := gen.GenerateTileGrid(ctx, req)
		if err != nil {
			return err
		}
		for i, tile := range grid.Atlas.Tiles {
			r, c := i/grid.Atlas.Cols, i%grid.Atlas.Cols
			if err := export.WritePNG(out.path(fmt.Sprintf("_tile_%d_%d.png", r, c)), export.Heightmap16(tile)); err != nil {
				return err
			}
		}
		atlasImg := export.Gray16(grid.Atlas.Width, grid.Atlas.Height, grid.Atlas.Data)
		if err := export.WritePNG(out.path("_atlas.png"), atlasImg); err != nil {
			return err
		}
		meta := export.NewMeta(grid.Field, req.Seed, req.Biome, req.ErosionYears, grid.Water).
			WithAtlas(grid.Atlas).
			WithTimings(grid.Timings)
		if err := export.WriteMeta(out.path("_atlas.json"), meta); err != nil {
			return err
		}
		log.Info("tile grid written", "tiles", len(grid.Atlas.Tiles), "dir", out.dir)
		return nil
	}

	req, err := cfg.Request()
	if err != nil {
		return err
	}
	res, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	return writeTerrain(log, req, res, out)
}

func writeTerrain(log *slog.Logger, req terrain.Request, res terrain.Result, out outputs) error {
	height := export.Heightmap16(res.Field)
	if err := export.WritePNG(out.path(".png"), height); err != nil {
		return err
	}
	if out.tiff {
		if err := export.WriteTIFF(out.path(".tiff"), height); err != nil {
			return err
		}
	}
	if out.shaded {
		shaded := render.Shade(res.Field, res.Water, render.DefaultOptions(req.SeaLevel/1000))
		if err := export.WritePNG(out.path("_shaded.png"), shaded); err != nil {
			return err
		}
	}
	meta := export.NewMeta(res.Field, req.Seed, req.Biome, req.ErosionYears, res.Water).WithTimings(res.Timings)
	if err := export.WriteMeta(out.path(".json"), meta); err != nil {
		return err
	}
	log.Info("terrain written", "size", res.Field.Size(), "dir", out.dir, "name", out.name)
	return nil
}

func parseOverrides(list kvList, log *slog.Logger) map[string]string {
	out := make(map[string]string, len(list))
	for _, kv := range list {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Warn("ignoring malformed override", "value", kv)
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

func printSnapshot(snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		header := g.Name
		if g.Summary != "" {
			header += " (" + g.Summary + ")"
		}
		fmt.Println(header)
		for _, p := range g.Params {
			fmt.Printf("  %-28s %-8s %s\n", p.Label, p.Type, p.Value)
		}
	}
}

//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"terrasim/internal/app"
	"terrasim/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := terrain.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	configSrc := flag.String("config", "", "JSON config file or go-getter URL")
	scale := flag.Int("scale", 2, "pixel scale multiplier")
	hudWidth := flag.Int("hud", 260, "parameter panel width in pixels, 0 hides it")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	if *configSrc != "" {
		fromFile, err := terrain.LoadConfig(ctx, *configSrc)
		if err != nil {
			log.Fatal(err)
		}
		terrain.Merge(&cfg, fromFile, terrain.ExplicitFlags(flag.CommandLine))
	}
	req, err := cfg.Request()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(ctx, logger, req, *scale, *hudWidth)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Size()
	ebiten.SetWindowTitle("terrasim: " + req.Biome.String())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"terrasim/internal/terrain"
)

func main() {
	cfg := terrain.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	yearsFlag := flag.String("sweep", "0,10,50,100,250,500,1000,2000", "comma-separated erosion spans to compare")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent generations")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	years, err := parseYears(*yearsFlag)
	if err != nil {
		log.Error("parse sweep", "error", err)
		os.Exit(1)
	}
	req, err := cfg.Request()
	if err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Sweeping %d erosion spans (%d workers, %s, seed %d, size %d)\n",
		len(years), *workers, req.Biome, req.Seed, req.OutputSize())

	start := time.Now()
	results, err := terrain.New(log).ErosionSweep(ctx, req, years, *workers)
	if err != nil {
		log.Error("sweep", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\n%8s %9s %9s %9s %7s %7s %10s %10s %10s\n",
		"years", "mean", "min", "max", "water", "river", "eroded", "deposited", "time")
	for _, r := range results {
		fmt.Printf("%8.0f %9.4f %9.4f %9.4f %6.1f%% %6.1f%% %10.4f %10.4f %10s\n",
			r.Years, r.Mean, r.Min, r.Max, r.WaterCoverage*100, r.RiverCoverage*100,
			r.Eroded, r.Deposited, r.Duration.Round(time.Millisecond))
	}
	fmt.Printf("\nTotal elapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func parseYears(s string) ([]float32, error) {
	var out []float32
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("year %q: %w", part, err)
		}
		out = append(out, float32(v))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no erosion spans given")
	}
	return out, nil
}

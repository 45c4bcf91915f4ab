//go:build ebiten

package app

import (
	"context"
	"fmt"
	"log/slog"

	"terrasim/internal/biome"
	"terrasim/internal/render"
	"terrasim/internal/terrain"
	"terrasim/internal/ui"
	pcore "terrasim/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultYears is the erosion span used when erosion is toggled on from a
// request that had none.
const defaultYears = 500

// Game adapts the terrain generator to the ebiten.Game interface. Every
// regeneration runs synchronously inside Update.
type Game struct {
	ctx context.Context
	gen *terrain.Generator
	log *slog.Logger
	rng *pcore.RNG

	req       terrain.Request
	lastYears float32
	res       terrain.Result

	img       *ebiten.Image
	buf       []byte
	hillshade bool

	overlay *ui.Overlay
	hud     *ui.HUD
	scale   int
}

// New generates the initial terrain for req and returns a Game showing it.
func New(ctx context.Context, log *slog.Logger, req terrain.Request, scale, hudWidth int) (*Game, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		ctx:       ctx,
		gen:       terrain.New(log),
		log:       log,
		rng:       pcore.NewRNG(int64(req.Seed)),
		req:       req,
		lastYears: req.ErosionYears,
		hillshade: true,
		overlay:   ui.NewOverlay(scale),
		hud:       ui.NewHUD("terrasim", hudWidth),
		scale:     scale,
	}
	if g.lastYears <= 0 {
		g.lastYears = defaultYears
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Size reports the window size needed at the configured scale.
func (g *Game) Size() (int, int) {
	n := g.req.OutputSize() * g.scale
	return n + g.hud.Width(), n
}

func (g *Game) regenerate() error {
	res, err := g.gen.Generate(g.ctx, g.req)
	if err != nil {
		return err
	}
	g.res = res
	n := res.Field.Size()
	if g.img == nil || g.img.Bounds().Dx() != n {
		g.img = ebiten.NewImage(n, n)
		g.buf = make([]byte, 4*n*n)
	}
	g.repaint()
	return nil
}

func (g *Game) repaint() {
	opts := render.DefaultOptions(g.req.SeaLevel / 1000)
	opts.Hillshade = g.hillshade
	render.FillRGBA(g.buf, g.res.Field, g.res.Water, opts)
	g.img.WritePixels(g.buf)
}

// Update handles key input and regenerates the terrain when asked to.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dirty := false
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.req.Seed = g.rng.Seed()
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.req.Biome = (g.req.Biome + 1) % biome.Kind(len(biome.Kinds()))
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if g.req.Eroded() {
			g.lastYears = g.req.ErosionYears
			g.req.ErosionYears = 0
		} else {
			g.req.ErosionYears = g.lastYears
		}
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		next := g.req
		next.Steps++
		if next.Validate() == nil {
			g.req = next
			dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.req.Steps > 1 {
		g.req.Steps--
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.hillshade = !g.hillshade
		g.repaint()
	}

	if dirty {
		if err := g.regenerate(); err != nil {
			return fmt.Errorf("regenerate: %w", err)
		}
		if w, h := g.Size(); w > 0 && h > 0 {
			ebiten.SetWindowSize(w, h)
		}
		g.log.Info("terrain regenerated", "seed", g.req.Seed, "biome", g.req.Biome.String(), "size", g.res.Field.Size())
	}

	g.overlay.Update()
	status := append(ui.KeyHelp(), fmt.Sprintf("layers: %v", g.overlay.Layers()))
	g.hud.Update(g.req, status...)
	return nil
}

// Draw renders the shaded terrain, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.overlay.Draw(screen, g.res.Water)
	n := g.res.Field.Size() * g.scale
	g.hud.Draw(screen, n, n)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.res.Field.Size() * g.scale
	return n + g.hud.Width(), n
}

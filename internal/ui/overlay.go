//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"terrasim/internal/hydrology"
	"terrasim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	waterTint = color.RGBA{R: 64, G: 164, B: 223}
	riverTint = color.RGBA{R: 90, G: 200, B: 255}
	beachTint = color.RGBA{R: 255, G: 220, B: 140}
	flowTint  = color.RGBA{R: 255, G: 120, B: 40}
)

// Overlay draws the hydrology masks on top of the shaded terrain.
type Overlay struct {
	scale     int
	showWater bool
	showRiver bool
	showBeach bool
	showFlow  bool

	maskImg *ebiten.Image
	maskBuf []byte
	flowBuf []float32
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale}
}

// Update toggles layers: 1 water, 2 rivers, 3 beaches, 4 flow.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWater = !o.showWater
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showRiver = !o.showRiver
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBeach = !o.showBeach
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showFlow = !o.showFlow
	}
}

// Layers names the active layers for the HUD status line.
func (o *Overlay) Layers() []string {
	var out []string
	for _, l := range []struct {
		on   bool
		name string
	}{
		{o.showWater, "water"},
		{o.showRiver, "rivers"},
		{o.showBeach, "beaches"},
		{o.showFlow, "flow"},
	} {
		if l.on {
			out = append(out, l.name)
		}
	}
	return out
}

// Draw renders the enabled masks. Nothing is drawn without water features.
func (o *Overlay) Draw(screen *ebiten.Image, water *hydrology.Features) {
	if water == nil || water.Size <= 0 {
		return
	}
	n := water.Size
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != n {
		o.maskImg = ebiten.NewImage(n, n)
		o.maskBuf = make([]byte, 4*n*n)
	}

	if o.showWater {
		o.drawMask(screen, water.Water, waterTint)
	}
	if o.showBeach {
		o.drawMask(screen, water.Beach, beachTint)
	}
	if o.showRiver {
		o.drawMask(screen, water.River, riverTint)
	}
	if o.showFlow {
		o.drawMask(screen, o.logFlow(water), flowTint)
	}
}

// logFlow compresses flow accumulation into [0,1] on a log scale so
// tributaries stay visible next to the main stems.
func (o *Overlay) logFlow(water *hydrology.Features) []float32 {
	if len(o.flowBuf) != len(water.Flow) {
		o.flowBuf = make([]float32, len(water.Flow))
	}
	top := math.Log1p(float64(water.MaxFlow()))
	for i, f := range water.Flow {
		if top <= 0 {
			o.flowBuf[i] = 0
			continue
		}
		o.flowBuf[i] = float32(math.Log1p(float64(f)) / top)
	}
	return o.flowBuf
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	render.MaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

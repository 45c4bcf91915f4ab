//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"terrasim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the terrain view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     []string
	title      string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Parameters"
	}
	return &HUD{width: width, title: title}
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and the free-form status lines.
func (h *HUD) Update(provider core.ParameterProvider, status ...string) {
	if h == nil {
		return
	}
	if provider == nil {
		h.snapshot = core.ParameterSnapshot{}
	} else {
		h.snapshot = provider.Parameters()
	}
	h.status = status
}

// Draw paints the HUD panel at offsetX, as tall as the terrain view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText(height int) {
	face := basicfont.Face7x13
	var (
		titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		groupColor = color.RGBA{R: 150, G: 190, B: 230, A: 255}
		labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	)

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += groupSpacing

	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineHeight
	}

	for _, group := range h.snapshot.Groups {
		if y > height-panelPadding {
			return
		}
		y += groupSpacing - lineHeight
		header := group.Name
		if group.Summary != "" {
			header += " (" + group.Summary + ")"
		}
		text.Draw(h.panel, header, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			if y > height-panelPadding {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			value := p.Value
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineHeight
		}
	}
}

// KeyHelp lists the viewer key bindings, one per line.
func KeyHelp() []string {
	return strings.Split(keyHelp, "\n")
}

const keyHelp = `R regenerate   S new seed
B next biome   E toggle erosion
Up/Down steps  L hillshade
1-4 layers     Q quit`

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 24
	headerBaseline = 18
)

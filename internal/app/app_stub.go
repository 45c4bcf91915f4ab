//go:build !ebiten

package app

import (
	"context"
	"errors"
	"log/slog"

	"terrasim/internal/terrain"
)

// ErrNoGUI is returned by New when the ebiten build tag is absent.
var ErrNoGUI = errors.New("app: the viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New always fails in the headless build.
func New(context.Context, *slog.Logger, terrain.Request, int, int) (*Game, error) {
	return nil, ErrNoGUI
}

// Size returns zeros in the headless build.
func (g *Game) Size() (int, int) { return 0, 0 }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

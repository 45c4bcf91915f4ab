package terrain

import (
	"context"
	"fmt"
	"math"

	"terrasim/internal/atlas"
	"terrasim/internal/core"
	"terrasim/internal/hydrology"
)

// maxTileSteps caps the refinement steps spent on a tile grid.
const maxTileSteps = 6

// TileGridRequest asks for a terrain cut into Rows*Cols overlapping tiles.
// Request.Steps is ignored; the step count is derived from the atlas size.
type TileGridRequest struct {
	Request

	Rows     int
	Cols     int
	TileSize int
	Overlap  int
}

// TileGrid is a packed atlas plus the field it was cut from.
type TileGrid struct {
	Atlas *atlas.Atlas
	Field *core.HeightField
	// Water belongs to the field before it was resampled to the atlas side.
	Water   *hydrology.Features
	Timings []core.StageTiming
}

// TileGridSteps returns the refinement steps needed to reach side from base,
// capped at six.
func TileGridSteps(side, base int) int {
	if base <= 0 {
		return 1
	}
	steps := math.Ceil(math.Log2(float64(side) / float64(base)))
	return min(int(max(steps, 0))+1, maxTileSteps)
}

// GenerateTileGrid generates one terrain large enough to cover the atlas,
// resamples it to the atlas side and cuts the tiles out of it.
func (g *Generator) GenerateTileGrid(ctx context.Context, req TileGridRequest) (*TileGrid, error) {
	layout, err := atlas.NewLayout(req.Rows, req.Cols, req.TileSize, req.Overlap)
	if err != nil {
		return nil, err
	}
	side := layout.Side()

	base := req.Request
	base.Steps = TileGridSteps(side, base.BaseSize)
	g.log.Info("tile grid", "rows", req.Rows, "cols", req.Cols, "side", side, "steps", base.Steps)

	res, err := g.Generate(ctx, base)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("terrain: tile grid: %w", err)
	}

	timer := core.NewStageTimer()
	var field *core.HeightField
	timer.Track("atlas.resample", func() {
		field = res.Field.Resample(side)
	})
	var packed *atlas.Atlas
	timer.Track("atlas.pack", func() {
		packed, err = atlas.Pack(field, req.Rows, req.Cols, req.TileSize, req.Overlap)
	})
	if err != nil {
		return nil, err
	}

	return &TileGrid{
		Atlas:   packed,
		Field:   field,
		Water:   res.Water,
		Timings: append(res.Timings, timer.Stages()...),
	}, nil
}

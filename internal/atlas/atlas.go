// Package atlas cuts a square height field into an overlapping tile grid and
// lays the tiles' inner regions out as one texture atlas.
package atlas

import (
	"errors"
	"fmt"

	"terrasim/internal/core"
)

// ErrGeometry reports a tile layout that cannot be packed.
var ErrGeometry = errors.New("atlas: invalid geometry")

// Rect is a tile's inner region in atlas UV space.
type Rect struct {
	U0 float32 `json:"u0"`
	V0 float32 `json:"v0"`
	U1 float32 `json:"u1"`
	V1 float32 `json:"v1"`
}

// Layout is the validated geometry of a tile grid.
type Layout struct {
	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	TileSize int `json:"tile_size"`
	Overlap  int `json:"overlap"`

	InnerSize int `json:"inner_size"`
	Width     int `json:"width"`
	Height    int `json:"height"`
}

// NewLayout validates the grid geometry. Tiles share Overlap cells with their
// neighbours on every side, so the inner size must stay positive.
func NewLayout(rows, cols, tileSize, overlap int) (Layout, error) {
	if rows <= 0 || cols <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d tiles", ErrGeometry, rows, cols)
	}
	if overlap < 0 {
		return Layout{}, fmt.Errorf("%w: negative overlap %d", ErrGeometry, overlap)
	}
	inner := tileSize - 2*overlap
	if inner <= 0 {
		return Layout{}, fmt.Errorf("%w: tile %d with overlap %d leaves no inner region", ErrGeometry, tileSize, overlap)
	}
	return Layout{
		Rows: rows, Cols: cols, TileSize: tileSize, Overlap: overlap,
		InnerSize: inner,
		Width:     cols * inner,
		Height:    rows * inner,
	}, nil
}

// Side is the square field size needed to cover the atlas.
func (l Layout) Side() int { return max(l.Width, l.Height) }

// Rect returns the UV rectangle of tile (r, c).
func (l Layout) Rect(r, c int) Rect {
	w, h := float32(l.Width), float32(l.Height)
	return Rect{
		U0: float32(c*l.InnerSize) / w,
		V0: float32(r*l.InnerSize) / h,
		U1: float32((c+1)*l.InnerSize) / w,
		V1: float32((r+1)*l.InnerSize) / h,
	}
}

// Atlas holds the packed tiles and the atlas image.
type Atlas struct {
	Layout

	// Data is Width*Height heights, row-major.
	Data  []float32
	Tiles []*core.HeightField
	Rects []Rect
}

// Pack copies tiles out of field, which should be at least Layout.Side()
// wide. Tile (r, c) starts at (c*inner, r*inner); cells past the field edge
// read as zero. The atlas image samples field directly.
func Pack(field *core.HeightField, rows, cols, tileSize, overlap int) (*Atlas, error) {
	l, err := NewLayout(rows, cols, tileSize, overlap)
	if err != nil {
		return nil, err
	}

	a := &Atlas{
		Layout: l,
		Data:   make([]float32, l.Width*l.Height),
		Tiles:  make([]*core.HeightField, 0, rows*cols),
		Rects:  make([]Rect, 0, rows*cols),
	}

	n := field.Size()
	src := field.Data()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tile := core.New(tileSize)
			dst := tile.Data()
			x0, y0 := c*l.InnerSize, r*l.InnerSize
			for y := 0; y < tileSize; y++ {
				sy := y0 + y
				if sy >= n {
					break
				}
				for x := 0; x < tileSize; x++ {
					sx := x0 + x
					if sx >= n {
						break
					}
					dst[y*tileSize+x] = src[sy*n+sx]
				}
			}
			a.Tiles = append(a.Tiles, tile)
			a.Rects = append(a.Rects, l.Rect(r, c))
		}
	}

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			a.Data[y*l.Width+x] = field.At(x, y)
		}
	}
	return a, nil
}

// Tile returns tile (r, c), or nil when out of range.
func (a *Atlas) Tile(r, c int) *core.HeightField {
	if r < 0 || c < 0 || r >= a.Rows || c >= a.Cols {
		return nil
	}
	return a.Tiles[r*a.Cols+c]
}

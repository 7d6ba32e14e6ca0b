//go:build ebiten

package render

import (
	"image/color"

	"github.com/mazewalker/lifesim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from grid state and draws it scaled.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows*cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the grid into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		return
	}
	fillRGBA(gp.buf, g, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

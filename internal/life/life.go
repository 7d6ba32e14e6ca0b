// Package life implements the Game of Life transition rule on a bounded grid.
package life

import "github.com/mazewalker/lifesim/internal/core"

// CountLiveNeighbors sums the live cells in the Moore neighborhood of
// (row, col). The grid has hard edges: neighbors outside the bounds count as
// dead, so corner cells see at most 3 neighbors and edge cells at most 5.
func CountLiveNeighbors(g *core.Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.InBounds(r, c) && g.Alive(r, c) {
				count++
			}
		}
	}
	return count
}

// Next computes the following generation and returns it as a new grid. Every
// cell is decided from the input generation only; the input grid is never
// mutated, so neighbor counts stay consistent across the whole pass.
func Next(g *core.Grid) *core.Grid {
	next := g.ZeroedLike()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			n := CountLiveNeighbors(g, row, col)
			next.Set(row, col, (g.Alive(row, col) && n == 2) || n == 3)
		}
	}
	return next
}

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension reports a grid construction attempt with non-positive
// rows or columns.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid stores a rectangular matrix of cell states in row-major order. The
// dimensions are fixed at construction; resizing means building a new Grid.
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// Randomized allocates a grid where each cell is independently alive with
// probability 1/2, drawn from the provided source.
func Randomized(rows, cols int, rng *RNG) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = rng.Bool()
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports the state of the cell at (row, col). Out-of-range indices are
// a programming error and panic.
func (g *Grid) Alive(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Set assigns the state of the cell at (row, col). Out-of-range indices are a
// programming error and panic.
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.index(row, col)] = alive
}

// ZeroedLike returns a new all-dead grid with the same dimensions.
func (g *Grid) ZeroedLike() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
}

// RandomizedLike returns a new grid with the same dimensions, each cell
// independently alive with probability 1/2.
func (g *Grid) RandomizedLike(rng *RNG) *Grid {
	n := g.ZeroedLike()
	for i := range n.cells {
		n.cells[i] = rng.Bool()
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	n := g.ZeroedLike()
	copy(n.cells, g.cells)
	return n
}

// Equal reports whether both grids have identical dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, alive := range g.cells {
		if alive != o.cells[i] {
			return false
		}
	}
	return true
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

package life

import (
	"testing"

	"github.com/mazewalker/lifesim/internal/core"
)

func newGrid(t *testing.T, rows, cols int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestAllDeadGridIsFixedPoint(t *testing.T) {
	g := newGrid(t, 6, 8)
	next := Next(Next(g))
	if !next.Equal(g) {
		t.Fatal("all-dead grid did not stay all-dead across two generations")
	}
}

func TestLoneCellDies(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.Set(2, 2, true)
	next := Next(g)
	if n := next.CountAlive(); n != 0 {
		t.Fatalf("lone cell left %d live cells, want 0", n)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.Set(1, 1, true)
	g.Set(1, 2, true)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	if next := Next(g); !next.Equal(g) {
		t.Fatal("2x2 block changed after one generation")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	assertPattern := func(g *core.Grid, want map[[2]int]bool, label string) {
		t.Helper()
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				alive := g.Alive(row, col)
				if want[[2]int{row, col}] != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, row, col, alive, !alive)
				}
			}
		}
	}

	gen1 := Next(g)
	assertPattern(gen1, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "first step")

	gen2 := Next(gen1)
	assertPattern(gen2, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "second step")
}

func TestNeighborCountsRespectHardEdges(t *testing.T) {
	g := newGrid(t, 4, 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			g.Set(row, col, true)
		}
	}

	if n := CountLiveNeighbors(g, 0, 0); n != 3 {
		t.Fatalf("corner cell has %d neighbors, want 3", n)
	}
	if n := CountLiveNeighbors(g, 0, 2); n != 5 {
		t.Fatalf("edge cell has %d neighbors, want 5", n)
	}
	if n := CountLiveNeighbors(g, 1, 1); n != 8 {
		t.Fatalf("interior cell has %d neighbors, want 8", n)
	}
}

func TestNeighborCountExcludesCenterCell(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.Set(1, 1, true)
	if n := CountLiveNeighbors(g, 1, 1); n != 0 {
		t.Fatalf("cell counted itself: got %d neighbors, want 0", n)
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	before := g.Clone()

	Next(g)
	if !g.Equal(before) {
		t.Fatal("Next mutated its input grid")
	}
}

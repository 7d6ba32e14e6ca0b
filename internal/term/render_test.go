package term

import (
	"strings"
	"testing"

	"github.com/mazewalker/lifesim/internal/core"
	"github.com/mazewalker/lifesim/internal/sim"
)

func newTestController(t *testing.T) *sim.Controller {
	t.Helper()
	ctrl, err := sim.New(5, 5, sim.DefaultConfig(), core.NewRNG(3))
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return ctrl
}

func TestRenderFrameShowsGridAndStatus(t *testing.T) {
	g, err := core.NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(0, 0, true)
	g.Set(1, 2, true)

	frame := renderFrame(g, false, 10, 7)
	if !strings.HasPrefix(frame, clearScreen) {
		t.Fatal("frame does not start with the clear-screen sequence")
	}

	lines := strings.Split(strings.TrimPrefix(frame, clearScreen), "\r\n")
	want := []string{"#...", "..#.", "...."}
	for i, row := range want {
		if lines[i] != row {
			t.Fatalf("row %d = %q, want %q", i, lines[i], row)
		}
	}
	if !strings.Contains(frame, "Status: Running") {
		t.Fatal("frame missing running status")
	}
	if !strings.Contains(frame, "Speed: 10 updates/s") {
		t.Fatal("frame missing speed")
	}
	if !strings.Contains(frame, "Generation: 7") {
		t.Fatal("frame missing generation count")
	}
}

func TestRenderFrameEmitsExactCellLines(t *testing.T) {
	g, err := core.NewGrid(2, 5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	frame := renderFrame(g, true, 1, 0)
	lines := strings.Split(strings.TrimPrefix(frame, clearScreen), "\r\n")
	for i := 0; i < 2; i++ {
		if len(lines[i]) != 5 {
			t.Fatalf("cell line %d has %d runes, want 5", i, len(lines[i]))
		}
	}
	if lines[2] != "" {
		t.Fatalf("expected blank separator after cell lines, got %q", lines[2])
	}
	if !strings.Contains(frame, "Status: Paused") {
		t.Fatal("frame missing paused status")
	}
}

func TestHandleKeyMapsCommands(t *testing.T) {
	ctrl := newTestController(t)

	if quit := handleKey(ctrl, ' '); quit || !ctrl.Paused() {
		t.Fatal("space did not pause")
	}
	if quit := handleKey(ctrl, ' '); quit || ctrl.Paused() {
		t.Fatal("space did not resume")
	}

	handleKey(ctrl, 'c')
	if n := ctrl.Grid().CountAlive(); n != 0 {
		t.Fatalf("grid has %d live cells after 'c', want 0", n)
	}

	handleKey(ctrl, '\r')
	if n := ctrl.Grid().CountAlive(); n != 1 {
		t.Fatalf("grid has %d live cells after enter, want 1", n)
	}

	rate := ctrl.Rate()
	handleKey(ctrl, '+')
	if ctrl.Rate() <= rate {
		t.Fatal("'+' did not raise the rate")
	}
	handleKey(ctrl, '-')
	if ctrl.Rate() != rate {
		t.Fatal("'-' did not lower the rate back")
	}

	for _, key := range []byte{'q', 'Q', 0x1b, 0x03} {
		if !handleKey(ctrl, key) {
			t.Fatalf("key %#x did not request quit", key)
		}
	}
	if handleKey(ctrl, 'x') {
		t.Fatal("unmapped key requested quit")
	}
}

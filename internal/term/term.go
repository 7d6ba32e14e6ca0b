// Package term is the text front end: it renders the grid as characters and
// maps raw-mode key presses onto controller commands.
package term

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mazewalker/lifesim/internal/core"
	"github.com/mazewalker/lifesim/internal/sim"

	"golang.org/x/term"
)

// pollInterval bounds input latency independently of the simulation rate.
const pollInterval = time.Second / 60

// Run puts the terminal into raw mode and drives the controller until the
// user quits with q, Esc, or Ctrl+C.
func Run(ctrl *sim.Controller) error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, old)
	defer fmt.Fprint(os.Stdout, "\r\n")

	return run(ctrl, readKeys(os.Stdin), os.Stdout)
}

func run(ctrl *sim.Controller, keys <-chan byte, out io.Writer) error {
	step := core.NewFixedStep(ctrl.Rate())
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	redraw(ctrl, out)
	for range ticker.C {
		dirty := false
	drain:
		for {
			select {
			case key, ok := <-keys:
				if !ok {
					return nil
				}
				if quit := handleKey(ctrl, key); quit {
					return nil
				}
				dirty = true
			default:
				break drain
			}
		}

		if rate := ctrl.Rate(); rate != step.TPS() {
			step.SetTPS(rate)
		}
		if step.ShouldStep() && !ctrl.Paused() {
			ctrl.Tick()
			dirty = true
		}
		if dirty {
			redraw(ctrl, out)
		}
	}
	return nil
}

func redraw(ctrl *sim.Controller, out io.Writer) {
	fmt.Fprint(out, renderFrame(ctrl.Grid(), ctrl.Paused(), ctrl.Rate(), ctrl.Generation()))
}

// handleKey forwards one key press to the controller and reports whether the
// session should end.
func handleKey(ctrl *sim.Controller, key byte) bool {
	switch key {
	case 'q', 'Q', 0x1b, 0x03: // q, Esc, Ctrl+C
		return true
	case ' ':
		ctrl.TogglePause()
	case 'r', 'R':
		ctrl.ResetRandom()
	case 'c', 'C':
		ctrl.Clear()
	case '+', '=':
		ctrl.SpeedUp()
	case '-':
		ctrl.SpeedDown()
	case '\r', '\n':
		ctrl.SeedRandomCell()
	case 'n', 'N':
		ctrl.StepOnce()
	}
	return false
}

// readKeys pumps single bytes from r into a channel so the main loop can poll
// for input without blocking.
func readKeys(r io.Reader) <-chan byte {
	ch := make(chan byte, 8)
	go func() {
		defer close(ch)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				ch <- buf[0]
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

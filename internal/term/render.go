package term

import (
	"fmt"
	"strings"

	"github.com/mazewalker/lifesim/internal/core"
)

// clearScreen erases the terminal and homes the cursor before each redraw.
const clearScreen = "\x1b[2J\x1b[H"

const controlsLine = "Controls: space pause/resume  r random  c clear  +/- speed  enter seed cell  n step  q quit"

// renderFrame builds one full screen: the grid as '#'/'.' rows followed by the
// controls and status footer. Lines end in CRLF because the terminal is in raw
// mode while the frame is shown.
func renderFrame(g *core.Grid, paused bool, rate, generation int) string {
	var b strings.Builder
	b.Grow(len(clearScreen) + (g.Cols()+2)*g.Rows() + 160)
	b.WriteString(clearScreen)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.Alive(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(controlsLine)
	b.WriteString("\r\n")
	status := "Running"
	if paused {
		status = "Paused"
	}
	fmt.Fprintf(&b, "Status: %s  Speed: %d updates/s  Generation: %d\r\n", status, rate, generation)
	return b.String()
}

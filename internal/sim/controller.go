// Package sim holds the interactive simulation controller that both front
// ends drive.
package sim

import (
	"github.com/mazewalker/lifesim/internal/core"
	"github.com/mazewalker/lifesim/internal/life"
)

// Config holds the speed bounds for an interactive session. All values are in
// updates per second.
type Config struct {
	MinRate     int
	MaxRate     int
	RateStep    int
	InitialRate int
}

// DefaultConfig returns the reference speed settings.
func DefaultConfig() Config {
	return Config{MinRate: 1, MaxRate: 60, RateStep: 5, InitialRate: 10}
}

// Controller wraps a grid and the transition rule with interactive session
// state: the paused flag, the bounded update rate, and a generation counter.
// It never renders or reads input; front ends forward commands to it and read
// the grid back for display. All methods are synchronous and single-threaded.
type Controller struct {
	grid       *core.Grid
	rng        *core.RNG
	cfg        Config
	paused     bool
	rate       int
	generation int
}

// New constructs a controller with a randomized grid of the given dimensions.
// It fails with core.ErrInvalidDimension when rows or cols are non-positive.
func New(rows, cols int, cfg Config, rng *core.RNG) (*Controller, error) {
	grid, err := core.Randomized(rows, cols, rng)
	if err != nil {
		return nil, err
	}
	return &Controller{
		grid: grid,
		rng:  rng,
		cfg:  cfg,
		rate: clamp(cfg.InitialRate, cfg.MinRate, cfg.MaxRate),
	}, nil
}

// Grid returns the current generation. Callers must treat it as read-only;
// only the controller's own commands replace it.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.paused }

// Rate returns the current update rate in updates per second.
func (c *Controller) Rate() int { return c.rate }

// Generation returns how many generations have been applied since the last
// reset or clear.
func (c *Controller) Generation() int { return c.generation }

// TogglePause flips between running and paused.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// ResetRandom replaces the grid with a freshly randomized one of the same
// dimensions and restarts the generation count. The pause state is unchanged.
func (c *Controller) ResetRandom() {
	c.grid = c.grid.RandomizedLike(c.rng)
	c.generation = 0
}

// Clear replaces the grid with an all-dead one of the same dimensions and
// restarts the generation count. The pause state is unchanged.
func (c *Controller) Clear() {
	c.grid = c.grid.ZeroedLike()
	c.generation = 0
}

// SpeedUp raises the update rate by one step, pinned at the ceiling.
func (c *Controller) SpeedUp() {
	c.rate = clamp(c.rate+c.cfg.RateStep, c.cfg.MinRate, c.cfg.MaxRate)
}

// SpeedDown lowers the update rate by one step, pinned at the floor.
func (c *Controller) SpeedDown() {
	c.rate = clamp(c.rate-c.cfg.RateStep, c.cfg.MinRate, c.cfg.MaxRate)
}

// Tick advances the simulation by one generation. It is a no-op while paused.
func (c *Controller) Tick() {
	if c.paused {
		return
	}
	c.advance()
}

// StepOnce advances exactly one generation regardless of the pause state.
func (c *Controller) StepOnce() {
	c.advance()
}

// SeedRandomCell revives one uniformly chosen dead cell. It is a no-op when
// every cell is already alive.
func (c *Controller) SeedRandomCell() {
	dead := c.grid.Rows()*c.grid.Cols() - c.grid.CountAlive()
	if dead == 0 {
		return
	}
	k := c.rng.IntN(dead)
	for row := 0; row < c.grid.Rows(); row++ {
		for col := 0; col < c.grid.Cols(); col++ {
			if c.grid.Alive(row, col) {
				continue
			}
			if k == 0 {
				c.grid.Set(row, col, true)
				return
			}
			k--
		}
	}
}

func (c *Controller) advance() {
	// Next returns a fresh grid, so the previous generation stays intact for
	// any renderer still holding a reference.
	c.grid = life.Next(c.grid)
	c.generation++
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

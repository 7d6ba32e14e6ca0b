package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Rows  int
	Cols  int
	Scale int
	Rate  int
	Seed  int64
	Text  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 20, Cols: 30, Scale: 20, Rate: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of rows in the grid")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of columns in the grid")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels (graphical mode)")
	fs.IntVar(&c.Rate, "rate", c.Rate, "initial update rate in updates per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid randomization (0 uses the current time)")
	fs.BoolVar(&c.Text, "text", c.Text, "force text-only mode")
}

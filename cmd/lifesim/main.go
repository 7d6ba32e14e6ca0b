//go:build ebiten

package main

import (
	"flag"
	"log"
	"time"

	"github.com/mazewalker/lifesim/internal/app"
	"github.com/mazewalker/lifesim/internal/core"
	"github.com/mazewalker/lifesim/internal/sim"
	"github.com/mazewalker/lifesim/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	simCfg := sim.DefaultConfig()
	simCfg.InitialRate = cfg.Rate

	ctrl, err := sim.New(cfg.Rows, cfg.Cols, simCfg, core.NewRNG(seed))
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Text {
		if err := term.Run(ctrl); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := app.Run(ctrl, cfg.Scale); err != nil {
		log.Printf("graphical mode failed: %v; falling back to text mode", err)
		if err := term.Run(ctrl); err != nil {
			log.Fatal(err)
		}
	}
}

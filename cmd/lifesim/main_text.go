//go:build !ebiten

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

	if !cfg.Text {
		log.Print("graphical mode requires building with the 'ebiten' tag; running in text mode")
	}

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

	if err := term.Run(ctrl); err != nil {
		log.Fatal(err)
	}
}

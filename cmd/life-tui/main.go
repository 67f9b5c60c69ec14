package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golife/internal/config"
	"golife/internal/life"
	"golife/internal/view"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	settingsPath := "settings.json"
	seed := time.Now().UnixNano()
	startPaused := false

	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.String(&settingsPath, "c", "config", "Path to the settings file")
	flaggy.Int64(&seed, "s", "seed", "Seed for the initial random board")
	flaggy.Bool(&startPaused, "p", "paused", "Start with the simulation paused")
	flaggy.Parse()

	cfg, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	grid := life.NewGrid(cfg.GridWidth, cfg.GridHeight)
	if cfg.SeedDensity > 0 {
		grid.Randomize(seed, cfg.SeedDensity)
	}
	clock := life.NewClock(cfg.InitialDelay)
	if startPaused {
		clock.TogglePause()
	}

	ui := view.NewConsoleUI(life.NewController(grid, clock))
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}

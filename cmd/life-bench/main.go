package main

import (
	"fmt"
	"time"

	"golife/internal/life"

	"github.com/cheggaaa/pb/v3"
	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	width := 256
	height := 256
	generations := 1000
	density := 0.2
	seed := int64(42)

	flaggy.SetDescription("Headless Life throughput benchmark")
	flaggy.Int(&width, "x", "width", "Board width in cells")
	flaggy.Int(&height, "y", "height", "Board height in cells")
	flaggy.Int(&generations, "g", "generations", "Generations to simulate")
	flaggy.Float64(&density, "d", "density", "Initial live-cell density")
	flaggy.Int64(&seed, "s", "seed", "Seed for the initial board")
	flaggy.Parse()

	grid := life.NewGrid(width, height)
	grid.Randomize(seed, density)

	fmt.Printf("Simulating %d generations on a %dx%d board\n", generations, width, height)

	bar := pb.StartNew(generations)
	start := time.Now()
	for i := 0; i < generations; i++ {
		grid.Step()
		bar.Increment()
	}
	bar.Finish()

	elapsed := time.Since(start)
	perSec := float64(generations) / elapsed.Seconds()
	fmt.Printf("%s %d generations in %v (%.0f gen/s), %d cells alive\n",
		aurora.Green("done:"), generations, elapsed.Round(time.Millisecond), perSec, grid.Population())
}

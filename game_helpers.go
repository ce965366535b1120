package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sprites/utils"
)

// loadConfig reads filename, falling back to the defaults when it cannot be used
func loadConfig(filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	switch {
	case err == nil:
		return config
	case os.IsNotExist(errors.Cause(err)):
		log.Printf("Using default configuration (%s not found)", filename)
	default:
		log.Printf("Using default configuration: %v", err)
	}
	return utils.DefaultConfig()
}

// displayRunInfo shows the parameters of the run
func displayRunInfo(config utils.Config) {
	log.Printf("Grid: %dx%d | Cell: %dpx | Frames: %d @ %s | Density: %.1f%%",
		config.Width, config.Height, config.CellSize, config.Frames, config.FrameInterval(), config.RandomDensity*100)
	log.Printf("Sprites: cell %s, overlay %s (x%.2f) -> %s",
		config.CellImage, config.OverlayImage, config.OverlayScale, config.OutputFile)
}

// describeOutcome summarizes how the board ended up
func describeOutcome(stats *utils.Stats) string {
	switch {
	case stats.ExtinctAt >= 0:
		return fmt.Sprintf("Extinct (%d)", stats.ExtinctAt)
	case stats.StagnantAt >= 0:
		return fmt.Sprintf("Stagnant (%d)", stats.StagnantAt)
	default:
		return "Active"
	}
}

// displayRunSummary shows the final statistics
func displayRunSummary(config utils.Config, stats *utils.Stats) {
	log.Printf("Gen: %d | Living: %d | Avg Pop: %.1f | Status: %s",
		stats.TotalGenerations, stats.ActiveCells, stats.AveragePopulation, describeOutcome(stats))
	log.Printf("Wrote %s: %d frames in %s (%.1f gen/sec)",
		config.OutputFile, stats.TotalGenerations, time.Since(stats.StartTime).Round(time.Millisecond), stats.GenerationsPerSecond)
}

package main

import (
	"log"

	"github.com/sheikhrachel/go-gol-sprites/animator"
	"github.com/sheikhrachel/go-gol-sprites/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if the file is missing or invalid
	config := loadConfig(configFile)
	displayRunInfo(config)

	stats, err := animator.Run(config, utils.NewRNG(config.Seed))
	if err != nil {
		log.Fatalf("Failed to render %s: %+v", config.OutputFile, err)
	}

	displayRunSummary(config, stats)
}

package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the startup parameters of a run
type Config struct {
	OutputFile          string  `json:"output_file"`
	CellImage           string  `json:"cell_image"`
	OverlayImage        string  `json:"overlay_image"`
	Frames              int     `json:"frames"`
	Width               int     `json:"width"`
	Height              int     `json:"height"`
	CellSize            int     `json:"cell_size"`
	IntervalMs          int     `json:"interval_ms"`
	RandomDensity       float64 `json:"random_density"`
	OverlayScale        float64 `json:"overlay_scale"`
	Seed                int64   `json:"seed"`
	UseParallel         bool    `json:"use_parallel"`
	UseMemoryPool       bool    `json:"use_memory_pool"`
	StagnationThreshold int     `json:"stagnation_threshold"`
}

// DefaultConfig returns the parameters of the stock animation
func DefaultConfig() Config {
	return Config{
		OutputFile:          "game_of_life_custom.gif",
		CellImage:           "bling.png",
		OverlayImage:        "kanye.png",
		Frames:              30,
		Width:               15,
		Height:              15,
		CellSize:            100,
		IntervalMs:          100,
		RandomDensity:       0.1,
		OverlayScale:        1.25,
		Seed:                0, // Seed from process entropy
		UseParallel:         false,
		UseMemoryPool:       true,
		StagnationThreshold: 3,
	}
}

// FrameInterval returns how long each frame is displayed
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Validate reports the first parameter that cannot produce an animation
func (c Config) Validate() error {
	switch {
	case c.OutputFile == "":
		return errors.New("[Validate] output_file must not be empty")
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.Frames < 0:
		return errors.Errorf("[Validate] frames must not be negative, got %d", c.Frames)
	case c.IntervalMs < 0:
		return errors.Errorf("[Validate] interval_ms must not be negative, got %d", c.IntervalMs)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	case c.OverlayScale <= 0:
		return errors.Errorf("[Validate] overlay_scale must be positive, got %v", c.OverlayScale)
	case c.StagnationThreshold < 0:
		return errors.Errorf("[Validate] stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}

// LoadConfig loads configuration from JSON file, keys missing from the file keep their defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

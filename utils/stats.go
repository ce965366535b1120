package utils

import "time"

// Stats collects run statistics for the summary line
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int

	// Generation at which the board first died out or repeated itself, -1 if never
	ExtinctAt  int
	StagnantAt int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), ExtinctAt: -1, StagnantAt: -1}
}

// Update records one rendered generation
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation + 1
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if generation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	if population == 0 && s.ExtinctAt < 0 {
		s.ExtinctAt = generation
	}
}

// MarkStagnant remembers the first generation reported as stagnant
func (s *Stats) MarkStagnant(generation int) {
	if s.StagnantAt < 0 {
		s.StagnantAt = generation
	}
}

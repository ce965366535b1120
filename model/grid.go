package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-sprites/rules"
	"github.com/sheikhrachel/go-gol-sprites/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// Grid represents one generation of a toroidal board.
// A grid handed out by NewRandomGrid or NextGeneration is never modified again.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromRows builds a grid from row-major cells, every row must have the same length
func NewGridFromRows(rows [][]bool) *Grid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g
}

// NewRandomGrid samples every cell independently, alive with probability density
func NewRandomGrid(width, height int, density float64, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	g.Randomize(density, rng)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false), out of range coordinates are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell, out of range coordinates read as dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts living cells among the 8 neighbors, wrapping at the edges
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + g.height) % g.height
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.width) % g.width
			if g.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.Float64() < density
		}
	}
}

// newNext returns an empty grid of the same size, reusing a pooled one if possible
func (g *Grid) newNext(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// stepRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}
}

// NextGenerationSequential calculates the next generation on the calling goroutine
func (g *Grid) NextGenerationSequential(pool *GridPool) *Grid {
	next := g.newNext(pool)
	g.stepRows(next, 0, g.height)
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := g.newNext(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	// Workers never fail; Wait only joins them
	_ = eg.Wait()

	return next
}

// NextGeneration calculates the next generation based on configuration
func (g *Grid) NextGeneration(config utils.Config, pool *GridPool) *Grid {
	if config.UseParallel {
		return g.NextGenerationParallel(pool)
	}
	return g.NextGenerationSequential(pool)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 fingerprint of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = 0
			if g.cells[y][x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String draws the grid with block characters, one line per row
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

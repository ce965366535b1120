package animator

import (
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sprites/encoder"
	"github.com/sheikhrachel/go-gol-sprites/model"
	"github.com/sheikhrachel/go-gol-sprites/render"
	"github.com/sheikhrachel/go-gol-sprites/utils"
)

// FrameWriter receives frames in order and finalizes the output on Close
type FrameWriter interface {
	Append(frame image.Image) error
	Close() error
}

// Run renders config.Frames generations of a random board into config.OutputFile
func Run(config utils.Config, rng *rand.Rand) (*utils.Stats, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Run] invalid configuration")
	}

	sprites, err := render.LoadSprites(config.CellImage, config.OverlayImage, config.CellSize, config.OverlayScale)
	if err != nil {
		return nil, errors.Wrap(err, "[Run] failed to load sprites")
	}
	renderer := render.NewFrameRenderer(sprites.Cell, sprites.Overlay, config.CellSize)

	grid := model.NewRandomGrid(config.Width, config.Height, config.RandomDensity, rng)

	writer, err := encoder.NewGIFWriter(config.OutputFile, renderer.Bounds(config.Width, config.Height), config.FrameInterval())
	if err != nil {
		return nil, errors.Wrap(err, "[Run] failed to open output")
	}

	return Animate(config, grid, renderer, writer)
}

// Animate appends config.Frames frames starting from grid, stepping the board
// after each one. It takes ownership of grid and always closes writer; a Close
// error is returned when nothing failed before it.
func Animate(config utils.Config, grid *model.Grid, renderer *render.FrameRenderer, writer FrameWriter) (stats *utils.Stats, err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "[Animate] failed to finalize output")
		}
	}()

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	var (
		history       model.History
		stagnantCount = 0
		lastFrameTime = time.Now()
	)
	stats = utils.NewStats()

	for generation := range config.Frames {
		frameStart := time.Now()

		if err = writer.Append(renderer.Render(grid)); err != nil {
			return stats, errors.Wrapf(err, "[Animate] failed to append frame %d", generation)
		}

		livingCells := grid.CountLivingCells()
		stats.Update(generation, livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if history.Observe(grid) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if config.StagnationThreshold > 0 && stagnantCount == config.StagnationThreshold {
			stats.MarkStagnant(generation)
			log.Printf("Board stagnant at generation %d (%d living cells)", generation, livingCells)
		}

		log.Printf("Rendered frame %d/%d | Living: %d", generation+1, config.Frames, livingCells)

		next := grid.NextGeneration(config, pool)
		model.GridToPool(grid, pool)
		grid = next
	}

	return stats, nil
}

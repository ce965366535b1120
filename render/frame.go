package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/sheikhrachel/go-gol-sprites/model"
)

// FrameRenderer turns a generation into a bitmap: one cell sprite per live
// cell on a white canvas, with the overlay composited last at the origin.
type FrameRenderer struct {
	cell       image.Image
	overlay    image.Image
	cellSize   int
	background image.Image
}

func NewFrameRenderer(cell, overlay image.Image, cellSize int) *FrameRenderer {
	return &FrameRenderer{
		cell:       cell,
		overlay:    overlay,
		cellSize:   cellSize,
		background: image.NewUniform(color.White),
	}
}

// Bounds returns the frame rectangle for a grid of the given size
func (r *FrameRenderer) Bounds(width, height int) image.Rectangle {
	return image.Rect(0, 0, width*r.cellSize, height*r.cellSize)
}

// Render draws g into a new frame
func (r *FrameRenderer) Render(g *model.Grid) *image.RGBA {
	frame := image.NewRGBA(r.Bounds(g.GetWidth(), g.GetHeight()))
	draw.Draw(frame, frame.Bounds(), r.background, image.Point{}, draw.Src)

	var (
		tile = image.Rect(0, 0, r.cellSize, r.cellSize)
		sp   = r.cell.Bounds().Min
	)
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			if !g.Get(x, y) {
				continue
			}
			draw.Draw(frame, tile.Add(image.Pt(x*r.cellSize, y*r.cellSize)), r.cell, sp, draw.Over)
		}
	}

	// Overlay goes last so it stays above the cells
	draw.Draw(frame, frame.Bounds(), r.overlay, r.overlay.Bounds().Min, draw.Over)

	return frame
}

package components

import (
	"math"

	"github.com/pablasso/linebar/internal/progress"
	"github.com/pablasso/linebar/internal/render"
)

// Drawable is an indicator that can be measured and drawn.
type Drawable interface {
	Measure(proposed progress.Size, insets progress.Insets) progress.Size
	Draw(l progress.Layout, s progress.Surface)
}

// Gauge renders an indicator into terminal cells.
type Gauge struct {
	ind    Drawable
	insets progress.Insets
	canvas *render.Canvas
}

// NewGauge creates a Gauge for ind with the given cell insets.
func NewGauge(ind Drawable, insets progress.Insets) *Gauge {
	return &Gauge{
		ind:    ind,
		insets: insets,
		canvas: render.NewCanvas(0, 0),
	}
}

// Size returns the cell area the indicator asks for out of width×height.
func (g *Gauge) Size(width, height int) (cols, rows int) {
	size := g.ind.Measure(progress.Size{Width: float64(width), Height: float64(height)}, g.insets)
	cols = min(int(math.Ceil(size.Width)), max(width, 0))
	rows = min(int(math.Ceil(size.Height)), max(height, 0))
	return cols, rows
}

// View draws the indicator into the area it asks for out of width×height.
func (g *Gauge) View(width, height int) string {
	cols, rows := g.Size(width, height)
	if c, r := g.canvas.Size(); c != cols || r != rows {
		g.canvas = render.NewCanvas(cols, rows)
	} else {
		g.canvas.Clear()
	}
	g.ind.Draw(g.canvas.Rect(g.insets), g.canvas)
	return g.canvas.String()
}

// Mask draws like View and returns the uncolored cell mask.
func (g *Gauge) Mask(width, height int) []string {
	g.View(width, height)
	return g.canvas.Mask()
}

// Package render rasterizes indicator segments into terminal cells.
package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/linebar/internal/progress"
)

const (
	blockChar = "█"
	blankChar = " "
	maskOn    = '#'
	maskOff   = '.'
)

// epsilon absorbs float error on cell centres that sit exactly on a stroke edge.
const epsilon = 1e-9

type cell struct {
	set   bool
	color colorful.Color
}

// Canvas is a grid of terminal cells. One unit of indicator geometry is one
// cell; the centre of cell (x, y) is at (x+0.5, y+0.5).
type Canvas struct {
	cols  int
	rows  int
	cells []cell
}

// NewCanvas creates an empty canvas. Negative sizes are treated as zero.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
	}
}

// Rect returns the canvas area with the given insets, ready to pass to an
// indicator as its layout.
func (c *Canvas) Rect(insets progress.Insets) progress.Rect {
	return progress.Rect{
		Width:  float64(c.cols),
		Height: float64(c.rows),
		Insets: insets,
	}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// At returns the color painted at (x, y), if any.
func (c *Canvas) At(x, y int) (colorful.Color, bool) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return colorful.Color{}, false
	}
	cl := c.cells[y*c.cols+x]
	return cl.color, cl.set
}

// DrawLine implements progress.Surface. A cell is painted when its centre
// lies inside the stroke: within thickness/2 of the segment for round caps,
// or inside the segment rectangle extended by thickness/2 at both ends for
// square caps. Zero-length segments, zero thickness and fully transparent
// colors paint nothing.
func (c *Canvas) DrawLine(seg progress.Segment, thickness float64, col color.Color, capStyle progress.CapStyle) {
	// An empty bar shows no dot, not even a round cap.
	if !(thickness > 0) || seg.Length() == 0 || col == nil {
		return
	}
	fill, ok := colorful.MakeColor(col)
	if !ok {
		return
	}

	half := thickness / 2
	minX, maxX := math.Min(seg.X1, seg.X2)-half, math.Max(seg.X1, seg.X2)+half
	minY, maxY := math.Min(seg.Y1, seg.Y2)-half, math.Max(seg.Y1, seg.Y2)+half

	x0, x1 := clampIndex(math.Floor(minX), c.cols), clampIndex(math.Ceil(maxX), c.cols)
	y0, y1 := clampIndex(math.Floor(minY), c.rows), clampIndex(math.Ceil(maxY), c.rows)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if covers(seg, half, capStyle, px, py) {
				c.cells[y*c.cols+x] = cell{set: true, color: fill}
			}
		}
	}
}

func covers(seg progress.Segment, half float64, capStyle progress.CapStyle, px, py float64) bool {
	dx, dy := seg.X2-seg.X1, seg.Y2-seg.Y1
	length := math.Hypot(dx, dy)
	ux, uy := dx/length, dy/length

	// position along the segment and distance from its axis
	along := (px-seg.X1)*ux + (py-seg.Y1)*uy
	across := math.Abs((px-seg.X1)*uy - (py-seg.Y1)*ux)

	if capStyle == progress.CapSquare {
		return along >= -half-epsilon && along <= length+half+epsilon && across <= half+epsilon
	}

	switch {
	case along < 0:
		return math.Hypot(px-seg.X1, py-seg.Y1) <= half+epsilon
	case along > length:
		return math.Hypot(px-seg.X2, py-seg.Y2) <= half+epsilon
	default:
		return across <= half+epsilon
	}
}

func clampIndex(v float64, limit int) int {
	if v < 0 {
		return 0
	}
	if v > float64(limit) {
		return limit
	}
	return int(v)
}

// String renders the canvas as styled rows of block glyphs.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var b strings.Builder
		x := 0
		for x < c.cols {
			start := c.cells[y*c.cols+x]
			run := 1
			for x+run < c.cols && c.cells[y*c.cols+x+run] == start {
				run++
			}
			if start.set {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.color.Hex()))
				b.WriteString(style.Render(strings.Repeat(blockChar, run)))
			} else {
				b.WriteString(strings.Repeat(blankChar, run))
			}
			x += run
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Mask renders the canvas without color: '#' for painted cells, '.' for empty.
func (c *Canvas) Mask() []string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		row := make([]byte, c.cols)
		for x := 0; x < c.cols; x++ {
			if c.cells[y*c.cols+x].set {
				row[x] = maskOn
			} else {
				row[x] = maskOff
			}
		}
		lines[y] = string(row)
	}
	return lines
}

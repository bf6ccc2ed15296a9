package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/five82/fittrack/internal/weight"
)

const (
	plotPoint = '●'
	plotLine  = '·'
)

// renderPlot draws entries as a line chart inside bounds on a width x height
// character canvas, with y-axis labels on the left and x-axis labels below.
func renderPlot(entries []weight.Entry, bounds weight.Bounds, width, height int) string {
	width = maxInt(width, 2)
	height = maxInt(height, 2)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	col := func(x float64) int {
		return scale(x, bounds.XMin, bounds.XMax, width-1)
	}
	row := func(y float64) int {
		return height - 1 - scale(y, bounds.YMin, bounds.YMax, height-1)
	}

	prevCol, prevRow := -1, -1
	for i, w := range weight.PointsOf(entries) {
		c, r := col(float64(i)), row(w)
		if prevCol >= 0 {
			connect(grid, prevCol, prevRow, c, r)
		}
		prevCol, prevRow = c, r
	}
	// Points last so lines never overdraw them.
	for i, w := range weight.PointsOf(entries) {
		grid[row(w)][col(float64(i))] = plotPoint
	}

	top := fmt.Sprintf("%.1f", bounds.YMax)
	bottom := fmt.Sprintf("%.1f", bounds.YMin)
	labelWidth := maxInt(len(top), len(bottom))

	var b strings.Builder
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = top
		case height - 1:
			label = bottom
		}
		b.WriteString(padLeft(label, labelWidth))
		b.WriteString(" │")
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("\n")

	xMin := fmt.Sprintf("%.0f", bounds.XMin)
	xMax := fmt.Sprintf("%.0f", bounds.XMax)
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString(xMin)
	b.WriteString(strings.Repeat(" ", maxInt(1, width-len(xMin)-len(xMax))))
	b.WriteString(xMax)
	return b.String()
}

// scale maps v from [lo, hi] onto [0, steps], clamped.
func scale(v, lo, hi float64, steps int) int {
	if hi <= lo || steps <= 0 {
		return 0
	}
	pos := int(math.Round((v - lo) / (hi - lo) * float64(steps)))
	return clampInt(pos, 0, steps)
}

// connect fills the cells between two points with line dots.
func connect(grid [][]rune, c0, r0, c1, r1 int) {
	steps := maxInt(absInt(c1-c0), absInt(r1-r0))
	for s := 1; s < steps; s++ {
		t := float64(s) / float64(steps)
		c := c0 + int(math.Round(t*float64(c1-c0)))
		r := r0 + int(math.Round(t*float64(r1-r0)))
		if grid[r][c] == ' ' {
			grid[r][c] = plotLine
		}
	}
}

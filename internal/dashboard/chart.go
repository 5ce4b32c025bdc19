package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chart glyphs
const (
	pointGlyph = '●'
	lineGlyph  = '·'
)

// plot draws points as a line chart in plain runes. The result has height+3
// rows: height+1 value rows (top to bottom), the x axis and the day labels.
// Every row is exactly width cells wide except the label row, which is
// trimmed on the right.
func plot(points []Point, width, height int) []string {
	if len(points) == 0 || height < 1 {
		return nil
	}

	top := 1
	for _, p := range points {
		if p.Tasks > top {
			top = p.Tasks
		}
	}
	labelW := len(fmt.Sprint(top))
	plotW := width - labelW - 2
	if plotW < len(points) {
		plotW = len(points)
	}

	cells := make([][]rune, height+1)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(" ", plotW))
	}

	rowOf := func(v float64) int {
		r := int(math.Round(v / float64(top) * float64(height)))
		return max(0, min(height, r))
	}

	xs := xPositions(len(points), plotW)
	for i, p := range points {
		if i > 0 {
			x0, x1 := xs[i-1], xs[i]
			v0, v1 := float64(points[i-1].Tasks), float64(p.Tasks)
			for c := x0 + 1; c < x1; c++ {
				t := float64(c-x0) / float64(x1-x0)
				cells[rowOf(v0+t*(v1-v0))][c] = lineGlyph
			}
		}
		cells[rowOf(float64(p.Tasks))][xs[i]] = pointGlyph
	}

	rows := make([]string, 0, height+3)
	for r := height; r >= 0; r-- {
		label := strings.Repeat(" ", labelW) + " │"
		if top*r%height == 0 {
			label = fmt.Sprintf("%*d ┤", labelW, top*r/height)
		}
		rows = append(rows, label+string(cells[r]))
	}
	rows = append(rows, strings.Repeat(" ", labelW)+" └"+strings.Repeat("─", plotW))

	days := []rune(strings.Repeat(" ", plotW))
	next := 0
	for i, p := range points {
		day := []rune(p.Day)
		start := max(next, min(xs[i]-len(day)/2, plotW-len(day)))
		if start < 0 || start+len(day) > plotW {
			continue
		}
		copy(days[start:], day)
		next = start + len(day) + 1
	}
	rows = append(rows, strings.TrimRight(strings.Repeat(" ", labelW+2)+string(days), " "))

	return rows
}

// xPositions spreads n points evenly over width columns.
func xPositions(n, width int) []int {
	xs := make([]int, n)
	if n == 1 {
		return xs
	}
	for i := range xs {
		xs[i] = i * (width - 1) / (n - 1)
	}
	return xs
}

// renderChart colors the plotted rows with pal.
func renderChart(points []Point, width, height int, pal Palette) string {
	axis := lipgloss.NewStyle().Foreground(pal.Axis)
	line := lipgloss.NewStyle().Foreground(pal.Line).Bold(true)

	rows := plot(points, width, height)
	for i, row := range rows {
		var b strings.Builder
		var run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(axis.Render(run.String()))
				run.Reset()
			}
		}
		for _, r := range row {
			if r == pointGlyph || r == lineGlyph {
				flush()
				b.WriteString(line.Render(string(r)))
				continue
			}
			run.WriteRune(r)
		}
		flush()
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}

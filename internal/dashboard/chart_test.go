package dashboard

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlot_Shape(t *testing.T) {
	rows := plot(WeeklyProgress(), 40, chartHeight)
	require.Len(t, rows, chartHeight+3)

	for i, row := range rows[:chartHeight+2] {
		assert.Equal(t, 40, utf8.RuneCountInString(row), "row %d: %q", i, row)
	}
	assert.True(t, strings.HasPrefix(rows[0], "8 ┤"), "top row carries the max label: %q", rows[0])
	assert.True(t, strings.HasPrefix(rows[chartHeight], "0 ┤"), "bottom row is zero: %q", rows[chartHeight])
	assert.Contains(t, rows[chartHeight+1], "└")
}

func TestPlot_PointsAtTheirValues(t *testing.T) {
	points := WeeklyProgress()
	width := 40
	rows := plot(points, width, chartHeight)

	// Each task unit is one row since max is 8 and height is 8
	xs := xPositions(len(points), width-3)
	for i, p := range points {
		row := []rune(rows[chartHeight-p.Tasks])
		assert.Equal(t, pointGlyph, row[3+xs[i]], "%s should sit on row %d", p.Day, p.Tasks)
	}
}

func TestPlot_DayLabelsInOrder(t *testing.T) {
	rows := plot(WeeklyProgress(), 40, chartHeight)
	labels := rows[len(rows)-1]

	last := -1
	for _, p := range WeeklyProgress() {
		idx := strings.Index(labels, p.Day)
		require.GreaterOrEqual(t, idx, 0, "missing %s in %q", p.Day, labels)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestPlot_Degenerate(t *testing.T) {
	assert.Nil(t, plot(nil, 40, 8))
	assert.Nil(t, plot(WeeklyProgress(), 40, 0))

	rows := plot([]Point{{Day: "Mon", Tasks: 0}}, 10, 4)
	require.Len(t, rows, 4+3)
	assert.Contains(t, rows[4], string(pointGlyph), "single zero point sits on the bottom row")

	// Narrower than the series still places every point
	rows = plot(WeeklyProgress(), 3, chartHeight)
	count := 0
	for _, row := range rows {
		count += strings.Count(row, string(pointGlyph))
	}
	assert.Equal(t, len(WeeklyProgress()), count)
}

func TestXPositions(t *testing.T) {
	assert.Equal(t, []int{0}, xPositions(1, 10))
	assert.Equal(t, []int{0, 9}, xPositions(2, 10))
	assert.Equal(t, []int{0, 3, 6}, xPositions(3, 7))
}

package dashboard

import "slices"

// Stat is one summary card on the dashboard.
type Stat struct {
	Title string
	Value int
	Note  string
}

// Point is one day of the weekly task series.
type Point struct {
	Day   string
	Tasks int
}

// Static demo content. Nothing here is derived from the onboarding record.
var (
	stats = []Stat{
		{Title: "Team Members", Value: 24, Note: "+12% this month"},
		{Title: "Active Projects", Value: 8, Note: "3 completing soon"},
		{Title: "Notifications", Value: 5, Note: "2 urgent items"},
	}

	weeklyProgress = []Point{
		{Day: "Mon", Tasks: 4},
		{Day: "Tue", Tasks: 7},
		{Day: "Wed", Tasks: 3},
		{Day: "Thu", Tasks: 8},
		{Day: "Fri", Tasks: 6},
		{Day: "Sat", Tasks: 2},
		{Day: "Sun", Tasks: 5},
	}
)

// Stats returns the stat cards in display order.
func Stats() []Stat {
	return slices.Clone(stats)
}

// WeeklyProgress returns the Mon..Sun task series.
func WeeklyProgress() []Point {
	return slices.Clone(weeklyProgress)
}

package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/onboard/internal/onboarding"
)

func completed() onboarding.FormData {
	return onboarding.FormData{
		Name:            "Ana",
		Email:           "ana@x.com",
		CompanyName:     "Acme",
		Industry:        "technology",
		CompanySize:     "1-10",
		Theme:           onboarding.ThemeDark,
		DashboardLayout: onboarding.LayoutWide,
		IsComplete:      true,
	}
}

func TestRender_Content(t *testing.T) {
	out := Render(completed(), 100)

	for _, want := range []string{
		"Welcome back, Ana! 👋",
		"Acme • technology",
		"Team Members", "24", "+12% this month",
		"Active Projects", "8", "3 completing soon",
		"Notifications", "5", "2 urgent items",
		"Weekly Task Progress",
		"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_FitsWidth(t *testing.T) {
	for _, width := range []int{MinWidth, 50, 72, 80, 120, 200} {
		for _, layout := range []onboarding.Layout{onboarding.LayoutCompact, onboarding.LayoutWide} {
			data := completed()
			data.DashboardLayout = layout

			out := Render(data, width)
			for i, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), width,
					"width %d layout %s line %d overflows: %q", width, layout, i, line)
			}
		}
	}
}

func TestRender_AnyFormData(t *testing.T) {
	tests := []struct {
		name string
		data onboarding.FormData
	}{
		{"Zero value", onboarding.FormData{}},
		{"Unknown preferences", onboarding.FormData{Name: "Ana", Theme: "neon", DashboardLayout: "huge"}},
		{"Very long name", onboarding.FormData{Name: strings.Repeat("Bartholomew ", 20), CompanyName: strings.Repeat("Acme ", 40)}},
		{"Wide runes", onboarding.FormData{Name: "山田太郎", CompanyName: "株式会社"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out string
			require.NotPanics(t, func() { out = Render(tt.data, 60) })
			assert.Contains(t, out, "Weekly Task Progress")
			for _, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), 60)
			}
		})
	}
}

func TestRender_UnknownPreferencesMatchDefaults(t *testing.T) {
	base := completed()
	base.Theme, base.DashboardLayout = onboarding.ThemeLight, onboarding.LayoutCompact

	odd := base
	odd.Theme, odd.DashboardLayout = "sepia", "grid"

	assert.Equal(t, Render(base, 90), Render(odd, 90))
}

func TestRender_NonPositiveWidthUsesDefault(t *testing.T) {
	assert.Equal(t, Render(completed(), DefaultWidth), Render(completed(), 0))
	assert.Equal(t, Render(completed(), MinWidth), Render(completed(), 5))
}

func TestRender_Deterministic(t *testing.T) {
	assert.Equal(t, Render(completed(), 80), Render(completed(), 80))
}

func TestGridFor(t *testing.T) {
	tests := []struct {
		name   string
		layout onboarding.Layout
		width  int
		want   grid
	}{
		{"Compact fits three", onboarding.LayoutCompact, 80, grid{Columns: 3, CardWidth: compactCardWidth, Gap: compactGap}},
		{"Compact wraps to two", onboarding.LayoutCompact, 60, grid{Columns: 2, CardWidth: compactCardWidth, Gap: compactGap}},
		{"Compact single column", onboarding.LayoutCompact, 30, grid{Columns: 1, CardWidth: compactCardWidth, Gap: compactGap}},
		{"Compact narrower than a card", onboarding.LayoutCompact, 20, grid{Columns: 1, CardWidth: 20, Gap: compactGap}},
		{"Wide stretches", onboarding.LayoutWide, 120, grid{Columns: 3, CardWidth: 38, Gap: wideGap}},
		{"Wide stacks when narrow", onboarding.LayoutWide, 50, grid{Columns: 1, CardWidth: 50, Gap: wideGap}},
		{"Unknown layout is compact", onboarding.Layout("huge"), 80, grid{Columns: 3, CardWidth: compactCardWidth, Gap: compactGap}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gridFor(tt.layout, tt.width))
		})
	}
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, onboarding.ThemeDark, PaletteFor(onboarding.ThemeDark).Name)
	assert.Equal(t, onboarding.ThemeLight, PaletteFor(onboarding.ThemeLight).Name)
	assert.Equal(t, onboarding.ThemeLight, PaletteFor("").Name)
	assert.Equal(t, onboarding.ThemeLight, PaletteFor("solarized").Name)
	assert.NotEqual(t, PaletteFor(onboarding.ThemeDark).Text, PaletteFor(onboarding.ThemeLight).Text)
}

func TestMockData(t *testing.T) {
	s := Stats()
	require.Len(t, s, 3)
	assert.Equal(t, Stat{Title: "Team Members", Value: 24, Note: "+12% this month"}, s[0])
	assert.Equal(t, Stat{Title: "Active Projects", Value: 8, Note: "3 completing soon"}, s[1])
	assert.Equal(t, Stat{Title: "Notifications", Value: 5, Note: "2 urgent items"}, s[2])

	var tasks []int
	for _, p := range WeeklyProgress() {
		tasks = append(tasks, p.Tasks)
	}
	assert.Equal(t, []int{4, 7, 3, 8, 6, 2, 5}, tasks)

	// Callers get copies
	s[0].Value = 99
	assert.Equal(t, 24, Stats()[0].Value)
}

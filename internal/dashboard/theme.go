package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/onboard/internal/onboarding"
)

// Palette is the set of colors the dashboard is drawn with.
type Palette struct {
	Name   onboarding.Theme
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Axis   lipgloss.Color
	Line   lipgloss.Color

	// Per-card value and note colors, indexed like Stats()
	Values [3]lipgloss.Color
	Notes  [3]lipgloss.Color
}

var (
	lightPalette = Palette{
		Name:   onboarding.ThemeLight,
		Text:   lipgloss.Color("#111827"),
		Muted:  lipgloss.Color("#4B5563"),
		Border: lipgloss.Color("#D1D5DB"),
		Axis:   lipgloss.Color("#6B7280"),
		Line:   lipgloss.Color("#3B82F6"),
		Values: [3]lipgloss.Color{"#2563EB", "#16A34A", "#EA580C"},
		Notes:  [3]lipgloss.Color{"#22C55E", "#3B82F6", "#EF4444"},
	}

	darkPalette = Palette{
		Name:   onboarding.ThemeDark,
		Text:   lipgloss.Color("#F9FAFB"),
		Muted:  lipgloss.Color("#D1D5DB"),
		Border: lipgloss.Color("#374151"),
		Axis:   lipgloss.Color("#9CA3AF"),
		Line:   lipgloss.Color("#3B82F6"),
		Values: [3]lipgloss.Color{"#60A5FA", "#4ADE80", "#FB923C"},
		Notes:  [3]lipgloss.Color{"#4ADE80", "#60A5FA", "#F87171"},
	}
)

// PaletteFor returns the palette for theme. Unknown themes get the light one.
func PaletteFor(theme onboarding.Theme) Palette {
	if theme == onboarding.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Layout constants
const (
	compactCardWidth = 24
	compactGap       = 1
	wideGap          = 3
	minCardWidth     = 18
)

// grid describes how the stat cards are arranged for a given width.
type grid struct {
	Columns   int
	CardWidth int
	Gap       int
}

// gridFor arranges cards for layout within width. Compact keeps cards narrow
// and wraps them; wide stretches three cards across the whole row, or stacks
// them when the row is too narrow.
func gridFor(layout onboarding.Layout, width int) grid {
	if layout == onboarding.LayoutWide {
		cardWidth := (width - 2*wideGap) / 3
		if cardWidth < minCardWidth {
			return grid{Columns: 1, CardWidth: width, Gap: wideGap}
		}
		return grid{Columns: 3, CardWidth: cardWidth, Gap: wideGap}
	}

	if width < compactCardWidth {
		return grid{Columns: 1, CardWidth: width, Gap: compactGap}
	}
	cols := (width + compactGap) / (compactCardWidth + compactGap)
	if cols > 3 {
		cols = 3
	}
	return grid{Columns: cols, CardWidth: compactCardWidth, Gap: compactGap}
}

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/onboard/internal/onboarding"
)

// Width bounds for Render
const (
	DefaultWidth = 80
	MinWidth     = 30
	chartHeight  = 8
)

// Render draws the dashboard for data at the given width. The theme and
// layout preferences select the palette and card arrangement; unknown values
// fall back to light and compact. A width of zero or less uses DefaultWidth.
func Render(data onboarding.FormData, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	width = max(width, MinWidth)

	pal := PaletteFor(data.EffectiveTheme())
	g := gridFor(data.EffectiveLayout(), width)

	sections := []string{
		renderHeader(data, width, pal),
		renderStats(Stats(), g, pal),
		renderPanel("Weekly Task Progress",
			renderChart(WeeklyProgress(), width-4, chartHeight, pal), width, pal),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Greeting is the dashboard headline for data.
func Greeting(data onboarding.FormData) string {
	return fmt.Sprintf("Welcome back, %s! 👋", data.Name)
}

// Subtitle is the company line under the greeting.
func Subtitle(data onboarding.FormData) string {
	return data.CompanyName + " • " + data.Industry
}

func renderHeader(data onboarding.FormData, width int, pal Palette) string {
	inner := width - 4
	title := lipgloss.NewStyle().Foreground(pal.Text).Bold(true).
		Render(runewidth.Truncate(Greeting(data), inner, "…"))
	sub := lipgloss.NewStyle().Foreground(pal.Muted).
		Render(runewidth.Truncate(Subtitle(data), inner, "…"))

	return panelStyle(width, pal).Render(title + "\n" + sub)
}

func renderPanel(title, body string, width int, pal Palette) string {
	heading := lipgloss.NewStyle().Foreground(pal.Text).Bold(true).Render(title)
	return panelStyle(width, pal).Render(heading + "\n\n" + body)
}

// panelStyle is a rounded box whose outer width is width.
func panelStyle(width int, pal Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Padding(0, 1).
		Width(width - 2)
}

func renderStats(items []Stat, g grid, pal Palette) string {
	cards := make([]string, len(items))
	for i, s := range items {
		cards[i] = renderCard(s, i, g.CardWidth, pal)
	}

	spacer := strings.Repeat(" ", g.Gap)
	var rows []string
	for start := 0; start < len(cards); start += g.Columns {
		end := min(start+g.Columns, len(cards))
		var row []string
		for i, c := range cards[start:end] {
			if i > 0 {
				row = append(row, spacer)
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(s Stat, i, width int, pal Palette) string {
	inner := width - 4
	title := lipgloss.NewStyle().Foreground(pal.Muted).
		Render(runewidth.Truncate(s.Title, inner, "…"))
	value := lipgloss.NewStyle().Foreground(pal.Values[i%len(pal.Values)]).Bold(true).
		Render(fmt.Sprint(s.Value))
	note := lipgloss.NewStyle().Foreground(pal.Notes[i%len(pal.Notes)]).
		Render(runewidth.Truncate(s.Note, inner, "…"))

	return panelStyle(width, pal).Render(title + "\n" + value + "\n" + note)
}

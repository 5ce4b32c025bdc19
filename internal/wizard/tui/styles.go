package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/onboard/internal/version"
)

// Application branding constants
const (
	AppName = "ONBOARDING WIZARD"
	AppTag  = "onboard"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 60  // Minimum supported terminal width
	DefaultWidth      = 80  // Used until the first tea.WindowSizeMsg arrives
	DefaultHeight     = 24  // Used until the first tea.WindowSizeMsg arrives
	MaxFormWidth      = 72  // Wizard form is capped at this width
	DefaultBoxPadding = 2   // Default padding inside boxes
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#2563EB") // Blue
	SecondaryColor = lipgloss.Color("#16A34A") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#6B7280") // Gray
	BorderColor    = lipgloss.Color("#2563EB") // Blue (same as primary)
	HighlightColor = lipgloss.Color("#16A34A") // Green (same as secondary)
)

// Common styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label style
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Focused field label style
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Inline field error style
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(2)

	// Selected choice in a picker or toggle
	SelectedChoiceStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Unselected choice in a toggle
	ChoiceStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Step indicator styles
	StepDoneStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StepCurrentStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StepPendingStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Navigation button styles
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	CompleteButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(SecondaryColor).
				Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Error box style (for storage failures)
	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 1)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderError renders an error message
func RenderError(text string) string {
	return ErrorBoxStyle.Render("✗ " + text)
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppTag + " " + AppVersion())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return HelpStyle.Render(helpText)
}

// RenderApplicationContainer is the wrapper for all screens in the application.
// It provides a full-screen bordered panel with the application header at the
// top and context-sensitive help pinned to the bottom.
//
// Pattern:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	// Callers control their own content margins
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// ContentWidth returns the usable width inside RenderApplicationContainer.
func ContentWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	return max(terminalWidth-4, MinTerminalWidth-4)
}

// FormWidth returns the width of the wizard form, capped at MaxFormWidth.
func FormWidth(terminalWidth int) int {
	return min(ContentWidth(terminalWidth)-DefaultBoxPadding*2, MaxFormWidth)
}

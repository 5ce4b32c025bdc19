package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RawBox displays stored bytes exactly as they were read, e.g. the JSON
// record behind `onboard status --raw`.
type RawBox struct {
	Title    string   // e.g., "Stored record"
	Lines    []string // Content split into lines
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

// NewRawBox creates a new raw content box
func NewRawBox(content string) *RawBox {
	return &RawBox{
		Title: "Stored record",
		Lines: strings.Split(strings.TrimRight(content, "\n"), "\n"),
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *RawBox) SetWidth(width int) *RawBox {
	r.Width = width
	return r
}

// SetTitle sets a custom title for the box
func (r *RawBox) SetTitle(title string) *RawBox {
	r.Title = title
	return r
}

// SetMaxLines limits the number of lines displayed
func (r *RawBox) SetMaxLines(n int) *RawBox {
	r.MaxLines = n
	return r
}

// Render returns the styled box as a string
func (r *RawBox) Render() string {
	width := max(r.Width, MinTerminalWidth)

	lines := r.Lines
	if r.MaxLines > 0 && len(lines) > r.MaxLines {
		lines = append(lines[:r.MaxLines:r.MaxLines], "... (output truncated)")
	}

	inner := lipgloss.JoinVertical(lipgloss.Left,
		RawTitleStyle.Render(r.Title),
		"",
		strings.Join(lines, "\n"),
	)
	return RawBoxStyle(width).MarginLeft(2).Render(inner)
}

// String implements fmt.Stringer
func (r *RawBox) String() string {
	return r.Render()
}

package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirmation describes a destructive operation the user must approve by
// typing Phrase.
type Confirmation struct {
	Title      string
	Warnings   []string
	Disclaimer string
	Phrase     string // e.g., "RESET"
}

// ResetConfirmation is the prompt shown before clearing saved onboarding data
func ResetConfirmation(key string) Confirmation {
	return Confirmation{
		Title: "RESET ONBOARDING",
		Warnings: []string{
			fmt.Sprintf("The saved record %q will be deleted", key),
			"The next launch starts the wizard again at step 1",
		},
		Disclaimer: "This cannot be undone. Export the record first with `onboard status --format json` if you want to keep it.",
		Phrase:     "RESET",
	}
}

// Confirm displays a warning box on out and reads one line from in.
// Returns true only when the line matches c.Phrase exactly.
func Confirm(in io.Reader, out io.Writer, width int, c Confirmation) bool {
	width = max(width, MinTerminalWidth)

	lines := []string{
		"",
		lipgloss.NewStyle().Foreground(WarningColor).Bold(true).
			Render(fmt.Sprintf(" ⚠  WARNING  ─  %s", c.Title)),
		"",
	}
	bullet := lipgloss.NewStyle().Foreground(TextColor)
	for _, warning := range c.Warnings {
		lines = append(lines, bullet.Render(" • "+warning))
	}
	lines = append(lines, "")

	if c.Disclaimer != "" {
		disclaimer := lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			Width(width - 12).
			PaddingLeft(1)
		lines = append(lines, disclaimer.Render(c.Disclaimer), "")
	}

	_, _ = fmt.Fprintln(out, WarningBoxStyle(width).Render(strings.Join(lines, "\n")))
	_, _ = fmt.Fprintln(out)

	prompt := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	_, _ = fmt.Fprint(out, prompt.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", c.Phrase)))

	input, _ := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if strings.TrimSpace(input) == c.Phrase {
		return true
	}

	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	_, _ = fmt.Fprintln(out)
	return false
}

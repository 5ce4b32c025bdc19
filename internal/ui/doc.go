// Package ui provides terminal output components for the onboard CLI.
//
// This package uses Lipgloss (and the Bubbles progress bar) to render
// polished output for the non-interactive subcommands. Unlike the
// interactive wizard in internal/wizard/tui, these components follow a
// "print and exit" pattern: they render once and never read keys.
//
// # Components
//
//   - Header: Command banner showing the operation and where it reads from
//   - Progress: Progress bar with step list, used for wizard status and reset
//   - Result: Success/failure/warning boxes with ordered details
//   - RawBox: The stored record exactly as the backend returned it
//   - Confirm: A typed-phrase prompt guarding destructive commands
//
// Commands with several steps use Runner, which manages the
// header → progress → result flow.
//
// Example:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:     "Reset onboarding",
//	    Command:   "onboard reset",
//	    Params:    []ui.Param{{Key: "Store", Value: "file"}},
//	    StepNames: []string{"Open storage", "Clear record"},
//	})
//
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
//	    onStep(1, ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, ui.StepComplete, "")
//	    return nil, nil
//	})
//
// # Logging Integration
//
// Logging is controlled by --log-level or ONBOARD_LOG_LEVEL. When neither is
// set zap is silent, so the curated output here is all the user sees.
package ui

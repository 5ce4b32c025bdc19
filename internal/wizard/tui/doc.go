// Package tui implements the terminal user interface for the onboarding wizard.
//
// Built on Bubble Tea, it follows the Model-Update-View pattern with two
// screens. Which one is shown is decided by the onboarding controller's mode,
// not by the TUI itself:
//
//   - Wizard: the three-step form (Personal, Business, Preferences) with a
//     progress bar, a step indicator and inline field errors
//   - Dashboard: the rendered dashboard in a scrollable viewport
//
// Screens call the controller directly. After every update AppModel compares
// the controller's mode with the active screen and rebuilds the other screen
// when they differ, so completing setup lands on the dashboard and a reset
// lands back on step 1.
//
// All screens use RenderApplicationContainer for a consistent header, content
// area and help footer.
//
// # Keys
//
// Wizard:
//   - tab / shift+tab: move between fields
//   - ←/→: change a picker or toggle
//   - enter: next field, or next step from the last field
//   - ctrl+n: next step (Complete Setup on step 3)
//   - esc / ctrl+b: previous step
//
// Dashboard:
//   - ↑/↓: scroll
//   - r: reset the demo
//   - q: quit
//
// ctrl+c quits from anywhere.
//
// # Usage
//
//	ctrl, err := onboarding.Open(ctx, storage.NewSlot(backend, ""))
//	if err != nil {
//	    return err
//	}
//	program := tea.NewProgram(tui.NewAppModel(ctx, ctrl), tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/onboard/internal/dashboard"
	"github.com/muurk/onboard/internal/onboarding"
)

// Rows taken by the container header, footer and borders
const chromeHeight = 8

// dashboardKeyMap defines key bindings for the dashboard screen
type dashboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reset, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Reset, k.Quit},
	}
}

// DashboardModel shows the completed onboarding dashboard
type DashboardModel struct {
	ctx  context.Context
	ctrl *onboarding.Controller

	// UI state
	Width  int
	Height int

	// Scrolls the dashboard when it is taller than the terminal
	Viewport viewport.Model

	// Last storage failure from Reset, shown in an error box
	Err error

	Help help.Model
	Keys dashboardKeyMap
}

// NewDashboardModel creates the dashboard screen for ctrl
func NewDashboardModel(ctx context.Context, ctrl *onboarding.Controller) DashboardModel {
	keys := dashboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset demo"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	m := DashboardModel{
		ctx:  ctx,
		ctrl: ctrl,
		Help: help.New(),
		Keys: keys,
	}
	m.resize(DefaultWidth, DefaultHeight)
	return m
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// resize fits the viewport to the terminal and re-renders the content
func (m *DashboardModel) resize(width, height int) {
	m.Width, m.Height = width, height
	w := ContentWidth(width) - DefaultBoxPadding*2
	m.Viewport = viewport.New(w, max(3, height-chromeHeight))
	m.Viewport.SetContent(dashboard.Render(m.ctrl.Data(), w))
}

// Update handles messages and updates the model
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Reset):
			if err := m.ctrl.Reset(m.ctx); err != nil {
				m.Err = err
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View renders the dashboard inside the application container
func (m DashboardModel) View() string {
	content := m.Viewport.View()
	if m.Err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left,
			RenderError(onboarding.GetShortErrorMessage(m.Err)), content)
	}
	content = lipgloss.NewStyle().Padding(1, DefaultBoxPadding).Render(content)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

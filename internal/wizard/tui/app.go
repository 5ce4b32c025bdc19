package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/onboard/internal/logging"
	"github.com/muurk/onboard/internal/onboarding"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenWizard    Screen = "wizard"
	ScreenDashboard Screen = "dashboard"
)

// screenFor maps a controller mode to the screen that presents it
func screenFor(mode onboarding.Mode) Screen {
	if mode == onboarding.ModeDashboard {
		return ScreenDashboard
	}
	return ScreenWizard
}

// AppModel is the top-level coordinator model. The controller's mode decides
// which screen is active; screens drive the controller and the app follows.
type AppModel struct {
	ctx        context.Context
	Controller *onboarding.Controller

	// Current screen state
	CurrentScreen Screen

	// Screen models
	WizardModel    WizardModel
	DashboardModel DashboardModel

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the application for an opened controller
func NewAppModel(ctx context.Context, ctrl *onboarding.Controller) AppModel {
	m := AppModel{
		ctx:        ctx,
		Controller: ctrl,
	}
	m.enter(screenFor(ctrl.Mode()))
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenWizard:
		return m.WizardModel.Init()
	case ScreenDashboard:
		return m.DashboardModel.Init()
	default:
		return nil
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// The inactive screen is rebuilt at this size when entered

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case ScreenWizard:
		updated, c := m.WizardModel.Update(msg)
		m.WizardModel = updated.(WizardModel)
		cmd = c
	case ScreenDashboard:
		updated, c := m.DashboardModel.Update(msg)
		m.DashboardModel = updated.(DashboardModel)
		cmd = c
	}

	// Follow the controller when a screen completed or reset onboarding
	if next := screenFor(m.Controller.Mode()); next != m.CurrentScreen {
		enterCmd := m.transitionTo(next)
		return m, tea.Batch(cmd, enterCmd)
	}
	return m, cmd
}

// transitionTo switches to screen with a freshly built model
func (m *AppModel) transitionTo(screen Screen) tea.Cmd {
	logging.Debug("Screen transition",
		zap.String("from", string(m.CurrentScreen)),
		zap.String("to", string(screen)),
	)
	return m.enter(screen)
}

func (m *AppModel) enter(screen Screen) tea.Cmd {
	m.CurrentScreen = screen

	switch screen {
	case ScreenWizard:
		m.WizardModel = NewWizardModel(m.ctx, m.Controller)
		m.WizardModel.Width, m.WizardModel.Height = m.Width, m.Height
		return m.WizardModel.Init()
	case ScreenDashboard:
		m.DashboardModel = NewDashboardModel(m.ctx, m.Controller)
		if m.Width > 0 {
			m.DashboardModel.resize(m.Width, m.Height)
		}
		return m.DashboardModel.Init()
	}
	return nil
}

// View renders the current screen. Each screen wraps itself in
// RenderApplicationContainer.
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenWizard:
		return m.WizardModel.View()
	case ScreenDashboard:
		return m.DashboardModel.View()
	default:
		return "Unknown screen"
	}
}

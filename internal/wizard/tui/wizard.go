package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/onboard/internal/logging"
	"github.com/muurk/onboard/internal/onboarding"
)

// fieldKind is how a field is edited on screen.
type fieldKind int

const (
	kindText   fieldKind = iota // free text via textinput
	kindPicker                  // single select with an empty "Select ..." entry
	kindToggle                  // two-choice toggle
)

// fieldSpec describes how one form field is presented.
type fieldSpec struct {
	Field       onboarding.Field
	Label       string
	Kind        fieldKind
	Placeholder string
	Choices     []onboarding.Option
}

// stepSpec is the copy and field list of one wizard step.
type stepSpec struct {
	Name     string
	Heading  string
	Subtitle string
	Fields   []fieldSpec
}

func themeChoices() []onboarding.Option {
	opts := make([]onboarding.Option, 0, len(onboarding.Themes))
	for _, t := range onboarding.Themes {
		opts = append(opts, onboarding.Option{Value: string(t), Label: titleCase(string(t)) + " Theme"})
	}
	return opts
}

func layoutChoices() []onboarding.Option {
	opts := make([]onboarding.Option, 0, len(onboarding.Layouts))
	for _, l := range onboarding.Layouts {
		opts = append(opts, onboarding.Option{Value: string(l), Label: titleCase(string(l)) + " Layout"})
	}
	return opts
}

func withPrompt(prompt string, options []onboarding.Option) []onboarding.Option {
	return append([]onboarding.Option{{Value: "", Label: prompt}}, options...)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// steps is indexed by step number minus one.
var steps = []stepSpec{
	{
		Name:     "Personal",
		Heading:  "Let's get to know you!",
		Subtitle: "Tell us a bit about yourself to get started.",
		Fields: []fieldSpec{
			{Field: onboarding.FieldName, Label: "Full Name *", Kind: kindText, Placeholder: "Enter your full name"},
			{Field: onboarding.FieldEmail, Label: "Email Address *", Kind: kindText, Placeholder: "Enter your email address"},
		},
	},
	{
		Name:     "Business",
		Heading:  "About your business",
		Subtitle: "Help us understand your company better.",
		Fields: []fieldSpec{
			{Field: onboarding.FieldCompanyName, Label: "Company Name *", Kind: kindText, Placeholder: "Enter your company name"},
			{Field: onboarding.FieldIndustry, Label: "Industry *", Kind: kindPicker,
				Choices: withPrompt("Select your industry", onboarding.IndustryOptions)},
			{Field: onboarding.FieldCompanySize, Label: "Company Size *", Kind: kindPicker,
				Choices: withPrompt("Select company size", onboarding.CompanySizeOptions)},
		},
	},
	{
		Name:     "Preferences",
		Heading:  "Customize your experience",
		Subtitle: "Set your preferences for the dashboard.",
		Fields: []fieldSpec{
			{Field: onboarding.FieldTheme, Label: "Theme Preference", Kind: kindToggle, Choices: themeChoices()},
			{Field: onboarding.FieldDashboardLayout, Label: "Dashboard Layout", Kind: kindToggle, Choices: layoutChoices()},
		},
	},
}

// wizardKeyMap defines key bindings for the wizard screen
type wizardKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Change  key.Binding
	Enter   key.Binding
	Advance key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k wizardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Change, k.Advance, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k wizardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Change},
		{k.Enter, k.Advance, k.Back, k.Quit},
	}
}

func newWizardKeyMap() wizardKeyMap {
	return wizardKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Change: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "change"),
		),
		Advance: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next step"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "ctrl+b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// WizardModel is the three-step onboarding form. All field edits and step
// changes go through the controller; the model only holds presentation state.
type WizardModel struct {
	ctx  context.Context
	ctrl *onboarding.Controller

	// UI state
	Width  int
	Height int
	Focus  int // index into the current step's fields

	inputs map[onboarding.Field]textinput.Model
	bar    progress.Model

	// Last storage failure from Submit, shown in an error box
	Err error

	Help help.Model
	Keys wizardKeyMap
}

// NewWizardModel creates the wizard screen for ctrl, which must be in the
// wizard mode. Text inputs start with the controller's current values.
func NewWizardModel(ctx context.Context, ctrl *onboarding.Controller) WizardModel {
	data := ctrl.Data()
	inputs := make(map[onboarding.Field]textinput.Model)
	for _, s := range steps {
		for _, f := range s.Fields {
			if f.Kind != kindText {
				continue
			}
			ti := textinput.New()
			ti.Placeholder = f.Placeholder
			ti.CharLimit = 120
			ti.Width = 40
			ti.Prompt = "› "
			ti.SetValue(data.Get(f.Field))
			inputs[f.Field] = ti
		}
	}

	m := WizardModel{
		ctx:    ctx,
		ctrl:   ctrl,
		inputs: inputs,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		Help:   help.New(),
		Keys:   newWizardKeyMap(),
	}
	m.setFocus(0)
	return m
}

// Init starts the cursor blink of the focused input
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// step returns the layout of the controller's current step.
func (m WizardModel) step() stepSpec {
	n := m.ctrl.Step()
	if n < 1 || n > len(steps) {
		return stepSpec{}
	}
	return steps[n-1]
}

// focused returns the layout of the focused field.
func (m WizardModel) focused() (fieldSpec, bool) {
	fields := m.step().Fields
	if m.Focus < 0 || m.Focus >= len(fields) {
		return fieldSpec{}, false
	}
	return fields[m.Focus], true
}

// FocusedField returns the field that has keyboard focus.
func (m WizardModel) FocusedField() onboarding.Field {
	f, _ := m.focused()
	return f.Field
}

// setFocus moves focus to index i of the current step, wrapping around.
func (m *WizardModel) setFocus(i int) tea.Cmd {
	fields := m.step().Fields
	if len(fields) == 0 {
		m.Focus = 0
		return nil
	}
	m.Focus = (i + len(fields)) % len(fields)

	var cmd tea.Cmd
	for field, ti := range m.inputs {
		if f, ok := m.focused(); ok && f.Field == field {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[field] = ti
	}
	return cmd
}

// Update handles messages and updates the model
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Advance):
			return m.advance()

		case key.Matches(msg, m.Keys.Enter):
			if m.Focus == len(m.step().Fields)-1 {
				return m.advance()
			}
			cmd := m.setFocus(m.Focus + 1)
			return m, cmd

		case key.Matches(msg, m.Keys.Back):
			return m.retreat()

		case key.Matches(msg, m.Keys.Next):
			cmd := m.setFocus(m.Focus + 1)
			return m, cmd

		case key.Matches(msg, m.Keys.Prev):
			cmd := m.setFocus(m.Focus - 1)
			return m, cmd
		}

		f, ok := m.focused()
		if !ok {
			return m, nil
		}
		if f.Kind != kindText {
			switch msg.String() {
			case "left", "h":
				m.cycle(f, -1)
			case "right", "l", " ":
				m.cycle(f, 1)
			}
			return m, nil
		}
		return m.updateInput(f, msg)
	}

	// Forward anything else (cursor blink) to the focused input
	if f, ok := m.focused(); ok && f.Kind == kindText {
		ti, cmd := m.inputs[f.Field].Update(msg)
		m.inputs[f.Field] = ti
		return m, cmd
	}
	return m, nil
}

// updateInput feeds a key to a text input and routes any value change
// through the controller.
func (m WizardModel) updateInput(f fieldSpec, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ti := m.inputs[f.Field]
	before := ti.Value()
	ti, cmd := ti.Update(msg)
	m.inputs[f.Field] = ti

	if ti.Value() != before {
		m.setField(f.Field, ti.Value())
	}
	return m, cmd
}

// cycle moves a picker or toggle by delta choices.
func (m *WizardModel) cycle(f fieldSpec, delta int) {
	if len(f.Choices) == 0 {
		return
	}
	current := m.ctrl.Data().Get(f.Field)
	idx := 0
	for i, c := range f.Choices {
		if c.Value == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(f.Choices)) % len(f.Choices)
	m.setField(f.Field, f.Choices[idx].Value)
}

func (m *WizardModel) setField(field onboarding.Field, value string) {
	if err := m.ctrl.SetField(field, value); err != nil {
		logging.Warn("Field update rejected", zap.String("field", string(field)), zap.Error(err))
	}
}

// advance runs Next, or Complete Setup on the final step.
func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	m.Err = nil

	var err error
	if m.ctrl.IsFinalStep() {
		err = m.ctrl.Submit(m.ctx)
	} else {
		err = m.ctrl.Advance()
	}

	switch {
	case err == nil:
		cmd := m.setFocus(0)
		return m, cmd
	case onboarding.IsValidationError(err):
		cmd := m.focusFirstError()
		return m, cmd
	case onboarding.IsStorageError(err):
		m.Err = err
		return m, nil
	default:
		logging.Debug("Advance ignored", zap.Error(err))
		return m, nil
	}
}

func (m WizardModel) retreat() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Retreat(); err != nil {
		if !errors.Is(err, onboarding.ErrNoPreviousStep) {
			logging.Debug("Retreat ignored", zap.Error(err))
		}
		return m, nil
	}
	m.Err = nil
	cmd := m.setFocus(0)
	return m, cmd
}

// focusFirstError moves focus to the first field on this step with an error.
func (m *WizardModel) focusFirstError() tea.Cmd {
	errs := m.ctrl.Errors()
	for i, f := range m.step().Fields {
		if errs.Has(f.Field) {
			return m.setFocus(i)
		}
	}
	return nil
}

// View renders the wizard inside the application container
func (m WizardModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m WizardModel) buildContent() string {
	width := FormWidth(m.Width)
	pad := lipgloss.NewStyle().Padding(1, DefaultBoxPadding)

	sections := []string{
		m.renderProgress(width),
		m.renderStepIndicator(),
		RenderTitle(m.step().Heading) + "\n" + RenderSubtitle(m.step().Subtitle),
	}

	data := m.ctrl.Data()
	errs := m.ctrl.Errors()
	for i, f := range m.step().Fields {
		sections = append(sections, m.renderField(f, i == m.Focus, data, errs))
	}

	if m.Err != nil {
		sections = append(sections, ErrorBoxStyle.Width(width-2).
			Render("✗ "+onboarding.GetShortErrorMessage(m.Err)+"\n"+m.Err.Error()))
	}
	sections = append(sections, m.renderNavigation(width))

	return pad.Render(strings.Join(sections, "\n\n"))
}

func (m WizardModel) renderProgress(width int) string {
	left := fmt.Sprintf("Step %d of %d", m.ctrl.Step(), onboarding.TotalSteps)
	right := fmt.Sprintf("%d%% Complete", m.ctrl.Progress())
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))

	bar := m.bar
	bar.Width = width
	return left + strings.Repeat(" ", gap) + right + "\n" + bar.ViewAs(float64(m.ctrl.Progress())/100)
}

func (m WizardModel) renderStepIndicator() string {
	current := m.ctrl.Step()
	parts := make([]string, len(steps))
	for i, s := range steps {
		n := i + 1
		switch {
		case n < current:
			parts[i] = StepDoneStyle.Render("✓ " + s.Name)
		case n == current:
			parts[i] = StepCurrentStyle.Render(fmt.Sprintf("%d %s", n, s.Name))
		default:
			parts[i] = StepPendingStyle.Render(fmt.Sprintf("%d %s", n, s.Name))
		}
	}
	return strings.Join(parts, StepPendingStyle.Render("  ──  "))
}

func (m WizardModel) renderField(f fieldSpec, focused bool, data onboarding.FormData, errs onboarding.ErrorSet) string {
	label := LabelStyle.Render(f.Label)
	if focused {
		label = FocusedLabelStyle.Render("▸ " + f.Label)
	}

	var control string
	switch f.Kind {
	case kindText:
		control = m.inputs[f.Field].View()
	case kindPicker:
		choice := onboarding.OptionLabel(f.Choices, data.Get(f.Field))
		if focused {
			control = SelectedChoiceStyle.Render("‹ " + choice + " ›")
		} else {
			control = "  " + choice
		}
	case kindToggle:
		current := data.Get(f.Field)
		var opts []string
		for _, c := range f.Choices {
			if c.Value == current {
				opts = append(opts, SelectedChoiceStyle.Render("(•) "+c.Label))
			} else {
				opts = append(opts, ChoiceStyle.Render("( ) "+c.Label))
			}
		}
		control = "  " + strings.Join(opts, "    ")
	}

	out := label + "\n" + control
	if msg := errs.Get(f.Field); msg != "" {
		out += "\n" + FieldErrorStyle.Render(msg)
	}
	return out
}

func (m WizardModel) renderNavigation(width int) string {
	back := ButtonStyle.Render("← Back")
	if !m.ctrl.CanRetreat() {
		back = DisabledButtonStyle.Render("← Back")
	}

	next := ButtonStyle.Render("Next →")
	if m.ctrl.IsFinalStep() {
		next = CompleteButtonStyle.Render("Complete Setup ✓")
	}

	gap := max(1, width-lipgloss.Width(back)-lipgloss.Width(next))
	return back + strings.Repeat(" ", gap) + next
}

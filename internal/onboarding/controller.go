package onboarding

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/muurk/onboard/internal/logging"
)

// Wizard steps
const (
	StepPersonal    = 1
	StepBusiness    = 2
	StepPreferences = 3

	// TotalSteps is the number of wizard steps; the last one submits.
	TotalSteps = StepPreferences
)

// Mode is the top-level screen the application shows.
type Mode int

const (
	ModeWizard Mode = iota
	ModeDashboard
)

// String returns the mode name used in logs and CLI output
func (m Mode) String() string {
	switch m {
	case ModeWizard:
		return "wizard"
	case ModeDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// State is either InProgress or Complete. Holding one of the two concrete
// types, rather than a record with a completion flag, keeps exactly one mode
// active at a time.
type State interface {
	Mode() Mode
}

// InProgress is the wizard state.
type InProgress struct {
	Step   int
	Data   FormData
	Errors ErrorSet
}

// Mode implements State
func (InProgress) Mode() Mode { return ModeWizard }

// Complete is the terminal state shown as the dashboard.
type Complete struct {
	Data FormData
}

// Mode implements State
func (Complete) Mode() Mode { return ModeDashboard }

// Store persists the completed form in a single storage slot.
type Store interface {
	// Load returns the persisted record. found is false when the slot is
	// missing or unreadable as a record.
	Load(ctx context.Context) (data FormData, found bool, err error)
	// Save writes data (marked complete) over any previous value.
	Save(ctx context.Context, data FormData) error
	// Clear removes the slot. Clearing a missing slot is not an error.
	Clear(ctx context.Context) error
}

// Controller owns the wizard state. All mutation goes through its methods.
// It is not safe for concurrent use; the TUI drives it from a single goroutine.
type Controller struct {
	store Store
	state State
}

// NewController creates a controller at step 1 with an empty form. Call Load
// to pick up a previously completed onboarding.
func NewController(store Store) *Controller {
	return &Controller{
		store: store,
		state: freshState(),
	}
}

// Open creates a controller and loads the persisted slot.
func Open(ctx context.Context, store Store) (*Controller, error) {
	c := NewController(store)
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func freshState() InProgress {
	return InProgress{
		Step:   StepPersonal,
		Data:   NewFormData(),
		Errors: ErrorSet{},
	}
}

// Load consults the store once and selects the starting mode: the dashboard
// when a completed record exists, otherwise a fresh wizard at step 1.
func (c *Controller) Load(ctx context.Context) error {
	data, found, err := c.store.Load(ctx)
	if err != nil {
		return NewStorageError("failed to load onboarding data", err)
	}

	if found && data.IsComplete {
		c.state = Complete{Data: data}
		logging.Info("Loaded completed onboarding", zap.String("name", data.Name))
		return nil
	}

	c.state = freshState()
	logging.Debug("Starting onboarding wizard", zap.Bool("slot_found", found))
	return nil
}

// State returns the current state value.
func (c *Controller) State() State {
	return c.state
}

// Mode returns which screen should be shown.
func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// Step returns the wizard step, or 0 in dashboard mode.
func (c *Controller) Step() int {
	if s, ok := c.state.(InProgress); ok {
		return s.Step
	}
	return 0
}

// Data returns a copy of the form record.
func (c *Controller) Data() FormData {
	switch s := c.state.(type) {
	case InProgress:
		return s.Data
	case Complete:
		return s.Data
	default:
		return NewFormData()
	}
}

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() ErrorSet {
	if s, ok := c.state.(InProgress); ok {
		return s.Errors.Clone()
	}
	return ErrorSet{}
}

// Progress returns the completion percentage shown above the wizard.
func (c *Controller) Progress() int {
	switch s := c.state.(type) {
	case InProgress:
		return int(math.Round(float64(s.Step) / float64(TotalSteps) * 100))
	default:
		return 100
	}
}

// CanRetreat reports whether Back is available.
func (c *Controller) CanRetreat() bool {
	s, ok := c.state.(InProgress)
	return ok && s.Step > StepPersonal
}

// IsFinalStep reports whether the wizard is on the submit step.
func (c *Controller) IsFinalStep() bool {
	s, ok := c.state.(InProgress)
	return ok && s.Step == TotalSteps
}

func (c *Controller) inProgress(op string) (InProgress, error) {
	s, ok := c.state.(InProgress)
	if !ok {
		return InProgress{}, NewStateError(ErrNotInProgress, op)
	}
	return s, nil
}

// SetField overwrites one field. An existing error on that field is dropped
// without re-validating; the value is checked again on the next Advance or
// Submit.
func (c *Controller) SetField(field Field, value string) error {
	s, err := c.inProgress("set field")
	if err != nil {
		return err
	}

	data, err := s.Data.With(field, value)
	if err != nil {
		return err
	}
	s.Data = data

	if s.Errors.Has(field) {
		s.Errors = s.Errors.Clone()
		delete(s.Errors, field)
	}

	c.state = s
	return nil
}

// Advance validates the current step and moves forward when it passes. On
// failure the step is unchanged and the returned *Error carries the field
// messages, which are also available from Errors.
func (c *Controller) Advance() error {
	s, err := c.inProgress("advance")
	if err != nil {
		return err
	}
	if s.Step >= TotalSteps {
		return NewStateError(ErrNoNextStep, "use submit")
	}

	if verr := c.gate(&s); verr != nil {
		return verr
	}

	from := s.Step
	s.Step++
	c.state = s
	logging.LogStepTransition(from, s.Step, "advance")
	return nil
}

// Retreat moves back one step without validation.
func (c *Controller) Retreat() error {
	s, err := c.inProgress("retreat")
	if err != nil {
		return err
	}
	if s.Step <= StepPersonal {
		return NewStateError(ErrNoPreviousStep, "")
	}

	from := s.Step
	s.Step--
	c.state = s
	logging.LogStepTransition(from, s.Step, "retreat")
	return nil
}

// Submit validates the final step, persists the record marked complete and
// switches to dashboard mode. Validation and storage failures leave the
// wizard where it was.
func (c *Controller) Submit(ctx context.Context) error {
	s, err := c.inProgress("submit")
	if err != nil {
		return err
	}
	if s.Step != TotalSteps {
		return NewStateError(ErrNotFinalStep, "")
	}

	if verr := c.gate(&s); verr != nil {
		return verr
	}

	data := s.Data
	data.IsComplete = true
	if err := c.store.Save(ctx, data); err != nil {
		c.state = s
		return NewStorageError("failed to save onboarding data", err)
	}

	c.state = Complete{Data: data}
	logging.LogStepTransition(s.Step, 0, "submit")
	return nil
}

// Reset clears the slot and starts the wizard over from an empty form. It is
// allowed in either mode.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return NewStorageError("failed to clear onboarding data", err)
	}

	prev := c.state.Mode()
	c.state = freshState()
	logging.Info("Onboarding reset", zap.Stringer("from_mode", prev))
	return nil
}

// gate runs the validator for s.Step and records the result in s. It
// returns a validation error when any field failed.
func (c *Controller) gate(s *InProgress) error {
	errs := Validate(s.Step, s.Data)
	s.Errors = errs
	if !errs.Empty() {
		c.state = *s
		logging.LogValidation(s.Step, errs.Len())
		return NewValidationError(s.Step, errs)
	}
	return nil
}

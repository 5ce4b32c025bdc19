package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeValidation indicates one or more form fields failed validation
	ErrTypeValidation ErrorType = iota
	// ErrTypeState indicates an operation that is not legal in the current wizard state
	ErrTypeState
	// ErrTypeStorage indicates the storage slot could not be read or written
	ErrTypeStorage
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeState:
		return "State Error"
	case ErrTypeStorage:
		return "Storage Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Sentinel errors for illegal state transitions. Callers match them with
// errors.Is; the controller always wraps them in an *Error.
var (
	ErrNotInProgress  = errors.New("onboarding is already complete")
	ErrNotComplete    = errors.New("onboarding is not complete")
	ErrNoNextStep     = errors.New("already on the final step")
	ErrNoPreviousStep = errors.New("already on the first step")
	ErrNotFinalStep   = errors.New("submit is only allowed on the final step")
	ErrUnknownField   = errors.New("unknown form field")
)

// Error represents a failed onboarding operation
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Step    int       // Wizard step the error belongs to (validation only)
	Fields  ErrorSet  // Per-field messages (validation only)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error carrying the failing fields
func NewValidationError(step int, fields ErrorSet) *Error {
	parts := make([]string, 0, fields.Len())
	for _, f := range fields.Fields() {
		parts = append(parts, fields.Get(f))
	}
	return &Error{
		Type:    ErrTypeValidation,
		Message: fmt.Sprintf("step %d: %s", step, strings.Join(parts, ", ")),
		Step:    step,
		Fields:  fields.Clone(),
	}
}

// NewStateError creates a state error wrapping one of the sentinel errors
func NewStateError(sentinel error, detail string) *Error {
	msg := sentinel.Error()
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	return &Error{
		Type:    ErrTypeState,
		Message: msg,
		Err:     sentinel,
	}
}

// NewStorageError creates a storage error
func NewStorageError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeStorage,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var oerr *Error
	if errors.As(err, &oerr) {
		return oerr.Type == ErrTypeValidation
	}
	return false
}

// IsStateError checks if an error is a state transition error
func IsStateError(err error) bool {
	var oerr *Error
	if errors.As(err, &oerr) {
		return oerr.Type == ErrTypeState
	}
	return false
}

// IsStorageError checks if an error is a storage error
func IsStorageError(err error) bool {
	var oerr *Error
	if errors.As(err, &oerr) {
		return oerr.Type == ErrTypeStorage
	}
	return false
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var oerr *Error
	if !errors.As(err, &oerr) {
		return err.Error()
	}

	switch oerr.Type {
	case ErrTypeValidation:
		return "Please fix the highlighted fields"
	case ErrTypeStorage:
		return "Could not access saved onboarding data"
	default:
		return oerr.Message
	}
}

package onboarding

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeValidation, "Validation Error"},
		{ErrTypeState, "State Error"},
		{ErrTypeStorage, "Storage Error"},
		{ErrorType(42), "ErrorType(42)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestNewValidationError(t *testing.T) {
	fields := ErrorSet{FieldEmail: "Email is invalid", FieldName: "Name is required"}
	err := NewValidationError(StepPersonal, fields)

	if !IsValidationError(err) {
		t.Error("Expected validation error")
	}
	if err.Step != StepPersonal {
		t.Errorf("Step = %d, want %d", err.Step, StepPersonal)
	}
	// Messages follow form order
	if !strings.Contains(err.Error(), "Name is required, Email is invalid") {
		t.Errorf("Error() = %q", err.Error())
	}

	// Fields is a copy
	fields[FieldCompanyName] = "x"
	if err.Fields.Has(FieldCompanyName) {
		t.Error("NewValidationError should copy the error set")
	}
}

func TestNewStateError_MatchesSentinel(t *testing.T) {
	err := NewStateError(ErrNoNextStep, "use submit")

	if !errors.Is(err, ErrNoNextStep) {
		t.Error("errors.Is should match the sentinel")
	}
	if errors.Is(err, ErrNoPreviousStep) {
		t.Error("errors.Is should not match other sentinels")
	}
	if !IsStateError(err) {
		t.Error("Expected state error")
	}
	if !strings.Contains(err.Error(), "use submit") {
		t.Errorf("Error() = %q, should include detail", err.Error())
	}
}

func TestNewStorageError_Wrapped(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("submit: %w", NewStorageError("failed to save", cause))

	if !IsStorageError(err) {
		t.Error("IsStorageError should see through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if IsValidationError(err) || IsStateError(err) {
		t.Error("Storage error misclassified")
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Validation", NewValidationError(1, ErrorSet{FieldName: "Name is required"}), "Please fix the highlighted fields"},
		{"Storage", NewStorageError("x", errors.New("y")), "Could not access saved onboarding data"},
		{"State", NewStateError(ErrNotInProgress, ""), ErrNotInProgress.Error()},
		{"Plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetShortErrorMessage(tt.err); got != tt.want {
				t.Errorf("GetShortErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

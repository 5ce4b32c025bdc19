// Package onboarding holds the onboarding wizard's form record, validation
// rules and step state machine.
//
// The wizard collects data over three steps:
//   - Step 1 (Personal): name and email, both required
//   - Step 2 (Business): company name, industry and company size, all required
//   - Step 3 (Preferences): dashboard theme and layout, defaulted and never validated
//
// # State Machine
//
// A Controller is always in exactly one of two states:
//
//	InProgress{Step, Data, Errors}   wizard mode, Step in 1..3
//	Complete{Data}                   dashboard mode
//
// Transitions:
//
//	1 -> 2, 2 -> 3      Advance, gated by Validate
//	2 -> 1, 3 -> 2      Retreat, ungated
//	3 -> Complete       Submit, gated by Validate, persists the record
//	any -> 1            Reset, clears the storage slot
//
// The starting state comes from the Store: a persisted record with
// isComplete=true opens the dashboard, anything else starts a fresh wizard.
//
// # Usage Example
//
//	ctrl, err := onboarding.Open(ctx, slot)
//	if err != nil {
//	    return err
//	}
//
//	_ = ctrl.SetField(onboarding.FieldName, "Ana")
//	_ = ctrl.SetField(onboarding.FieldEmail, "ana@x.com")
//	if err := ctrl.Advance(); onboarding.IsValidationError(err) {
//	    for _, f := range ctrl.Errors().Fields() {
//	        fmt.Println(f, ctrl.Errors().Get(f))
//	    }
//	}
//
// # Error Clearing
//
// SetField drops the error of the edited field immediately, even if the new
// value is still invalid. The field is only checked again on the next
// Advance or Submit.
package onboarding

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/onboard/internal/logging"
	"github.com/muurk/onboard/internal/onboarding"
)

// DefaultKey is the slot key the wizard reads and writes.
const DefaultKey = "onboardingData"

// Slot is the persistence adapter: one JSON-encoded onboarding record under
// one key of a Backend. It implements onboarding.Store.
type Slot struct {
	backend Backend
	key     string
}

var _ onboarding.Store = (*Slot)(nil)

// NewSlot binds key of backend. An empty key uses DefaultKey.
func NewSlot(backend Backend, key string) *Slot {
	if key == "" {
		key = DefaultKey
	}
	return &Slot{backend: backend, key: key}
}

// Key returns the slot key.
func (s *Slot) Key() string { return s.key }

// Backend returns the underlying key/value backend.
func (s *Slot) Backend() Backend { return s.backend }

// Load reads the record. A missing slot and contents that are not a JSON
// object both report found=false; only backend failures are errors.
func (s *Slot) Load(ctx context.Context) (onboarding.FormData, bool, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		logging.LogPersistence(s.backend.Name(), s.key, "load-miss", 0)
		return onboarding.FormData{}, false, nil
	}
	if err != nil {
		return onboarding.FormData{}, false, fmt.Errorf("failed to read slot %q: %w", s.key, err)
	}
	logging.LogPersistence(s.backend.Name(), s.key, "load", len(raw))

	data, ok := decodeRecord(raw)
	if !ok {
		logging.Warn("Ignoring unreadable onboarding slot",
			zap.String("backend", s.backend.Name()),
			zap.String("key", s.key),
			zap.Int("bytes", len(raw)),
		)
		return onboarding.FormData{}, false, nil
	}
	return data, true, nil
}

// Save writes data marked complete, replacing any previous value.
func (s *Slot) Save(ctx context.Context, data onboarding.FormData) error {
	data.IsComplete = true

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode onboarding record: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", s.key, err)
	}
	logging.LogPersistence(s.backend.Name(), s.key, "save", len(raw))
	return nil
}

// Clear removes the slot.
func (s *Slot) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", s.key, err)
	}
	logging.LogPersistence(s.backend.Name(), s.key, "clear", 0)
	return nil
}

// decodeRecord parses a stored record. Anything that is not a JSON object
// (including "null" and arrays) is rejected. Fields are decoded one at a
// time: a missing or mistyped field keeps its zero value and the rest of the
// record still loads.
func decodeRecord(raw []byte) (onboarding.FormData, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return onboarding.FormData{}, false
	}

	var data onboarding.FormData
	targets := map[string]any{
		"name":            &data.Name,
		"email":           &data.Email,
		"companyName":     &data.CompanyName,
		"industry":        &data.Industry,
		"companySize":     &data.CompanySize,
		"theme":           &data.Theme,
		"dashboardLayout": &data.DashboardLayout,
		"isComplete":      &data.IsComplete,
	}
	for key, value := range fields {
		target, ok := targets[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			logging.Debug("Skipping mistyped slot field",
				zap.String("field", key),
				zap.Error(err),
			)
		}
	}
	return data, true
}

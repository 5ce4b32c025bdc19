package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store with failure injection.
type fakeStore struct {
	data     FormData
	found    bool
	loadErr  error
	saveErr  error
	clearErr error
	saves    int
	clears   int
}

func (f *fakeStore) Load(ctx context.Context) (FormData, bool, error) {
	return f.data, f.found, f.loadErr
}

func (f *fakeStore) Save(ctx context.Context, data FormData) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data.IsComplete = true
	f.data, f.found = data, true
	f.saves++
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.data, f.found = FormData{}, false
	f.clears++
	return nil
}

func fillPersonal(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.SetField(FieldName, "Ana"))
	require.NoError(t, c.SetField(FieldEmail, "ana@x.com"))
}

func fillBusiness(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.SetField(FieldCompanyName, "Acme"))
	require.NoError(t, c.SetField(FieldIndustry, "technology"))
	require.NoError(t, c.SetField(FieldCompanySize, "1-10"))
}

func TestOpen_FreshStartsWizard(t *testing.T) {
	c, err := Open(context.Background(), &fakeStore{})
	require.NoError(t, err)

	assert.Equal(t, ModeWizard, c.Mode())
	assert.Equal(t, StepPersonal, c.Step())
	assert.Equal(t, NewFormData(), c.Data())
	assert.True(t, c.Errors().Empty())
	assert.False(t, c.CanRetreat())
	assert.Equal(t, 33, c.Progress())
}

func TestOpen_CompletedRecordStartsDashboard(t *testing.T) {
	saved := FormData{Name: "Ana", Theme: ThemeDark, DashboardLayout: LayoutWide, IsComplete: true}
	c, err := Open(context.Background(), &fakeStore{data: saved, found: true})
	require.NoError(t, err)

	assert.Equal(t, ModeDashboard, c.Mode())
	assert.Equal(t, 0, c.Step())
	assert.Equal(t, saved, c.Data())
	assert.Equal(t, 100, c.Progress())
	assert.IsType(t, Complete{}, c.State())
}

func TestOpen_IncompleteRecordIsIgnored(t *testing.T) {
	partial := FormData{Name: "Ana", Email: "ana@x.com"}
	c, err := Open(context.Background(), &fakeStore{data: partial, found: true})
	require.NoError(t, err)

	assert.Equal(t, ModeWizard, c.Mode())
	assert.Equal(t, NewFormData(), c.Data())
}

func TestOpen_StorageFailure(t *testing.T) {
	_, err := Open(context.Background(), &fakeStore{loadErr: errors.New("disk gone")})
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
}

func TestAdvance_BlockedByValidation(t *testing.T) {
	c := NewController(&fakeStore{})

	err := c.Advance()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, StepPersonal, c.Step())

	errs := c.Errors()
	assert.Equal(t, "Name is required", errs.Get(FieldName))
	assert.Equal(t, "Email is required", errs.Get(FieldEmail))

	var oerr *Error
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, StepPersonal, oerr.Step)
	assert.Equal(t, 2, oerr.Fields.Len())
}

func TestAdvance_NeverMovesOnErrors(t *testing.T) {
	c := NewController(&fakeStore{})
	fillPersonal(t, c)
	require.NoError(t, c.Advance())

	for i := 0; i < 3; i++ {
		require.Error(t, c.Advance())
		assert.Equal(t, StepBusiness, c.Step())
	}
}

func TestAdvance_ClearsErrorsOnSuccess(t *testing.T) {
	c := NewController(&fakeStore{})
	require.Error(t, c.Advance())
	require.False(t, c.Errors().Empty())

	fillPersonal(t, c)
	require.NoError(t, c.Advance())
	assert.True(t, c.Errors().Empty())
	assert.Equal(t, StepBusiness, c.Step())
}

func TestAdvance_FinalStepRejected(t *testing.T) {
	c := NewController(&fakeStore{})
	fillPersonal(t, c)
	require.NoError(t, c.Advance())
	fillBusiness(t, c)
	require.NoError(t, c.Advance())
	require.True(t, c.IsFinalStep())

	err := c.Advance()
	assert.ErrorIs(t, err, ErrNoNextStep)
	assert.Equal(t, StepPreferences, c.Step())
}

func TestSetField_ClearsOnlyThatError(t *testing.T) {
	c := NewController(&fakeStore{})
	require.Error(t, c.Advance())

	require.NoError(t, c.SetField(FieldEmail, "still-not-an-email"))

	errs := c.Errors()
	assert.False(t, errs.Has(FieldEmail), "edited field error should clear even when still invalid")
	assert.True(t, errs.Has(FieldName), "other field errors stay")
	assert.Equal(t, "still-not-an-email", c.Data().Email)

	// The invalid value is caught again on the next gate
	require.Error(t, c.Advance())
	assert.Equal(t, "Email is invalid", c.Errors().Get(FieldEmail))
}

func TestSetField_UnknownField(t *testing.T) {
	c := NewController(&fakeStore{})
	err := c.SetField(Field("nickname"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, IsStateError(err))
}

func TestErrors_ReturnsCopy(t *testing.T) {
	c := NewController(&fakeStore{})
	require.Error(t, c.Advance())

	errs := c.Errors()
	delete(errs, FieldName)
	assert.True(t, c.Errors().Has(FieldName))
}

func TestRetreat(t *testing.T) {
	c := NewController(&fakeStore{})

	assert.ErrorIs(t, c.Retreat(), ErrNoPreviousStep)
	assert.Equal(t, StepPersonal, c.Step())

	fillPersonal(t, c)
	require.NoError(t, c.Advance())
	require.Error(t, c.Advance()) // step 2 empty, leaves errors behind

	require.NoError(t, c.Retreat())
	assert.Equal(t, StepPersonal, c.Step())
	assert.Equal(t, "Ana", c.Data().Name, "data survives going back")
}

func TestSubmit_NotOnFinalStep(t *testing.T) {
	store := &fakeStore{}
	c := NewController(store)
	fillPersonal(t, c)

	assert.ErrorIs(t, c.Submit(context.Background()), ErrNotFinalStep)
	assert.Equal(t, 0, store.saves)
}

func TestSubmit_StorageFailureStaysInWizard(t *testing.T) {
	store := &fakeStore{}
	c := NewController(store)
	fillPersonal(t, c)
	require.NoError(t, c.Advance())
	fillBusiness(t, c)
	require.NoError(t, c.Advance())

	store.saveErr = errors.New("read-only filesystem")
	err := c.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
	assert.Equal(t, ModeWizard, c.Mode())
	assert.Equal(t, StepPreferences, c.Step())
}

func TestOperationsRejectedInDashboard(t *testing.T) {
	c, err := Open(context.Background(), &fakeStore{data: FormData{IsComplete: true}, found: true})
	require.NoError(t, err)

	assert.ErrorIs(t, c.SetField(FieldName, "x"), ErrNotInProgress)
	assert.ErrorIs(t, c.Advance(), ErrNotInProgress)
	assert.ErrorIs(t, c.Retreat(), ErrNotInProgress)
	assert.ErrorIs(t, c.Submit(context.Background()), ErrNotInProgress)
	assert.Equal(t, ModeDashboard, c.Mode())
}

func TestReset_FromAnyState(t *testing.T) {
	build := map[string]func(t *testing.T) (*Controller, *fakeStore){
		"fresh": func(t *testing.T) (*Controller, *fakeStore) {
			s := &fakeStore{}
			return NewController(s), s
		},
		"step 2 with errors": func(t *testing.T) (*Controller, *fakeStore) {
			s := &fakeStore{}
			c := NewController(s)
			fillPersonal(t, c)
			require.NoError(t, c.Advance())
			require.Error(t, c.Advance())
			return c, s
		},
		"dashboard": func(t *testing.T) (*Controller, *fakeStore) {
			s := &fakeStore{data: FormData{Name: "Ana", IsComplete: true}, found: true}
			c, err := Open(context.Background(), s)
			require.NoError(t, err)
			return c, s
		},
	}

	for name, setup := range build {
		t.Run(name, func(t *testing.T) {
			c, store := setup(t)
			require.NoError(t, c.Reset(context.Background()))

			assert.Equal(t, ModeWizard, c.Mode())
			assert.Equal(t, StepPersonal, c.Step())
			assert.Equal(t, NewFormData(), c.Data())
			assert.True(t, c.Errors().Empty())
			assert.False(t, store.found)
			assert.Equal(t, 1, store.clears)
		})
	}
}

func TestReset_StorageFailureKeepsState(t *testing.T) {
	store := &fakeStore{data: FormData{Name: "Ana", IsComplete: true}, found: true}
	c, err := Open(context.Background(), store)
	require.NoError(t, err)

	store.clearErr = errors.New("locked")
	err = c.Reset(context.Background())
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
	assert.Equal(t, ModeDashboard, c.Mode())
}

func TestProgress(t *testing.T) {
	c := NewController(&fakeStore{})
	assert.Equal(t, 33, c.Progress())

	fillPersonal(t, c)
	require.NoError(t, c.Advance())
	assert.Equal(t, 67, c.Progress())

	fillBusiness(t, c)
	require.NoError(t, c.Advance())
	assert.Equal(t, 100, c.Progress())
}

func TestFullScenario(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	c, err := Open(ctx, store)
	require.NoError(t, err)
	require.Equal(t, ModeWizard, c.Mode())
	require.Equal(t, StepPersonal, c.Step())

	fillPersonal(t, c)
	require.NoError(t, c.Advance())
	require.Equal(t, StepBusiness, c.Step())

	err = c.Advance()
	require.Error(t, err)
	assert.Equal(t, StepBusiness, c.Step())
	assert.Equal(t, "Company name is required", c.Errors().Get(FieldCompanyName))

	fillBusiness(t, c)
	require.NoError(t, c.Advance())
	require.Equal(t, StepPreferences, c.Step())

	require.NoError(t, c.SetField(FieldTheme, string(ThemeDark)))
	require.NoError(t, c.SetField(FieldDashboardLayout, string(LayoutWide)))
	require.NoError(t, c.Submit(ctx))

	assert.Equal(t, ModeDashboard, c.Mode())
	assert.True(t, store.data.IsComplete)
	assert.Equal(t, ThemeDark, store.data.Theme)
	assert.Equal(t, LayoutWide, store.data.DashboardLayout)
	assert.Equal(t, "Acme", store.data.CompanyName)

	require.NoError(t, c.Reset(ctx))
	assert.False(t, store.found)
	assert.Equal(t, StepPersonal, c.Step())
	assert.Equal(t, "", c.Data().Name)
}

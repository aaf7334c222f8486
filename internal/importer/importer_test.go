package importer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/i18n"
	"github.com/Veraticus/upkeep/internal/model"
)

type call struct {
	method string
	arg    string
	siteID int64
}

type recordingActions struct {
	err   error
	calls []call
}

func (r *recordingActions) StartImport(_ context.Context, siteID int64, importerType string) error {
	r.calls = append(r.calls, call{method: "start", siteID: siteID, arg: importerType})
	return r.err
}

func (r *recordingActions) CancelImport(_ context.Context, siteID int64, importerID string) error {
	r.calls = append(r.calls, call{method: "cancel", siteID: siteID, arg: importerID})
	return r.err
}

func (r *recordingActions) ResetImport(_ context.Context, siteID int64, importerID string) error {
	r.calls = append(r.calls, call{method: "reset", siteID: siteID, arg: importerID})
	return r.err
}

func status(state model.ImporterState) model.ImporterStatus {
	return model.ImporterStatus{
		ImporterID:    "imp-7",
		ImporterState: state,
		Type:          "importer-type-wordpress",
	}
}

// Every state maps to exactly one category, and every category has a label.
// Adding a state to the model without classifying it fails here.
func TestClassify_Exhaustive(t *testing.T) {
	for _, state := range model.AllImporterStates() {
		category, err := Classify(state)
		require.NoError(t, err, "state %s", state.Name())
		_, hasLabel := labels[category]
		assert.True(t, hasLabel, "category %s has no label", category)
	}
	assert.Len(t, categories, len(model.AllImporterStates()))
}

func TestClassify(t *testing.T) {
	tests := map[model.ImporterState]Category{
		model.ImporterStateDisabled:       CategoryStartable,
		model.ImporterStateInactive:       CategoryStartable,
		model.ImporterStateMapAuthors:     CategoryCancelable,
		model.ImporterStateReadyForUpload: CategoryCancelable,
		model.ImporterStateUploadFailure:  CategoryCancelable,
		model.ImporterStateUploadSuccess:  CategoryCancelable,
		model.ImporterStateUploading:      CategoryCancelable,
		model.ImporterStateImportFailure:  CategoryStoppable,
		model.ImporterStateImporting:      CategoryStoppable,
		model.ImporterStateImportSuccess:  CategoryDone,
	}

	for state, want := range tests {
		t.Run(state.Name(), func(t *testing.T) {
			got, err := Classify(state)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := Classify("importer-cancel-pending")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestDescribe(t *testing.T) {
	tr := i18n.New("en")

	tests := []struct {
		state         model.ImporterState
		wantLabel     string
		wantCategory  Category
		wantPrimary   bool
		wantCanCancel bool
	}{
		{model.ImporterStateInactive, "Start Import", CategoryStartable, false, true},
		{model.ImporterStateReadyForUpload, "Cancel", CategoryCancelable, true, true},
		{model.ImporterStateUploading, "Cancel", CategoryCancelable, true, false},
		{model.ImporterStateImporting, "Stop Import", CategoryStoppable, true, true},
		{model.ImporterStateImportSuccess, "Done", CategoryDone, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.Name(), func(t *testing.T) {
			header, err := Describe(status(tt.state), true, tr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, header.Label)
			assert.Equal(t, tt.wantCategory, header.Category)
			assert.Equal(t, tt.wantPrimary, header.Primary)
			assert.Equal(t, tt.wantCanCancel, header.CanCancel)
		})
	}
}

func TestDescribe_DisabledUI(t *testing.T) {
	for _, state := range model.AllImporterStates() {
		header, err := Describe(status(state), false, i18n.New("en"))
		require.NoError(t, err)
		assert.False(t, header.CanCancel, "state %s", state.Name())
	}
}

func TestDescribe_Localized(t *testing.T) {
	header, err := Describe(status(model.ImporterStateImportSuccess), true, i18n.New("es"))
	require.NoError(t, err)
	assert.Equal(t, "Terminado", header.Label)
}

func TestDescribe_UnknownState(t *testing.T) {
	_, err := Describe(status("importer-exploded"), true, i18n.New("en"))
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestPress(t *testing.T) {
	tests := []struct {
		state      model.ImporterState
		wantAction Action
		wantCall   call
	}{
		{model.ImporterStateDisabled, ActionStart, call{method: "start", siteID: 5, arg: "importer-type-wordpress"}},
		{model.ImporterStateInactive, ActionStart, call{method: "start", siteID: 5, arg: "importer-type-wordpress"}},
		{model.ImporterStateMapAuthors, ActionCancel, call{method: "cancel", siteID: 5, arg: "imp-7"}},
		{model.ImporterStateUploading, ActionCancel, call{method: "cancel", siteID: 5, arg: "imp-7"}},
		{model.ImporterStateImportFailure, ActionCancel, call{method: "cancel", siteID: 5, arg: "imp-7"}},
		{model.ImporterStateImporting, ActionCancel, call{method: "cancel", siteID: 5, arg: "imp-7"}},
		{model.ImporterStateImportSuccess, ActionReset, call{method: "reset", siteID: 5, arg: "imp-7"}},
	}

	for _, tt := range tests {
		t.Run(tt.state.Name(), func(t *testing.T) {
			actions := &recordingActions{}
			action, err := Press(context.Background(), actions, 5, status(tt.state))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, []call{tt.wantCall}, actions.calls)
		})
	}
}

func TestPress_PropagatesErrors(t *testing.T) {
	actions := &recordingActions{err: errors.New("api unavailable")}

	action, err := Press(context.Background(), actions, 5, status(model.ImporterStateImportSuccess))
	assert.Equal(t, ActionReset, action)
	assert.EqualError(t, err, "api unavailable")
}

func TestPress_UnknownState(t *testing.T) {
	actions := &recordingActions{}
	_, err := Press(context.Background(), actions, 5, status("importer-exploded"))
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Empty(t, actions.calls)
}

func TestLoggingActions(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, common.SetupLogger(&buf, slog.LevelInfo, "console"))

	_, err := Press(context.Background(), LoggingActions{}, 12, status(model.ImporterStateImporting))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Cancel import requested")
	assert.Contains(t, buf.String(), "importer_id=imp-7")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Press(ctx, LoggingActions{}, 12, status(model.ImporterStateInactive))
	assert.ErrorIs(t, err, context.Canceled)
}

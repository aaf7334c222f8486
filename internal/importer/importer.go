// Package importer decides what the master control of a content importer
// shows and does for each job state.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/upkeep/internal/i18n"
	"github.com/Veraticus/upkeep/internal/model"
)

// ErrUnknownState is returned for states outside the closed enum.
var ErrUnknownState = errors.New("unknown importer state")

// Category groups importer states that share a control.
type Category int

// Control categories.
const (
	CategoryStartable Category = iota + 1
	CategoryCancelable
	CategoryStoppable
	CategoryDone
)

func (c Category) String() string {
	switch c {
	case CategoryStartable:
		return "startable"
	case CategoryCancelable:
		return "cancelable"
	case CategoryStoppable:
		return "stoppable"
	case CategoryDone:
		return "done"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

var categories = map[model.ImporterState]Category{
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

type label struct {
	text    string
	context string
}

var labels = map[Category]label{
	CategoryStartable:  {text: "Start Import", context: "verb"},
	CategoryCancelable: {text: "Cancel", context: "verb"},
	CategoryStoppable:  {text: "Stop Import", context: "verb"},
	CategoryDone:       {text: "Done", context: "adjective"},
}

// Classify returns the control category for state.
func Classify(state model.ImporterState) (Category, error) {
	category, ok := categories[state]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	return category, nil
}

// Header is what the importer header renders for one job.
type Header struct {
	Label     string
	Category  Category
	Primary   bool // Emphasized while a job is in flight
	CanCancel bool // Whether the control accepts clicks
}

// Describe builds the header for status. enabled reflects whether the
// importer UI as a whole is enabled; uploads cannot be interrupted even then.
func Describe(status model.ImporterStatus, enabled bool, t i18n.Translator) (Header, error) {
	category, err := Classify(status.ImporterState)
	if err != nil {
		return Header{}, err
	}

	l := labels[category]
	return Header{
		Label:     t.Translate(l.text, i18n.Context(l.context)),
		Category:  category,
		Primary:   category == CategoryCancelable || category == CategoryStoppable,
		CanCancel: enabled && status.ImporterState != model.ImporterStateUploading,
	}, nil
}

// Actions are the import API calls the control can trigger.
type Actions interface {
	StartImport(ctx context.Context, siteID int64, importerType string) error
	CancelImport(ctx context.Context, siteID int64, importerID string) error
	ResetImport(ctx context.Context, siteID int64, importerID string) error
}

// Action names the call Press made.
type Action string

// Actions the control can take.
const (
	ActionStart  Action = "start"
	ActionCancel Action = "cancel"
	ActionReset  Action = "reset"
)

// Press performs the control's action for status on siteID.
func Press(ctx context.Context, actions Actions, siteID int64, status model.ImporterStatus) (Action, error) {
	category, err := Classify(status.ImporterState)
	if err != nil {
		return "", err
	}

	switch category {
	case CategoryStartable:
		return ActionStart, actions.StartImport(ctx, siteID, status.Type)
	case CategoryCancelable, CategoryStoppable:
		return ActionCancel, actions.CancelImport(ctx, siteID, status.ImporterID)
	case CategoryDone:
		return ActionReset, actions.ResetImport(ctx, siteID, status.ImporterID)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownState, status.ImporterState)
	}
}

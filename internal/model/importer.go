package model

import (
	"fmt"
	"strings"
)

// ImporterState is the phase of an asynchronous content-import job.
type ImporterState string

// Importer state constants. Values match the import API.
const (
	ImporterStateDisabled       ImporterState = "importer-disabled"
	ImporterStateInactive       ImporterState = "importer-inactive"
	ImporterStateMapAuthors     ImporterState = "importer-map-authors"
	ImporterStateReadyForUpload ImporterState = "importer-ready-for-upload"
	ImporterStateUploadFailure  ImporterState = "importer-upload-failure"
	ImporterStateUploadSuccess  ImporterState = "importer-upload-success"
	ImporterStateUploading      ImporterState = "importer-uploading"
	ImporterStateImportFailure  ImporterState = "importer-import-failure"
	ImporterStateImporting      ImporterState = "importer-importing"
	ImporterStateImportSuccess  ImporterState = "importer-import-success"
)

// AllImporterStates returns every importer state.
func AllImporterStates() []ImporterState {
	return []ImporterState{
		ImporterStateDisabled,
		ImporterStateInactive,
		ImporterStateMapAuthors,
		ImporterStateReadyForUpload,
		ImporterStateUploadFailure,
		ImporterStateUploadSuccess,
		ImporterStateUploading,
		ImporterStateImportFailure,
		ImporterStateImporting,
		ImporterStateImportSuccess,
	}
}

// Name returns the upper-case constant name, e.g. "READY_FOR_UPLOAD".
func (s ImporterState) Name() string {
	name := strings.TrimPrefix(string(s), "importer-")
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ParseImporterState accepts either a wire value ("importer-uploading")
// or a constant name ("UPLOADING").
func ParseImporterState(s string) (ImporterState, error) {
	for _, state := range AllImporterStates() {
		if string(state) == s || state.Name() == strings.ToUpper(s) {
			return state, nil
		}
	}
	return "", fmt.Errorf("unknown importer state %q", s)
}

// ImporterStatus is the latest status of one import job, as reported by
// the import poller.
type ImporterStatus struct {
	ImporterID    string
	ImporterState ImporterState
	Type          string // Importer type, e.g. "importer-type-wordpress"
}

// Validate ensures the status identifies a job in a known state.
func (s *ImporterStatus) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("importer type is required")
	}
	if _, err := ParseImporterState(string(s.ImporterState)); err != nil {
		return err
	}
	return nil
}

package importer

import (
	"context"

	"github.com/Veraticus/upkeep/internal/common"
)

// LoggingActions records control presses in the log instead of calling the
// import API. It backs the CLI, which has no API client.
type LoggingActions struct{}

// StartImport logs a start request.
func (LoggingActions) StartImport(ctx context.Context, siteID int64, importerType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	common.LogInfo("Start import requested", common.Fields{"site_id": siteID, "type": importerType})
	return nil
}

// CancelImport logs a cancel request.
func (LoggingActions) CancelImport(ctx context.Context, siteID int64, importerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	common.LogInfo("Cancel import requested", common.Fields{"site_id": siteID, "importer_id": importerID})
	return nil
}

// ResetImport logs a reset request.
func (LoggingActions) ResetImport(ctx context.Context, siteID int64, importerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	common.LogInfo("Reset import requested", common.Fields{"site_id": siteID, "importer_id": importerID})
	return nil
}

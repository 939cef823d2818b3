package applications

import (
	"context"

	"Backend-AIInterviewer/src/models"
)

// Store adapts the package-level data access to the sync engine's
// ResponseStore interface so the engine can be tested with fakes.
type Store struct{}

func (Store) GetByFormID(ctx context.Context, formID string) (*models.ApplicationForm, error) {
	return GetByFormID(ctx, formID)
}

func (Store) List(ctx context.Context) ([]models.ApplicationForm, error) {
	return List(ctx)
}

func (Store) MergeResponses(ctx context.Context, formID string, responses map[string]models.ResponseRecord) error {
	return MergeResponses(ctx, formID, responses)
}

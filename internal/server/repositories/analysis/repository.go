package analysis

import (
	"context"

	"github.com/ingria/ingria-backend/internal/server/models"
)

// Repository persists analysis records. Records are append-only: there are
// no update or delete operations.
type Repository interface {
	// Create inserts a record with a server-assigned timestamp and returns
	// the new identifier.
	Create(ctx context.Context, rec *models.AnalysisRecord) (int64, error)

	// SelectAll returns every record, newest first.
	SelectAll(ctx context.Context) ([]*models.AnalysisRecord, error)

	// GetByID returns common.ErrNotFound for an unknown identifier.
	GetByID(ctx context.Context, id int64) (*models.AnalysisRecord, error)
}

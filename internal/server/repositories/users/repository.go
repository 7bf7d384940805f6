package users

import (
	"context"

	"github.com/ingria/ingria-backend/internal/server/models"
)

// Repository resolves session tokens to durable user rows.
type Repository interface {
	// GetOrCreate returns the user owning the session token, inserting a new
	// row on first sight. It must be idempotent under retry: a second call
	// with the same token returns the existing row, not a duplicate.
	GetOrCreate(ctx context.Context, sessionID string) (*models.User, error)
}

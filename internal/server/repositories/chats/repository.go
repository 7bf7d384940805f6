package chats

import (
	"context"

	"github.com/ingria/ingria-backend/internal/server/models"
)

// Repository persists chats. Chats are never deleted.
type Repository interface {
	// Create inserts a chat and fills in the server-assigned id and
	// creation time.
	Create(ctx context.Context, chat *models.Chat) (*models.Chat, error)

	// GetByID returns common.ErrNotFound for an unknown identifier.
	// An unknown chat id is NotFound on every code path of this service.
	GetByID(ctx context.Context, id int64) (*models.Chat, error)

	// SelectByUser returns the user's chats, newest first.
	SelectByUser(ctx context.Context, userID int64) ([]*models.Chat, error)
}

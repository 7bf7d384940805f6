package messages

import (
	"context"

	"github.com/ingria/ingria-backend/internal/server/models"
)

// Repository persists chat messages. Messages are append-only; there is no
// mutation or deletion.
type Repository interface {
	// Create appends a message with a server-assigned timestamp and returns
	// the stored row.
	Create(ctx context.Context, chatID int64, role, content string) (*models.Message, error)

	// SelectByChat returns the chat's messages ordered by timestamp
	// ascending (id breaks ties within one timestamp tick).
	SelectByChat(ctx context.Context, chatID int64) ([]*models.Message, error)
}

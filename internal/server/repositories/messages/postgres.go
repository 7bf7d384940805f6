package messages

import (
	"context"
	"fmt"

	"github.com/ingria/ingria-backend/internal/dbx"
	"github.com/ingria/ingria-backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, chatID int64, role, content string) (*models.Message, error) {

	query :=
		`INSERT INTO chat_messages (chat_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, timestamp
		 `

	msg := &models.Message{ChatID: chatID, Role: role, Content: content}
	err := r.db.QueryRowContext(ctx, query, chatID, role, content).
		Scan(&msg.ID, &msg.Timestamp)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

func (r *PostgresRepository) SelectByChat(ctx context.Context, chatID int64) ([]*models.Message, error) {

	query :=
		`SELECT id, chat_id, role, content, timestamp FROM chat_messages
		 WHERE chat_id = $1
		 ORDER BY timestamp ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

package chats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ingria/ingria-backend/internal/common"
	"github.com/ingria/ingria-backend/internal/dbx"
	"github.com/ingria/ingria-backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, chat *models.Chat) (*models.Chat, error) {

	query :=
		`INSERT INTO chats (user_id, title)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, chat.UserID, chat.Title).
		Scan(&chat.ID, &chat.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return chat, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Chat, error) {

	query :=
		`SELECT id, user_id, title, created_at FROM chats
		 WHERE id = $1
		 `

	chat := &models.Chat{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&chat.ID, &chat.UserID, &chat.Title, &chat.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return chat, nil
}

func (r *PostgresRepository) SelectByUser(ctx context.Context, userID int64) ([]*models.Chat, error) {

	query :=
		`SELECT id, user_id, title, created_at FROM chats
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Chat
	for rows.Next() {
		chat := &models.Chat{}
		if err := rows.Scan(&chat.ID, &chat.UserID, &chat.Title, &chat.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

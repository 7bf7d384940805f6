package users

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

// GetOrCreate upserts against the unique session_id column. The no-op
// DO UPDATE makes RETURNING yield the existing row on conflict, so the
// select-else-insert race of a naive implementation cannot produce
// duplicates.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, sessionID string) (*models.User, error) {

	query :=
		`INSERT INTO users (session_id)
		 VALUES ($1)
		 ON CONFLICT (session_id) DO UPDATE SET session_id = EXCLUDED.session_id
		 RETURNING id, session_id, created_at
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, sessionID).
		Scan(&user.ID, &user.SessionID, &user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

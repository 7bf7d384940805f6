package analysis

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

func (r *PostgresRepository) Create(ctx context.Context, rec *models.AnalysisRecord) (int64, error) {

	query :=
		`INSERT INTO analysis_results (user_id, ai_response, file_name, file_path)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.AIResponse, rec.FileName, rec.FilePath).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.AnalysisRecord, error) {

	query :=
		`SELECT ar.id, ar.timestamp, u.session_id, ar.ai_response, ar.file_name, ar.file_path
		 FROM analysis_results ar
		 JOIN users u ON ar.user_id = u.id
		 ORDER BY ar.timestamp DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var records []*models.AnalysisRecord
	for rows.Next() {
		rec := &models.AnalysisRecord{}
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.UserSessionID,
			&rec.AIResponse, &rec.FileName, &rec.FilePath); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return records, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.AnalysisRecord, error) {

	query :=
		`SELECT ar.id, ar.timestamp, u.session_id, ar.ai_response, ar.file_name, ar.file_path
		 FROM analysis_results ar
		 JOIN users u ON ar.user_id = u.id
		 WHERE ar.id = $1
		 `

	rec := &models.AnalysisRecord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Timestamp,
		&rec.UserSessionID, &rec.AIResponse, &rec.FileName, &rec.FilePath)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

package repomanager

import (
	"context"
	"database/sql"

	"github.com/ingria/ingria-backend/internal/dbx"
	"github.com/ingria/ingria-backend/internal/server/migrations"
	"github.com/ingria/ingria-backend/internal/server/repositories/analysis"
	"github.com/ingria/ingria-backend/internal/server/repositories/chats"
	"github.com/ingria/ingria-backend/internal/server/repositories/messages"
	"github.com/ingria/ingria-backend/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Analysis returns an analysis.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Analysis(db dbx.DBTX) analysis.Repository {
	return analysis.NewPostgresRepository(db)
}

// Chats returns a chats.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Chats(db dbx.DBTX) chats.Repository {
	return chats.NewPostgresRepository(db)
}

// Messages returns a messages.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

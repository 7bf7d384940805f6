// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/ingria/ingria-backend/internal/dbx"
	"github.com/ingria/ingria-backend/internal/server/repositories/analysis"
	"github.com/ingria/ingria-backend/internal/server/repositories/chats"
	"github.com/ingria/ingria-backend/internal/server/repositories/messages"
	"github.com/ingria/ingria-backend/internal/server/repositories/users"
)

// RepositoryManager constructs repositories bound to the provided DBTX.
// Passing a transactional handle makes every repository call inside it
// transactional.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Analysis(db dbx.DBTX) analysis.Repository
	Chats(db dbx.DBTX) chats.Repository
	Messages(db dbx.DBTX) messages.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}

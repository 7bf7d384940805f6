// Package server initializes and runs the application: it wires the
// database, object storage, AI provider and HTTP surface together from
// configuration and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ingria/ingria-backend/internal/ai"
	"github.com/ingria/ingria-backend/internal/logging"
	"github.com/ingria/ingria-backend/internal/server/config"
	"github.com/ingria/ingria-backend/internal/server/httpapi"
	"github.com/ingria/ingria-backend/internal/server/repositories/repomanager"
	"github.com/ingria/ingria-backend/internal/server/services"
	"github.com/ingria/ingria-backend/internal/server/storage"
)

// App holds everything constructed at startup. There is no package-level
// mutable state: every handler reaches its dependencies through here.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("bucket provisioning error: %w", err)
	}

	generator, err := ai.NewGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ai init error: %w", err)
	}

	analysisService := services.NewAnalysisService(db, manager, store, generator, logger)
	chatService := services.NewChatService(db, manager, generator, logger)

	srv := httpapi.NewServer(cfg.Addr, cfg.CORSAllowedOrigins, analysisService, chatService, logger)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

// Run serves HTTP until SIGINT/SIGTERM, then releases the database pool.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting app...")

	return app.server.Run(ctx)
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ingria/ingria-backend/internal/ai"
	"github.com/ingria/ingria-backend/internal/logging"
	"github.com/ingria/ingria-backend/internal/server/models"
	"github.com/ingria/ingria-backend/internal/server/repositories/repomanager"
	"github.com/ingria/ingria-backend/internal/server/storage"
)

// AnalysisService runs the media-analysis pipeline: store the upload, ask
// the model for a description, best-effort persist the result.
type AnalysisService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	generator   ai.Generator
	logger      logging.Logger
}

func NewAnalysisService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore, g ai.Generator, l logging.Logger) *AnalysisService {
	return &AnalysisService{
		db:          db,
		repomanager: m,
		store:       store,
		generator:   g,
		logger:      l.With("module", "analysis_service"),
	}
}

// Analyze uploads the media, invokes the model and returns the generated
// description. Storage and model failures abort the request; the audit-trail
// insert is best-effort and never fails the request.
func (s *AnalysisService) Analyze(ctx context.Context, sessionID, fileName, contentType string, data []byte) (string, error) {

	key := storage.ObjectKey(fileName)

	locator, err := s.store.Put(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}
	s.logger.Info(ctx, "file stored", "file_name", fileName, "key", key)

	prompt := imageAnalysisPrompt
	if strings.HasPrefix(contentType, "audio/") {
		prompt = audioAnalysisPrompt
	}

	text, err := s.generator.Generate(ctx, ai.Request{
		Parts: []ai.Part{
			{Text: prompt},
			{MIME: contentType, Data: data},
		},
	})
	if err != nil {
		return "", err
	}

	// Best-effort: the client still gets the description when the audit
	// trail write fails.
	if err := s.persistResult(ctx, sessionID, text, fileName, locator); err != nil {
		s.logger.Error(ctx, "saving analysis result failed", "error", err.Error())
	}

	return text, nil
}

func (s *AnalysisService) persistResult(ctx context.Context, sessionID, aiResponse, fileName, locator string) error {

	user, err := s.repomanager.Users(s.db).GetOrCreate(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("resolving user: %w", err)
	}

	_, err = s.repomanager.Analysis(s.db).Create(ctx, &models.AnalysisRecord{
		UserID:     user.ID,
		AIResponse: aiResponse,
		FileName:   fileName,
		FilePath:   locator,
	})
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	return nil
}

// List returns all analysis records, newest first.
func (s *AnalysisService) List(ctx context.Context) ([]*models.AnalysisRecord, error) {
	return s.repomanager.Analysis(s.db).SelectAll(ctx)
}

// Get returns one record or common.ErrNotFound.
func (s *AnalysisService) Get(ctx context.Context, id int64) (*models.AnalysisRecord, error) {
	return s.repomanager.Analysis(s.db).GetByID(ctx, id)
}

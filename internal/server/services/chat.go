package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ingria/ingria-backend/internal/ai"
	"github.com/ingria/ingria-backend/internal/dbx"
	"github.com/ingria/ingria-backend/internal/logging"
	"github.com/ingria/ingria-backend/internal/server/models"
	"github.com/ingria/ingria-backend/internal/server/repositories/repomanager"
)

// ChatService maintains per-user conversations and produces AI replies from
// the full message history.
type ChatService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   ai.Generator
	logger      logging.Logger
}

func NewChatService(db *sql.DB, m repomanager.RepositoryManager, g ai.Generator, l logging.Logger) *ChatService {
	return &ChatService{
		db:          db,
		repomanager: m,
		generator:   g,
		logger:      l.With("module", "chat_service"),
	}
}

// Create opens a new chat for the session's user. When persona is non-empty
// it becomes the chat's initial system message; chat row and system message
// are written in one transaction.
func (s *ChatService) Create(ctx context.Context, sessionID, title, persona string) (*models.Chat, error) {

	user, err := s.repomanager.Users(s.db).GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}

	if title == "" {
		title = fmt.Sprintf("Чат %s", time.Now().Format("2006-01-02 15:04"))
	}

	chat := &models.Chat{UserID: user.ID, Title: title}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		chat, err = s.repomanager.Chats(tx).Create(ctx, chat)
		if err != nil {
			return err
		}

		if persona != "" {
			_, err = s.repomanager.Messages(tx).Create(ctx, chat.ID, models.RoleSystem, persona)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "chat created", "chat_id", chat.ID, "user_id", user.ID)
	return chat, nil
}

// SendMessage appends the user message, asks the model for a reply over the
// full history and appends that reply. The stored assistant message is
// returned. Unknown chat ids yield common.ErrNotFound.
func (s *ChatService) SendMessage(ctx context.Context, chatID int64, content string) (*models.Message, error) {

	if _, err := s.repomanager.Chats(s.db).GetByID(ctx, chatID); err != nil {
		return nil, err
	}

	msgRepo := s.repomanager.Messages(s.db)

	history, err := msgRepo.SelectByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if _, err := msgRepo.Create(ctx, chatID, models.RoleUser, content); err != nil {
		return nil, err
	}

	prompt := make([]ai.Message, 0, len(history)+2)
	prompt = append(prompt, ai.Message{Role: models.RoleSystem, Content: chatSystemPrompt})
	for _, m := range history {
		prompt = append(prompt, ai.Message{Role: m.Role, Content: m.Content})
	}
	prompt = append(prompt, ai.Message{Role: models.RoleUser, Content: content})

	reply, err := s.generator.Generate(ctx, ai.Request{Messages: prompt})
	if err != nil {
		return nil, err
	}

	assistantMsg, err := msgRepo.Create(ctx, chatID, models.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return assistantMsg, nil
}

// ListForSession returns the session user's chats, newest first.
func (s *ChatService) ListForSession(ctx context.Context, sessionID string) ([]*models.Chat, error) {

	user, err := s.repomanager.Users(s.db).GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}

	return s.repomanager.Chats(s.db).SelectByUser(ctx, user.ID)
}

// Details returns the chat and its messages ordered by timestamp ascending.
// An unknown chat id is common.ErrNotFound; an existing chat without
// messages yields an empty history.
func (s *ChatService) Details(ctx context.Context, chatID int64) (*models.Chat, []*models.Message, error) {

	chat, err := s.repomanager.Chats(s.db).GetByID(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := s.repomanager.Messages(s.db).SelectByChat(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}

	return chat, msgs, nil
}

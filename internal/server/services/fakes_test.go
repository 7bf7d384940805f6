package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/ingria/ingria-backend/internal/ai"
	"github.com/ingria/ingria-backend/internal/common"
	"github.com/ingria/ingria-backend/internal/dbx"
	"github.com/ingria/ingria-backend/internal/server/models"
	"github.com/ingria/ingria-backend/internal/server/repositories/analysis"
	"github.com/ingria/ingria-backend/internal/server/repositories/chats"
	"github.com/ingria/ingria-backend/internal/server/repositories/messages"
	"github.com/ingria/ingria-backend/internal/server/repositories/users"
)

// In-memory fakes for service tests. They count calls so tests can assert
// how often each adapter was touched.

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	lastReq ai.Request
}

func (g *fakeGenerator) Generate(_ context.Context, req ai.Request) (string, error) {
	g.calls++
	g.lastReq = req
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type fakeStore struct {
	url     string
	err     error
	calls   int
	lastKey string
}

func (s *fakeStore) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	s.calls++
	s.lastKey = key
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	err   error
	next  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) GetOrCreate(_ context.Context, sessionID string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[sessionID]; ok {
		return u, nil
	}
	r.next++
	u := &models.User{ID: r.next, SessionID: sessionID}
	r.users[sessionID] = u
	return u, nil
}

type fakeAnalysisRepo struct {
	createCalls int
	createErr   error
	records     []*models.AnalysisRecord
	nextID      int64
}

func (r *fakeAnalysisRepo) Create(_ context.Context, rec *models.AnalysisRecord) (int64, error) {
	r.createCalls++
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	rec.ID = r.nextID
	r.records = append([]*models.AnalysisRecord{rec}, r.records...)
	return rec.ID, nil
}

func (r *fakeAnalysisRepo) SelectAll(_ context.Context) ([]*models.AnalysisRecord, error) {
	return r.records, nil
}

func (r *fakeAnalysisRepo) GetByID(_ context.Context, id int64) (*models.AnalysisRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeChatRepo struct {
	chats  map[int64]*models.Chat
	nextID int64
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: map[int64]*models.Chat{}}
}

func (r *fakeChatRepo) Create(_ context.Context, chat *models.Chat) (*models.Chat, error) {
	r.nextID++
	chat.ID = r.nextID
	r.chats[chat.ID] = chat
	return chat, nil
}

func (r *fakeChatRepo) GetByID(_ context.Context, id int64) (*models.Chat, error) {
	if chat, ok := r.chats[id]; ok {
		return chat, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeChatRepo) SelectByUser(_ context.Context, userID int64) ([]*models.Chat, error) {
	var result []*models.Chat
	// Newest first: fake ids grow monotonically.
	for id := r.nextID; id > 0; id-- {
		if chat, ok := r.chats[id]; ok && chat.UserID == userID {
			result = append(result, chat)
		}
	}
	return result, nil
}

type fakeMessageRepo struct {
	byChat map[int64][]*models.Message
	nextID int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{byChat: map[int64][]*models.Message{}}
}

func (r *fakeMessageRepo) Create(_ context.Context, chatID int64, role, content string) (*models.Message, error) {
	r.nextID++
	msg := &models.Message{ID: r.nextID, ChatID: chatID, Role: role, Content: content}
	r.byChat[chatID] = append(r.byChat[chatID], msg)
	return msg, nil
}

func (r *fakeMessageRepo) SelectByChat(_ context.Context, chatID int64) ([]*models.Message, error) {
	return r.byChat[chatID], nil
}

type fakeManager struct {
	userRepo     *fakeUserRepo
	analysisRepo *fakeAnalysisRepo
	chatRepo     *fakeChatRepo
	messageRepo  *fakeMessageRepo
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		userRepo:     newFakeUserRepo(),
		analysisRepo: &fakeAnalysisRepo{},
		chatRepo:     newFakeChatRepo(),
		messageRepo:  newFakeMessageRepo(),
	}
}

func (m *fakeManager) Users(dbx.DBTX) users.Repository        { return m.userRepo }
func (m *fakeManager) Analysis(dbx.DBTX) analysis.Repository  { return m.analysisRepo }
func (m *fakeManager) Chats(dbx.DBTX) chats.Repository        { return m.chatRepo }
func (m *fakeManager) Messages(dbx.DBTX) messages.Repository  { return m.messageRepo }
func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }

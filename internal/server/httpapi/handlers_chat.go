package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ingria/ingria-backend/internal/common"
)

type createChatRequest struct {
	Title string `json:"title"`
	// Role is the chat persona, stored as the initial system message.
	Role string `json:"role"`
}

type createChatResponse struct {
	ChatID    int64     `json:"chat_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type chatMessageRequest struct {
	Content string `json:"content"`
}

type chatMessageResponse struct {
	ChatID    int64     `json:"chat_id"`
	MessageID int64     `json:"message_id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

type chatSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type chatListResponse struct {
	Chats []chatSummary `json:"chats"`
}

type chatDetailsResponse struct {
	ChatID    int64                 `json:"chat_id"`
	Title     string                `json:"title"`
	CreatedAt time.Time             `json:"created_at"`
	Messages  []chatMessageResponse `json:"messages"`
}

func (s *Server) handleCreateChat(c *gin.Context) {

	var req createChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: malformed body", common.ErrValidation))
		return
	}

	chat, err := s.chats.Create(c.Request.Context(), sessionID(c), req.Title, req.Role)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, createChatResponse{
		ChatID:    chat.ID,
		Title:     chat.Title,
		CreatedAt: chat.CreatedAt,
	})
}

func (s *Server) handleSendMessage(c *gin.Context) {

	chatID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: invalid chat id", common.ErrValidation))
		return
	}

	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		s.abortWithError(c, fmt.Errorf("%w: content is required", common.ErrValidation))
		return
	}

	reply, err := s.chats.SendMessage(c.Request.Context(), chatID, req.Content)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatMessageResponse{
		ChatID:    reply.ChatID,
		MessageID: reply.ID,
		Content:   reply.Content,
		Role:      reply.Role,
		Timestamp: reply.Timestamp,
	})
}

func (s *Server) handleListChats(c *gin.Context) {

	chats, err := s.chats.ListForSession(c.Request.Context(), sessionID(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	list := make([]chatSummary, 0, len(chats))
	for _, chat := range chats {
		list = append(list, chatSummary{ID: chat.ID, Title: chat.Title, CreatedAt: chat.CreatedAt})
	}

	c.JSON(http.StatusOK, chatListResponse{Chats: list})
}

func (s *Server) handleChatDetails(c *gin.Context) {

	chatID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: invalid chat id", common.ErrValidation))
		return
	}

	chat, msgs, err := s.chats.Details(c.Request.Context(), chatID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	messages := make([]chatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		messages = append(messages, chatMessageResponse{
			ChatID:    m.ChatID,
			MessageID: m.ID,
			Content:   m.Content,
			Role:      m.Role,
			Timestamp: m.Timestamp,
		})
	}

	c.JSON(http.StatusOK, chatDetailsResponse{
		ChatID:    chat.ID,
		Title:     chat.Title,
		CreatedAt: chat.CreatedAt,
		Messages:  messages,
	})
}

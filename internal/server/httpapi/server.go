// Package httpapi exposes the service over REST/JSON: media analysis,
// chats with AI replies, and read-only history endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ingria/ingria-backend/internal/logging"
	"github.com/ingria/ingria-backend/internal/server/services"
)

type Server struct {
	addr     string
	engine   *gin.Engine
	analysis *services.AnalysisService
	chats    *services.ChatService
	logger   logging.Logger
}

func NewServer(addr string, corsOrigins []string, as *services.AnalysisService, cs *services.ChatService, l logging.Logger) *Server {

	s := &Server{
		addr:     addr,
		analysis: as,
		chats:    cs,
		logger:   l.With("module", "http_server"),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(s.requestLogger(), s.recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	s.registerRoutes(engine)
	s.engine = engine

	return s
}

func (s *Server) registerRoutes(e *gin.Engine) {
	e.POST("/analyze", s.handleAnalyze)

	e.POST("/chat/new", s.handleCreateChat)
	e.POST("/chat/:id/message", s.handleSendMessage)
	e.GET("/chats", s.handleListChats)
	e.GET("/chat/:id", s.handleChatDetails)

	e.GET("/analysis", s.handleListAnalysis)
	e.GET("/analysis/:id", s.handleAnalysisDetails)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ingria/ingria-backend/internal/common"
)

const sessionCookie = "session_id"

// sessionID returns the caller's session token. The cookie is never set
// back, so a client that does not persist it becomes a fresh anonymous
// user on every request.
func sessionID(c *gin.Context) string {
	if v, err := c.Cookie(sessionCookie); err == nil && v != "" {
		return v
	}
	return uuid.NewString()
}

// abortWithError maps sentinel error kinds to status codes deterministically.
func (s *Server) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrUnsupportedMedia):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	default:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

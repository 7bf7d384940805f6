package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ingria/ingria-backend/internal/common"
	"github.com/ingria/ingria-backend/internal/server/models"
)

// allowedMediaTypes is the upload allow-list for /analyze.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":  true,
	"image/png":   true,
	"image/webp":  true,
	"audio/ogg":   true,
	"audio/wav":   true,
	"audio/m4a":   true,
	"audio/x-m4a": true,
}

type analysisResponse struct {
	Description string `json:"description"`
}

type analysisRecord struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id"`
	AIResponse string    `json:"ai_response"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
}

type analysisListResponse struct {
	Items []analysisRecord `json:"items"`
}

func toAnalysisRecord(rec *models.AnalysisRecord) analysisRecord {
	return analysisRecord{
		ID:         rec.ID,
		Timestamp:  rec.Timestamp,
		UserID:     rec.UserSessionID,
		AIResponse: rec.AIResponse,
		FileName:   rec.FileName,
		FilePath:   rec.FilePath,
	}
}

// handleAnalyze validates the multipart upload and runs the analysis
// pipeline. Validation happens before any storage write or AI call.
func (s *Server) handleAnalyze(c *gin.Context) {

	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: file is required", common.ErrValidation))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		s.abortWithError(c, fmt.Errorf("%w: %s", common.ErrUnsupportedMedia, contentType))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: cannot open upload", common.ErrValidation))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: cannot read upload", common.ErrValidation))
		return
	}

	description, err := s.analysis.Analyze(c.Request.Context(), sessionID(c), fileHeader.Filename, contentType, data)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysisResponse{Description: description})
}

func (s *Server) handleListAnalysis(c *gin.Context) {

	records, err := s.analysis.List(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	items := make([]analysisRecord, 0, len(records))
	for _, rec := range records {
		items = append(items, toAnalysisRecord(rec))
	}

	c.JSON(http.StatusOK, analysisListResponse{Items: items})
}

func (s *Server) handleAnalysisDetails(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: invalid record id", common.ErrValidation))
		return
	}

	rec, err := s.analysis.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAnalysisRecord(rec))
}

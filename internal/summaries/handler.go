package summaries

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legaldraft-backend/internal/extract"
	"legaldraft-backend/internal/shared/server/middleware"
	"legaldraft-backend/internal/shared/server/respond"
)

// maxUploadBytes caps summarizer uploads.
const maxUploadBytes = 10 << 20

type uploadRequest struct {
	Text string `json:"text"`
}

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summarizer/upload", h.upload)
}

// upload accepts either a JSON body with raw text or a multipart file
// (PDF, DOCX or plain text) whose text is extracted first.
func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	text, ok := h.readText(c)
	if !ok {
		return
	}

	summary, err := h.Svc.Summarize(c.Request.Context(), userID, text)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize", nil)
		return
	}
	respond.OK(c, gin.H{"summary": summary})
}

func (h *Handler) readText(c *gin.Context) (string, bool) {
	contentType := c.ContentType()
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req uploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return "", false
		}
		return req.Text, true
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return "", false
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file too large", nil)
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", false
	}

	text, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported or unreadable file", nil)
		return "", false
	}
	return text, true
}

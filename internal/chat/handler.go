package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legaldraft-backend/internal/shared/server/middleware"
	"legaldraft-backend/internal/shared/server/respond"
)

type queryRequest struct {
	Query      string  `json:"query" binding:"required"`
	DocumentID *string `json:"documentId"`
}

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chatbot/query", h.query)
}

func (h *Handler) query(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	answer, err := h.Svc.Query(c.Request.Context(), userID, req.Query, req.DocumentID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process query", nil)
		return
	}
	respond.OK(c, gin.H{"answer": answer})
}

package generation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legaldraft-backend/internal/shared/server/middleware"
	"legaldraft-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generator routes to the router group.
// renderMiddleware (rate limiting) applies to the render endpoint only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, renderMiddleware ...gin.HandlerFunc) {
	handlers := append(renderMiddleware, h.render)
	rg.POST("/generator/render", handlers...)
	rg.GET("/generator/documents", h.list)
	rg.GET("/generator/documents/:id", h.get)
}

func (h *Handler) render(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Render(c.Request.Context(), userID, RenderParams{
		TemplateID:   req.TemplateID,
		Inputs:       req.Inputs,
		OutputFormat: req.OutputFormat,
	})
	if err != nil {
		var missing *MissingFieldsError
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		case errors.As(err, &missing):
			respond.Error(c, http.StatusUnprocessableEntity, "missing_fields", missing.Error(),
				gin.H{"missing": missing.Labels})
		case errors.Is(err, ErrRenderFailed):
			respond.Error(c, http.StatusBadRequest, "render_failed", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate document", nil)
		}
		return
	}

	c.Set("templateId", doc.TemplateID)
	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusCreated, toResult(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}
	results := make([]GenerationResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, toResult(doc))
	}
	respond.OK(c, results)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load document", nil)
		return
	}
	c.Set("documentId", doc.ID)
	respond.OK(c, toResult(doc))
}

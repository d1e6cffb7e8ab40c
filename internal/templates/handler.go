package templates

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legaldraft-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.POST("/templates", h.create)
	rg.GET("/templates/:id", h.get)
	rg.PUT("/templates/:id", h.update)
	rg.DELETE("/templates/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list templates", nil)
		return
	}
	resp := make([]TemplateResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, toResponse(t))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), Template{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Version:     req.Version,
		Fields:      req.Fields,
		Body:        req.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create template", nil)
		}
		return
	}

	c.Set("templateId", created.ID)
	respond.JSON(c, http.StatusCreated, toResponse(created))
}

func (h *Handler) get(c *gin.Context) {
	templateID := c.Param("id")
	c.Set("templateId", templateID)

	t, err := h.Svc.Get(c.Request.Context(), templateID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch template", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(t))
}

func (h *Handler) update(c *gin.Context) {
	templateID := c.Param("id")
	c.Set("templateId", templateID)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), templateID, req.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update template", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(updated))
}

func (h *Handler) remove(c *gin.Context) {
	templateID := c.Param("id")
	c.Set("templateId", templateID)

	if err := h.Svc.Delete(c.Request.Context(), templateID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete template", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

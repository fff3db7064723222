package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/shared/middleware"
	"corpus-backend/internal/shared/response"
)

// Handler - HTTP Handler cho verse endpoints
type Handler struct {
	service verse.Service
}

// NewHandler - Constructor with DI
func NewHandler(service verse.Service) *Handler {
	return &Handler{service: service}
}

// ListVerses - GET /works/:work_id/verses
// Query params: offset (>=0, default 0), limit (1-100, default 20)
func (h *Handler) ListVerses(c *gin.Context) {
	offset := 0
	limit := 20

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	page, err := h.service.ListVerses(c.Request.Context(), c.Param("work_id"), offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// GetVerse - GET /works/:work_id/verses/:verse_id
func (h *Handler) GetVerse(c *gin.Context) {
	v, err := h.service.GetVerse(c.Request.Context(), c.Param("work_id"), c.Param("verse_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// CreateVerse - POST /works/:work_id/verses
func (h *Handler) CreateVerse(c *gin.Context) {
	var req verse.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	v, err := h.service.CreateVerse(c.Request.Context(), c.Param("work_id"), req, middleware.Actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

// UpdateVerse - PUT /works/:work_id/verses/:verse_id
func (h *Handler) UpdateVerse(c *gin.Context) {
	var req verse.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	v, err := h.service.UpdateVerse(c.Request.Context(), c.Param("work_id"), c.Param("verse_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// DeleteVerse - DELETE /works/:work_id/verses/:verse_id
// Idempotent: deleting an already-deleted verse still returns 204.
func (h *Handler) DeleteVerse(c *gin.Context) {
	err := h.service.DeleteVerse(c.Request.Context(), c.Param("work_id"), c.Param("verse_id"), middleware.Actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, verse.ErrVerseNotFound):
		response.NotFound(c, "Verse not found")
	case errors.Is(err, work.ErrWorkNotFound):
		response.NotFound(c, "Work not found")
	case errors.Is(err, verse.ErrDuplicateManualNumber):
		response.Conflict(c, "number_manual already in use")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/shared/middleware"
	"corpus-backend/internal/shared/response"
)

// Handler - HTTP Handler cho commentary endpoints
type Handler struct {
	service commentary.Service
}

// NewHandler - Constructor with DI
func NewHandler(service commentary.Service) *Handler {
	return &Handler{service: service}
}

// ListForVerse - GET /works/:work_id/verses/:verse_id/commentary
func (h *Handler) ListForVerse(c *gin.Context) {
	items, err := h.service.ListForVerse(c.Request.Context(), c.Param("work_id"), c.Param("verse_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetCommentary - GET /works/:work_id/commentary/:commentary_id
func (h *Handler) GetCommentary(c *gin.Context) {
	item, err := h.service.GetCommentary(c.Request.Context(), c.Param("work_id"), c.Param("commentary_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// CreateCommentary - POST /works/:work_id/verses/:verse_id/commentary
// Returns only the minted id; clients fetch the full record separately.
func (h *Handler) CreateCommentary(c *gin.Context) {
	var req commentary.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.CreateCommentary(c.Request.Context(), c.Param("work_id"), c.Param("verse_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, commentary.CreatedResponse{CommentaryID: item.CommentaryID})
}

// UpdateCommentary - PUT /works/:work_id/commentary/:commentary_id
func (h *Handler) UpdateCommentary(c *gin.Context) {
	var req commentary.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.UpdateCommentary(c.Request.Context(), c.Param("work_id"), c.Param("commentary_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// DeleteCommentary - DELETE /works/:work_id/commentary/:commentary_id
func (h *Handler) DeleteCommentary(c *gin.Context) {
	err := h.service.DeleteCommentary(c.Request.Context(), c.Param("work_id"), c.Param("commentary_id"), middleware.Actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commentary.ErrCommentaryNotFound):
		response.NotFound(c, "Commentary not found")
	case errors.Is(err, verse.ErrVerseNotFound):
		response.NotFound(c, "Verse not found")
	case errors.Is(err, work.ErrWorkNotFound):
		response.NotFound(c, "Work not found")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}

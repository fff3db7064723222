package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/domains/review"
	reviewservice "corpus-backend/internal/domains/review/service"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/shared/middleware"
	"corpus-backend/internal/shared/response"
)

// Handler - HTTP Handler cho review workflow endpoints.
// The record id rides in the path; the work id rides in the body since
// records are addressed by (work_id, own_id).
type Handler struct {
	service reviewservice.Service
}

// NewHandler - Constructor with DI
func NewHandler(service reviewservice.Service) *Handler {
	return &Handler{service: service}
}

// ========================================
// Verse actions
// ========================================

// ApproveVerse - POST /review/verse/:verse_id/approve
func (h *Handler) ApproveVerse(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	v, err := h.service.ApproveVerse(c.Request.Context(), req.WorkID, c.Param("verse_id"), middleware.Actor(c))
	h.respond(c, v, err)
}

// RejectVerse - POST /review/verse/:verse_id/reject
func (h *Handler) RejectVerse(c *gin.Context) {
	var req review.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}
	v, err := h.service.RejectVerse(c.Request.Context(), req.WorkID, c.Param("verse_id"), req.Issues, middleware.Actor(c))
	h.respond(c, v, err)
}

// FlagVerse - POST /review/verse/:verse_id/flag
func (h *Handler) FlagVerse(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	v, err := h.service.FlagVerse(c.Request.Context(), req.WorkID, c.Param("verse_id"), middleware.Actor(c))
	h.respond(c, v, err)
}

// LockVerse - POST /review/verse/:verse_id/lock
func (h *Handler) LockVerse(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	v, err := h.service.LockVerse(c.Request.Context(), req.WorkID, c.Param("verse_id"), middleware.Actor(c))
	h.respond(c, v, err)
}

// ========================================
// Commentary actions
// ========================================

// ApproveCommentary - POST /review/commentary/:commentary_id/approve
func (h *Handler) ApproveCommentary(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	item, err := h.service.ApproveCommentary(c.Request.Context(), req.WorkID, c.Param("commentary_id"), middleware.Actor(c))
	h.respond(c, item, err)
}

// RejectCommentary - POST /review/commentary/:commentary_id/reject
func (h *Handler) RejectCommentary(c *gin.Context) {
	var req review.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}
	item, err := h.service.RejectCommentary(c.Request.Context(), req.WorkID, c.Param("commentary_id"), req.Issues, middleware.Actor(c))
	h.respond(c, item, err)
}

// FlagCommentary - POST /review/commentary/:commentary_id/flag
func (h *Handler) FlagCommentary(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	item, err := h.service.FlagCommentary(c.Request.Context(), req.WorkID, c.Param("commentary_id"), middleware.Actor(c))
	h.respond(c, item, err)
}

// LockCommentary - POST /review/commentary/:commentary_id/lock
func (h *Handler) LockCommentary(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	item, err := h.service.LockCommentary(c.Request.Context(), req.WorkID, c.Param("commentary_id"), middleware.Actor(c))
	h.respond(c, item, err)
}

// ========================================
// Helpers
// ========================================

func (h *Handler) bindAction(c *gin.Context) (review.ActionRequest, bool) {
	var req review.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return req, false
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return req, false
	}
	return req, true
}

func (h *Handler) respond(c *gin.Context, record interface{}, err error) {
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, verse.ErrVerseNotFound):
		response.NotFound(c, "Verse not found")
	case errors.Is(err, commentary.ErrCommentaryNotFound):
		response.NotFound(c, "Commentary not found")
	case errors.Is(err, work.ErrWorkNotFound):
		response.NotFound(c, "Work not found")
	case errors.Is(err, review.ErrCanonicalTextRequired):
		response.UnprocessableEntity(c, "Canonical language text required")
	case errors.Is(err, review.ErrOriginRequired):
		response.UnprocessableEntity(c, "Origin entry required")
	case errors.Is(err, review.ErrUnknownAction):
		response.BadRequest(c, "Unknown review action")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}

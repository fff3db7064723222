package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/shared/response"
)

// Handler - HTTP Handler cho work endpoints
type Handler struct {
	service work.Service
}

// NewHandler - Constructor with DI
func NewHandler(service work.Service) *Handler {
	return &Handler{service: service}
}

// ListWorks - GET /works
func (h *Handler) ListWorks(c *gin.Context) {
	summaries, err := h.service.ListWorks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summaries)
}

// GetWork - GET /works/:work_id
func (h *Handler) GetWork(c *gin.Context) {
	w, err := h.service.GetWork(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, w)
}

// ReplaceWork - PUT /works/:work_id
// Full replace; there is no partial patch for works.
func (h *Handler) ReplaceWork(c *gin.Context) {
	var req work.ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	w, err := h.service.ReplaceWork(c.Request.Context(), c.Param("work_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, w)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, work.ErrWorkNotFound):
		response.NotFound(c, "Work not found")
	case errors.Is(err, work.ErrMismatchedWorkID):
		response.BadRequest(c, "work_id in path and body do not match")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}

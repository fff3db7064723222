package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"corpus-backend/internal/domains/export"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/shared/response"
)

// Handler - HTTP Handler cho build/export endpoints
type Handler struct {
	service export.Service
}

// NewHandler - Constructor with DI
func NewHandler(service export.Service) *Handler {
	return &Handler{service: service}
}

// Merge - POST /build/merge
func (h *Handler) Merge(c *gin.Context) {
	h.run(c, h.service.Merge)
}

// Clean - POST /export/clean
func (h *Handler) Clean(c *gin.Context) {
	h.run(c, h.service.Clean)
}

// Train - POST /export/train
func (h *Handler) Train(c *gin.Context) {
	h.run(c, h.service.Train)
}

func (h *Handler) run(c *gin.Context, op func(context.Context, string) (string, error)) {
	var req export.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}

	output, err := op(c.Request.Context(), req.WorkID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, export.Response{Output: output})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
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

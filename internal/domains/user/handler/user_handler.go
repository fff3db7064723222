package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"corpus-backend/internal/domains/user"
	"corpus-backend/internal/shared/middleware"
	"corpus-backend/internal/shared/response"
)

// Handler - HTTP Handler cho auth endpoints
type Handler struct {
	service user.Service

	// Cookie policy. SameSite=None because the editor frontend is served
	// from another origin; Secure comes from config since local dev still
	// runs plain http.
	cookieMaxAge int
	cookieSecure bool
}

// NewHandler - Constructor with DI
func NewHandler(service user.Service, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// CSRF - GET /auth/csrf
func (h *Handler) CSRF(c *gin.Context) {
	c.JSON(http.StatusOK, user.CSRFResponse{CSRFToken: h.service.CSRFToken()})
}

// Register - POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, account)
}

// Login - POST /auth/login
// Sets the session cookie on success.
func (h *Handler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, account)
}

// Logout - POST /auth/logout
// Revokes the session and clears the cookie. Always 204, even when the
// caller had no session.
func (h *Handler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookieName)
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		h.handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.Status(http.StatusNoContent)
}

// Me - GET /me
// Runs behind AuthMiddleware, which already resolved the account.
func (h *Handler) Me(c *gin.Context) {
	account, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.Success(c, http.StatusOK, account)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "User already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, user.ErrNotAuthenticated):
		response.Unauthorized(c, "Not authenticated")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}

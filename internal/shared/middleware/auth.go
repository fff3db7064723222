package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"corpus-backend/internal/domains/user"
	"corpus-backend/internal/shared/response"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// Context keys set for downstream handlers.
const (
	ContextUserKey  = "currentUser"
	ContextActorKey = "actor"
)

// AuthMiddleware - Middleware xác thực session cookie
// Resolves the cookie to an account and puts the actor email in context;
// every mutating handler reads it for the audit trail.
func AuthMiddleware(users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ cookie
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		// 2. Resolve session → account
		account, err := users.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, user.ErrNotAuthenticated) {
				response.Unauthorized(c, "Invalid session")
			} else {
				response.InternalServerError(c, "Session lookup failed")
			}
			c.Abort()
			return
		}

		// 3. Set actor vào context
		c.Set(ContextUserKey, account)
		c.Set(ContextActorKey, account.Email)

		c.Next()
	}
}

// Actor returns the authenticated user's email for audit attribution.
func Actor(c *gin.Context) string {
	return c.GetString(ContextActorKey)
}

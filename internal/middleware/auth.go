package middleware

import (
	"github.com/gin-gonic/gin"

	"research_connect/internal/auth"
	"research_connect/internal/logger"
	"research_connect/pkg/apperrors"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

const ContextUserIDKey = "userID"

// CookieAuthMiddleware verifies the session cookie and stores the
// claims in the gin context. Verification is stateless: every request
// re-checks signature and expiry.
func CookieAuthMiddleware(tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSecret == "" {
			// Refuses to guess: an unset secret is a deployment bug.
			apperrors.HandleError(c, apperrors.ErrServerMisconfigured)
			c.Abort()
			return
		}

		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr, tokenSecret)
		if err != nil {
			// Expired and tampered tokens look identical to the client.
			apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

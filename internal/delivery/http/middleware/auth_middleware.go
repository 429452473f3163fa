package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mir-dating/backend/internal/usecase/auth"
)

// AuthMiddleware resolves the session cookie to an authenticated user
// before any handler body runs.
type AuthMiddleware struct {
	authUseCase *auth.AuthUseCase
	cookieName  string
}

func NewAuthMiddleware(authUseCase *auth.AuthUseCase, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
		cookieName:  cookieName,
	}
}

// RequireAuth rejects the request with 401 unless the session cookie
// resolves to a live user. On success the user id is stored in the
// gin context under "user_id".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := m.authUseCase.ResolveUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}

// OptionalAuth resolves the cookie when present but never rejects.
// Used on routes that are public by contract yet behave differently
// for an authenticated caller in strict-ownership mode.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err == nil && token != "" {
			if user, err := m.authUseCase.ResolveUser(c.Request.Context(), token); err == nil {
				c.Set("user_id", user.ID)
			}
		}
		c.Next()
	}
}

package middleware

import (
	"strings"

	"pokedex-srv/pkg/response"
	"pokedex-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth rejects requests without a valid token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !m.attachScope(c, tokenString) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches the principal when a token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		if !m.attachScope(c, tokenString) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractToken reads the Authorization header first ("Bearer <token>" or a
// raw token), then the auth cookie.
func (m Middleware) extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	if m.cookieConfig.Name == "" {
		return ""
	}
	tokenString, err := c.Cookie(m.cookieConfig.Name)
	if err != nil {
		return ""
	}
	return tokenString
}

func (m Middleware) attachScope(c *gin.Context, tokenString string) bool {
	payload, err := m.jwtManager.Verify(tokenString)
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware.attachScope: invalid token: %v", err)
		return false
	}

	ctx := c.Request.Context()
	ctx = scope.SetPayloadToContext(ctx, payload)
	ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
	c.Request = c.Request.WithContext(ctx)
	return true
}

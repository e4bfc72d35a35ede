package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
)

const sessionKey = "admin_session"

// SessionResolver resolves the administrator session carried by a bearer token.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (domain.Session, error)
}

// RequireAdmin rejects requests without a valid administrator session.
// The resolved session is available to handlers through SessionFrom.
func RequireAdmin(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		session, err := resolver.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(sessionKey, session)
		c.Set("admin_email", session.Email)
		c.Next()
	}
}

// SessionFrom returns the session stored by RequireAdmin.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

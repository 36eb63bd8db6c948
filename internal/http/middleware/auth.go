package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillsync/internal/auth"
	"skillsync/internal/session"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "skillsync_session"

// userIDKey is the gin context key handlers read the authenticated user from.
const userIDKey = "user_id"

// Auth resolves the current user once per request: session cookie first, then
// a bearer token, then the dev-mode fallback. Requests with no identity are
// rejected with 401 before any handler or storage call runs.
func Auth(sessions session.Store, tokens *auth.Tokens, devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
			if userID, err := sessions.Get(ctx, cookie); err == nil {
				c.Set(userIDKey, userID)
				c.Next()
				return
			}
		}

		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			if userID, err := tokens.Parse(strings.TrimPrefix(h, "Bearer ")); err == nil {
				c.Set(userIDKey, userID)
				c.Next()
				return
			}
		}

		if devMode {
			c.Set(userIDKey, int64(1))
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
}

// UserID extracts the authenticated user id set by Auth.
func UserID(c *gin.Context) (int64, bool) {
	val, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

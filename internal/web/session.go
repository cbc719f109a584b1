package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"
	sessionContextKey = "visitor_session_id"

	// sessionCookieMaxAge keeps the visitor id for 30 days.
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// sessionMiddleware assigns every visitor an opaque session id cookie on
// first contact and exposes it to handlers via the request context.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookieName, id, sessionCookieMaxAge, "/", "", h.cfg.SecureCookies, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// sessionID returns the visitor session id set by sessionMiddleware.
func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "symphony_session"

// SessionMW gates routes behind a valid session cookie.
type SessionMW struct {
	authSvc domain.AuthService
	logger  *zap.Logger
}

// NewSessionMW creates the session gate middleware.
func NewSessionMW(authSvc domain.AuthService, logger *zap.Logger) *SessionMW {
	return &SessionMW{authSvc: authSvc, logger: logger}
}

// RequireSession rejects unauthenticated requests before anything
// operational runs. JSON callers get a structured 401, page navigations are
// redirected to the login page.
func (m *SessionMW) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			session, err := m.authSvc.Authenticate(c.Request.Context(), token)
			if err == nil {
				c.Set("session_id", session.ID)
				c.Next()
				return
			}
			m.logger.Debug("session rejected", zap.Error(err))
		}

		if wantsJSON(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	}
}

// wantsJSON decides how a rejection is delivered: API paths and callers
// speaking JSON get a JSON body, everyone else a redirect.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.Contains(c.GetHeader("Content-Type"), "application/json")
}

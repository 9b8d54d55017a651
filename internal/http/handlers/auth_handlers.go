package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
	"github.com/pearmediallc/symphony-ai/internal/http/middleware"
)

// AuthHandlers handles login and logout.
type AuthHandlers struct {
	authSvc    domain.AuthService
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService, sessionTTL time.Duration, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, sessionTTL: sessionTTL, logger: logger}
}

// LoginRequest represents the login credential pair.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	_, token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid username or password",
			})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Login failed",
		})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

// Logout handles GET /logout: destroys the session, clears the cookie and
// sends the browser back to the login page.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if sessionID, exists := c.Get("session_id"); exists {
		if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
			h.logger.Warn("logout failed", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatterbox/middleware"
)

type AuthenticationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Authenticate issues a 24h session cookie for the supplied email. The
// identity itself is established client-side; this endpoint only mints
// the signed cookie a verified client asks for.
func (h *Handler) Authenticate(c *gin.Context) {
	var req AuthenticationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Body Request")
		return
	}

	token, err := middleware.SignSession(req.Email, h.cfg.JWTSecret)
	if err != nil {
		h.failStore(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie. Calling it without a session is a 401,
// mirroring the original API.
func (h *Handler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookie); err != nil || cookie == "" {
		fail(c, http.StatusUnauthorized, "Authentication failed!")
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

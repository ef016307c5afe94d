package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatterbox/middleware"
	"chatterbox/store"
)

const storeTimeout = 10 * time.Second

// timeNow stamps created documents; swapped in tests.
var timeNow = func() time.Time { return time.Now().UTC() }

func requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// failStore reports a store failure as a 500 envelope; the raw error text
// travels in the error field like the original API.
func (h *Handler) failStore(c *gin.Context, err error) {
	h.log.Error("store operation failed",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Server Error",
		"error":   err.Error(),
	})
}

// pageQuery parses skip/limit with per-resource defaults; parse failures
// fall back to the defaults instead of erroring.
func pageQuery(c *gin.Context, defaultLimit int64) store.Page {
	page := store.Page{Limit: defaultLimit}
	if skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64); err == nil && skip >= 0 {
		page.Skip = skip
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
		page.Limit = limit
	}
	return page
}

func sessionEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextEmail)
}

// setSessionCookie attaches the signed token with the deployment-aware
// cookie attributes: cross-site (SameSite=None, Secure) in production,
// strict otherwise.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	h.prepareCookie(c)
	c.SetCookie(middleware.SessionCookie, token, int(middleware.SessionTTL.Seconds()), "/", "", h.cfg.Production(), true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	h.prepareCookie(c)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cfg.Production(), true)
}

func (h *Handler) prepareCookie(c *gin.Context) {
	if h.cfg.Production() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
}

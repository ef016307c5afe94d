package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAnnouncements returns all announcements, newest-first.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	announcements, err := h.store.ListAnnouncements(ctx)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": announcements})
}

// AnnouncementCount serves the fast approximate total the navbar badge
// polls for.
func (h *Handler) AnnouncementCount(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	count, err := h.store.EstimatedAnnouncementCount(ctx)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

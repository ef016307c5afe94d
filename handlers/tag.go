package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTags returns every tag with its post count.
func (h *Handler) ListTags(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	tags, err := h.store.ListTags(ctx)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": tags})
}

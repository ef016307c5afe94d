package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatterbox/models"
)

type MakeAdminRequest struct {
	ID string `json:"id" binding:"required"`
}

type CreateTagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type CreateAnnouncementRequest struct {
	AuthorName  string `json:"authorName" binding:"required"`
	AuthorImage string `json:"authorImage" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// AdminStats reports approximate collection sizes for the dashboard.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	usersCount, err := h.store.EstimatedUserCount(ctx)
	if err != nil {
		h.failStore(c, err)
		return
	}
	postsCount, err := h.store.EstimatedPostCount(ctx)
	if err != nil {
		h.failStore(c, err)
		return
	}
	commentsCount, err := h.store.EstimatedCommentCount(ctx)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"usersCount":    usersCount,
		"postsCount":    postsCount,
		"commentsCount": commentsCount,
	})
}

// AdminListUsers pages user records, optionally filtered by a
// case-insensitive username fragment.
func (h *Handler) AdminListUsers(c *gin.Context) {
	page := pageQuery(c, 10)

	ctx, cancel := requestCtx(c)
	defer cancel()

	users, count, err := h.store.ListUsers(ctx, c.Query("username"), page)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": users, "count": count})
}

// MakeAdmin promotes a user to the admin role.
func (h *Handler) MakeAdmin(c *gin.Context) {
	var req MakeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Body Request")
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid User id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	stats, err := h.store.PromoteToAdmin(ctx, id)
	if err != nil {
		h.failStore(c, err)
		return
	}
	switch {
	case stats.Matched == 0:
		fail(c, http.StatusNotFound, "User not Found!")
	case stats.Modified == 0:
		fail(c, http.StatusBadRequest, "User Data wasn't updated")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": stats.Modified})
	}
}

// ReportedComments pages comments flagged by users, newest-first.
func (h *Handler) ReportedComments(c *gin.Context) {
	page := pageQuery(c, 10)

	ctx, cancel := requestCtx(c)
	defer cancel()

	comments, count, err := h.store.ReportedComments(ctx, page)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": comments, "count": count})
}

// AdminDeleteComment removes a comment unconditionally.
func (h *Handler) AdminDeleteComment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Comment id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	deleted, err := h.store.DeleteComment(ctx, id)
	if err != nil {
		h.failStore(c, err)
		return
	}
	if deleted == 0 {
		fail(c, http.StatusNotFound, "Comment not Found!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}

// CreateTag adds a topic label to the fixed tag list.
func (h *Handler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Tag Request")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	id, err := h.store.CreateTag(ctx, req.Tag)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

// DeleteTag removes a topic label.
func (h *Handler) DeleteTag(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	deleted, err := h.store.DeleteTag(ctx, id)
	if err != nil {
		h.failStore(c, err)
		return
	}
	if deleted == 0 {
		fail(c, http.StatusNotFound, "Tag not Found!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}

// CreateAnnouncement publishes a site announcement.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Announcement Request")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	id, err := h.store.CreateAnnouncement(ctx, models.Announcement{
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   timeNow(),
	})
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

// DeleteAnnouncement removes an announcement.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	deleted, err := h.store.DeleteAnnouncement(ctx, id)
	if err != nil {
		h.failStore(c, err)
		return
	}
	if deleted == 0 {
		fail(c, http.StatusNotFound, "Announcement not Found!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}

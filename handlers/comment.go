package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatterbox/models"
	"chatterbox/policy"
	"chatterbox/store"
)

type CreateCommentRequest struct {
	AuthorEmail string `json:"authorEmail" binding:"required,email"`
	AuthorName  string `json:"authorName" binding:"required"`
	AuthorImage string `json:"authorImage" binding:"required"`
	PostID      string `json:"postId" binding:"required"`
	Comment     string `json:"comment" binding:"required"`
}

type ReportCommentRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// CreateComment attaches a comment to an existing post.
func (h *Handler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Comment Request")
		return
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Post id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	if _, err := h.store.PostByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Post not Found!")
			return
		}
		h.failStore(c, err)
		return
	}

	comment := models.Comment{
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		PostID:      req.PostID,
		Comment:     req.Comment,
		CreatedAt:   timeNow(),
	}

	id, err := h.store.CreateComment(ctx, comment)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

// ListComments pages a post's comments newest-first.
func (h *Handler) ListComments(c *gin.Context) {
	page := pageQuery(c, 10)

	ctx, cancel := requestCtx(c)
	defer cancel()

	comments, count, err := h.store.CommentsByPost(ctx, c.Param("postId"), page)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": comments, "count": count})
}

// ReportComment flags a comment once with one of the fixed feedback
// categories. Re-reporting is rejected.
func (h *Handler) ReportComment(c *gin.Context) {
	var req ReportCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Request")
		return
	}
	if !models.ValidFeedback(req.Feedback) {
		fail(c, http.StatusBadRequest, "Invalid Feedback Provided")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Comment id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	comment, err := h.store.CommentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "Comment not Found!")
		return
	}
	if err != nil {
		h.failStore(c, err)
		return
	}

	postID, err := primitive.ObjectIDFromHex(comment.PostID)
	if err != nil {
		fail(c, http.StatusNotFound, "Comment not Found!")
		return
	}
	if _, err := h.store.PostByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Comment not Found!")
			return
		}
		h.failStore(c, err)
		return
	}

	if !policy.CanReportComment(comment) {
		fail(c, http.StatusConflict, "Comment already Reported")
		return
	}

	stats, err := h.store.ReportComment(ctx, id, req.Feedback)
	if err != nil {
		h.failStore(c, err)
		return
	}
	switch {
	case stats.Matched == 0:
		fail(c, http.StatusNotFound, "Comment not Found!")
	case stats.Modified == 0:
		fail(c, http.StatusBadRequest, "Feedback isn't added")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": stats.Modified})
	}
}

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

type CreatePostRequest struct {
	AuthorEmail string   `json:"authorEmail" binding:"required,email"`
	AuthorName  string   `json:"authorName" binding:"required"`
	AuthorImage string   `json:"authorImage" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags" binding:"required,min=1"`
}

type UpdatePostRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// CreatePost publishes a post under the caller's identity. Free-tier
// authors are capped; Premium authors are exempt.
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Body Request")
		return
	}

	if req.AuthorEmail != sessionEmail(c) {
		fail(c, http.StatusForbidden, "Forbidden Request")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	author, err := h.store.UserByEmail(ctx, req.AuthorEmail)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.failStore(c, err)
		return
	}

	existing, err := h.store.CountPostsByAuthor(ctx, req.AuthorEmail)
	if err != nil {
		h.failStore(c, err)
		return
	}
	if !policy.CanCreatePost(author, existing) {
		fail(c, http.StatusForbidden, "Post limit reached! Become Premium to add more posts.")
		return
	}

	post := models.Post{
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		CreatedAt:   timeNow(),
	}

	id, err := h.store.CreatePost(ctx, post)
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

// ListPosts serves the public feed: newest-first or vote-sorted, with an
// optional fuzzy tag filter. count is the total matching the filter so
// the client can derive page totals.
func (h *Handler) ListPosts(c *gin.Context) {
	filter := store.PostFilter{
		Tag:        c.Query("tag"),
		SortByVote: c.Query("sortByVote") == "true",
		Page:       pageQuery(c, 5),
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	posts, count, err := h.store.ListPosts(ctx, filter)
	if err != nil {
		h.failStore(c, err)
		return
	}
	if err := h.attachCommentCounts(ctx, posts); err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": posts, "count": count})
}

// GetPost returns a single post with its comment count.
func (h *Handler) GetPost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Post id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	post, err := h.store.PostByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "Post not Found!")
		return
	}
	if err != nil {
		h.failStore(c, err)
		return
	}

	counts, err := h.store.CommentCounts(ctx, []string{post.ID.Hex()})
	if err != nil {
		h.failStore(c, err)
		return
	}
	post.CommentsCount = counts[post.ID.Hex()]

	c.JSON(http.StatusOK, gin.H{"success": true, "result": post})
}

// UpdatePost changes title/description/tags. Author identity fields are
// immutable; only the post's author or an admin may update.
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Post id Provided")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Body Request")
		return
	}
	if req.Title == "" && req.Description == "" && len(req.Tags) == 0 {
		fail(c, http.StatusBadRequest, "Invalid Body Request")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	post, err := h.store.PostByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "Post not Found!")
		return
	}
	if err != nil {
		h.failStore(c, err)
		return
	}

	if !h.allowPostMutation(c, post) {
		return
	}

	stats, err := h.store.UpdatePost(ctx, id, store.PostUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		h.failStore(c, err)
		return
	}
	switch {
	case stats.Matched == 0:
		fail(c, http.StatusNotFound, "Post not Found!")
	case stats.Modified == 0:
		fail(c, http.StatusBadRequest, "Post Data wasn't updated")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": stats.Modified})
	}
}

// DeletePost removes a post and cascades to every comment referencing it
// before replying.
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Post id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	post, err := h.store.PostByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "Post not Found!")
		return
	}
	if err != nil {
		h.failStore(c, err)
		return
	}

	if !h.allowPostMutation(c, post) {
		return
	}

	deleted, err := h.store.DeletePost(ctx, id)
	if err != nil {
		h.failStore(c, err)
		return
	}
	if deleted == 0 {
		fail(c, http.StatusNotFound, "Post not Found!")
		return
	}

	if _, err := h.store.DeleteCommentsByPost(ctx, id.Hex()); err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}

// Vote applies one step of the client-driven vote toggle: voteType picks
// the counter, updateType its direction. There is no per-user ledger;
// the client is responsible for issuing balanced add/remove pairs.
func (h *Handler) Vote(c *gin.Context) {
	var field string
	switch c.Param("voteType") {
	case "upvote":
		field = store.VoteFieldUp
	case "downvote":
		field = store.VoteFieldDown
	default:
		fail(c, http.StatusNotFound, "Not Found")
		return
	}

	var delta int64
	switch c.Param("updateType") {
	case "add":
		delta = 1
	case "remove":
		delta = -1
	default:
		fail(c, http.StatusNotFound, "Not Found")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid Post id Provided")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	stats, err := h.store.AdjustVote(ctx, id, field, delta)
	if err != nil {
		h.failStore(c, err)
		return
	}
	switch {
	case stats.Matched == 0:
		fail(c, http.StatusNotFound, "Post not Found!")
	case stats.Modified == 0:
		fail(c, http.StatusBadRequest, "Post Data wasn't updated")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": stats.Modified})
	}
}

// allowPostMutation resolves the caller and applies the owner-or-admin
// rule, writing the 403 itself when denied.
func (h *Handler) allowPostMutation(c *gin.Context, post models.Post) bool {
	ctx, cancel := requestCtx(c)
	defer cancel()

	actor, err := h.store.UserByEmail(ctx, sessionEmail(c))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.failStore(c, err)
		return false
	}
	actor.Email = sessionEmail(c)

	if !policy.CanModifyPost(actor, post) {
		fail(c, http.StatusForbidden, "Forbidden Request")
		return false
	}
	return true
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatterbox/middleware"
	"chatterbox/models"
	"chatterbox/store"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
}

type UpdateUserRequest struct {
	AboutMe string `json:"aboutMe" binding:"required"`
}

// Register creates a free-tier account and issues a session cookie. A
// duplicate email keeps the existing record untouched; the cookie is
// still set so the register-or-login flow of the client keeps working.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
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

	ctx, cancel := requestCtx(c)
	defer cancel()

	id, err := h.store.CreateUser(ctx, models.NewUser(req.Email, req.Username))
	if errors.Is(err, store.ErrDuplicate) {
		fail(c, http.StatusConflict, "User already Exists!")
		return
	}
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

// Me returns the caller's own user record.
func (h *Handler) Me(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	user, err := h.store.UserByEmail(ctx, sessionEmail(c))
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not Found!")
		return
	}
	if err != nil {
		h.failStore(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": user})
}

// UpdateUser changes the caller-editable profile field (aboutMe).
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid User id Provided")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid Request")
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	stats, err := h.store.UpdateAboutMe(ctx, id, req.AboutMe)
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

// UserStats reports how many posts the caller has and how many comments
// those posts collected, via one batched count.
func (h *Handler) UserStats(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	posts, _, err := h.store.PostsByAuthor(ctx, sessionEmail(c), store.Page{})
	if err != nil {
		h.failStore(c, err)
		return
	}

	if err := h.attachCommentCounts(ctx, posts); err != nil {
		h.failStore(c, err)
		return
	}

	var commentsCount int64
	for _, p := range posts {
		commentsCount += p.CommentsCount
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"postsCount":    len(posts),
		"commentsCount": commentsCount,
	})
}

// UserPosts pages the caller's own posts newest-first.
func (h *Handler) UserPosts(c *gin.Context) {
	page := pageQuery(c, 10)

	ctx, cancel := requestCtx(c)
	defer cancel()

	posts, count, err := h.store.PostsByAuthor(ctx, sessionEmail(c), page)
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

// GoPremium flips the caller to the Premium tier with the gold badge.
// The client calls this after the payment intent is confirmed.
func (h *Handler) GoPremium(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	stats, err := h.store.UpgradeMembership(ctx, sessionEmail(c))
	if err != nil {
		h.failStore(c, err)
		return
	}
	switch {
	case stats.Matched == 0:
		fail(c, http.StatusNotFound, "User not Found!")
	case stats.Modified == 0:
		fail(c, http.StatusBadRequest, "Failed to Be Premium")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": stats.Modified})
	}
}

func (h *Handler) attachCommentCounts(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID.Hex()
	}
	counts, err := h.store.CommentCounts(ctx, ids)
	if err != nil {
		return err
	}
	for i := range posts {
		posts[i].CommentsCount = counts[posts[i].ID.Hex()]
	}
	return nil
}

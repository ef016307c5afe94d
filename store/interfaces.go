package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatterbox/models"
)

// Vote counter fields on a post document.
const (
	VoteFieldUp   = "upVotes"
	VoteFieldDown = "downVotes"
)

// PostUpdate carries the only post fields a caller may change. Empty
// fields are left untouched.
type PostUpdate struct {
	Title       string
	Description string
	Tags        []string
}

// PostFilter selects and orders a page of the public post listing.
type PostFilter struct {
	// Tag, when set, matches posts whose tag list contains it as a
	// case-insensitive substring.
	Tag string
	// SortByVote orders by descending upVotes-downVotes instead of
	// newest-first.
	SortByVote bool
	Page       Page
}

// Store is the handler-facing view of the document store. *Mongo
// implements it; tests substitute a mock.
type Store interface {
	CreateUser(ctx context.Context, u models.User) (string, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateAboutMe(ctx context.Context, id primitive.ObjectID, aboutMe string) (UpdateStats, error)
	UpgradeMembership(ctx context.Context, email string) (UpdateStats, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (UpdateStats, error)
	ListUsers(ctx context.Context, username string, page Page) ([]models.User, int64, error)
	EstimatedUserCount(ctx context.Context) (int64, error)

	CreatePost(ctx context.Context, p models.Post) (string, error)
	PostByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	ListPosts(ctx context.Context, f PostFilter) ([]models.Post, int64, error)
	PostsByAuthor(ctx context.Context, email string, page Page) ([]models.Post, int64, error)
	CountPostsByAuthor(ctx context.Context, email string) (int64, error)
	UpdatePost(ctx context.Context, id primitive.ObjectID, upd PostUpdate) (UpdateStats, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error)
	AdjustVote(ctx context.Context, id primitive.ObjectID, field string, delta int64) (UpdateStats, error)
	EstimatedPostCount(ctx context.Context) (int64, error)

	CreateComment(ctx context.Context, c models.Comment) (string, error)
	CommentByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error)
	CommentsByPost(ctx context.Context, postID string, page Page) ([]models.Comment, int64, error)
	CommentCounts(ctx context.Context, postIDs []string) (map[string]int64, error)
	ReportComment(ctx context.Context, id primitive.ObjectID, feedback string) (UpdateStats, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteCommentsByPost(ctx context.Context, postID string) (int64, error)
	ReportedComments(ctx context.Context, page Page) ([]models.Comment, int64, error)
	EstimatedCommentCount(ctx context.Context) (int64, error)

	CreateTag(ctx context.Context, tag string) (string, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	DeleteTag(ctx context.Context, id primitive.ObjectID) (int64, error)

	CreateAnnouncement(ctx context.Context, a models.Announcement) (string, error)
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	EstimatedAnnouncementCount(ctx context.Context) (int64, error)
	DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) (int64, error)
}

var _ Store = (*Mongo)(nil)

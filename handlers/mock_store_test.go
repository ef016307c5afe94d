package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatterbox/models"
	"chatterbox/store"
)

// MockStore is a testify mock of store.Store.
type MockStore struct {
	mock.Mock
}

var _ store.Store = (*MockStore)(nil)

func (m *MockStore) CreateUser(ctx context.Context, u models.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) UpdateAboutMe(ctx context.Context, id primitive.ObjectID, aboutMe string) (store.UpdateStats, error) {
	args := m.Called(ctx, id, aboutMe)
	return args.Get(0).(store.UpdateStats), args.Error(1)
}

func (m *MockStore) UpgradeMembership(ctx context.Context, email string) (store.UpdateStats, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(store.UpdateStats), args.Error(1)
}

func (m *MockStore) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (store.UpdateStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.UpdateStats), args.Error(1)
}

func (m *MockStore) ListUsers(ctx context.Context, username string, page store.Page) ([]models.User, int64, error) {
	args := m.Called(ctx, username, page)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) EstimatedUserCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreatePost(ctx context.Context, p models.Post) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockStore) PostByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockStore) ListPosts(ctx context.Context, f store.PostFilter) ([]models.Post, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) PostsByAuthor(ctx context.Context, email string, page store.Page) ([]models.Post, int64, error) {
	args := m.Called(ctx, email, page)
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) CountPostsByAuthor(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) UpdatePost(ctx context.Context, id primitive.ObjectID, upd store.PostUpdate) (store.UpdateStats, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(store.UpdateStats), args.Error(1)
}

func (m *MockStore) DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) AdjustVote(ctx context.Context, id primitive.ObjectID, field string, delta int64) (store.UpdateStats, error) {
	args := m.Called(ctx, id, field, delta)
	return args.Get(0).(store.UpdateStats), args.Error(1)
}

func (m *MockStore) EstimatedPostCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateComment(ctx context.Context, c models.Comment) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockStore) CommentByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockStore) CommentsByPost(ctx context.Context, postID string, page store.Page) ([]models.Comment, int64, error) {
	args := m.Called(ctx, postID, page)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) CommentCounts(ctx context.Context, postIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStore) ReportComment(ctx context.Context, id primitive.ObjectID, feedback string) (store.UpdateStats, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(store.UpdateStats), args.Error(1)
}

func (m *MockStore) DeleteComment(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) DeleteCommentsByPost(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ReportedComments(ctx context.Context, page store.Page) ([]models.Comment, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) EstimatedCommentCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateTag(ctx context.Context, tag string) (string, error) {
	args := m.Called(ctx, tag)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockStore) DeleteTag(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateAnnouncement(ctx context.Context, a models.Announcement) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Announcement), args.Error(1)
}

func (m *MockStore) EstimatedAnnouncementCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

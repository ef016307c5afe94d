package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatterbox/middleware"
	"chatterbox/models"
	"chatterbox/store"
)

func TestRegisterIssuesSessionCookie(t *testing.T) {
	db := new(MockStore)
	db.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "new@example.com" &&
			u.Username == "newbie" &&
			u.Role == models.RoleUser &&
			u.MembershipStatus == models.MembershipFree &&
			u.Badge == models.BadgeBronze
	})).Return("65a000000000000000000001", nil)

	router := newTestRouter(t, db)
	rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"email":    "new@example.com",
		"username": "newbie",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	var found bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			found = true
			assert.True(t, ck.HttpOnly)
			assert.NotEmpty(t, ck.Value)
		}
	}
	assert.True(t, found, "expected session cookie to be set")
	db.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := new(MockStore)
	db.On("CreateUser", mock.Anything, mock.Anything).Return("", store.ErrDuplicate)

	router := newTestRouter(t, db)
	rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"email":    "taken@example.com",
		"username": "whoever",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	db.AssertNumberOfCalls(t, "CreateUser", 1)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	db := new(MockStore)
	router := newTestRouter(t, db)

	rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	db.AssertNotCalled(t, "CreateUser")
}

func TestMeReturnsCallerRecord(t *testing.T) {
	user := models.NewUser("me@example.com", "me")
	user.ID = primitive.NewObjectID()

	db := new(MockStore)
	db.On("UserByEmail", mock.Anything, "me@example.com").Return(user, nil)

	router := newTestRouter(t, db)
	rec := doJSON(t, router, http.MethodGet, "/me", nil, sessionCookie(t, "me@example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "me@example.com", result["email"])
}

func TestMeWithoutSession(t *testing.T) {
	router := newTestRouter(t, new(MockStore))
	rec := doJSON(t, router, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGoPremium(t *testing.T) {
	db := new(MockStore)
	db.On("UpgradeMembership", mock.Anything, "payer@example.com").
		Return(store.UpdateStats{Matched: 1, Modified: 1}, nil)

	router := newTestRouter(t, db)
	rec := doJSON(t, router, http.MethodPut, "/user/premium", nil, sessionCookie(t, "payer@example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestGoPremiumUnknownUser(t *testing.T) {
	db := new(MockStore)
	db.On("UpgradeMembership", mock.Anything, "ghost@example.com").
		Return(store.UpdateStats{}, nil)

	router := newTestRouter(t, db)
	rec := doJSON(t, router, http.MethodPut, "/user/premium", nil, sessionCookie(t, "ghost@example.com"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestUserStatsSumsCommentCounts(t *testing.T) {
	p1 := models.Post{ID: primitive.NewObjectID()}
	p2 := models.Post{ID: primitive.NewObjectID()}

	db := new(MockStore)
	db.On("PostsByAuthor", mock.Anything, "author@example.com", store.Page{}).
		Return([]models.Post{p1, p2}, int64(2), nil)
	db.On("CommentCounts", mock.Anything, []string{p1.ID.Hex(), p2.ID.Hex()}).
		Return(map[string]int64{p1.ID.Hex(): 3, p2.ID.Hex(): 4}, nil)

	router := newTestRouter(t, db)
	rec := doJSON(t, router, http.MethodGet, "/user/stats", nil, sessionCookie(t, "author@example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 2, body["postsCount"])
	assert.EqualValues(t, 7, body["commentsCount"])
}

func TestUpdateUserRejectsMalformedID(t *testing.T) {
	router := newTestRouter(t, new(MockStore))
	rec := doJSON(t, router, http.MethodPut, "/users/not-a-hex-id",
		map[string]string{"aboutMe": "hi"}, sessionCookie(t, "me@example.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

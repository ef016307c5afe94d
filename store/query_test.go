package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPostListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, postListFilter(""))

	got := postListFilter("tech")
	assert.Equal(t, bson.M{"tags": bson.M{"$regex": "tech", "$options": "i"}}, got)
}

func TestPostListPipelineDefault(t *testing.T) {
	pipeline := postListPipeline(PostFilter{Page: Page{Skip: 0, Limit: 5}})

	// sort, skip, limit
	require.Len(t, pipeline, 3)
	assert.Equal(t, "$sort", pipeline[0][0].Key)
	assert.Equal(t, "$skip", pipeline[1][0].Key)
	assert.Equal(t, "$limit", pipeline[2][0].Key)
	assert.Equal(t, int64(5), pipeline[2][0].Value)
}

func TestPostListPipelineVoteSort(t *testing.T) {
	pipeline := postListPipeline(PostFilter{SortByVote: true, Page: Page{Limit: 5}})

	require.Len(t, pipeline, 5)
	assert.Equal(t, "$addFields", pipeline[1][0].Key)
	assert.Equal(t, "$sort", pipeline[2][0].Key)

	sort := pipeline[2][0].Value.(bson.D)
	assert.Equal(t, "voteDifference", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestPostListPipelineTagMatch(t *testing.T) {
	pipeline := postListPipeline(PostFilter{Tag: "Tech", Page: Page{Skip: 2, Limit: 2}})

	require.Len(t, pipeline, 4)
	match := pipeline[1][0]
	require.Equal(t, "$match", match.Key)

	tags := match.Value.(bson.D)[0]
	assert.Equal(t, "tags", tags.Key)
	regex := tags.Value.(bson.D)
	assert.Equal(t, "Tech", regex[0].Value)
	assert.Equal(t, "i", regex[1].Value)
}

func TestPostUpdateDocSkipsEmptyFields(t *testing.T) {
	assert.Equal(t, bson.M{}, postUpdateDoc(PostUpdate{}))

	got := postUpdateDoc(PostUpdate{Title: "New", Tags: []string{"go"}})
	assert.Equal(t, bson.M{"title": "New", "tags": []string{"go"}}, got)
}

func TestCommentCountPipeline(t *testing.T) {
	pipeline := commentCountPipeline([]string{"a", "b"})

	require.Len(t, pipeline, 2)
	match := pipeline[0][0]
	assert.Equal(t, "$match", match.Key)
	in := match.Value.(bson.D)[0].Value.(bson.D)[0]
	assert.Equal(t, "$in", in.Key)
	assert.Equal(t, bson.A{"a", "b"}, in.Value)

	group := pipeline[1][0]
	assert.Equal(t, "$group", group.Key)
	assert.Equal(t, "$postId", group.Value.(bson.D)[0].Value)
}

func TestTagCountPipelineGroupsByTag(t *testing.T) {
	pipeline := tagCountPipeline()

	require.Len(t, pipeline, 2)
	assert.Equal(t, "$unwind", pipeline[0][0].Key)
	assert.Equal(t, "$tags", pipeline[0][0].Value)
	assert.Equal(t, "$group", pipeline[1][0].Key)
}

func TestUserListFilterIsCaseInsensitive(t *testing.T) {
	got := userListFilter("Bob")
	assert.Equal(t, bson.M{"username": bson.M{"$regex": "Bob", "$options": "i"}}, got)
}

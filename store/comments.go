package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chatterbox/models"
)

func (m *Mongo) CreateComment(ctx context.Context, c models.Comment) (string, error) {
	res, err := m.comments.InsertOne(ctx, c)
	if err != nil {
		return "", translateErr(err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *Mongo) CommentByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error) {
	var c models.Comment
	err := m.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, translateErr(err)
}

func (m *Mongo) CommentsByPost(ctx context.Context, postID string, page Page) ([]models.Comment, int64, error) {
	return m.pageComments(ctx, bson.M{"postId": postID}, page)
}

// CommentCounts resolves per-post comment totals for a set of posts in a
// single group-by query instead of one count per post.
func (m *Mongo) CommentCounts(ctx context.Context, postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	cursor, err := m.comments.Aggregate(ctx, commentCountPipeline(postIDs))
	if err != nil {
		return nil, translateErr(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		PostID string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, translateErr(err)
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (m *Mongo) ReportComment(ctx context.Context, id primitive.ObjectID, feedback string) (UpdateStats, error) {
	doc := bson.M{"$set": bson.M{"reported": true, "feedback": feedback}}
	res, err := m.comments.UpdateOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return UpdateStats{}, translateErr(err)
	}
	return updateStats(res), nil
}

func (m *Mongo) DeleteComment(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, translateErr(err)
	}
	return res.DeletedCount, nil
}

// DeleteCommentsByPost removes every comment referencing the post; used
// by the post-delete cascade.
func (m *Mongo) DeleteCommentsByPost(ctx context.Context, postID string) (int64, error) {
	res, err := m.comments.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, translateErr(err)
	}
	return res.DeletedCount, nil
}

func (m *Mongo) ReportedComments(ctx context.Context, page Page) ([]models.Comment, int64, error) {
	return m.pageComments(ctx, bson.M{"reported": true}, page)
}

func (m *Mongo) EstimatedCommentCount(ctx context.Context) (int64, error) {
	return m.comments.EstimatedDocumentCount(ctx)
}

func (m *Mongo) pageComments(ctx context.Context, filter bson.M, page Page) ([]models.Comment, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)
	cursor, err := m.comments.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, translateErr(err)
	}

	count, err := m.comments.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	return comments, count, nil
}

func commentCountPipeline(postIDs []string) mongo.Pipeline {
	ids := make(bson.A, len(postIDs))
	for i, id := range postIDs {
		ids[i] = id
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "postId", Value: bson.D{{Key: "$in", Value: ids}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$postId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chatterbox/models"
)

func (m *Mongo) CreateTag(ctx context.Context, tag string) (string, error) {
	res, err := m.tags.InsertOne(ctx, bson.M{"tag": tag})
	if err != nil {
		return "", translateErr(err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListTags returns every tag with its exact-match post count, resolved by
// unwinding post tag lists in one aggregation.
func (m *Mongo) ListTags(ctx context.Context) ([]models.Tag, error) {
	cursor, err := m.tags.Find(ctx, bson.M{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, translateErr(err)
	}

	counts, err := m.tagPostCounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		tags[i].PostCount = counts[tags[i].Tag]
	}
	return tags, nil
}

func (m *Mongo) DeleteTag(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.tags.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, translateErr(err)
	}
	return res.DeletedCount, nil
}

func (m *Mongo) tagPostCounts(ctx context.Context) (map[string]int64, error) {
	cursor, err := m.posts.Aggregate(ctx, tagCountPipeline())
	if err != nil {
		return nil, translateErr(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Tag   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, translateErr(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Tag] = row.Count
	}
	return counts, nil
}

func tagCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tags"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

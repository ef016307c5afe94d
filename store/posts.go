package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chatterbox/models"
)

func (m *Mongo) CreatePost(ctx context.Context, p models.Post) (string, error) {
	res, err := m.posts.InsertOne(ctx, p)
	if err != nil {
		return "", translateErr(err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *Mongo) PostByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var p models.Post
	err := m.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, translateErr(err)
}

// ListPosts runs the public feed pipeline: newest-first (or vote-sorted),
// optional fuzzy tag filter, skip/limit page. The returned count is the
// total matching the filter, not the page size.
func (m *Mongo) ListPosts(ctx context.Context, f PostFilter) ([]models.Post, int64, error) {
	count, err := m.posts.CountDocuments(ctx, postListFilter(f.Tag))
	if err != nil {
		return nil, 0, translateErr(err)
	}

	cursor, err := m.posts.Aggregate(ctx, postListPipeline(f))
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, translateErr(err)
	}
	return posts, count, nil
}

func (m *Mongo) PostsByAuthor(ctx context.Context, email string, page Page) ([]models.Post, int64, error) {
	filter := bson.M{"authorEmail": email}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)
	cursor, err := m.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, translateErr(err)
	}

	count, err := m.posts.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	return posts, count, nil
}

func (m *Mongo) CountPostsByAuthor(ctx context.Context, email string) (int64, error) {
	return m.posts.CountDocuments(ctx, bson.M{"authorEmail": email})
}

func (m *Mongo) UpdatePost(ctx context.Context, id primitive.ObjectID, upd PostUpdate) (UpdateStats, error) {
	set := postUpdateDoc(upd)
	res, err := m.posts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return UpdateStats{}, translateErr(err)
	}
	return updateStats(res), nil
}

func (m *Mongo) DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, translateErr(err)
	}
	return res.DeletedCount, nil
}

// AdjustVote applies an atomic $inc to one of the vote counters. There is
// no per-user vote record; callers are trusted to issue balanced
// add/remove pairs.
func (m *Mongo) AdjustVote(ctx context.Context, id primitive.ObjectID, field string, delta int64) (UpdateStats, error) {
	res, err := m.posts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return UpdateStats{}, translateErr(err)
	}
	return updateStats(res), nil
}

func (m *Mongo) EstimatedPostCount(ctx context.Context) (int64, error) {
	return m.posts.EstimatedDocumentCount(ctx)
}

// postListFilter matches tags case-insensitively as a substring; an empty
// tag matches everything.
func postListFilter(tag string) bson.M {
	if tag == "" {
		return bson.M{}
	}
	return bson.M{"tags": bson.M{"$regex": tag, "$options": "i"}}
}

func postListPipeline(f PostFilter) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	if f.SortByVote {
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.D{
				{Key: "voteDifference", Value: bson.D{
					{Key: "$subtract", Value: bson.A{"$upVotes", "$downVotes"}},
				}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "voteDifference", Value: -1}}}},
		)
	}
	if f.Tag != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "tags", Value: bson.D{
				{Key: "$regex", Value: f.Tag},
				{Key: "$options", Value: "i"},
			}},
		}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: f.Page.Skip}},
		bson.D{{Key: "$limit", Value: f.Page.Limit}},
	)
	return pipeline
}

func postUpdateDoc(upd PostUpdate) bson.M {
	set := bson.M{}
	if upd.Title != "" {
		set["title"] = upd.Title
	}
	if upd.Description != "" {
		set["description"] = upd.Description
	}
	if len(upd.Tags) > 0 {
		set["tags"] = upd.Tags
	}
	return set
}

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chatterbox/models"
)

func (m *Mongo) CreateAnnouncement(ctx context.Context, a models.Announcement) (string, error) {
	res, err := m.announcements.InsertOne(ctx, a)
	if err != nil {
		return "", translateErr(err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *Mongo) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.announcements.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateErr(err)
	}
	defer cursor.Close(ctx)

	announcements := []models.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, translateErr(err)
	}
	return announcements, nil
}

func (m *Mongo) EstimatedAnnouncementCount(ctx context.Context) (int64, error) {
	return m.announcements.EstimatedDocumentCount(ctx)
}

func (m *Mongo) DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.announcements.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, translateErr(err)
	}
	return res.DeletedCount, nil
}

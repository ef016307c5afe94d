package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chatterbox/models"
)

func (m *Mongo) CreateUser(ctx context.Context, u models.User) (string, error) {
	res, err := m.users.InsertOne(ctx, u)
	if err != nil {
		return "", translateErr(err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *Mongo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, translateErr(err)
}

func (m *Mongo) UpdateAboutMe(ctx context.Context, id primitive.ObjectID, aboutMe string) (UpdateStats, error) {
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"aboutMe": aboutMe}})
	if err != nil {
		return UpdateStats{}, translateErr(err)
	}
	return updateStats(res), nil
}

func (m *Mongo) UpgradeMembership(ctx context.Context, email string) (UpdateStats, error) {
	doc := bson.M{"$set": bson.M{
		"membershipStatus": models.MembershipPremium,
		"badge":            models.BadgeGold,
	}}
	res, err := m.users.UpdateOne(ctx, bson.M{"email": email}, doc)
	if err != nil {
		return UpdateStats{}, translateErr(err)
	}
	return updateStats(res), nil
}

func (m *Mongo) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (UpdateStats, error) {
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return UpdateStats{}, translateErr(err)
	}
	return updateStats(res), nil
}

// ListUsers pages user records newest-first, filtered by a
// case-insensitive username substring when one is given.
func (m *Mongo) ListUsers(ctx context.Context, username string, page Page) ([]models.User, int64, error) {
	filter := userListFilter(username)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)
	cursor, err := m.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, translateErr(err)
	}

	count, err := m.users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	return users, count, nil
}

func (m *Mongo) EstimatedUserCount(ctx context.Context) (int64, error) {
	return m.users.EstimatedDocumentCount(ctx)
}

func userListFilter(username string) bson.M {
	return bson.M{"username": bson.M{"$regex": username, "$options": "i"}}
}

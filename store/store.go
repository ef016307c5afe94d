package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("store: not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("store: duplicate key")

// UpdateStats reports how many documents an update matched and changed.
type UpdateStats struct {
	Matched  int64
	Modified int64
}

// Page is a skip/limit window over a listing.
type Page struct {
	Skip  int64
	Limit int64
}

// Mongo wraps the MongoDB client and its collection handles. Construct it
// with New, then Connect before use and Close on shutdown.
type Mongo struct {
	client *mongo.Client
	uri    string
	dbName string
	log    *zap.Logger

	users         *mongo.Collection
	posts         *mongo.Collection
	comments      *mongo.Collection
	tags          *mongo.Collection
	announcements *mongo.Collection
}

func New(uri, dbName string, log *zap.Logger) *Mongo {
	return &Mongo{uri: uri, dbName: dbName, log: log}
}

// Connect dials the server, pings it, and binds the collection handles.
func (m *Mongo) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	m.client = client
	db := client.Database(m.dbName)
	m.users = db.Collection("users")
	m.posts = db.Collection("posts")
	m.comments = db.Collection("comments")
	m.tags = db.Collection("tags")
	m.announcements = db.Collection("announcements")

	m.log.Info("connected to mongodb", zap.String("database", m.dbName))
	return nil
}

// EnsureIndexes creates the unique index backing duplicate-registration
// detection. Safe to call on every start.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}

func updateStats(res *mongo.UpdateResult) UpdateStats {
	return UpdateStats{Matched: res.MatchedCount, Modified: res.ModifiedCount}
}

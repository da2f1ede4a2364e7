package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps values as {_id, value} documents in a MongoDB
// collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type mongoDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// NewMongoStore connects to MongoDB at uri and uses the
// storefront.sessions collection.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}

	collection := client.Database("storefront").Collection("sessions")
	return &MongoStore{
		client:     client,
		collection: collection,
	}, nil
}

// Get returns the value stored under key
func (m *MongoStore) Get(ctx context.Context, key string) (string, error) {
	var doc mongoDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "find %s", key)
	}
	return doc.Value, nil
}

// Set stores value under key
func (m *MongoStore) Set(ctx context.Context, key, value string) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, mongoDocument{Key: key, Value: value}, opts)
	if err != nil {
		return errors.Wrapf(err, "upsert %s", key)
	}
	return nil
}

// Remove deletes the value stored under key
func (m *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

// Close disconnects the underlying client
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements RecordStore over a user collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies connectivity.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

type mongoRecord struct {
	UserID              string `bson:"userId"`
	Role                string `bson:"role,omitempty"`
	FileURL             string `bson:"fileUrl,omitempty"`
	Transcript          string `bson:"transcript,omitempty"`
	GenericSummary      string `bson:"genericSummary,omitempty"`
	PersonalizedSummary string `bson:"personalizedSummary,omitempty"`
	Status              string `bson:"status,omitempty"`
}

func (s *MongoStore) Get(ctx context.Context, userID string) (*UserMediaRecord, error) {
	var rec mongoRecord
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}

	return &UserMediaRecord{
		UserID:              userID,
		Role:                rec.Role,
		FileURL:             rec.FileURL,
		Transcript:          rec.Transcript,
		GenericSummary:      rec.GenericSummary,
		PersonalizedSummary: rec.PersonalizedSummary,
		Status:              Status(rec.Status),
	}, nil
}

// ClaimProcessing uses a filtered update so only one of two concurrent
// claims matches the document.
func (s *MongoStore) ClaimProcessing(ctx context.Context, userID string) (bool, error) {
	filter := bson.M{
		"userId": userID,
		"status": bson.M{"$ne": string(StatusProcessing)},
	}
	update := bson.M{"$set": bson.M{"status": string(StatusProcessing)}}

	res, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("claim user %s: %w", userID, err)
	}
	return res.ModifiedCount == 1, nil
}

func (s *MongoStore) SetStatus(ctx context.Context, userID string, status Status) error {
	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{"status": string(status)}}
	if _, err := s.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("set status for user %s: %w", userID, err)
	}
	return nil
}

// SaveResults merges the three result fields in a single $set, preserving
// unrelated document fields.
func (s *MongoStore) SaveResults(ctx context.Context, userID string, results Results) error {
	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{
		"transcript":          results.Transcript,
		"genericSummary":      results.GenericSummary,
		"personalizedSummary": results.PersonalizedSummary,
		"status":              string(StatusDone),
	}}

	res, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("save results for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("save results for user %s: %w", userID, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ RecordStore = (*MongoStore)(nil)

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InboxStore records consumed event ids per consumer so redelivered events are skipped.
type InboxStore struct {
	col      *mongo.Collection
	consumer string
}

func NewInboxStore(ctx context.Context, db *mongo.Database, consumer string) (*InboxStore, error) {
	col := db.Collection("chat_inbox")
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "consumer", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("inbox index: %w", err)
	}
	return &InboxStore{col: col, consumer: consumer}, nil
}

// Seen reports whether eventID was already recorded, recording it otherwise.
func (s *InboxStore) Seen(ctx context.Context, eventID string) (bool, error) {
	doc := bson.M{"event_id": eventID, "consumer": s.consumer, "received_at": time.Now().UTC()}
	_, err := s.col.InsertOne(ctx, doc)
	if err == nil {
		return false, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	return false, transient(err)
}

// Forget drops a record so a failed handler can see the event again.
func (s *InboxStore) Forget(ctx context.Context, eventID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"event_id": eventID, "consumer": s.consumer})
	return transient(err)
}

// Package mongodb implements the journal.Store interface using MongoDB
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CondeSun/i5Req/internal/journal"
)

// Store implements journal.Store using MongoDB
type Store struct {
	client     *mongo.Client
	db         *mongo.Database
	deliveries *mongo.Collection
}

// Config holds MongoDB connection settings
type Config struct {
	URI        string
	Database   string
	Collection string
}

// NewStore creates a new MongoDB journal store
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	// Connect to MongoDB
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	database := cfg.Database
	if database == "" {
		database = "interface5"
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "deliveries"
	}

	db := client.Database(database)

	s := &Store{
		client:     client,
		db:         db,
		deliveries: db.Collection(collection),
	}

	if err := s.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("creating indexes: %w", err)
	}

	return s, nil
}

func (s *Store) createIndexes(ctx context.Context) error {
	_, err := s.deliveries.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "request_name", Value: 1}, {Key: "submitted_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating delivery indexes: %w", err)
	}
	return nil
}

// RecordDelivery persists a delivery record
func (s *Store) RecordDelivery(ctx context.Context, delivery *journal.Delivery) error {
	_, err := s.deliveries.InsertOne(ctx, delivery)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("delivery %s already recorded", delivery.ID)
	}
	return err
}

// GetDelivery returns a delivery by ID, or nil when absent
func (s *Store) GetDelivery(ctx context.Context, id string) (*journal.Delivery, error) {
	var delivery journal.Delivery
	err := s.deliveries.FindOne(ctx, bson.M{"_id": id}).Decode(&delivery)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// ListDeliveries returns deliveries matching the filter, newest first
func (s *Store) ListDeliveries(ctx context.Context, filter *journal.Filter) ([]*journal.Delivery, error) {
	if filter == nil {
		filter = &journal.Filter{}
	}

	query := bson.M{}
	if filter.RequestName != "" {
		query["request_name"] = filter.RequestName
	}
	if !filter.Since.IsZero() {
		query["submitted_at"] = bson.M{"$gte": filter.Since}
	}

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := s.deliveries.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deliveries []*journal.Delivery
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close closes the MongoDB connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

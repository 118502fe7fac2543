package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

const snapshotCollectionName = "collections"

// snapshot is the single MongoDB document holding one collection.
// Records are kept as JSON text so they round-trip byte for byte with the
// file backend (BSON would turn integer ids into doubles on the way back).
type snapshot struct {
	Name      string    `bson:"_id"`
	Records   []string  `bson:"records"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore keeps each collection as one document in MongoDB.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo establishes a connection to MongoDB using the provided URI and
// verifies it with a ping.
func ConnectMongo(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// The connect call is lazy; an unreachable server only shows up here.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(snapshotCollectionName),
	}, nil
}

func (s *MongoStore) Read(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var snap snapshot
	err := s.collection.FindOne(ctx, bson.M{"_id": collection}).Decode(&snap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []json.RawMessage{}, nil
		}
		return nil, err
	}

	records := make([]json.RawMessage, 0, len(snap.Records))
	for _, rec := range snap.Records {
		records = append(records, json.RawMessage(rec))
	}
	return records, nil
}

func (s *MongoStore) Write(ctx context.Context, collection string, records []json.RawMessage) error {
	snap := snapshot{
		Name:      collection,
		Records:   make([]string, 0, len(records)),
		UpdatedAt: time.Now().UTC(),
	}
	for _, rec := range records {
		snap.Records = append(snap.Records, string(rec))
	}

	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": collection}, snap, options.Replace().SetUpsert(true))
	return err
}

// Close gracefully disconnects the MongoDB client.
func (s *MongoStore) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"checkin-bot/internal/checkin"
	"checkin-bot/internal/config"
)

const scopeCollectionName = "checkin_scopes"

// ConnectDB establishes a connection to the MongoDB database using the provided configuration.
// It returns the MongoDB client, database object, and an error if connection fails.
func ConnectDB(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.MongoDBURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(context.TODO(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Send a ping to confirm a successful connection
	var result bson.M
	if err := client.Database("admin").RunCommand(context.TODO(), bson.D{{Key: "ping", Value: 1}}).Decode(&result); err != nil {
		_ = client.Disconnect(context.TODO()) // Attempt to disconnect on ping failure
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Println("Successfully connected and pinged MongoDB!")

	db := client.Database(cfg.MongoDBDatabase)

	return client, db, nil
}

// scopeDocument is the persisted shape of one scope: the scope ID as the
// document key and the full user map as its body.
type scopeDocument struct {
	ScopeID string            `bson:"_id"`
	Users   checkin.ScopeData `bson:"users"`
}

// MongoStore implements checkin.Store on a MongoDB collection, one document
// per scope. Save replaces every scope document wholesale, mirroring the
// whole-data-set write-through semantics of the engine.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a store over the checkin scopes collection.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(scopeCollectionName)}
}

// Load reads every scope document into a DataSet. A missing collection simply
// yields an empty data set.
func (s *MongoStore) Load(ctx context.Context) (checkin.DataSet, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query scope documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []scopeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode scope documents: %w", err)
	}

	data := checkin.DataSet{}
	for _, doc := range docs {
		if doc.Users == nil {
			doc.Users = checkin.ScopeData{}
		}
		data[doc.ScopeID] = doc.Users
	}
	return data, nil
}

// Save upserts one document per scope, replacing its previous content.
func (s *MongoStore) Save(ctx context.Context, data checkin.DataSet) error {
	for scopeID, users := range data {
		doc := scopeDocument{ScopeID: scopeID, Users: users}
		_, err := s.collection.ReplaceOne(
			ctx,
			bson.M{"_id": scopeID},
			doc,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("failed to replace scope document %q: %w", scopeID, err)
		}
	}
	return nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const actionCollectionName = "user_actions"

// MongoActionLogger implements UserActionLogger using MongoDB.
type MongoActionLogger struct {
	db *mongo.Database
}

// NewMongoActionLogger creates and returns a new MongoActionLogger instance.
// It requires a connected MongoDB database instance.
func NewMongoActionLogger(db *mongo.Database) *MongoActionLogger {
	return &MongoActionLogger{db: db}
}

// LogUserAction writes a user action log entry to the database.
// It records the user ID, action type, additional details, and timestamp.
func (m *MongoActionLogger) LogUserAction(userID int64, action string, details interface{}) error {
	collection := m.db.Collection(actionCollectionName)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := collection.InsertOne(ctx, map[string]interface{}{
		"user_id": userID,
		"action":  action,
		"details": details,
		"time":    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert user action log for user %d: %w", userID, err)
	}
	return nil
}

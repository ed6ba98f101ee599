package database

// UserActionLogger defines the interface for logging user actions.
type UserActionLogger interface {
	// LogUserAction logs an action performed by a user.
	LogUserAction(userID int64, action string, details interface{}) error
}

// NoopActionLogger discards action logs. Used when the bot runs on the file
// store without a MongoDB connection.
type NoopActionLogger struct{}

func (NoopActionLogger) LogUserAction(int64, string, interface{}) error {
	return nil
}

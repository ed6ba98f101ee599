package handlers

import (
	"context"

	"checkin-bot/internal/checkin"
	"checkin-bot/internal/clock"
)

// CheckInService defines the check-in engine operations used by MessageHandler.
// Satisfied by *checkin.Engine; mocked in tests.
type CheckInService interface {
	CheckIn(ctx context.Context, scopeID, userID, displayName string) (*checkin.CheckInResult, error)
	TopN(scopeID string, metric checkin.Metric, n int, filter checkin.Filter) []checkin.Entry
	Stats(scopeID, userID string) (checkin.UserRecord, bool)
	Today() clock.Date
}

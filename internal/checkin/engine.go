package checkin

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/getsentry/sentry-go"

	"checkin-bot/internal/clock"
)

// ErrAlreadyCheckedIn is returned when a user attempts a second check-in on
// the same calendar day. No state is changed in that case.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// CheckInResult describes a successful check-in for presentation by the host.
type CheckInResult struct {
	DisplayName    string
	Reward         int
	ContinuousDays int
	TotalDays      int
	MonthDays      int
	TotalRewards   int
	MonthRewards   int
}

// Engine owns the in-memory check-in data set and applies the daily check-in
// rules to it. A single mutex serializes every read-modify-write, so two
// concurrent check-ins for the same user cannot both pass the same-day guard.
//
// Persistence is write-through and best-effort: the in-memory state is the
// source of truth, a failed Save is logged and reported to Sentry but the
// check-in still succeeds for the caller. This keeps the bot responsive under
// storage faults at the cost of possibly replaying the last day's check-ins
// after a crash.
type Engine struct {
	mu     sync.Mutex
	store  Store
	clock  clock.Clock
	policy RewardPolicy
	data   DataSet
}

// NewEngine loads the persisted data set and returns a ready engine.
// A failed or corrupt load degrades to an empty data set so the bot can keep
// serving; the error is logged and captured, not propagated.
func NewEngine(ctx context.Context, store Store, clk clock.Clock, policy RewardPolicy) *Engine {
	data, err := store.Load(ctx)
	if err != nil {
		log.Printf("[CheckinEngine] Failed to load data set, starting empty: %v", err)
		sentry.CaptureException(err)
		data = nil
	}
	if data == nil {
		data = DataSet{}
	}
	return &Engine{
		store:  store,
		clock:  clk,
		policy: policy,
		data:   data,
	}
}

// Today exposes the engine's calendar date, e.g. for today-only leaderboard
// filters.
func (e *Engine) Today() clock.Date {
	return e.clock.Today()
}

// CheckIn performs the daily check-in for (scopeID, userID).
//
// The first check-in of a calendar day increments the day counters, extends
// or resets the streak, grants a reward and persists the data set. A repeat
// on the same day returns ErrAlreadyCheckedIn without mutating anything.
// The streak grows only when the previous check-in was exactly one calendar
// day earlier; any other gap, including a clock that moved backward, resets
// it to 1.
func (e *Engine) CheckIn(ctx context.Context, scopeID, userID, displayName string) (*CheckInResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.clock.Today()

	scope := e.data[scopeID]
	rec := scope[userID]
	if rec == nil {
		rec = &UserRecord{}
	}

	if rec.LastCheckin == today.String() {
		return nil, ErrAlreadyCheckedIn
	}

	if displayName != "" {
		rec.DisplayName = displayName
	} else if rec.DisplayName == "" {
		rec.DisplayName = placeholderName(userID)
	}

	streak := 1
	sameMonth := false
	if rec.LastCheckin != "" {
		last, err := clock.ParseDate(rec.LastCheckin)
		if err != nil {
			// An unparseable stored date is treated like a gap.
			log.Printf("[CheckinEngine] Unreadable last check-in date for user %s in %s: %v", userID, scopeID, err)
		} else {
			if last.DaysUntil(today) == 1 {
				streak = rec.ContinuousDays + 1
			}
			sameMonth = last.MonthKey() == today.MonthKey()
		}
	}
	if !sameMonth {
		rec.MonthDays = 0
		rec.MonthRewards = 0
	}

	reward := e.policy.Reward(streak)

	rec.TotalDays++
	rec.MonthDays++
	rec.TotalRewards += reward
	rec.MonthRewards += reward
	rec.ContinuousDays = streak
	rec.LastCheckin = today.String()

	if scope == nil {
		scope = ScopeData{}
		e.data[scopeID] = scope
	}
	scope[userID] = rec

	e.save(ctx)

	return &CheckInResult{
		DisplayName:    rec.DisplayName,
		Reward:         reward,
		ContinuousDays: rec.ContinuousDays,
		TotalDays:      rec.TotalDays,
		MonthDays:      rec.MonthDays,
		TotalRewards:   rec.TotalRewards,
		MonthRewards:   rec.MonthRewards,
	}, nil
}

// Stats returns a copy of the user's record, and whether one exists.
func (e *Engine) Stats(scopeID, userID string) (UserRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := e.data[scopeID][userID]
	if rec == nil {
		return UserRecord{}, false
	}
	return *rec, true
}

// save writes the full data set through to the store. Failures are logged
// and captured but never surfaced; the in-memory state stays authoritative
// until the next successful save.
func (e *Engine) save(ctx context.Context) {
	if err := e.store.Save(ctx, e.data); err != nil {
		log.Printf("[CheckinEngine] Failed to persist data set: %v", err)
		sentry.CaptureException(err)
	}
}

// placeholderName derives a stable display name from a user ID for users
// whose real name is unavailable.
func placeholderName(userID string) string {
	if len(userID) > 4 {
		return "user " + userID[len(userID)-4:]
	}
	return "user " + userID
}

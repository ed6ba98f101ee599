package checkin

import (
	"sort"

	"checkin-bot/internal/clock"
)

// Entry is one leaderboard row: a user and a copy of their record.
type Entry struct {
	UserID string
	Record UserRecord
}

// Filter restricts which records enter a leaderboard.
type Filter func(*UserRecord) bool

// CheckedInOn keeps only records whose last check-in happened on the given
// date. Used for the "today" leaderboard.
func CheckedInOn(date clock.Date) Filter {
	s := date.String()
	return func(r *UserRecord) bool {
		return r.LastCheckin == s
	}
}

// TopN returns up to n records from the scope, sorted descending by the
// given metric. A nil filter admits every record. An empty or fully
// filtered-out scope yields an empty slice, not an error.
//
// Ties keep a deterministic order: entries are collected in ascending
// user-ID order and the metric sort is stable, so equal values rank by
// user ID. Returned records are copies; callers cannot mutate engine state
// through them.
func (e *Engine) TopN(scopeID string, metric Metric, n int, filter Filter) []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()

	scope := e.data[scopeID]
	entries := make([]Entry, 0, len(scope))
	for userID, rec := range scope {
		if filter != nil && !filter(rec) {
			continue
		}
		entries = append(entries, Entry{UserID: userID, Record: *rec})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UserID < entries[j].UserID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Record.Value(metric) > entries[j].Record.Value(metric)
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

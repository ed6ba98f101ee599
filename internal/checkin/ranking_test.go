package checkin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkin-bot/internal/clock"
)

func newRankingEngine(t *testing.T, day string, data DataSet) *Engine {
	t.Helper()
	store := &memStore{data: data}
	clk := &clock.Fixed{Date: mustDate(t, day)}
	return NewEngine(context.Background(), store, clk, fixedPolicy(5))
}

func TestTopNOrdersByMetricDescending(t *testing.T) {
	engine := newRankingEngine(t, "2024-01-01", DataSet{
		"group:1": {
			"a": &UserRecord{DisplayName: "A", TotalRewards: 50},
			"b": &UserRecord{DisplayName: "B", TotalRewards: 30},
			"c": &UserRecord{DisplayName: "C", TotalRewards: 70},
		},
	})

	entries := engine.TopN("group:1", MetricTotalRewards, 10, nil)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].UserID)
	assert.Equal(t, "a", entries[1].UserID)
	assert.Equal(t, "b", entries[2].UserID)
}

func TestTopNTruncatesToN(t *testing.T) {
	scope := ScopeData{}
	for i := 0; i < 25; i++ {
		id := string(rune('a' + i))
		scope[id] = &UserRecord{DisplayName: id, TotalDays: i}
	}
	engine := newRankingEngine(t, "2024-01-01", DataSet{"group:1": scope})

	entries := engine.TopN("group:1", MetricTotalDays, 10, nil)
	assert.Len(t, entries, 10)

	// Fewer matches than n: all of them come back.
	entries = engine.TopN("group:1", MetricTotalDays, 100, nil)
	assert.Len(t, entries, 25)
}

func TestTopNEmptyScope(t *testing.T) {
	engine := newRankingEngine(t, "2024-01-01", DataSet{})

	entries := engine.TopN("group:404", MetricTotalRewards, 10, nil)
	assert.Empty(t, entries)
}

func TestTopNIdempotent(t *testing.T) {
	engine := newRankingEngine(t, "2024-01-01", DataSet{
		"group:1": {
			"a": &UserRecord{DisplayName: "A", MonthDays: 3},
			"b": &UserRecord{DisplayName: "B", MonthDays: 9},
			"c": &UserRecord{DisplayName: "C", MonthDays: 6},
		},
	})

	first := engine.TopN("group:1", MetricMonthDays, 10, nil)
	second := engine.TopN("group:1", MetricMonthDays, 10, nil)
	assert.Equal(t, first, second)
}

func TestTopNTieBreakIsDeterministic(t *testing.T) {
	engine := newRankingEngine(t, "2024-01-01", DataSet{
		"group:1": {
			"30": &UserRecord{DisplayName: "thirty", TotalRewards: 10},
			"10": &UserRecord{DisplayName: "ten", TotalRewards: 10},
			"20": &UserRecord{DisplayName: "twenty", TotalRewards: 10},
		},
	})

	// Equal metric values rank in ascending user-ID order, every time.
	for i := 0; i < 5; i++ {
		entries := engine.TopN("group:1", MetricTotalRewards, 10, nil)
		require.Len(t, entries, 3)
		assert.Equal(t, "10", entries[0].UserID)
		assert.Equal(t, "20", entries[1].UserID)
		assert.Equal(t, "30", entries[2].UserID)
	}
}

func TestTopNWithTodayFilter(t *testing.T) {
	engine := newRankingEngine(t, "2024-01-02", DataSet{
		"group:1": {
			"a": &UserRecord{DisplayName: "A", ContinuousDays: 5, LastCheckin: "2024-01-02"},
			"b": &UserRecord{DisplayName: "B", ContinuousDays: 9, LastCheckin: "2024-01-01"},
			"c": &UserRecord{DisplayName: "C", ContinuousDays: 2, LastCheckin: "2024-01-02"},
		},
	})

	entries := engine.TopN("group:1", MetricContinuousDays, 10, CheckedInOn(engine.Today()))
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].UserID)
	assert.Equal(t, "c", entries[1].UserID)
}

func TestTopNFilterMatchingNothing(t *testing.T) {
	engine := newRankingEngine(t, "2024-06-01", DataSet{
		"group:1": {
			"a": &UserRecord{DisplayName: "A", ContinuousDays: 5, LastCheckin: "2024-01-02"},
		},
	})

	entries := engine.TopN("group:1", MetricContinuousDays, 10, CheckedInOn(engine.Today()))
	assert.Empty(t, entries)
}

func TestTopNReturnsCopies(t *testing.T) {
	engine := newRankingEngine(t, "2024-01-01", DataSet{
		"group:1": {
			"a": &UserRecord{DisplayName: "A", TotalRewards: 50},
		},
	})

	entries := engine.TopN("group:1", MetricTotalRewards, 10, nil)
	require.Len(t, entries, 1)
	entries[0].Record.TotalRewards = 9999

	rec, ok := engine.Stats("group:1", "a")
	require.True(t, ok)
	assert.Equal(t, 50, rec.TotalRewards)
}

func TestMetricValue(t *testing.T) {
	rec := &UserRecord{
		TotalDays:      1,
		MonthDays:      2,
		ContinuousDays: 3,
		TotalRewards:   4,
		MonthRewards:   5,
	}
	assert.Equal(t, 1, rec.Value(MetricTotalDays))
	assert.Equal(t, 2, rec.Value(MetricMonthDays))
	assert.Equal(t, 3, rec.Value(MetricContinuousDays))
	assert.Equal(t, 4, rec.Value(MetricTotalRewards))
	assert.Equal(t, 5, rec.Value(MetricMonthRewards))
	assert.Equal(t, 0, rec.Value(Metric("bogus")))
}

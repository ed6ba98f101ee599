package checkin

// UserRecord holds the accumulated check-in state for one user within one
// scope. LastCheckin is a "2006-01-02" date string; empty means the user has
// never checked in.
type UserRecord struct {
	DisplayName    string `bson:"display_name" json:"display_name"`
	TotalDays      int    `bson:"total_days" json:"total_days"`
	MonthDays      int    `bson:"month_days" json:"month_days"`
	ContinuousDays int    `bson:"continuous_days" json:"continuous_days"`
	TotalRewards   int    `bson:"total_rewards" json:"total_rewards"`
	MonthRewards   int    `bson:"month_rewards" json:"month_rewards"`
	LastCheckin    string `bson:"last_checkin,omitempty" json:"last_checkin,omitempty"`
}

// ScopeData maps user IDs to their records within one scope.
type ScopeData map[string]*UserRecord

// DataSet is the full persisted state: scope ID -> per-user records.
type DataSet map[string]ScopeData

// Metric names a numeric field of UserRecord that leaderboards can rank by.
type Metric string

const (
	MetricTotalRewards   Metric = "total_rewards"
	MetricMonthRewards   Metric = "month_rewards"
	MetricTotalDays      Metric = "total_days"
	MetricMonthDays      Metric = "month_days"
	MetricContinuousDays Metric = "continuous_days"
)

// Value returns the record's value for the given metric, or 0 for an
// unknown metric.
func (r *UserRecord) Value(m Metric) int {
	switch m {
	case MetricTotalRewards:
		return r.TotalRewards
	case MetricMonthRewards:
		return r.MonthRewards
	case MetricTotalDays:
		return r.TotalDays
	case MetricMonthDays:
		return r.MonthDays
	case MetricContinuousDays:
		return r.ContinuousDays
	}
	return 0
}

package clock

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates ("2006-01-02").
const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or location.
// The zero value means "no date" (e.g. a user who never checked in).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// MonthKey identifies a calendar month ("2006-01").
type MonthKey string

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as "2006-01-02".
func (d Date) String() string {
	return d.time().Format(dateLayout)
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MonthKey returns the calendar month the date belongs to.
func (d Date) MonthKey() MonthKey {
	return MonthKey(d.time().Format("2006-01"))
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool {
	return d.time().Before(o.time())
}

// DaysUntil returns the signed number of calendar days from d to o.
// Positive when o is later than d, negative when it is earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.time().Sub(d.time()) / (24 * time.Hour))
}

// time converts the date to midnight UTC, which makes day arithmetic exact
// (no DST offsets can appear in UTC).
func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Clock supplies the current calendar date and month. It exists so the
// check-in logic can be tested without depending on the wall clock.
type Clock interface {
	Today() Date
	CurrentMonth() MonthKey
}

// System returns a Clock backed by the system wall clock.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Today() Date {
	return DateOf(time.Now())
}

func (systemClock) CurrentMonth() MonthKey {
	return DateOf(time.Now()).MonthKey()
}

// Fixed is a Clock pinned to a settable date, for tests.
type Fixed struct {
	Date Date
}

func (f *Fixed) Today() Date {
	return f.Date
}

func (f *Fixed) CurrentMonth() MonthKey {
	return f.Date.MonthKey()
}

// Advance moves the fixed clock forward (or backward) by the given number
// of calendar days.
func (f *Fixed) Advance(days int) {
	f.Date = DateOf(f.Date.time().AddDate(0, 0, days))
}

package models

import (
	"fmt"
	"time"
)

// Period selects the aggregation window for sales history.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a period selector from the outside world.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q: must be daily, weekly or monthly", s)
}

// PeriodRange is the inclusive [Start, End] window a period resolves to.
// It is derived from the clock on every query and never stored.
type PeriodRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Range resolves the period against the given instant. Ranges are computed
// in the instant's location; callers pass a UTC clock so boundaries are the
// same on every deployment. Weeks start on Monday. The end is the last
// representable instant of the window, so a sale at 23:59:59.999 of the last
// day is inside and the first instant of the next window is outside.
func (p Period) Range(now time.Time) PeriodRange {
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodWeekly:
		// Monday-based: Monday offset 0 ... Sunday offset 6.
		offset := (int(now.Weekday()) + 6) % 7
		start := startOfDay.AddDate(0, 0, -offset)
		return PeriodRange{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
	case PeriodMonthly:
		start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
		return PeriodRange{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	default: // PeriodDaily
		return PeriodRange{Start: startOfDay, End: startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)}
	}
}

// Contains reports whether t falls inside the range, boundaries included.
func (r PeriodRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

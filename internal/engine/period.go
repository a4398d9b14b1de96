// internal/engine/period.go
package engine

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the period-bucketing rule for sales summaries.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity normalizes a period string. Anything that is not
// daily or weekly buckets monthly, matching the engine's historical
// behavior for unknown values.
func ParseGranularity(period string) Granularity {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case string(GranularityDaily):
		return GranularityDaily
	case string(GranularityWeekly):
		return GranularityWeekly
	default:
		return GranularityMonthly
	}
}

// Label derives the period label for a transaction date: daily
// YYYY-MM-DD, weekly YYYY-WW, monthly YYYY-MM. Transactions sharing a
// label group together regardless of boundary ambiguity; this is a
// bucketing approximation, not a rolling window.
func (g Granularity) Label(t time.Time) string {
	switch g {
	case GranularityDaily:
		return t.Format("2006-01-02")
	case GranularityWeekly:
		return weekLabel(t)
	default:
		return t.Format("2006-01")
	}
}

// weekLabel numbers weeks Sunday-first within the calendar year: days
// before the year's first Sunday fall in week 00. Year boundaries are
// therefore split between the two years' labels, which is the rule we
// standardize on for weekly buckets.
func weekLabel(t time.Time) string {
	yday := t.YearDay() - 1
	wday := int(t.Weekday())
	week := (yday + 7 - wday) / 7

	return fmt.Sprintf("%04d-%02d", t.Year(), week)
}

package domain

import (
	"math"
	"time"

	"github.com/emiliopalmerini/hydrate/internal/heatmap"
)

const dateLayout = "2006-01-02"

// EntryDate returns the calendar day of an intake entry in loc. Time is
// preferred over DateCreated; both may be RFC3339 timestamps or start with a
// YYYY-MM-DD date.
func EntryDate(e LiquidIntakeEntry, loc *time.Location) (string, bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, s := range []string{e.Time, e.DateCreated} {
		if d, ok := parseDay(s, loc); ok {
			return d, true
		}
	}
	return "", false
}

func parseDay(s string, loc *time.Location) (string, bool) {
	if s == "" {
		return "", false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc).Format(dateLayout), true
	}
	if len(s) >= len(dateLayout) {
		if t, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

// DailyTotals sums intake volume per calendar day. Entries without a
// resolvable day or with a negative or non-finite volume are skipped.
func DailyTotals(entries []LiquidIntakeEntry, loc *time.Location) heatmap.DailyValues {
	totals := make(heatmap.DailyValues)
	for _, e := range entries {
		v := e.VolumeInLiter
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		day, ok := EntryDate(e, loc)
		if !ok {
			continue
		}
		totals[day] += v
	}
	return totals
}

package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/hydrate/internal/heatmap"
)

// YearSummary holds totals for one calendar year of intake.
type YearSummary struct {
	Year        int
	TotalLiters float64
	ActiveDays  int
	GoalDays    int
	BestDay     string
	BestLiters  float64
}

// AverageLiters is the mean intake over active days.
func (s YearSummary) AverageLiters() float64 {
	if s.ActiveDays == 0 {
		return 0
	}
	return s.TotalLiters / float64(s.ActiveDays)
}

// Summarize computes the summary of year from daily totals. A day counts
// towards GoalDays when goalLiters is positive and the day reaches it.
func Summarize(values heatmap.DailyValues, year int, goalLiters float64) YearSummary {
	s := YearSummary{Year: year}
	prefix := strconv.Itoa(year) + "-"

	days := make([]string, 0, len(values))
	for day := range values {
		if len(day) == len(dateLayout) && strings.HasPrefix(day, prefix) {
			days = append(days, day)
		}
	}
	sort.Strings(days)

	for _, day := range days {
		v := values[day]
		if v <= 0 {
			continue
		}
		s.TotalLiters += v
		s.ActiveDays++
		if goalLiters > 0 && v >= goalLiters {
			s.GoalDays++
		}
		if v > s.BestLiters {
			s.BestLiters = v
			s.BestDay = day
		}
	}
	return s
}

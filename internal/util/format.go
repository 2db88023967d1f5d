package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatLiters formats a volume for display.
// Examples: 0 -> "0 L", 0.25 -> "250 ml", 1.5 -> "1.5 L", 2 -> "2 L"
func FormatLiters(v float64) string {
	if v > 0 && v < 1 {
		return fmt.Sprintf("%.0f ml", v*1000)
	}
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s + " L"
}

// FormatMilliliters formats a bottle size given in milliliters.
func FormatMilliliters(ml float64) string {
	return FormatLiters(ml / 1000)
}

// FormatDateHuman formats a YYYY-MM-DD date to human-readable format (Jan 2, 2006).
// Returns the original string if parsing fails.
func FormatDateHuman(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// FormatPercent formats a ratio in [0, 1] as a whole percentage.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

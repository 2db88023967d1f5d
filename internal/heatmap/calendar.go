// Package heatmap lays out a year of daily values on a week-aligned grid for
// calendar heatmap rendering.
package heatmap

import (
	"time"
)

const (
	// Rows is the number of weekday rows, Monday first.
	Rows = 7
	// Weeks is the fixed number of week columns in a calendar.
	Weeks = 53

	dateLayout = "2006-01-02"
)

// DailyValues maps an ISO date (YYYY-MM-DD) to a non-negative value.
// Dates that are not present count as zero.
type DailyValues map[string]float64

// Cell is a populated grid position.
type Cell struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Grid holds Rows x Weeks cells. A nil cell lies outside the target year.
type Grid [Rows][Weeks]*Cell

// Calendar is the renderable layout of one year.
type Calendar struct {
	Year        int           `json:"year"`
	Max         float64       `json:"max"`
	Grid        Grid          `json:"calendar"`
	MonthLabels [Weeks]string `json:"monthLabels"`
}

// Anchor returns the Monday on or before t, at midnight UTC.
func Anchor(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	diff := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -diff)
}

// Build computes the calendar of year from data. The grid starts at the
// Monday on or before January 1; cells whose day falls outside year are nil.
func Build(data DailyValues, year int) Calendar {
	base := Anchor(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	cal := Calendar{Year: year}

	for row := 0; row < Rows; row++ {
		start := base.AddDate(0, 0, row)
		for week := 0; week < Weeks; week++ {
			day := start.AddDate(0, 0, week*7)
			if day.Year() != year {
				continue
			}
			date := day.Format(dateLayout)
			value := data[date]
			if value > cal.Max {
				cal.Max = value
			}
			cal.Grid[row][week] = &Cell{Date: date, Value: value}
		}
	}

	lastMonth := time.Month(0)
	for week := 0; week < Weeks; week++ {
		for row := 0; row < Rows; row++ {
			cell := cal.Grid[row][week]
			if cell == nil {
				continue
			}
			day, err := time.Parse(dateLayout, cell.Date)
			if err == nil && day.Month() != lastMonth {
				cal.MonthLabels[week] = shortMonth(day.Month())
				lastMonth = day.Month()
			}
			break
		}
	}

	return cal
}

// Cell returns the cell at row and week, or nil when absent or out of range.
func (c *Calendar) Cell(row, week int) *Cell {
	if row < 0 || row >= Rows || week < 0 || week >= Weeks {
		return nil
	}
	return c.Grid[row][week]
}

// Lookup finds the cell for an ISO date and its grid position.
func (c *Calendar) Lookup(date string) (cell *Cell, row, week int, ok bool) {
	for r := 0; r < Rows; r++ {
		for w := 0; w < Weeks; w++ {
			if cell := c.Grid[r][w]; cell != nil && cell.Date == date {
				return cell, r, w, true
			}
		}
	}
	return nil, 0, 0, false
}

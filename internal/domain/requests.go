package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrInvalidRequest is returned when a backend request fails validation.
var ErrInvalidRequest = errors.New("invalid request")

// Index values accepted by the backend for ordering queries.
const (
	IndexTime        = "time"
	IndexDateCreated = "dateCreated"
)

// ViewFrom values select which end of an ordered query to read from.
const (
	ViewFromLeft  = "left"
	ViewFromRight = "right"
)

// LiquidIntakeRequest queries intake entries between two dates (inclusive).
// All fields are optional.
type LiquidIntakeRequest struct {
	StartTime string
	EndTime   string
	Index     string
}

func (r LiquidIntakeRequest) Validate() error {
	var start, end time.Time
	var err error
	if r.StartTime != "" {
		if start, err = time.Parse(dateLayout, r.StartTime); err != nil {
			return fmt.Errorf("%w: startTime %q is not a YYYY-MM-DD date", ErrInvalidRequest, r.StartTime)
		}
	}
	if r.EndTime != "" {
		if end, err = time.Parse(dateLayout, r.EndTime); err != nil {
			return fmt.Errorf("%w: endTime %q is not a YYYY-MM-DD date", ErrInvalidRequest, r.EndTime)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("%w: endTime %s is before startTime %s", ErrInvalidRequest, r.EndTime, r.StartTime)
	}
	if r.Index != "" && r.Index != IndexTime && r.Index != IndexDateCreated {
		return fmt.Errorf("%w: unknown index %q", ErrInvalidRequest, r.Index)
	}
	return nil
}

// Values serializes the request as query parameters, omitting empty fields.
func (r LiquidIntakeRequest) Values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "startTime", r.StartTime)
	setIfNotEmpty(v, "endTime", r.EndTime)
	setIfNotEmpty(v, "index", r.Index)
	return v
}

// HydrationGoalRequest queries goal entries. Both fields are required.
type HydrationGoalRequest struct {
	Index    string
	ViewFrom string
}

func (r HydrationGoalRequest) Validate() error {
	if r.Index != IndexTime && r.Index != IndexDateCreated {
		return fmt.Errorf("%w: unknown index %q", ErrInvalidRequest, r.Index)
	}
	if r.ViewFrom != ViewFromLeft && r.ViewFrom != ViewFromRight {
		return fmt.Errorf("%w: viewFrom must be %q or %q, got %q", ErrInvalidRequest, ViewFromLeft, ViewFromRight, r.ViewFrom)
	}
	return nil
}

func (r HydrationGoalRequest) Values() url.Values {
	return url.Values{
		"index":    []string{r.Index},
		"viewFrom": []string{r.ViewFrom},
	}
}

// LatestGoalRequest is the goal query used by the dashboard.
func LatestGoalRequest() HydrationGoalRequest {
	return HydrationGoalRequest{Index: IndexTime, ViewFrom: ViewFromRight}
}

// DeviceInfoRequest queries a single bottle.
type DeviceInfoRequest struct {
	DeviceID string
}

func (r DeviceInfoRequest) Validate() error {
	if r.DeviceID == "" {
		return fmt.Errorf("%w: deviceId is required", ErrInvalidRequest)
	}
	return nil
}

func (r DeviceInfoRequest) Values() url.Values {
	return url.Values{"deviceId": []string{r.DeviceID}}
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// IntakeRequestForYear returns the intake range needed to draw year. For the
// current year the window is the trailing twelve months up to today, the same
// window the backend is queried with elsewhere. Days before January 1 are
// fetched but dropped by the calendar and the summary.
func IntakeRequestForYear(year int, today time.Time) LiquidIntakeRequest {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if year == day.Year() {
		end = day
		if yearAgo := day.AddDate(-1, 0, 0); yearAgo.Before(start) {
			start = yearAgo
		}
	}
	return LiquidIntakeRequest{
		StartTime: start.Format(dateLayout),
		EndTime:   end.Format(dateLayout),
		Index:     IndexTime,
	}
}

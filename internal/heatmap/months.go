package heatmap

import "time"

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthColSpans = map[string]int{
	"Jan": 5,
	"Feb": 4,
	"Mar": 4,
	"Apr": 5,
	"May": 4,
	"Jun": 4,
	"Jul": 5,
	"Aug": 4,
	"Sep": 4,
	"Oct": 5,
	"Nov": 4,
	"Dec": 4,
}

// WeekdayLabels are the row labels, Monday first.
var WeekdayLabels = [Rows]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func shortMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// MonthNames returns the short month names in calendar order.
func MonthNames() []string {
	names := make([]string, len(monthNames))
	copy(names, monthNames[:])
	return names
}

// ColSpanForMonth returns the typical number of week columns a month spans
// in a header row.
func ColSpanForMonth(name string) (int, bool) {
	span, ok := monthColSpans[name]
	return span, ok
}

// MonthHeader is one label of a month header row.
type MonthHeader struct {
	Name string `json:"name"`
	Span int    `json:"span"`
}

// MonthHeaders collapses the month labels of cal into header cells. Each
// labelled column starts a header that spans until the next label; columns
// before the first label become an unnamed header. A calendar without any
// labels gets the typical header from ColSpanForMonth.
func MonthHeaders(cal Calendar) []MonthHeader {
	if !hasMonthLabels(cal) {
		return typicalMonthHeaders()
	}

	var headers []MonthHeader
	for week, label := range cal.MonthLabels {
		if label != "" || week == 0 {
			headers = append(headers, MonthHeader{Name: label})
		}
		headers[len(headers)-1].Span++
	}
	return headers
}

func hasMonthLabels(cal Calendar) bool {
	for _, label := range cal.MonthLabels {
		if label != "" {
			return true
		}
	}
	return false
}

// typicalMonthHeaders spans all Weeks columns; December absorbs the columns
// the typical spans leave over.
func typicalMonthHeaders() []MonthHeader {
	headers := make([]MonthHeader, 0, len(monthNames))
	total := 0
	for _, name := range monthNames {
		span, _ := ColSpanForMonth(name)
		headers = append(headers, MonthHeader{Name: name, Span: span})
		total += span
	}
	headers[len(headers)-1].Span += Weeks - total
	return headers
}

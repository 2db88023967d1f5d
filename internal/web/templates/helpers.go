package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

func colSpan(n int) string {
	return strconv.Itoa(n)
}

func yearURL(year int) templ.SafeURL {
	return templ.SafeURL(fmt.Sprintf("/?year=%d", year))
}

func cellClass(level int) string {
	return "cell level-" + strconv.Itoa(level)
}

func cellStyle(color string) string {
	if color == "" {
		return ""
	}
	return "background-color: " + color
}

func toggleTarget(dark bool) string {
	if dark {
		return "light"
	}
	return "dark"
}

func toggleLabel(dark bool) string {
	if dark {
		return "Light mode"
	}
	return "Dark mode"
}

func goalReached(s SummaryView) string {
	return strconv.Itoa(s.GoalDays) + " days (" + s.GoalRate + ")"
}

// deviceDetails joins the bottle name with its optional size and filter flag.
func deviceDetails(d DeviceView) string {
	parts := []string{d.Name}
	if d.Size != "" {
		parts = append(parts, d.Size)
	}
	if d.FilterTracking {
		parts = append(parts, "filter tracking on")
	}
	return strings.Join(parts, " · ")
}

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/emiliopalmerini/hydrate/internal/domain"
	"github.com/emiliopalmerini/hydrate/internal/heatmap"
	"github.com/emiliopalmerini/hydrate/internal/shared/middleware"
	"github.com/emiliopalmerini/hydrate/internal/theme"
	"github.com/emiliopalmerini/hydrate/internal/util"
	"github.com/emiliopalmerini/hydrate/internal/web/templates"
)

const minYear = 1970

var errInvalidYear = errors.New("invalid year")

// today returns the current date in the server location.
func (s *Server) today() time.Time {
	return s.now().In(s.loc)
}

// parseYear reads the year query parameter, defaulting to the current year.
// Years after the current one have no data and are rejected.
func parseYear(raw string, current int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalidYear, raw)
	}
	if year < minYear || year > current {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", errInvalidYear, year, minYear, current)
	}
	return year, nil
}

func buildHeatmapView(cal heatmap.Calendar, scale heatmap.ColorScale, mode theme.Mode) templates.HeatmapView {
	view := templates.HeatmapView{
		Rows: make([]templates.HeatmapRow, heatmap.Rows),
	}
	for _, m := range heatmap.MonthHeaders(cal) {
		view.Months = append(view.Months, templates.MonthCell{Name: m.Name, Span: m.Span})
	}

	stops := len(scale.Stops(mode))
	for row := 0; row < heatmap.Rows; row++ {
		cells := make([]templates.HeatmapCell, heatmap.Weeks)
		for week := 0; week < heatmap.Weeks; week++ {
			cell := cal.Cell(row, week)
			if cell == nil {
				cells[week] = templates.HeatmapCell{Empty: true}
				continue
			}
			cells[week] = templates.HeatmapCell{
				Date:       cell.Date,
				Title:      fmt.Sprintf("%s: %s", util.FormatDateHuman(cell.Date), util.FormatLiters(cell.Value)),
				Color:      heatmap.Color(scale, cal.Max, cell.Value, mode),
				LightColor: heatmap.Color(scale, cal.Max, cell.Value, theme.Light),
				DarkColor:  heatmap.Color(scale, cal.Max, cell.Value, theme.Dark),
				Level:      heatmap.Level(stops, cal.Max, cell.Value),
			}
		}
		view.Rows[row] = templates.HeatmapRow{Label: heatmap.WeekdayLabels[row], Cells: cells}
	}

	active := scale.Stops(mode)
	for i := range active {
		view.Legend = append(view.Legend, templates.LegendStop{
			Color:      active[i],
			LightColor: stopAt(scale.Light, i),
			DarkColor:  stopAt(scale.Dark, i),
		})
	}
	if cal.Max > 0 {
		view.MaxText = util.FormatLiters(cal.Max)
	}
	return view
}

func stopAt(stops []string, i int) string {
	if i < len(stops) {
		return stops[i]
	}
	return ""
}

func buildSummaryView(s domain.YearSummary) templates.SummaryView {
	view := templates.SummaryView{
		Total:      util.FormatLiters(s.TotalLiters),
		Average:    util.FormatLiters(s.AverageLiters()),
		ActiveDays: s.ActiveDays,
		GoalDays:   s.GoalDays,
		GoalRate:   util.FormatPercent(0),
	}
	if s.ActiveDays > 0 {
		view.GoalRate = util.FormatPercent(float64(s.GoalDays) / float64(s.ActiveDays))
	}
	if s.BestDay != "" {
		view.Best = util.FormatLiters(s.BestLiters)
		view.BestDay = util.FormatDateHuman(s.BestDay)
	}
	return view
}

func greeting(user *domain.UserInfo) string {
	if user == nil || strings.TrimSpace(user.DisplayName) == "" {
		return "Hello!"
	}
	return "Hello, " + strings.TrimSpace(user.DisplayName) + "!"
}

func pageFor(r *http.Request, title string) templates.Page {
	return templates.Page{
		Title:     title,
		DarkMode:  theme.FromContext(r.Context()).Mode == theme.Dark,
		RequestID: middleware.GetRequestID(r.Context()),
	}
}

// renderError writes an HTML error page. Details stay in the log.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	view := templates.ErrorView{
		Status:    status,
		Title:     http.StatusText(status),
		Message:   message,
		RequestID: middleware.GetRequestID(r.Context()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ErrorPage(pageFor(r, http.StatusText(status)), view).Render(r.Context(), w); err != nil {
		s.logger.ErrorContext(r.Context(), "rendering error page", "error", err)
	}
	s.metrics.RecordPageRender(r.Context(), "error", status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/hydrate/internal/domain"
	"github.com/emiliopalmerini/hydrate/internal/heatmap"
	"github.com/emiliopalmerini/hydrate/internal/theme"
	"github.com/emiliopalmerini/hydrate/internal/util"
	"github.com/emiliopalmerini/hydrate/internal/web/templates"
)

// dashboardData is everything the dashboard needs from the backend.
type dashboardData struct {
	intake *domain.LiquidIntake
	goals  *domain.HydrationGoals
	user   *domain.UserInfo
	device *domain.DeviceInfo
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	today := s.today()

	year, err := parseYear(r.URL.Query().Get("year"), today.Year())
	if err != nil {
		s.renderError(w, r, http.StatusBadRequest, "The requested year is not available.")
		return
	}

	data, err := s.fetchDashboardData(ctx, year)
	if err != nil {
		s.logger.ErrorContext(ctx, "loading dashboard", "year", year, "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		s.renderError(w, r, status, "Hydration data could not be loaded. Please try again later.")
		return
	}

	view := s.buildDashboardView(year, today.Year(), data, theme.FromContext(ctx).Mode)

	var buf bytes.Buffer
	if err := templates.Dashboard(pageFor(r, "hydrate"), view).Render(ctx, &buf); err != nil {
		s.logger.ErrorContext(ctx, "rendering dashboard", "error", err)
		s.renderError(w, r, http.StatusInternalServerError, "The dashboard could not be rendered.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	s.metrics.RecordPageRender(ctx, "dashboard", http.StatusOK)
}

// fetchDashboardData loads intake, goal, user and device data in parallel.
// The page needs all of them, so the first failure cancels the rest.
func (s *Server) fetchDashboardData(ctx context.Context, year int) (*dashboardData, error) {
	var data dashboardData
	g, gctx := errgroup.WithContext(ctx)

	// 1. Intake for the requested year
	g.Go(func() error {
		var err error
		data.intake, err = s.api.GetLiquidIntake(gctx, domain.IntakeRequestForYear(year, s.today()))
		return err
	})

	// 2. Latest goal
	g.Go(func() error {
		var err error
		data.goals, err = s.api.GetHydrationGoal(gctx, domain.LatestGoalRequest())
		return err
	})

	// 3. User info
	g.Go(func() error {
		var err error
		data.user, err = s.api.GetUserInfo(gctx)
		return err
	})

	// 4. Bottle, when one is configured
	if s.deviceID != "" {
		g.Go(func() error {
			var err error
			data.device, err = s.api.GetDeviceInfo(gctx, domain.DeviceInfoRequest{DeviceID: s.deviceID})
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *Server) buildDashboardView(year, currentYear int, data *dashboardData, mode theme.Mode) templates.DashboardView {
	var entries []domain.LiquidIntakeEntry
	if data.intake != nil {
		entries = data.intake.Entries
	}
	values := domain.DailyTotals(entries, s.loc)
	cal := heatmap.Build(values, year)

	view := templates.DashboardView{
		Year:     year,
		PrevYear: year - 1,
		NextYear: year + 1,
		HasNext:  year < currentYear,
		Greeting: greeting(data.user),
		Heatmap:  buildHeatmapView(cal, s.scale, mode),
	}

	var goalLiters float64
	if data.goals != nil {
		if goal, ok := domain.CurrentGoal(*data.goals); ok && goal.VolumeInLiter > 0 {
			goalLiters = goal.VolumeInLiter
			view.Goal = util.FormatLiters(goalLiters)
		}
	}
	view.Summary = buildSummaryView(domain.Summarize(values, year, goalLiters))

	if data.device != nil {
		view.Device = &templates.DeviceView{
			Name:           data.device.Name,
			Color:          data.device.Color,
			FilterTracking: data.device.IsFilterTrackingEnabled,
		}
		if data.device.SizeInMilliliter > 0 {
			view.Device.Size = util.FormatMilliliters(data.device.SizeInMilliliter)
		}
	}
	return view
}

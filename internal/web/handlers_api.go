package web

import (
	"errors"
	"net/http"

	"github.com/emiliopalmerini/hydrate/internal/domain"
	"github.com/emiliopalmerini/hydrate/internal/heatmap"
)

func (s *Server) handleAPIHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	today := s.today()

	year, err := parseYear(r.URL.Query().Get("year"), today.Year())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	intake, err := s.api.GetLiquidIntake(ctx, domain.IntakeRequestForYear(year, today))
	if err != nil {
		s.logger.ErrorContext(ctx, "loading heatmap intake", "year", year, "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, status, "hydration data could not be loaded")
		return
	}

	cal := heatmap.Build(domain.DailyTotals(intake.Entries, s.loc), year)
	writeJSON(w, http.StatusOK, heatmap.NewDocument(cal, s.scale))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusNotFound, "This page does not exist.")
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/shift-roster/pkg/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	state := s.rosterService.GetState(r.Context())
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Revision:  state.Revision,
		Locations: len(state.Locations),
		Rosters:   len(state.Rosters),
		UptimeSec: int64(time.Since(s.started).Seconds()),
	})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.rosterService.GetState(r.Context()))
}

// handleCalendar returns the Monday-first weeks covering the month, with
// per-day shift counts.
// Query: year, month (1-12), location_id (defaults to the active location).
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 1 {
		writeBadRequest(w, "year must be a positive integer")
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeBadRequest(w, "month must be between 1 and 12")
		return
	}

	days, err := s.rosterService.GetCalendar(r.Context(), year, time.Month(month), q.Get("location_id"))
	if err != nil {
		s.writeServiceError(w, err, "failed to build calendar")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days, "count": len(days)})
}

func (s *Server) handleExportTimesheet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := s.rosterService.ExportTimesheet(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		s.writeServiceError(w, err, "failed to export timesheet")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

// handleListRosters returns the rosters for ?date=, optionally narrowed to
// ?location_id=.
func (s *Server) handleListRosters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	if date == "" {
		writeBadRequest(w, "date query parameter is required")
		return
	}

	rosters := s.rosterService.GetRostersByDate(r.Context(), date, q.Get("location_id"))
	writeJSON(w, http.StatusOK, map[string]any{"rosters": rosters, "count": len(rosters)})
}

func (s *Server) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := s.rosterService.GetRoster(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err, "failed to get roster")
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

func (s *Server) handleCreateRoster(w http.ResponseWriter, r *http.Request) {
	var in entity.NewRosterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	roster, err := s.rosterService.CreateRoster(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err, "failed to create roster")
		return
	}
	writeJSON(w, http.StatusCreated, roster)
}

// handleUpdateRoster replaces a roster. The path id wins over the body id.
func (s *Server) handleUpdateRoster(w http.ResponseWriter, r *http.Request) {
	var roster entity.Roster
	if !decodeJSON(w, r, &roster) {
		return
	}
	roster.ID = chi.URLParam(r, "id")

	updated, err := s.rosterService.UpdateRoster(r.Context(), roster)
	if err != nil {
		s.writeServiceError(w, err, "failed to update roster")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteRoster(w http.ResponseWriter, r *http.Request) {
	if err := s.rosterService.DeleteRoster(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, err, "failed to delete roster")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRosterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.rosterService.GetRosterStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err, "failed to compute roster stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleAddShift(w http.ResponseWriter, r *http.Request) {
	var in entity.ShiftInput
	if !decodeJSON(w, r, &in) {
		return
	}

	shift, err := s.rosterService.AddShift(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.writeServiceError(w, err, "failed to add shift")
		return
	}
	writeJSON(w, http.StatusCreated, shift)
}

func (s *Server) handleUpdateShift(w http.ResponseWriter, r *http.Request) {
	var in entity.ShiftInput
	if !decodeJSON(w, r, &in) {
		return
	}

	shift, err := s.rosterService.UpdateShift(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "shiftID"), in)
	if err != nil {
		s.writeServiceError(w, err, "failed to update shift")
		return
	}
	writeJSON(w, http.StatusOK, shift)
}

func (s *Server) handleRemoveShift(w http.ResponseWriter, r *http.Request) {
	if err := s.rosterService.RemoveShift(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "shiftID")); err != nil {
		s.writeServiceError(w, err, "failed to remove shift")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

// handleListStaff returns all staff, with optional location_id filter.
func (s *Server) handleListStaff(w http.ResponseWriter, r *http.Request) {
	staff := s.rosterService.ListStaff(r.Context(), r.URL.Query().Get("location_id"))
	writeJSON(w, http.StatusOK, map[string]any{"staff": staff, "count": len(staff)})
}

func (s *Server) handleGetStaff(w http.ResponseWriter, r *http.Request) {
	rec, err := s.rosterService.GetStaff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err, "failed to get staff")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var in entity.NewStaffInput
	if !decodeJSON(w, r, &in) {
		return
	}

	rec, err := s.rosterService.CreateStaff(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err, "failed to create staff")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	var patch entity.StaffPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	rec, err := s.rosterService.UpdateStaff(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.writeServiceError(w, err, "failed to update staff")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	if err := s.rosterService.DeleteStaff(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, err, "failed to delete staff")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/pkg/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	state := s.rosterService.GetState(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"locations":          state.Locations,
		"count":              len(state.Locations),
		"active_location_id": state.ActiveLocationID,
	})
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := s.rosterService.GetLocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err, "failed to get location")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// handleCreateLocations adds one or more locations. The first batch on an
// empty store is the onboarding batch.
func (s *Server) handleCreateLocations(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.rosterService.CreateLocations(r.Context(), req.Locations)
	if err != nil {
		s.writeServiceError(w, err, "failed to create locations")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"locations": created, "count": len(created)})
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	var edit entity.LocationEdit
	if !decodeJSON(w, r, &edit) {
		return
	}

	loc, err := s.rosterService.UpdateLocation(r.Context(), chi.URLParam(r, "id"), edit)
	if err != nil {
		s.writeServiceError(w, err, "failed to update location")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.rosterService.DeleteLocation(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, err, "failed to delete location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetActiveLocation(w http.ResponseWriter, r *http.Request) {
	var req models.ActiveLocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.rosterService.SetActiveLocation(r.Context(), req.ID); err != nil {
		s.writeServiceError(w, err, "failed to set active location")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleLocationUsage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	usage, err := s.rosterService.GetUsageCounts(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err, "failed to count usage")
		return
	}
	writeJSON(w, http.StatusOK, models.UsageResponse{
		LocationID: id,
		Areas:      usage.Areas,
		Sections:   usage.Sections,
	})
}

package models

import "github.com/diegoclair/shift-roster/internal/domain/entity"

// CreateLocationsRequest is the body of POST /api/v1/locations. The first
// batch submitted to an empty store goes through the onboarding rules.
type CreateLocationsRequest struct {
	Locations []entity.NewLocationInput `json:"locations"`
}

// ActiveLocationRequest is the body of PUT /api/v1/locations/active. An empty
// id clears the selection.
type ActiveLocationRequest struct {
	ID string `json:"id"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Revision  uint64 `json:"revision"`
	Locations int    `json:"locations"`
	Rosters   int    `json:"rosters"`
	UptimeSec int64  `json:"uptime_seconds"`
}

type UsageResponse struct {
	LocationID string                    `json:"locationId"`
	Areas      map[string]int            `json:"areas"`
	Sections   map[string]map[string]int `json:"sections"`
}

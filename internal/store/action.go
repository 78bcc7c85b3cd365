package store

import "github.com/diegoclair/shift-roster/internal/domain/entity"

// Action is a state change request handled by Reduce.
type Action interface {
	Name() string
}

// Action names, also used as event names and metric labels.
const (
	ActionAddLocations      = "addLocations"
	ActionSetActiveLocation = "setActiveLocation"
	ActionUpdateLocation    = "updateLocation"
	ActionRemoveLocation    = "removeLocation"
	ActionAddStaff          = "addStaff"
	ActionUpdateStaff       = "updateStaff"
	ActionRemoveStaff       = "removeStaff"
	ActionAddRoster         = "addRoster"
	ActionUpdateRoster      = "updateRoster"
	ActionRemoveRoster      = "removeRoster"
)

// AddLocations creates one location per input, with fresh ids for the
// location and each of its areas.
type AddLocations struct {
	Locations []entity.NewLocationInput
}

// SetActiveLocation replaces the active location id. An empty ID clears it.
// The id is not checked for existence.
type SetActiveLocation struct {
	ID string
}

// UpdateLocation merges Patch into the location with the given id.
type UpdateLocation struct {
	ID    string
	Patch entity.LocationPatch
}

// RemoveLocation deletes a location. Rosters and staff links that point at
// it are left alone.
type RemoveLocation struct {
	ID string
}

// AddStaff creates a staff record with a fresh id.
type AddStaff struct {
	Staff entity.NewStaffInput
}

// UpdateStaff merges Patch into the staff record with the given id.
type UpdateStaff struct {
	ID    string
	Patch entity.StaffPatch
}

// RemoveStaff deletes a staff record. Shifts keep their staff id.
type RemoveStaff struct {
	ID string
}

// AddRoster appends a roster with a fresh id.
type AddRoster struct {
	Roster entity.NewRosterInput
}

// UpdateRoster replaces the roster with the same id, shifts included.
type UpdateRoster struct {
	Roster entity.Roster
}

// RemoveRoster deletes a roster and its shifts.
type RemoveRoster struct {
	ID string
}

func (AddLocations) Name() string      { return ActionAddLocations }
func (SetActiveLocation) Name() string { return ActionSetActiveLocation }
func (UpdateLocation) Name() string    { return ActionUpdateLocation }
func (RemoveLocation) Name() string    { return ActionRemoveLocation }
func (AddStaff) Name() string          { return ActionAddStaff }
func (UpdateStaff) Name() string       { return ActionUpdateStaff }
func (RemoveStaff) Name() string       { return ActionRemoveStaff }
func (AddRoster) Name() string         { return ActionAddRoster }
func (UpdateRoster) Name() string      { return ActionUpdateRoster }
func (RemoveRoster) Name() string      { return ActionRemoveRoster }

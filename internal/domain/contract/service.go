package contract

import (
	"context"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
)

// RosterService is the entry point used by the HTTP API, the Slack command
// handler and the seed loader. Every mutating call validates before it
// dispatches to the store.
type RosterService interface {
	GetState(ctx context.Context) entity.AppState

	ListLocations(ctx context.Context) []entity.Location
	GetLocation(ctx context.Context, id string) (entity.Location, error)
	FindLocationByName(ctx context.Context, name string) (entity.Location, error)
	ActiveLocation(ctx context.Context) (entity.Location, error)
	CreateLocations(ctx context.Context, inputs []entity.NewLocationInput) ([]entity.Location, error)
	UpdateLocation(ctx context.Context, id string, edit entity.LocationEdit) (entity.Location, error)
	DeleteLocation(ctx context.Context, id string) error
	SetActiveLocation(ctx context.Context, id string) error
	GetUsageCounts(ctx context.Context, locationID string) (selector.Usage, error)

	ListStaff(ctx context.Context, locationID string) []entity.StaffRecord
	GetStaff(ctx context.Context, id string) (entity.StaffRecord, error)
	CreateStaff(ctx context.Context, in entity.NewStaffInput) (entity.StaffRecord, error)
	UpdateStaff(ctx context.Context, id string, patch entity.StaffPatch) (entity.StaffRecord, error)
	DeleteStaff(ctx context.Context, id string) error

	GetRostersByDate(ctx context.Context, dateISO, locationID string) []entity.Roster
	GetRoster(ctx context.Context, id string) (entity.Roster, error)
	CreateRoster(ctx context.Context, in entity.NewRosterInput) (entity.Roster, error)
	UpdateRoster(ctx context.Context, r entity.Roster) (entity.Roster, error)
	DeleteRoster(ctx context.Context, id string) error
	AddShift(ctx context.Context, rosterID string, in entity.ShiftInput) (entity.Shift, error)
	UpdateShift(ctx context.Context, rosterID, shiftID string, in entity.ShiftInput) (entity.Shift, error)
	RemoveShift(ctx context.Context, rosterID, shiftID string) error
	GetRosterStats(ctx context.Context, rosterID string) (selector.Stats, error)
	GetCalendar(ctx context.Context, year int, month time.Month, locationID string) ([]entity.CalendarDay, error)

	ExportTimesheet(ctx context.Context, from, to string) (entity.ExportResult, error)
}

// DigestScheduler posts the daily roster digest.
type DigestScheduler interface {
	Start()
	Stop()
	NotifyConfigChange()
}

// Metrics records service level counters.
type Metrics interface {
	ValidationRejected(operation string)
}

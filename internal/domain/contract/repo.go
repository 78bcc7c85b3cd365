package contract

import (
	"context"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Timesheet() TimesheetRepo
}

// TimesheetRepo defines the contract for the timesheet export tables
type TimesheetRepo interface {
	DeleteByRoster(rosterID string) error
	InsertLine(line *entity.TimesheetLine) error
	UpsertSummary(summary entity.RosterSummary) error
	GetLinesByDateRange(from, to string) ([]*entity.TimesheetLine, error)
	GetSummary(rosterID string) (*entity.RosterSummary, error)
}

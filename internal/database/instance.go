package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	timesheetRepo contract.TimesheetRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:            db,
		timesheetRepo: newTimesheetRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances bound to a transaction
func repoInstancesWithConn(conn dbConn) *instance {
	return &instance{
		timesheetRepo: newTimesheetRepo(conn),
	}
}

// Timesheet returns the timesheet repository
func (i *instance) Timesheet() contract.TimesheetRepo {
	return i.timesheetRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(repoInstancesWithConn(tx))
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

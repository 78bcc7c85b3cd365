package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

type timesheetRepo struct {
	db dbConn
}

func newTimesheetRepo(db dbConn) contract.TimesheetRepo {
	return &timesheetRepo{db: db}
}

func (r *timesheetRepo) DeleteByRoster(rosterID string) error {
	if _, err := r.db.Exec(`DELETE FROM timesheet_lines WHERE roster_id = ?`, rosterID); err != nil {
		return fmt.Errorf("failed to delete timesheet lines: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM roster_summaries WHERE roster_id = ?`, rosterID); err != nil {
		return fmt.Errorf("failed to delete roster summary: %w", err)
	}
	return nil
}

func (r *timesheetRepo) InsertLine(line *entity.TimesheetLine) error {
	query := `
		INSERT INTO timesheet_lines (roster_id, shift_id, date_iso, location, area, section,
			staff, role, start_time, end_time, hours, rate, cost, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		line.RosterID,
		line.ShiftID,
		line.DateISO,
		line.Location,
		line.Area,
		line.Section,
		line.Staff,
		line.Role,
		line.Start,
		line.End,
		line.Hours,
		line.Rate,
		line.Cost,
		line.ExportedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert timesheet line: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	line.ID = id
	return nil
}

func (r *timesheetRepo) UpsertSummary(summary entity.RosterSummary) error {
	query := `
		INSERT INTO roster_summaries (roster_id, date_iso, location, title,
			total_hours, total_cost, total_shifts, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(roster_id) DO UPDATE SET
			date_iso = excluded.date_iso,
			location = excluded.location,
			title = excluded.title,
			total_hours = excluded.total_hours,
			total_cost = excluded.total_cost,
			total_shifts = excluded.total_shifts,
			exported_at = excluded.exported_at
	`

	_, err := r.db.Exec(query,
		summary.RosterID,
		summary.DateISO,
		summary.Location,
		summary.Title,
		summary.TotalHours,
		summary.TotalCost,
		summary.TotalShifts,
		summary.ExportedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert roster summary: %w", err)
	}
	return nil
}

func (r *timesheetRepo) GetLinesByDateRange(from, to string) ([]*entity.TimesheetLine, error) {
	query := `
		SELECT id, roster_id, shift_id, date_iso, location, area, section, staff, role,
			start_time, end_time, hours, rate, cost, exported_at
		FROM timesheet_lines
		WHERE date_iso BETWEEN ? AND ?
		ORDER BY date_iso, location, start_time, id
	`

	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.TimesheetLine
	for rows.Next() {
		line := &entity.TimesheetLine{}
		err := rows.Scan(
			&line.ID,
			&line.RosterID,
			&line.ShiftID,
			&line.DateISO,
			&line.Location,
			&line.Area,
			&line.Section,
			&line.Staff,
			&line.Role,
			&line.Start,
			&line.End,
			&line.Hours,
			&line.Rate,
			&line.Cost,
			&line.ExportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet lines: %w", err)
	}

	return lines, nil
}

func (r *timesheetRepo) GetSummary(rosterID string) (*entity.RosterSummary, error) {
	summary := &entity.RosterSummary{}
	query := `
		SELECT roster_id, date_iso, location, title, total_hours, total_cost, total_shifts, exported_at
		FROM roster_summaries
		WHERE roster_id = ?
	`

	err := r.db.QueryRow(query, rosterID).Scan(
		&summary.RosterID,
		&summary.DateISO,
		&summary.Location,
		&summary.Title,
		&summary.TotalHours,
		&summary.TotalCost,
		&summary.TotalShifts,
		&summary.ExportedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster summary: %w", err)
	}

	return summary, nil
}

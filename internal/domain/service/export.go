package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
)

// ExportTimesheet writes every roster dated from..to (inclusive) to the
// timesheet database, replacing what an earlier export wrote for the same
// rosters. The export is a single transaction.
func (s *rosterService) ExportTimesheet(ctx context.Context, from, to string) (entity.ExportResult, error) {
	result := entity.ExportResult{From: from, To: to}

	if err := checkDateRange(from, to); err != nil {
		return result, err
	}
	if s.dm == nil {
		return result, fmt.Errorf("timesheet export is not configured")
	}

	state := s.store.GetState()
	rosters := rostersInRange(state.Rosters, from, to)
	exportedAt := s.now().UTC()

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, r := range rosters {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := tx.Timesheet().DeleteByRoster(r.ID); err != nil {
				return fmt.Errorf("failed to clear roster %s: %w", r.ID, err)
			}
			for _, line := range timesheetLines(state, r, exportedAt) {
				if err := tx.Timesheet().InsertLine(line); err != nil {
					return fmt.Errorf("failed to export shift %s: %w", line.ShiftID, err)
				}
				result.Lines++
			}
			if err := tx.Timesheet().UpsertSummary(rosterSummary(state, r, exportedAt)); err != nil {
				return fmt.Errorf("failed to export roster summary %s: %w", r.ID, err)
			}
			result.Rosters++
		}
		return nil
	})
	if err != nil {
		return entity.ExportResult{From: from, To: to}, fmt.Errorf("failed to export timesheet: %w", err)
	}

	s.logger.Info("timesheet exported",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("rosters", result.Rosters),
		slog.Int("lines", result.Lines),
	)
	return result, nil
}

func checkDateRange(from, to string) error {
	f, err := time.Parse(entity.DateLayout, from)
	if err != nil {
		return fmt.Errorf("%w: from %q is not YYYY-MM-DD", domain.ErrInvalidDateRange, from)
	}
	t, err := time.Parse(entity.DateLayout, to)
	if err != nil {
		return fmt.Errorf("%w: to %q is not YYYY-MM-DD", domain.ErrInvalidDateRange, to)
	}
	if t.Before(f) {
		return fmt.Errorf("%w: %s is after %s", domain.ErrInvalidDateRange, from, to)
	}
	return nil
}

func rostersInRange(rosters []entity.Roster, from, to string) []entity.Roster {
	var out []entity.Roster
	for _, r := range rosters {
		if r.DateISO >= from && r.DateISO <= to {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b entity.Roster) int {
		return strings.Compare(a.DateISO, b.DateISO)
	})
	return out
}

func locationName(state entity.AppState, id string) string {
	if loc, ok := selector.FindLocation(state, id); ok {
		return loc.Name
	}
	return id
}

func timesheetLines(state entity.AppState, r entity.Roster, exportedAt time.Time) []*entity.TimesheetLine {
	location := locationName(state, r.LocationID)
	lines := make([]*entity.TimesheetLine, 0, len(r.Shifts))
	for _, sh := range r.Shifts {
		area := sh.AreaID
		if a, ok := selector.FindArea(state, r.LocationID, sh.AreaID); ok {
			area = a.Name
		}
		var rate float64
		if rec, ok := selector.FindStaff(state, sh.StaffID); ok {
			rate = rec.Rate()
		}
		lines = append(lines, &entity.TimesheetLine{
			RosterID:   r.ID,
			ShiftID:    sh.ID,
			DateISO:    r.DateISO,
			Location:   location,
			Area:       area,
			Section:    sh.Section,
			Staff:      selector.StaffDisplayName(state, sh.StaffID),
			Role:       sh.Role,
			Start:      sh.Start,
			End:        sh.End,
			Hours:      selector.Round2(selector.ShiftHours(sh)),
			Rate:       rate,
			Cost:       selector.Round2(selector.ShiftCost(sh, state.Staff)),
			ExportedAt: exportedAt,
		})
	}
	return lines
}

func rosterSummary(state entity.AppState, r entity.Roster, exportedAt time.Time) entity.RosterSummary {
	stats := selector.RosterStats(r, state.Staff)
	return entity.RosterSummary{
		RosterID:    r.ID,
		DateISO:     r.DateISO,
		Location:    locationName(state, r.LocationID),
		Title:       r.Title,
		TotalHours:  stats.TotalHours,
		TotalCost:   stats.TotalCost,
		TotalShifts: stats.TotalShifts,
		ExportedAt:  exportedAt,
	}
}

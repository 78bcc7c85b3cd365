package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(rosterID, shiftID, date string) *entity.TimesheetLine {
	return &entity.TimesheetLine{
		RosterID:   rosterID,
		ShiftID:    shiftID,
		DateISO:    date,
		Location:   "Golden Lion",
		Area:       "Bar",
		Section:    "Front Bar",
		Staff:      "Alex",
		Role:       "Bartender",
		Start:      "10:00",
		End:        "16:00",
		Hours:      6,
		Rate:       30,
		Cost:       180,
		ExportedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestTimesheetRepo_InsertLine(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTimesheetRepo(db.conn)

	line := testLine("r1", "sh1", "2026-10-19")
	err := repo.InsertLine(line)
	require.NoError(t, err, "Failed to insert line")

	assert.NotZero(t, line.ID, "Expected line ID to be set after insert")
}

func TestTimesheetRepo_GetLinesByDateRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTimesheetRepo(db.conn)

	require.NoError(t, repo.InsertLine(testLine("r1", "sh1", "2026-10-18")))
	require.NoError(t, repo.InsertLine(testLine("r2", "sh2", "2026-10-19")))
	require.NoError(t, repo.InsertLine(testLine("r3", "sh3", "2026-10-21")))

	lines, err := repo.GetLinesByDateRange("2026-10-19", "2026-10-21")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "sh2", lines[0].ShiftID)
	assert.Equal(t, "sh3", lines[1].ShiftID)
	assert.Equal(t, 180.0, lines[0].Cost)
	assert.True(t, lines[0].ExportedAt.Equal(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))

	lines, err = repo.GetLinesByDateRange("2027-01-01", "2027-01-31")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestTimesheetRepo_Summary(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTimesheetRepo(db.conn)

	summary, err := repo.GetSummary("r1")
	require.NoError(t, err)
	assert.Nil(t, summary)

	in := entity.RosterSummary{
		RosterID: "r1", DateISO: "2026-10-19", Location: "Golden Lion",
		TotalHours: 6, TotalCost: 180, TotalShifts: 1,
		ExportedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpsertSummary(in))

	in.TotalHours = 8
	in.TotalCost = 240
	require.NoError(t, repo.UpsertSummary(in))

	summary, err = repo.GetSummary("r1")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 8.0, summary.TotalHours)
	assert.Equal(t, 240.0, summary.TotalCost)
	assert.Equal(t, 1, summary.TotalShifts)
}

func TestTimesheetRepo_DeleteByRoster(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTimesheetRepo(db.conn)

	require.NoError(t, repo.InsertLine(testLine("r1", "sh1", "2026-10-19")))
	require.NoError(t, repo.InsertLine(testLine("r2", "sh2", "2026-10-19")))
	require.NoError(t, repo.UpsertSummary(entity.RosterSummary{RosterID: "r1", DateISO: "2026-10-19", ExportedAt: time.Now()}))

	require.NoError(t, repo.DeleteByRoster("r1"))

	lines, err := repo.GetLinesByDateRange("2026-10-19", "2026-10-19")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "r2", lines[0].RosterID)

	summary, err := repo.GetSummary("r1")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.Timesheet().InsertLine(testLine("r1", "sh1", "2026-10-19"))
		})
		require.NoError(t, err)

		lines, err := dm.Timesheet().GetLinesByDateRange("2026-10-19", "2026-10-19")
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			require.NoError(t, tx.Timesheet().InsertLine(testLine("r2", "sh2", "2026-10-20")))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		lines, err := dm.Timesheet().GetLinesByDateRange("2026-10-20", "2026-10-20")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

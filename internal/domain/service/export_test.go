package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_rosterService_ExportTimesheet(t *testing.T) {
	ctx := context.Background()

	t.Run("Should write lines and summaries for rosters in range", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		f := seedGoldenLion(t, svc)
		inRange, err := svc.CreateRoster(ctx, entity.NewRosterInput{
			DateISO: "2026-10-19", LocationID: f.location.ID, Title: "Monday",
			Shifts: []entity.Shift{f.shift("10:00", "16:00")},
		})
		require.NoError(t, err)
		_, err = svc.CreateRoster(ctx, entity.NewRosterInput{
			DateISO: "2026-10-25", LocationID: f.location.ID,
			Shifts: []entity.Shift{f.shift("10:00", "12:00")},
		})
		require.NoError(t, err)

		m.mockDataManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
				return fn(m.mockDataManager)
			}).Times(1)

		gomock.InOrder(
			m.mockTimesheetRepo.EXPECT().DeleteByRoster(inRange.ID).Return(nil),
			m.mockTimesheetRepo.EXPECT().
				InsertLine(gomock.Any()).
				DoAndReturn(func(line *entity.TimesheetLine) error {
					assert.Equal(t, inRange.ID, line.RosterID)
					assert.Equal(t, "Golden Lion", line.Location)
					assert.Equal(t, "Bar", line.Area)
					assert.Equal(t, "Front Bar", line.Section)
					assert.Equal(t, "Alex", line.Staff)
					assert.Equal(t, 6.0, line.Hours)
					assert.Equal(t, 30.0, line.Rate)
					assert.Equal(t, 180.0, line.Cost)
					assert.True(t, line.ExportedAt.Equal(testNow))
					return nil
				}),
			m.mockTimesheetRepo.EXPECT().
				UpsertSummary(gomock.Any()).
				DoAndReturn(func(s entity.RosterSummary) error {
					assert.Equal(t, inRange.ID, s.RosterID)
					assert.Equal(t, "Monday", s.Title)
					assert.Equal(t, 6.0, s.TotalHours)
					assert.Equal(t, 180.0, s.TotalCost)
					assert.Equal(t, 1, s.TotalShifts)
					return nil
				}),
		)

		result, err := svc.ExportTimesheet(ctx, "2026-10-19", "2026-10-24")
		require.NoError(t, err)
		assert.Equal(t, entity.ExportResult{From: "2026-10-19", To: "2026-10-24", Rosters: 1, Lines: 1}, result)
	})

	t.Run("Should return the transaction error", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		f := seedGoldenLion(t, svc)
		_, err := svc.CreateRoster(ctx, entity.NewRosterInput{
			DateISO: "2026-10-19", LocationID: f.location.ID,
			Shifts: []entity.Shift{f.shift("10:00", "16:00")},
		})
		require.NoError(t, err)

		boom := errors.New("disk full")
		m.mockDataManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
				return fn(m.mockDataManager)
			}).Times(1)
		m.mockTimesheetRepo.EXPECT().DeleteByRoster(gomock.Any()).Return(boom).Times(1)

		result, err := svc.ExportTimesheet(ctx, "2026-10-19", "2026-10-19")
		require.ErrorIs(t, err, boom)
		assert.Zero(t, result.Lines)
	})

	t.Run("Should reject bad ranges", func(t *testing.T) {
		_, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		_, err := svc.ExportTimesheet(ctx, "2026-10-20", "2026-10-19")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		_, err = svc.ExportTimesheet(ctx, "19/10/2026", "2026-10-19")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/ident"
	"github.com/diegoclair/shift-roster/internal/store"
	"github.com/diegoclair/shift-roster/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockTimesheetRepo *mocks.MockTimesheetRepo
	mockSlackClient   *mocks.MockSlackClient
	mockMetrics       *mocks.MockMetrics
}

func newServiceTestMock(t *testing.T, opts ...func(*Options)) (m allMocks, svc *rosterService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)
	timesheetRepo := mocks.NewMockTimesheetRepo(ctrl)
	dm.EXPECT().Timesheet().Return(timesheetRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockTimesheetRepo: timesheetRepo,
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
		mockMetrics:       mocks.NewMockMetrics(ctrl),
	}

	st := store.New(store.WithIDGenerator(ident.Sequence("id")))
	o := Options{
		Metrics:     m.mockMetrics,
		IDGenerator: ident.Sequence("sh"),
		Clock:       func() time.Time { return testNow },
	}
	for _, opt := range opts {
		opt(&o)
	}

	instance, err := NewInstance(st, dm, m.mockSlackClient, o)
	require.NoError(t, err)
	require.NotNil(t, instance.Roster)
	require.NotNil(t, instance.Digest)

	return m, instance.Roster, ctrl
}

type fixture struct {
	location entity.Location
	bar      entity.Area
	kitchen  entity.Area
	alex     entity.StaffRecord
}

// seedGoldenLion creates one location with a Bar and a Kitchen and one staff
// member paid 30 per hour.
func seedGoldenLion(t *testing.T, svc *rosterService) fixture {
	t.Helper()
	ctx := context.Background()

	locations, err := svc.CreateLocations(ctx, []entity.NewLocationInput{{
		Name:    "Golden Lion",
		Address: "1 High St",
		Areas: []entity.NewAreaInput{
			{Name: "Bar", Sections: []string{"Front Bar", "Beer Garden"}},
			{Name: "Kitchen", Sections: []string{"Pass"}},
		},
	}})
	require.NoError(t, err)
	require.Len(t, locations, 1)

	rate := 30.0
	alex, err := svc.CreateStaff(ctx, entity.NewStaffInput{
		Name:      "Alex",
		Role:      "Bartender",
		PayRate:   &rate,
		Locations: []string{locations[0].ID},
	})
	require.NoError(t, err)

	return fixture{
		location: locations[0],
		bar:      locations[0].Areas[0],
		kitchen:  locations[0].Areas[1],
		alex:     alex,
	}
}

func (f fixture) shift(start, end string) entity.Shift {
	return entity.Shift{
		Role:    "Bartender",
		AreaID:  f.bar.ID,
		Section: "Front Bar",
		StaffID: f.alex.ID,
		Start:   start,
		End:     end,
	}
}

func (f fixture) shiftInput(start, end string) entity.ShiftInput {
	return entity.ShiftInput{
		Role:    "Bartender",
		AreaID:  f.bar.ID,
		Section: "Front Bar",
		StaffID: f.alex.ID,
		Start:   start,
		End:     end,
	}
}

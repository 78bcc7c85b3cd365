package selector

import (
	"testing"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(v float64) *float64 { return &v }

func fixtureState() entity.AppState {
	return entity.AppState{
		Revision:         3,
		ActiveLocationID: "l1",
		Locations: []entity.Location{
			{ID: "l1", Name: "Golden Lion", Areas: []entity.Area{
				{ID: "A1", Name: "Bar", Sections: []string{"Front Bar", "Beer Garden"}},
				{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
			}},
			{ID: "l2", Name: "Red Cow"},
		},
		Staff: []entity.StaffRecord{
			{ID: "s1", Name: "Alex", PayRate: rate(30), Locations: []string{"l1"}},
			{ID: "s2", Name: "Sam", Locations: []string{"l1", "l2"}},
			{ID: "s3", Name: "Pat", Locations: []string{"gone"}},
		},
		Rosters: []entity.Roster{
			{ID: "r1", DateISO: "2026-10-19", LocationID: "l1", Shifts: []entity.Shift{
				{ID: "sh1", AreaID: "A1", Section: "Front Bar", StaffID: "s1", Start: "09:00", End: "12:00"},
				{ID: "sh2", AreaID: "A1", Section: "Beer Garden", StaffID: "s2", Start: "13:00", End: "17:00"},
			}},
			{ID: "r2", DateISO: "2026-10-19", LocationID: "l2"},
			{ID: "r3", DateISO: "2026-10-20", LocationID: "l1", Shifts: []entity.Shift{
				{ID: "sh3", AreaID: "A1", Section: "Front Bar", StaffID: "s1", Start: "10:00", End: "16:00"},
			}},
		},
	}
}

func TestActiveLocation(t *testing.T) {
	state := fixtureState()

	loc, ok := ActiveLocation(state)
	require.True(t, ok)
	assert.Equal(t, "Golden Lion", loc.Name)

	state.ActiveLocationID = "removed"
	_, ok = ActiveLocation(state)
	assert.False(t, ok)

	state.ActiveLocationID = ""
	_, ok = ActiveLocation(state)
	assert.False(t, ok)
}

func TestStaffByLocation(t *testing.T) {
	state := fixtureState()

	tests := []struct {
		name       string
		locationID string
		want       []string
	}{
		{name: "Should return staff of l1", locationID: "l1", want: []string{"s1", "s2"}},
		{name: "Should return staff of l2", locationID: "l2", want: []string{"s2"}},
		{name: "Should return dangling link", locationID: "gone", want: []string{"s3"}},
		{name: "Should return empty for empty id", locationID: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StaffByLocation(state, tt.locationID)
			ids := []string{}
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRostersByDate(t *testing.T) {
	state := fixtureState()

	assert.Len(t, RostersByDate(state, "2026-10-19", ""), 2)
	assert.Len(t, RostersByDate(state, "2026-10-19", "l1"), 1)
	assert.Empty(t, RostersByDate(state, "2026-10-21", ""))
}

func TestUsageCounts(t *testing.T) {
	state := fixtureState()

	areas := AreaUsageCounts(state, "l1")
	assert.Equal(t, 3, areas["A1"])
	assert.Zero(t, areas["A2"])

	sections := SectionUsageCounts(state, "l1")
	assert.Equal(t, 2, sections["A1"]["Front Bar"])
	assert.Equal(t, 1, sections["A1"]["Beer Garden"])
	assert.Zero(t, sections["A2"]["Pass"])

	usage := UsageCounts(state, "l1")
	assert.Equal(t, 3, usage.Total())
	assert.Equal(t, 2, usage.SectionCount("A1", "Front Bar"))
	assert.Zero(t, UsageCounts(state, "l2").Total())
}

func TestSelectorsAreIdempotent(t *testing.T) {
	state := fixtureState()

	assert.Equal(t, UsageCounts(state, "l1"), UsageCounts(state, "l1"))
	assert.Equal(t, StaffByLocation(state, "l1"), StaffByLocation(state, "l1"))
	assert.Equal(t, RostersByDate(state, "2026-10-19", "l1"), RostersByDate(state, "2026-10-19", "l1"))
}

func TestStaffDisplayName(t *testing.T) {
	state := fixtureState()

	assert.Equal(t, "Alex", StaffDisplayName(state, "s1"))
	assert.Equal(t, Unassigned, StaffDisplayName(state, "removed"))
	assert.Equal(t, Unassigned, StaffDisplayName(state, ""))
}

func TestFindArea(t *testing.T) {
	state := fixtureState()

	area, ok := FindArea(state, "l1", "A2")
	require.True(t, ok)
	assert.Equal(t, "Kitchen", area.Name)

	_, ok = FindArea(state, "l2", "A2")
	assert.False(t, ok)
	_, ok = FindArea(state, "missing", "A1")
	assert.False(t, ok)
}

func TestMonthGrid(t *testing.T) {
	days := MonthGrid(2026, time.October)

	require.Len(t, days, 35)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, "2026-09-28", days[0].Format(entity.DateLayout))
	assert.Equal(t, time.Sunday, days[len(days)-1].Weekday())
	assert.Equal(t, "2026-11-01", days[len(days)-1].Format(entity.DateLayout))
}

func TestShiftCountsByDay(t *testing.T) {
	state := fixtureState()

	counts := ShiftCountsByDay(state, 2026, time.October, "")
	assert.Equal(t, map[string]int{"2026-10-19": 2, "2026-10-20": 1}, counts)

	assert.Empty(t, ShiftCountsByDay(state, 2026, time.November, ""))
	assert.Equal(t, 0, ShiftCountsByDay(state, 2026, time.October, "l2")["2026-10-19"])
}

func TestTimelineRows(t *testing.T) {
	loc := fixtureState().Locations[0]

	rows := TimelineRows(loc)

	require.Len(t, rows, 3)
	assert.Equal(t, TimelineRow{AreaID: "A1", AreaName: "Bar", Section: "Front Bar"}, rows[0])
	assert.Equal(t, TimelineRow{AreaID: "A2", AreaName: "Kitchen", Section: "Pass"}, rows[2])
}

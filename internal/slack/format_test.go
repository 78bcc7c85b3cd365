package slack

import (
	"strings"
	"testing"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
	"github.com/stretchr/testify/assert"
)

func testState() (entity.AppState, entity.Location) {
	rate := 30.0
	loc := entity.Location{
		ID:   "l1",
		Name: "Golden Lion",
		Areas: []entity.Area{
			{ID: "A1", Name: "Bar", Sections: []string{"Front Bar"}},
			{ID: "A2", Name: "Kitchen"},
		},
	}
	state := entity.AppState{
		Locations:        []entity.Location{loc},
		ActiveLocationID: "l1",
		Staff: []entity.StaffRecord{
			{ID: "s1", Name: "Alex", Role: "Bartender", PayRate: &rate, Locations: []string{"l1"},
				Availability: []entity.AvailabilityDay{entity.Mon, entity.Fri}},
		},
		Rosters: []entity.Roster{{
			ID: "r1", DateISO: "2026-10-19", LocationID: "l1", Title: "Lunch",
			Shifts: []entity.Shift{
				{ID: "sh1", Role: "Bartender", AreaID: "A1", Section: "Front Bar", StaffID: "s1", Start: "12:00", End: "16:00"},
				{ID: "sh2", Role: "Bartender", AreaID: "A1", Section: "Front Bar", StaffID: "gone", Start: "10:00", End: "12:00"},
			},
		}},
	}
	return state, loc
}

func TestDayMessage(t *testing.T) {
	state, loc := testState()

	msg := DayMessage(state, loc, "2026-10-19")
	assert.Contains(t, msg, "*Roster for Golden Lion* (Monday 2026-10-19)")
	assert.Contains(t, msg, "*Lunch*")
	assert.Contains(t, msg, "• 12:00-16:00 Alex, Bartender (Bar / Front Bar)")
	assert.Contains(t, msg, "• 10:00-12:00 Unassigned, Bartender (Bar / Front Bar)")
	assert.Less(t, strings.Index(msg, "10:00-12:00"), strings.Index(msg, "12:00-16:00"), "shifts are listed by start time")
	assert.Contains(t, msg, "Totals: 6h, $120.00, 2 shift(s)")

	assert.Contains(t, DayMessage(state, loc, "2026-10-20"), "No shifts rostered today.")
}

func TestStatsMessage(t *testing.T) {
	state, loc := testState()

	msg := StatsMessage(state, loc, "2026-10-19")
	assert.Contains(t, msg, "• Lunch: 6h, $120.00, 2 shift(s)")
	assert.Contains(t, StatsMessage(state, loc, "2026-10-20"), "No rosters on this day.")
}

func TestLocationsMessage(t *testing.T) {
	state, _ := testState()
	msg := LocationsMessage(state.Locations, state.ActiveLocationID)
	assert.Contains(t, msg, "1. Golden Lion (active), 2 area(s)")
	assert.Equal(t, "No locations yet.", LocationsMessage(nil, ""))
}

func TestStaffMessage(t *testing.T) {
	state, loc := testState()
	assert.Contains(t, StaffMessage(loc, state.Staff), "1. Alex, Bartender [Mon Fri]")
	assert.Equal(t, "No staff linked to Golden Lion.", StaffMessage(loc, nil))
}

func TestUsageMessage(t *testing.T) {
	state, loc := testState()
	msg := UsageMessage(loc, selector.UsageCounts(state, "l1"))
	assert.Contains(t, msg, "• Bar: 2 shift(s)")
	assert.Contains(t, msg, "◦ Front Bar: 2")
	assert.Contains(t, msg, "• Kitchen: 0 shift(s)")
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Sunday 2026-10-25", WeekdayLabel("2026-10-25"))
	assert.Equal(t, "not-a-date", WeekdayLabel("not-a-date"))
	assert.Equal(t, "6.5", FormatHours(6.5))
}

package selector

import (
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// MonthGrid returns the days shown on a month calendar: whole weeks, Monday
// first, from the week holding the 1st to the week holding the last day.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -isoOffset(first.Weekday()))
	end := last.AddDate(0, 0, 6-isoOffset(last.Weekday()))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// isoOffset is the number of days since Monday.
func isoOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// ShiftCountsByDay counts shifts per dateISO in the given month, summed over
// every roster of that day. An empty locationID counts all locations.
func ShiftCountsByDay(state entity.AppState, year int, month time.Month, locationID string) map[string]int {
	counts := make(map[string]int)
	for _, r := range state.Rosters {
		if locationID != "" && r.LocationID != locationID {
			continue
		}
		d, err := time.Parse(entity.DateLayout, r.DateISO)
		if err != nil || d.Year() != year || d.Month() != month {
			continue
		}
		counts[r.DateISO] += len(r.Shifts)
	}
	return counts
}

// TimelineRow is one row of the day timeline: a single section of an area.
type TimelineRow struct {
	AreaID   string `json:"areaId"`
	AreaName string `json:"areaName"`
	Section  string `json:"section"`
}

// TimelineRows flattens the location's areas into one row per section.
func TimelineRows(loc entity.Location) []TimelineRow {
	var rows []TimelineRow
	for _, a := range loc.Areas {
		for _, s := range a.Sections {
			rows = append(rows, TimelineRow{AreaID: a.ID, AreaName: a.Name, Section: s})
		}
	}
	return rows
}

package selector

import (
	"fmt"
	"math"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// Stats are the derived totals of a roster.
type Stats struct {
	TotalHours  float64 `json:"totalHours"`
	TotalCost   float64 `json:"totalCost"`
	TotalShifts int     `json:"totalShifts"`
}

// ParseMinutes converts a zero padded "HH:mm" into minutes after midnight.
// Anything else is rejected so that valid times also order correctly as
// strings.
func ParseMinutes(hhmm string) (int, error) {
	if len(hhmm) != len(entity.TimeLayout) {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", hhmm)
	}
	t, err := time.Parse(entity.TimeLayout, hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ShiftHours returns the shift length in hours. Malformed or inverted times
// count as zero.
func ShiftHours(s entity.Shift) float64 {
	start, err := ParseMinutes(s.Start)
	if err != nil {
		return 0
	}
	end, err := ParseMinutes(s.End)
	if err != nil {
		return 0
	}
	return math.Max(0, float64(end-start)/60)
}

// RosterStats sums hours and cost over the roster's shifts. Cost uses the
// assigned staff member's pay rate, zero when the staff member is unknown or
// has no rate. Totals are rounded to two decimals once, at the end.
func RosterStats(roster entity.Roster, staff []entity.StaffRecord) Stats {
	var hours, cost float64
	for _, s := range roster.Shifts {
		d := ShiftHours(s)
		hours += d
		if rec, ok := findStaff(staff, s.StaffID); ok {
			cost += d * rec.Rate()
		}
	}
	return Stats{
		TotalHours:  Round2(hours),
		TotalCost:   Round2(cost),
		TotalShifts: len(roster.Shifts),
	}
}

// ShiftCost is the cost of one shift at the assigned staff member's rate,
// not rounded.
func ShiftCost(s entity.Shift, staff []entity.StaffRecord) float64 {
	rec, ok := findStaff(staff, s.StaffID)
	if !ok {
		return 0
	}
	return ShiftHours(s) * rec.Rate()
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package selector holds pure read-only queries over entity.AppState.
//
// Selectors never fail: missing ids and dangling references resolve to an
// empty result or a false "found" flag.
package selector

import (
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// Unassigned is shown in place of a staff name that cannot be resolved.
const Unassigned = "Unassigned"

// ActiveLocation returns the location matching state.ActiveLocationID.
func ActiveLocation(state entity.AppState) (entity.Location, bool) {
	if state.ActiveLocationID == "" {
		return entity.Location{}, false
	}
	return FindLocation(state, state.ActiveLocationID)
}

// FindLocation looks a location up by id.
func FindLocation(state entity.AppState, id string) (entity.Location, bool) {
	for _, l := range state.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Location{}, false
}

// FindStaff looks a staff record up by id.
func FindStaff(state entity.AppState, id string) (entity.StaffRecord, bool) {
	return findStaff(state.Staff, id)
}

func findStaff(staff []entity.StaffRecord, id string) (entity.StaffRecord, bool) {
	if id == "" {
		return entity.StaffRecord{}, false
	}
	for _, s := range staff {
		if s.ID == id {
			return s, true
		}
	}
	return entity.StaffRecord{}, false
}

// FindRoster looks a roster up by id.
func FindRoster(state entity.AppState, id string) (entity.Roster, bool) {
	for _, r := range state.Rosters {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Roster{}, false
}

// FindArea resolves an area id within a location.
func FindArea(state entity.AppState, locationID, areaID string) (entity.Area, bool) {
	loc, ok := FindLocation(state, locationID)
	if !ok {
		return entity.Area{}, false
	}
	return loc.FindArea(areaID)
}

// StaffDisplayName returns the staff member's name or Unassigned.
func StaffDisplayName(state entity.AppState, staffID string) string {
	if s, ok := FindStaff(state, staffID); ok {
		return s.Name
	}
	return Unassigned
}

// StaffByLocation returns the staff linked to locationID. An empty id
// yields an empty list.
func StaffByLocation(state entity.AppState, locationID string) []entity.StaffRecord {
	out := []entity.StaffRecord{}
	if locationID == "" {
		return out
	}
	for _, s := range state.Staff {
		if s.WorksAt(locationID) {
			out = append(out, s)
		}
	}
	return out
}

// RostersByDate returns the rosters on dateISO, restricted to locationID
// when it is not empty.
func RostersByDate(state entity.AppState, dateISO, locationID string) []entity.Roster {
	out := []entity.Roster{}
	for _, r := range state.Rosters {
		if r.DateISO != dateISO {
			continue
		}
		if locationID != "" && r.LocationID != locationID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AreaUsageCounts counts, per area id, the shifts referencing it across all
// rosters of the location.
func AreaUsageCounts(state entity.AppState, locationID string) map[string]int {
	counts := make(map[string]int)
	for _, r := range state.Rosters {
		if r.LocationID != locationID {
			continue
		}
		for _, s := range r.Shifts {
			if s.AreaID == "" {
				continue
			}
			counts[s.AreaID]++
		}
	}
	return counts
}

// SectionUsageCounts counts shifts per area id and section name across all
// rosters of the location.
func SectionUsageCounts(state entity.AppState, locationID string) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, r := range state.Rosters {
		if r.LocationID != locationID {
			continue
		}
		for _, s := range r.Shifts {
			if s.AreaID == "" {
				continue
			}
			inner, ok := counts[s.AreaID]
			if !ok {
				inner = make(map[string]int)
				counts[s.AreaID] = inner
			}
			inner[s.Section]++
		}
	}
	return counts
}

// Usage bundles the area and section counts of one location.
type Usage struct {
	Areas    map[string]int            `json:"areas"`
	Sections map[string]map[string]int `json:"sections"`
}

// AreaCount returns the number of shifts using the area.
func (u Usage) AreaCount(areaID string) int {
	return u.Areas[areaID]
}

// SectionCount returns the number of shifts using the section of the area.
func (u Usage) SectionCount(areaID, section string) int {
	return u.Sections[areaID][section]
}

// Total returns the number of shifts referencing any area of the location.
func (u Usage) Total() int {
	var n int
	for _, c := range u.Areas {
		n += c
	}
	return n
}

// UsageCounts computes both usage maps for the location.
func UsageCounts(state entity.AppState, locationID string) Usage {
	return Usage{
		Areas:    AreaUsageCounts(state, locationID),
		Sections: SectionUsageCounts(state, locationID),
	}
}

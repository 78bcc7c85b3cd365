package store

import (
	"slices"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/ident"
)

// Reduce applies action to state and returns the next state. The input state
// is never modified; every changed collection is copied. The boolean is false
// when the action had no effect (unknown id, empty input, unknown action) and
// the returned state is then the input unchanged.
func Reduce(state entity.AppState, action Action, gen ident.Generator) (entity.AppState, bool) {
	switch a := action.(type) {
	case AddLocations:
		return addLocations(state, a, gen)
	case SetActiveLocation:
		if state.ActiveLocationID == a.ID {
			return state, false
		}
		state.ActiveLocationID = a.ID
		return state, true
	case UpdateLocation:
		return updateLocation(state, a)
	case RemoveLocation:
		locations, ok := removeByID(state.Locations, a.ID, func(l entity.Location) string { return l.ID })
		if !ok {
			return state, false
		}
		state.Locations = locations
		return state, true
	case AddStaff:
		state.Staff = append(slices.Clone(state.Staff), a.Staff.Record(gen()))
		return state, true
	case UpdateStaff:
		return updateStaff(state, a)
	case RemoveStaff:
		staff, ok := removeByID(state.Staff, a.ID, func(s entity.StaffRecord) string { return s.ID })
		if !ok {
			return state, false
		}
		state.Staff = staff
		return state, true
	case AddRoster:
		state.Rosters = append(slices.Clone(state.Rosters), a.Roster.Roster(gen()))
		return state, true
	case UpdateRoster:
		idx := slices.IndexFunc(state.Rosters, func(r entity.Roster) bool { return r.ID == a.Roster.ID })
		if idx < 0 {
			return state, false
		}
		rosters := slices.Clone(state.Rosters)
		rosters[idx] = a.Roster.Clone()
		state.Rosters = rosters
		return state, true
	case RemoveRoster:
		rosters, ok := removeByID(state.Rosters, a.ID, func(r entity.Roster) string { return r.ID })
		if !ok {
			return state, false
		}
		state.Rosters = rosters
		return state, true
	default:
		return state, false
	}
}

func addLocations(state entity.AppState, a AddLocations, gen ident.Generator) (entity.AppState, bool) {
	if len(a.Locations) == 0 {
		return state, false
	}

	created := make([]entity.Location, 0, len(a.Locations))
	for _, in := range a.Locations {
		loc := entity.Location{
			ID:      gen(),
			Name:    in.Name,
			Address: in.Address,
			Areas:   make([]entity.Area, 0, len(in.Areas)),
		}
		for _, area := range in.Areas {
			loc.Areas = append(loc.Areas, entity.Area{
				ID:       gen(),
				Name:     area.Name,
				Sections: slices.Clone(area.Sections),
			})
		}
		created = append(created, loc)
	}

	state.Locations = append(slices.Clone(state.Locations), created...)
	if state.ActiveLocationID == "" {
		state.ActiveLocationID = created[0].ID
	}
	return state, true
}

func updateLocation(state entity.AppState, a UpdateLocation) (entity.AppState, bool) {
	idx := slices.IndexFunc(state.Locations, func(l entity.Location) bool { return l.ID == a.ID })
	if idx < 0 {
		return state, false
	}

	loc := state.Locations[idx].Clone()
	if a.Patch.Name != nil {
		loc.Name = *a.Patch.Name
	}
	if a.Patch.Address != nil {
		loc.Address = *a.Patch.Address
	}
	if a.Patch.Areas != nil {
		loc.Areas = entity.Location{Areas: *a.Patch.Areas}.Clone().Areas
	}

	locations := slices.Clone(state.Locations)
	locations[idx] = loc
	state.Locations = locations
	return state, true
}

func updateStaff(state entity.AppState, a UpdateStaff) (entity.AppState, bool) {
	idx := slices.IndexFunc(state.Staff, func(s entity.StaffRecord) bool { return s.ID == a.ID })
	if idx < 0 {
		return state, false
	}

	rec := state.Staff[idx].Clone()
	p := a.Patch
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Role != nil {
		rec.Role = *p.Role
	}
	if p.Email != nil {
		rec.Email = *p.Email
	}
	if p.Phone != nil {
		rec.Phone = *p.Phone
	}
	if p.PayRate != nil {
		rate := *p.PayRate
		rec.PayRate = &rate
	}
	if p.Availability != nil {
		rec.Availability = slices.Clone(*p.Availability)
	}
	if p.Locations != nil {
		rec.Locations = slices.Clone(*p.Locations)
	}

	staff := slices.Clone(state.Staff)
	staff[idx] = rec
	state.Staff = staff
	return state, true
}

func removeByID[T any](items []T, id string, key func(T) string) ([]T, bool) {
	idx := slices.IndexFunc(items, func(item T) bool { return key(item) == id })
	if idx < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...), true
}

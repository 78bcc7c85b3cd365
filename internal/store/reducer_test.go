package store

import (
	"testing"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestReduce_AddLocations(t *testing.T) {
	inputs := []entity.NewLocationInput{
		{Name: "Golden Lion", Address: "1 Main St", Areas: []entity.NewAreaInput{
			{Name: "Bar", Sections: []string{"Front Bar", "Beer Garden"}},
			{Name: "Kitchen", Sections: []string{"Pass"}},
		}},
		{Name: "Red Cow", Address: "2 High St"},
	}

	t.Run("should assign unique ids and set active location when unset", func(t *testing.T) {
		next, changed := Reduce(entity.AppState{}, AddLocations{Locations: inputs}, ident.Sequence("id"))

		require.True(t, changed)
		require.Len(t, next.Locations, 2)

		ids := map[string]bool{}
		for _, loc := range next.Locations {
			require.False(t, ids[loc.ID])
			ids[loc.ID] = true
			for _, area := range loc.Areas {
				require.False(t, ids[area.ID])
				ids[area.ID] = true
			}
		}
		assert.Len(t, ids, 4)
		assert.Equal(t, next.Locations[0].ID, next.ActiveLocationID)
		assert.Equal(t, []string{"Front Bar", "Beer Garden"}, next.Locations[0].Areas[0].Sections)
		assert.Empty(t, next.Locations[1].Areas)
	})

	t.Run("should keep active location when already set", func(t *testing.T) {
		state := entity.AppState{ActiveLocationID: "existing"}

		next, changed := Reduce(state, AddLocations{Locations: inputs}, ident.Sequence("id"))

		require.True(t, changed)
		assert.Equal(t, "existing", next.ActiveLocationID)
	})

	t.Run("should append after existing locations", func(t *testing.T) {
		state, _ := Reduce(entity.AppState{}, AddLocations{Locations: inputs[:1]}, ident.Sequence("a"))

		next, _ := Reduce(state, AddLocations{Locations: inputs[1:]}, ident.Sequence("b"))

		require.Len(t, next.Locations, 2)
		assert.Equal(t, "Golden Lion", next.Locations[0].Name)
		assert.Equal(t, "Red Cow", next.Locations[1].Name)
		assert.Equal(t, state.Locations[0].ID, next.ActiveLocationID)
		assert.Len(t, state.Locations, 1, "input state must not change")
	})

	t.Run("should ignore empty input", func(t *testing.T) {
		_, changed := Reduce(entity.AppState{}, AddLocations{}, ident.Sequence("id"))
		assert.False(t, changed)
	})
}

func TestReduce_SetActiveLocation(t *testing.T) {
	next, changed := Reduce(entity.AppState{ActiveLocationID: "a"}, SetActiveLocation{ID: "does-not-exist"}, nil)
	require.True(t, changed)
	assert.Equal(t, "does-not-exist", next.ActiveLocationID)

	next, changed = Reduce(next, SetActiveLocation{}, nil)
	require.True(t, changed)
	assert.Empty(t, next.ActiveLocationID)
}

func TestReduce_UpdateLocation(t *testing.T) {
	state := entity.AppState{Locations: []entity.Location{{
		ID: "l1", Name: "Golden Lion", Address: "1 Main St",
		Areas: []entity.Area{{ID: "a1", Name: "Bar", Sections: []string{"Front Bar"}}},
	}}}

	t.Run("should merge name only", func(t *testing.T) {
		next, changed := Reduce(state, UpdateLocation{ID: "l1", Patch: entity.LocationPatch{Name: ptr("The Lion")}}, nil)

		require.True(t, changed)
		assert.Equal(t, "The Lion", next.Locations[0].Name)
		assert.Equal(t, "1 Main St", next.Locations[0].Address)
		assert.Equal(t, state.Locations[0].Areas, next.Locations[0].Areas)
		assert.Equal(t, "Golden Lion", state.Locations[0].Name)
	})

	t.Run("should replace areas wholesale", func(t *testing.T) {
		areas := []entity.Area{{ID: "a2", Name: "Kitchen", Sections: []string{"Pass"}}}

		next, changed := Reduce(state, UpdateLocation{ID: "l1", Patch: entity.LocationPatch{Areas: &areas}}, nil)

		require.True(t, changed)
		assert.Equal(t, areas, next.Locations[0].Areas)
	})

	t.Run("should ignore unknown id", func(t *testing.T) {
		next, changed := Reduce(state, UpdateLocation{ID: "nope", Patch: entity.LocationPatch{Name: ptr("x")}}, nil)

		assert.False(t, changed)
		assert.Equal(t, state, next)
	})
}

func TestReduce_RemoveLocation(t *testing.T) {
	state := entity.AppState{
		Locations: []entity.Location{{ID: "l1"}, {ID: "l2"}},
		Staff:     []entity.StaffRecord{{ID: "s1", Locations: []string{"l1"}}},
		Rosters:   []entity.Roster{{ID: "r1", LocationID: "l1"}},
	}

	next, changed := Reduce(state, RemoveLocation{ID: "l1"}, nil)

	require.True(t, changed)
	require.Len(t, next.Locations, 1)
	assert.Equal(t, "l2", next.Locations[0].ID)
	assert.Equal(t, state.Rosters, next.Rosters, "rosters are not cascaded")
	assert.Equal(t, []string{"l1"}, next.Staff[0].Locations, "staff links are not cascaded")

	_, changed = Reduce(next, RemoveLocation{ID: "l1"}, nil)
	assert.False(t, changed)
}

func TestReduce_Staff(t *testing.T) {
	state, changed := Reduce(entity.AppState{}, AddStaff{Staff: entity.NewStaffInput{
		Name: "Alex", Role: "Bartender", PayRate: ptr(30.0), Locations: []string{"l1"},
	}}, ident.Sequence("s"))
	require.True(t, changed)
	require.Len(t, state.Staff, 1)
	assert.Equal(t, "s-1", state.Staff[0].ID)

	t.Run("should patch only provided fields", func(t *testing.T) {
		days := []entity.AvailabilityDay{entity.Mon, entity.Fri}
		next, changed := Reduce(state, UpdateStaff{ID: "s-1", Patch: entity.StaffPatch{
			Role: ptr("Manager"), PayRate: ptr(42.5), Availability: &days,
		}}, nil)

		require.True(t, changed)
		got := next.Staff[0]
		assert.Equal(t, "Alex", got.Name)
		assert.Equal(t, "Manager", got.Role)
		assert.Equal(t, 42.5, got.Rate())
		assert.Equal(t, days, got.Availability)
		assert.Equal(t, 30.0, state.Staff[0].Rate())
	})

	t.Run("should ignore unknown ids", func(t *testing.T) {
		_, changed := Reduce(state, UpdateStaff{ID: "nope", Patch: entity.StaffPatch{Name: ptr("x")}}, nil)
		assert.False(t, changed)
		_, changed = Reduce(state, RemoveStaff{ID: "nope"}, nil)
		assert.False(t, changed)
	})

	t.Run("should remove staff without touching shifts", func(t *testing.T) {
		withRoster := state
		withRoster.Rosters = []entity.Roster{{ID: "r1", Shifts: []entity.Shift{{ID: "sh1", StaffID: "s-1"}}}}

		next, changed := Reduce(withRoster, RemoveStaff{ID: "s-1"}, nil)

		require.True(t, changed)
		assert.Empty(t, next.Staff)
		assert.Equal(t, "s-1", next.Rosters[0].Shifts[0].StaffID)
	})
}

func TestReduce_Rosters(t *testing.T) {
	in := entity.NewRosterInput{
		DateISO: "2026-10-19", LocationID: "l1", Title: "Lunch",
		Shifts: []entity.Shift{{ID: "sh1", AreaID: "a1", Section: "Front Bar", Start: "09:00", End: "12:00"}},
	}

	state, changed := Reduce(entity.AppState{}, AddRoster{Roster: in}, ident.Sequence("r"))
	require.True(t, changed)
	require.Len(t, state.Rosters, 1)
	assert.Equal(t, "r-1", state.Rosters[0].ID)

	t.Run("should replace the full roster", func(t *testing.T) {
		updated := state.Rosters[0].Clone()
		updated.Title = "Dinner"
		updated.Shifts = append(updated.Shifts, entity.Shift{ID: "sh2", Start: "13:00", End: "17:00"})

		next, changed := Reduce(state, UpdateRoster{Roster: updated}, nil)

		require.True(t, changed)
		assert.Equal(t, updated, next.Rosters[0])
		assert.Len(t, state.Rosters[0].Shifts, 1)
	})

	t.Run("should ignore unknown roster", func(t *testing.T) {
		_, changed := Reduce(state, UpdateRoster{Roster: entity.Roster{ID: "nope"}}, nil)
		assert.False(t, changed)
	})

	t.Run("should remove roster", func(t *testing.T) {
		next, changed := Reduce(state, RemoveRoster{ID: "r-1"}, nil)
		require.True(t, changed)
		assert.Empty(t, next.Rosters)
	})
}

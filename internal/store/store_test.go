package store

import (
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	clock := func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	return New(WithIDGenerator(ident.Sequence("id")), WithClock(clock))
}

func TestStore_DispatchAndSubscribe(t *testing.T) {
	s := newTestStore()

	var events []Event
	unsubscribe := s.Subscribe(func(ev Event) { events = append(events, ev) })

	s.Dispatch(AddLocations{Locations: []entity.NewLocationInput{{Name: "Golden Lion", Address: "1 Main St"}}})
	s.Dispatch(RemoveStaff{ID: "missing"})
	s.Dispatch(SetActiveLocation{})

	require.Len(t, events, 2, "no-op dispatches emit no event")
	assert.Equal(t, ActionAddLocations, events[0].Action)
	assert.Equal(t, uint64(1), events[0].Revision)
	assert.Equal(t, ActionSetActiveLocation, events[1].Action)
	assert.Equal(t, uint64(2), events[1].Revision)
	assert.Equal(t, uint64(2), s.GetState().Revision)

	unsubscribe()
	s.Dispatch(SetActiveLocation{ID: "id-1"})
	assert.Len(t, events, 2)
}

func TestStore_GetStateIsACopy(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddLocations{Locations: []entity.NewLocationInput{{
		Name: "Golden Lion", Address: "1 Main St",
		Areas: []entity.NewAreaInput{{Name: "Bar", Sections: []string{"Front Bar"}}},
	}}})

	state := s.GetState()
	state.Locations[0].Name = "changed"
	state.Locations[0].Areas[0].Sections[0] = "changed"

	fresh := s.GetState()
	assert.Equal(t, "Golden Lion", fresh.Locations[0].Name)
	assert.Equal(t, "Front Bar", fresh.Locations[0].Areas[0].Sections[0])
}

func TestStore_IsolatedInstances(t *testing.T) {
	a := newTestStore()
	b := newTestStore()

	a.Dispatch(AddStaff{Staff: entity.NewStaffInput{Name: "Alex", Role: "Bartender"}})

	assert.Len(t, a.GetState().Staff, 1)
	assert.Empty(t, b.GetState().Staff)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(AddStaff{Staff: entity.NewStaffInput{Name: "Alex", Role: "Bartender"}})
		}()
	}
	wg.Wait()

	state := s.GetState()
	assert.Len(t, state.Staff, 50)
	assert.Equal(t, uint64(50), state.Revision)
}

func TestStore_WithInitialState(t *testing.T) {
	initial := entity.AppState{Locations: []entity.Location{{ID: "l1", Name: "Golden Lion"}}, Revision: 7}

	s := New(WithInitialState(initial))
	s.Dispatch(SetActiveLocation{ID: "l1"})

	state := s.GetState()
	assert.Equal(t, uint64(8), state.Revision)
	assert.Equal(t, "l1", state.ActiveLocationID)
}

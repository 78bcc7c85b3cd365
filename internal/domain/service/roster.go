package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
	"github.com/diegoclair/shift-roster/internal/store"
	"github.com/diegoclair/shift-roster/internal/validation"
)

// GetRostersByDate returns the rosters on a day, for one location or all of
// them when locationID is empty.
func (s *rosterService) GetRostersByDate(ctx context.Context, dateISO, locationID string) []entity.Roster {
	return slices.Clone(s.memo.RostersByDate(s.store.GetState(), dateISO, locationID))
}

func (s *rosterService) GetRoster(ctx context.Context, id string) (entity.Roster, error) {
	r, ok := selector.FindRoster(s.store.GetState(), id)
	if !ok {
		return entity.Roster{}, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, id)
	}
	return r, nil
}

func (s *rosterService) CreateRoster(ctx context.Context, in entity.NewRosterInput) (entity.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.DateISO = strings.TrimSpace(in.DateISO)
	in.Title = strings.TrimSpace(in.Title)
	in.Shifts = s.freshShiftIDs(in.Shifts)

	state := s.store.GetState()
	loc, _ := selector.FindLocation(state, in.LocationID)
	if res := validation.Roster(in.Roster(""), loc, state.Staff, s.policy); !res.Valid() {
		return entity.Roster{}, s.reject("createRoster", res)
	}

	s.store.Dispatch(store.AddRoster{Roster: in})

	rosters := s.store.GetState().Rosters
	return rosters[len(rosters)-1], nil
}

// UpdateRoster replaces a roster wholesale. Shifts without an id are new.
func (s *rosterService) UpdateRoster(ctx context.Context, r entity.Roster) (entity.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.GetState()
	previous, ok := selector.FindRoster(state, r.ID)
	if !ok {
		return entity.Roster{}, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, r.ID)
	}

	r = r.Clone()
	r.DateISO = strings.TrimSpace(r.DateISO)
	r.Title = strings.TrimSpace(r.Title)
	r.Shifts = s.withShiftIDs(r.Shifts)

	loc, _ := selector.FindLocation(state, r.LocationID)
	if res := validation.RosterUpdate(r, previous, loc, state.Staff, s.policy); !res.Valid() {
		return entity.Roster{}, s.reject("updateRoster", res)
	}

	s.store.Dispatch(store.UpdateRoster{Roster: r})
	return r, nil
}

func (s *rosterService) DeleteRoster(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := selector.FindRoster(s.store.GetState(), id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrRosterNotFound, id)
	}
	s.store.Dispatch(store.RemoveRoster{ID: id})
	return nil
}

func (s *rosterService) AddShift(ctx context.Context, rosterID string, in entity.ShiftInput) (entity.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.GetState()
	r, ok := selector.FindRoster(state, rosterID)
	if !ok {
		return entity.Shift{}, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, rosterID)
	}

	loc, _ := selector.FindLocation(state, r.LocationID)
	if res := validation.ShiftInput(in, loc, state.Staff); !res.Valid() {
		return entity.Shift{}, s.reject("addShift", res)
	}

	shift := in.Shift(s.gen())
	r.Shifts = append(r.Shifts, shift)
	s.store.Dispatch(store.UpdateRoster{Roster: r})
	return shift, nil
}

func (s *rosterService) UpdateShift(ctx context.Context, rosterID, shiftID string, in entity.ShiftInput) (entity.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.GetState()
	r, ok := selector.FindRoster(state, rosterID)
	if !ok {
		return entity.Shift{}, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, rosterID)
	}
	idx := r.FindShift(shiftID)
	if idx < 0 {
		return entity.Shift{}, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, shiftID)
	}

	loc, _ := selector.FindLocation(state, r.LocationID)
	if res := validation.ShiftInput(in, loc, state.Staff); !res.Valid() {
		return entity.Shift{}, s.reject("updateShift", res)
	}

	shift := in.Shift(shiftID)
	r.Shifts[idx] = shift
	s.store.Dispatch(store.UpdateRoster{Roster: r})
	return shift, nil
}

func (s *rosterService) RemoveShift(ctx context.Context, rosterID, shiftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := selector.FindRoster(s.store.GetState(), rosterID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrRosterNotFound, rosterID)
	}
	idx := r.FindShift(shiftID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrShiftNotFound, shiftID)
	}

	if res := validation.ShiftRemoval(r, s.policy); !res.Valid() {
		return s.reject("removeShift", res)
	}

	r.Shifts = slices.Delete(r.Shifts, idx, idx+1)
	s.store.Dispatch(store.UpdateRoster{Roster: r})
	return nil
}

func (s *rosterService) GetRosterStats(ctx context.Context, rosterID string) (selector.Stats, error) {
	state := s.store.GetState()
	r, ok := selector.FindRoster(state, rosterID)
	if !ok {
		return selector.Stats{}, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, rosterID)
	}
	return selector.RosterStats(r, state.Staff), nil
}

// GetCalendar returns the Monday-first month grid with the number of shifts
// on each day. An empty locationID uses the active location.
func (s *rosterService) GetCalendar(ctx context.Context, year int, month time.Month, locationID string) ([]entity.CalendarDay, error) {
	state := s.store.GetState()
	if locationID == "" {
		locationID = state.ActiveLocationID
	}
	if _, ok := selector.FindLocation(state, locationID); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, locationID)
	}

	counts := selector.ShiftCountsByDay(state, year, month, locationID)
	grid := selector.MonthGrid(year, month)
	days := make([]entity.CalendarDay, len(grid))
	for i, d := range grid {
		date := d.Format(entity.DateLayout)
		days[i] = entity.CalendarDay{
			DateISO:    date,
			InMonth:    d.Month() == month,
			ShiftCount: counts[date],
		}
	}
	return days, nil
}

// freshShiftIDs gives every shift of a new roster its own id, replacing any
// the caller sent.
func (s *rosterService) freshShiftIDs(shifts []entity.Shift) []entity.Shift {
	out := slices.Clone(shifts)
	for i := range out {
		out[i].ID = s.gen()
	}
	return out
}

func (s *rosterService) withShiftIDs(shifts []entity.Shift) []entity.Shift {
	out := slices.Clone(shifts)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = s.gen()
		}
	}
	return out
}

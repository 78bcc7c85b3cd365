package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
	"github.com/diegoclair/shift-roster/internal/store"
	"github.com/diegoclair/shift-roster/internal/validation"
)

// ListStaff returns the staff of a location, or everyone when locationID is
// empty.
func (s *rosterService) ListStaff(ctx context.Context, locationID string) []entity.StaffRecord {
	state := s.store.GetState()
	if locationID == "" {
		return state.Staff
	}
	return slices.Clone(s.memo.StaffByLocation(state, locationID))
}

func (s *rosterService) GetStaff(ctx context.Context, id string) (entity.StaffRecord, error) {
	rec, ok := selector.FindStaff(s.store.GetState(), id)
	if !ok {
		return entity.StaffRecord{}, fmt.Errorf("%w: %s", domain.ErrStaffNotFound, id)
	}
	return rec, nil
}

func (s *rosterService) CreateStaff(ctx context.Context, in entity.NewStaffInput) (entity.StaffRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	state := s.store.GetState()
	res := validation.Staff(in)
	res.Merge(validation.StaffLocations(in.Locations, state.Locations))
	if !res.Valid() {
		return entity.StaffRecord{}, s.reject("createStaff", res)
	}

	s.store.Dispatch(store.AddStaff{Staff: in})

	staff := s.store.GetState().Staff
	return staff[len(staff)-1], nil
}

func (s *rosterService) UpdateStaff(ctx context.Context, id string, patch entity.StaffPatch) (entity.StaffRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.GetState()
	if _, ok := selector.FindStaff(state, id); !ok {
		return entity.StaffRecord{}, fmt.Errorf("%w: %s", domain.ErrStaffNotFound, id)
	}

	patch.Name = trimmed(patch.Name)
	patch.Role = trimmed(patch.Role)
	patch.Email = trimmed(patch.Email)
	patch.Phone = trimmed(patch.Phone)

	res := validation.StaffPatch(patch)
	if patch.Locations != nil {
		res.Merge(validation.StaffLocations(*patch.Locations, state.Locations))
	}
	if !res.Valid() {
		return entity.StaffRecord{}, s.reject("updateStaff", res)
	}

	s.store.Dispatch(store.UpdateStaff{ID: id, Patch: patch})

	rec, _ := selector.FindStaff(s.store.GetState(), id)
	return rec, nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

// DeleteStaff removes a staff member. Shifts assigned to them keep the
// dangling id and show as unassigned.
func (s *rosterService) DeleteStaff(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := selector.FindStaff(s.store.GetState(), id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrStaffNotFound, id)
	}
	s.store.Dispatch(store.RemoveStaff{ID: id})
	return nil
}

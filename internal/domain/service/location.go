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

func (s *rosterService) ListLocations(ctx context.Context) []entity.Location {
	return s.store.GetState().Locations
}

func (s *rosterService) GetLocation(ctx context.Context, id string) (entity.Location, error) {
	loc, ok := selector.FindLocation(s.store.GetState(), id)
	if !ok {
		return entity.Location{}, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, id)
	}
	return loc, nil
}

// FindLocationByName matches a location by trimmed, case-insensitive name.
func (s *rosterService) FindLocationByName(ctx context.Context, name string) (entity.Location, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, loc := range s.store.GetState().Locations {
		if strings.ToLower(strings.TrimSpace(loc.Name)) == want {
			return loc, nil
		}
	}
	return entity.Location{}, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, name)
}

func (s *rosterService) ActiveLocation(ctx context.Context) (entity.Location, error) {
	loc, ok := selector.ActiveLocation(s.store.GetState())
	if !ok {
		return entity.Location{}, domain.ErrNoActiveLocation
	}
	return loc, nil
}

// CreateLocations adds locations in one batch. The first batch goes through
// the onboarding rules, which also require every location to have an area.
func (s *rosterService) CreateLocations(ctx context.Context, inputs []entity.NewLocationInput) ([]entity.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputs = cleanLocationInputs(inputs)
	state := s.store.GetState()

	var res validation.Result
	if len(state.Locations) == 0 {
		res = validation.Onboarding(inputs)
	} else {
		if len(inputs) == 0 {
			res.Add("locations", validation.CodeRequired, "at least one location is required")
		}
		for i, in := range inputs {
			res.Merge(validation.NewLocation(fmt.Sprintf("locations[%d]", i), in))
		}
	}
	if !res.Valid() {
		return nil, s.reject("createLocations", res)
	}

	s.store.Dispatch(store.AddLocations{Locations: inputs})
	s.notifyDigest()

	locations := s.store.GetState().Locations
	return slices.Clone(locations[len(locations)-len(inputs):]), nil
}

// UpdateLocation applies a full edit. It is rejected as a whole when any
// area or section rule fails, including removal of areas and sections that
// shifts still use.
func (s *rosterService) UpdateLocation(ctx context.Context, id string, edit entity.LocationEdit) (entity.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.GetState()
	current, ok := selector.FindLocation(state, id)
	if !ok {
		return entity.Location{}, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, id)
	}

	edit = cleanLocationEdit(edit)
	usage := s.memo.UsageCounts(state, id)
	if res := validation.LocationEdit(current, edit, usage); !res.Valid() {
		return entity.Location{}, s.reject("updateLocation", res)
	}

	areas := make([]entity.Area, 0, len(edit.Areas))
	for _, a := range edit.Areas {
		areaID := a.ID
		if areaID == "" {
			areaID = s.gen()
		}
		areas = append(areas, entity.Area{ID: areaID, Name: a.Name, Sections: a.Sections})
	}

	s.store.Dispatch(store.UpdateLocation{
		ID: id,
		Patch: entity.LocationPatch{
			Name:    &edit.Name,
			Address: &edit.Address,
			Areas:   &areas,
		},
	})

	loc, _ := selector.FindLocation(s.store.GetState(), id)
	return loc, nil
}

// DeleteLocation removes a location that no shift uses. When it was the
// active location, the first remaining location becomes active.
func (s *rosterService) DeleteLocation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.GetState()
	loc, ok := selector.FindLocation(state, id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrLocationNotFound, id)
	}

	if res := validation.LocationRemoval(loc, s.memo.UsageCounts(state, id)); !res.Valid() {
		return s.reject("deleteLocation", res)
	}

	s.store.Dispatch(store.RemoveLocation{ID: id})

	if state.ActiveLocationID == id {
		next := ""
		if remaining := s.store.GetState().Locations; len(remaining) > 0 {
			next = remaining[0].ID
		}
		s.store.Dispatch(store.SetActiveLocation{ID: next})
	}
	s.notifyDigest()
	return nil
}

// SetActiveLocation selects the location the Slack commands and calendar
// default to. An empty id clears the selection.
func (s *rosterService) SetActiveLocation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.store.Dispatch(store.SetActiveLocation{})
		return nil
	}
	if _, ok := selector.FindLocation(s.store.GetState(), id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrLocationNotFound, id)
	}
	s.store.Dispatch(store.SetActiveLocation{ID: id})
	return nil
}

func (s *rosterService) GetUsageCounts(ctx context.Context, locationID string) (selector.Usage, error) {
	state := s.store.GetState()
	if _, ok := selector.FindLocation(state, locationID); !ok {
		return selector.Usage{}, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, locationID)
	}
	return s.memo.UsageCounts(state, locationID), nil
}

func cleanLocationInputs(inputs []entity.NewLocationInput) []entity.NewLocationInput {
	out := make([]entity.NewLocationInput, len(inputs))
	for i, in := range inputs {
		areas := make([]entity.NewAreaInput, len(in.Areas))
		for j, a := range in.Areas {
			areas[j] = entity.NewAreaInput{Name: strings.TrimSpace(a.Name), Sections: trimAll(a.Sections)}
		}
		out[i] = entity.NewLocationInput{
			Name:    strings.TrimSpace(in.Name),
			Address: strings.TrimSpace(in.Address),
			Areas:   areas,
		}
	}
	return out
}

func cleanLocationEdit(edit entity.LocationEdit) entity.LocationEdit {
	areas := make([]entity.AreaEdit, len(edit.Areas))
	for i, a := range edit.Areas {
		areas[i] = entity.AreaEdit{ID: a.ID, Name: strings.TrimSpace(a.Name), Sections: trimAll(a.Sections)}
	}
	return entity.LocationEdit{
		Name:    strings.TrimSpace(edit.Name),
		Address: strings.TrimSpace(edit.Address),
		Areas:   areas,
	}
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// Package seed loads an onboarding file describing locations, staff and
// rosters, and applies it through the roster service.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// ErrUnknownReference is returned when a name in the file does not match
// anything created before it.
var ErrUnknownReference = errors.New("seed: unknown reference")

// File is the document root. References between sections are by name.
type File struct {
	Locations []entity.NewLocationInput `yaml:"locations"`
	Staff     []Staff                   `yaml:"staff"`
	Rosters   []Roster                  `yaml:"rosters"`
	Active    string                    `yaml:"active"`
}

type Staff struct {
	Name         string                   `yaml:"name"`
	Role         string                   `yaml:"role"`
	Email        string                   `yaml:"email"`
	Phone        string                   `yaml:"phone"`
	PayRate      *float64                 `yaml:"payRate"`
	Availability []entity.AvailabilityDay `yaml:"availability"`
	Locations    []string                 `yaml:"locations"`
}

type Roster struct {
	Location    string  `yaml:"location"`
	Date        string  `yaml:"date"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Shifts      []Shift `yaml:"shifts"`
}

type Shift struct {
	Role    string `yaml:"role"`
	Area    string `yaml:"area"`
	Section string `yaml:"section"`
	Staff   string `yaml:"staff"`
	Notes   string `yaml:"notes"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
}

// Summary counts what Apply created.
type Summary struct {
	Locations int
	Staff     int
	Rosters   int
	Shifts    int
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

// Apply creates everything in the file through svc, so the same validation
// as the API applies. It stops at the first error; what was created before
// it stays.
func Apply(ctx context.Context, svc contract.RosterService, file *File) (Summary, error) {
	var sum Summary

	if len(file.Locations) > 0 {
		created, err := svc.CreateLocations(ctx, file.Locations)
		if err != nil {
			return sum, fmt.Errorf("failed to create locations: %w", err)
		}
		sum.Locations = len(created)
	}

	for i, s := range file.Staff {
		ids, err := locationIDs(ctx, svc, s.Locations)
		if err != nil {
			return sum, fmt.Errorf("staff[%d] %q: %w", i, s.Name, err)
		}
		_, err = svc.CreateStaff(ctx, entity.NewStaffInput{
			Name:         s.Name,
			Role:         s.Role,
			Email:        s.Email,
			Phone:        s.Phone,
			PayRate:      s.PayRate,
			Availability: s.Availability,
			Locations:    ids,
		})
		if err != nil {
			return sum, fmt.Errorf("staff[%d] %q: %w", i, s.Name, err)
		}
		sum.Staff++
	}

	for i, r := range file.Rosters {
		in, err := rosterInput(ctx, svc, r)
		if err != nil {
			return sum, fmt.Errorf("rosters[%d]: %w", i, err)
		}
		if _, err := svc.CreateRoster(ctx, in); err != nil {
			return sum, fmt.Errorf("rosters[%d]: %w", i, err)
		}
		sum.Rosters++
		sum.Shifts += len(in.Shifts)
	}

	if file.Active != "" {
		loc, err := findLocation(ctx, svc, file.Active)
		if err != nil {
			return sum, fmt.Errorf("active: %w", err)
		}
		if err := svc.SetActiveLocation(ctx, loc.ID); err != nil {
			return sum, fmt.Errorf("active: %w", err)
		}
	}

	return sum, nil
}

// findLocation resolves a location name, reporting a missing one as an
// unknown reference.
func findLocation(ctx context.Context, svc contract.RosterService, name string) (entity.Location, error) {
	loc, err := svc.FindLocationByName(ctx, name)
	if errors.Is(err, domain.ErrLocationNotFound) {
		return loc, fmt.Errorf("%w: location %q: %w", ErrUnknownReference, name, err)
	}
	return loc, err
}

func locationIDs(ctx context.Context, svc contract.RosterService, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		loc, err := findLocation(ctx, svc, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, loc.ID)
	}
	return ids, nil
}

func rosterInput(ctx context.Context, svc contract.RosterService, r Roster) (entity.NewRosterInput, error) {
	loc, err := findLocation(ctx, svc, r.Location)
	if err != nil {
		return entity.NewRosterInput{}, err
	}
	staff := svc.ListStaff(ctx, loc.ID)

	in := entity.NewRosterInput{
		DateISO:     r.Date,
		LocationID:  loc.ID,
		Title:       r.Title,
		Description: r.Description,
		Shifts:      make([]entity.Shift, 0, len(r.Shifts)),
	}
	for j, sh := range r.Shifts {
		areaID, ok := findAreaID(loc, sh.Area)
		if !ok {
			return in, fmt.Errorf("shifts[%d]: %w: area %q", j, ErrUnknownReference, sh.Area)
		}
		var staffID string
		if sh.Staff != "" {
			if staffID, ok = findStaffID(staff, sh.Staff); !ok {
				return in, fmt.Errorf("shifts[%d]: %w: staff %q", j, ErrUnknownReference, sh.Staff)
			}
		}
		in.Shifts = append(in.Shifts, entity.Shift{
			Role:    sh.Role,
			AreaID:  areaID,
			Section: sh.Section,
			StaffID: staffID,
			Notes:   sh.Notes,
			Start:   sh.Start,
			End:     sh.End,
		})
	}
	return in, nil
}

func findAreaID(loc entity.Location, name string) (string, bool) {
	for _, a := range loc.Areas {
		if sameName(a.Name, name) {
			return a.ID, true
		}
	}
	return "", false
}

func findStaffID(staff []entity.StaffRecord, name string) (string, bool) {
	for _, s := range staff {
		if sameName(s.Name, name) {
			return s.ID, true
		}
	}
	return "", false
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

package validation

import (
	"fmt"
	"strings"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// Staff checks a staff member being created.
func Staff(in entity.NewStaffInput) Result {
	res := Struct("", in)
	res.Merge(availability(in.Availability))
	return res
}

// StaffPatch checks only the fields present in the patch.
func StaffPatch(p entity.StaffPatch) Result {
	var res Result
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		res.Add("name", CodeRequired, "name is required")
	}
	if p.Role != nil && strings.TrimSpace(*p.Role) == "" {
		res.Add("role", CodeRequired, "role is required")
	}
	if p.Email != nil && *p.Email != "" && !isEmail(*p.Email) {
		res.Add("email", CodeInvalidFormat, "email must be a valid email")
	}
	if p.PayRate != nil && *p.PayRate < 0 {
		res.Add("payRate", CodeOutOfRange, "payRate must be >= 0")
	}
	if p.Availability != nil {
		res.Merge(availability(*p.Availability))
	}
	if p.Locations != nil {
		if len(*p.Locations) == 0 {
			res.Add("locations", CodeRequired, "at least 1 locations required")
		}
		for i, id := range *p.Locations {
			if strings.TrimSpace(id) == "" {
				res.Add(indexed("locations", i), CodeRequired, "location is required")
			}
		}
	}
	return res
}

func availability(days []entity.AvailabilityDay) Result {
	var res Result
	for i, d := range days {
		if !d.Valid() {
			res.Add(indexed("availability", i), CodeInvalidFormat,
				fmt.Sprintf("unknown day %q", string(d)))
		}
	}
	return res
}

// StaffLocations checks that every linked location exists when the link is
// made. Links that dangle later are tolerated.
func StaffLocations(ids []string, locations []entity.Location) Result {
	var res Result
	for i, id := range ids {
		if id == "" {
			continue
		}
		if !locationExists(locations, id) {
			res.Add(indexed("locations", i), CodeUnknownReference, fmt.Sprintf("unknown location %q", id))
		}
	}
	return res
}

func locationExists(locations []entity.Location, id string) bool {
	for _, l := range locations {
		if l.ID == id {
			return true
		}
	}
	return false
}

package validation

import (
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

// Roster checks a roster being created. Every shift must reference an area
// of the roster's location, a section of that area and, when set, a known
// staff member.
func Roster(r entity.Roster, loc entity.Location, staff []entity.StaffRecord, policy Policy) Result {
	return RosterUpdate(r, entity.Roster{}, loc, staff, policy)
}

// RosterUpdate checks a roster replacing previous. Shifts carried over
// unchanged within the same location skip the reference checks, so a roster
// stays editable after a staff member it mentions was removed.
func RosterUpdate(r, previous entity.Roster, loc entity.Location, staff []entity.StaffRecord, policy Policy) Result {
	var res Result
	if _, err := time.Parse(entity.DateLayout, r.DateISO); err != nil {
		res.Add("dateISO", CodeInvalidFormat, "dateISO must be YYYY-MM-DD")
	}
	if r.LocationID == "" {
		res.Add("locationId", CodeRequired, "locationId is required")
	} else if r.LocationID != loc.ID {
		res.Add("locationId", CodeUnknownReference, "unknown location")
	}
	if len(r.Shifts) == 0 && !policy.AllowEmptyRosters {
		res.Add("shifts", CodeEmptyRoster, MsgEmptyRoster)
	}

	sameLocation := previous.LocationID == r.LocationID
	seen := make(map[string]struct{}, len(r.Shifts))
	for i, s := range r.Shifts {
		prefix := indexed("shifts", i)
		if s.ID != "" {
			if _, dup := seen[s.ID]; dup {
				res.Add(prefix+".id", CodeDuplicateID, MsgDuplicateID)
			}
			seen[s.ID] = struct{}{}
		}
		res.Merge(prefixed(prefix, shiftFields(s)))
		if j := previous.FindShift(s.ID); sameLocation && j >= 0 && previous.Shifts[j] == s {
			continue
		}
		res.Merge(prefixed(prefix, shiftRefs(s, loc, staff)))
	}
	return res
}

// ShiftInput checks a shift submitted from the editor for a roster at loc.
func ShiftInput(in entity.ShiftInput, loc entity.Location, staff []entity.StaffRecord) Result {
	res := Struct("", in)
	if !res.Valid() {
		return res
	}
	res.Merge(ShiftTime(in.Start, in.End))
	res.Merge(shiftRefs(in.Shift(""), loc, staff))
	return res
}

func shiftFields(s entity.Shift) Result {
	var res Result
	if strings.TrimSpace(s.Role) == "" {
		res.Add("role", CodeRequired, "role is required")
	}
	if s.AreaID == "" {
		res.Add("areaId", CodeRequired, "areaId is required")
	}
	if strings.TrimSpace(s.Section) == "" {
		res.Add("section", CodeRequired, "section is required")
	}
	res.Merge(ShiftTime(s.Start, s.End))
	return res
}

func shiftRefs(s entity.Shift, loc entity.Location, staff []entity.StaffRecord) Result {
	var res Result
	if s.AreaID != "" {
		area, ok := loc.FindArea(s.AreaID)
		switch {
		case !ok:
			res.Add("areaId", CodeUnknownReference, "area does not belong to the location")
		case s.Section != "" && !area.HasSection(s.Section):
			res.Add("section", CodeUnknownReference, "section does not belong to the area")
		}
	}
	if s.StaffID != "" && !staffExists(staff, s.StaffID) {
		res.Add("staffId", CodeUnknownReference, "unknown staff member")
	}
	return res
}

func staffExists(staff []entity.StaffRecord, id string) bool {
	for _, s := range staff {
		if s.ID == id {
			return true
		}
	}
	return false
}

// ShiftRemoval rejects removing the last shift of a roster unless empty
// rosters are allowed.
func ShiftRemoval(r entity.Roster, policy Policy) Result {
	var res Result
	if len(r.Shifts) <= 1 && !policy.AllowEmptyRosters {
		res.Add("shifts", CodeEmptyRoster, MsgEmptyRoster)
	}
	return res
}

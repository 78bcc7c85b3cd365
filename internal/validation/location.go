package validation

import (
	"fmt"
	"strings"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
)

// NewLocation checks a location being created.
func NewLocation(prefix string, in entity.NewLocationInput) Result {
	res := Struct(prefix, in)
	names := make([]string, len(in.Areas))
	for i, a := range in.Areas {
		names[i] = a.Name
	}
	res.Merge(prefixed(prefix, DuplicateAreaNames(names)))
	for i, a := range in.Areas {
		res.Merge(prefixed(prefix, DuplicateSections(i, a.Sections)))
	}
	return res
}

// Onboarding checks the first batch of locations. At least one location is
// needed and every location needs at least one area.
func Onboarding(inputs []entity.NewLocationInput) Result {
	var res Result
	if len(inputs) == 0 {
		res.Add("locations", CodeRequired, "at least one location is required")
		return res
	}
	for i, in := range inputs {
		prefix := indexed("locations", i)
		if len(in.Areas) == 0 {
			res.Add(prefix+".areas", CodeRequired, "at least one area is required")
		}
		res.Merge(NewLocation(prefix, in))
	}
	return res
}

// LocationEdit checks a full edit of an existing location against the
// current shift usage. Any failure rejects the whole edit: nothing is
// partially applied. Renaming a used section counts as removing it.
func LocationEdit(current entity.Location, edit entity.LocationEdit, usage selector.Usage) Result {
	res := Struct("", edit)

	names := make([]string, len(edit.Areas))
	for i, a := range edit.Areas {
		names[i] = a.Name
		res.Merge(DuplicateSections(i, a.Sections))
	}
	res.Merge(DuplicateAreaNames(names))

	kept := make(map[string]entity.AreaEdit, len(edit.Areas))
	for i, a := range edit.Areas {
		if a.ID == "" {
			continue
		}
		if _, ok := current.FindArea(a.ID); !ok {
			res.Add(indexed("areas", i)+".id", CodeUnknownReference, "unknown area")
			continue
		}
		if _, dup := kept[a.ID]; dup {
			res.Add(indexed("areas", i)+".id", CodeDuplicateID, MsgDuplicateID)
			continue
		}
		kept[a.ID] = a
	}

	for _, area := range current.Areas {
		edited, ok := kept[area.ID]
		if !ok {
			res.Merge(AreaRemoval(usage, area))
			continue
		}
		for _, section := range area.Sections {
			if !containsTrimmed(edited.Sections, section) {
				res.Merge(SectionRemoval(usage, area, section))
			}
		}
	}
	return res
}

// LocationRemoval rejects deleting a location whose areas are still used.
func LocationRemoval(loc entity.Location, usage selector.Usage) Result {
	var res Result
	if n := usage.Total(); n > 0 {
		res.Add("", CodeLocationInUse,
			fmt.Sprintf("cannot remove location %q: used by %d shift(s)", loc.Name, n))
	}
	return res
}

func containsTrimmed(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.TrimSpace(v) == s {
			return true
		}
	}
	return false
}

func prefixed(prefix string, r Result) Result {
	if prefix == "" {
		return r
	}
	for i := range r.Violations {
		r.Violations[i].Field = join(prefix, r.Violations[i].Field)
	}
	return r
}

package validation

import (
	"fmt"
	"strings"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
)

// Policy holds the switches that change rule outcomes.
type Policy struct {
	AllowEmptyRosters bool
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ShiftTime checks that both times are present and end is strictly after
// start. Zero padded HH:MM values compare correctly as strings.
func ShiftTime(start, end string) Result {
	var res Result
	if strings.TrimSpace(start) == "" {
		res.Add("start", CodeRequired, "start is required")
	}
	if strings.TrimSpace(end) == "" {
		res.Add("end", CodeRequired, "end is required")
	}
	if !res.Valid() {
		return res
	}
	if _, err := selector.ParseMinutes(start); err != nil {
		res.Add("start", CodeInvalidFormat, "start must be HH:MM")
	}
	if _, err := selector.ParseMinutes(end); err != nil {
		res.Add("end", CodeInvalidFormat, "end must be HH:MM")
	}
	if !res.Valid() {
		return res
	}
	if !(start < end) {
		res.Add("end", CodeTimeOrder, MsgEndAfterStart)
	}
	return res
}

// DuplicateAreaNames flags every area whose trimmed, lower-cased name was
// already used by an earlier area. Blank names are left to the required rule.
func DuplicateAreaNames(names []string) Result {
	var res Result
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		key := normalize(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			res.Add(indexed("areas", i)+".name", CodeDuplicateArea, MsgDuplicateArea)
			continue
		}
		seen[key] = struct{}{}
	}
	return res
}

// DuplicateSections is DuplicateAreaNames for the sections of one area.
func DuplicateSections(areaIndex int, sections []string) Result {
	var res Result
	seen := make(map[string]struct{}, len(sections))
	for i, section := range sections {
		key := normalize(section)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			res.Add(fmt.Sprintf("areas[%d].sections[%d]", areaIndex, i), CodeDuplicateSection, MsgDuplicateSection)
			continue
		}
		seen[key] = struct{}{}
	}
	return res
}

// AreaRemoval rejects removing an area that any shift still references.
func AreaRemoval(usage selector.Usage, area entity.Area) Result {
	var res Result
	if n := usage.AreaCount(area.ID); n > 0 {
		res.Add("areas", CodeAreaInUse,
			fmt.Sprintf("cannot remove area %q: used by %d shift(s)", area.Name, n))
	}
	return res
}

// SectionRemoval rejects removing a section that any shift still references.
func SectionRemoval(usage selector.Usage, area entity.Area, section string) Result {
	var res Result
	if n := usage.SectionCount(area.ID, section); n > 0 {
		res.Add("areas", CodeSectionInUse,
			fmt.Sprintf("cannot remove section %q from %q: used by %d shift(s)", section, area.Name, n))
	}
	return res
}

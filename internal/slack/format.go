package slack

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
)

// DayMessage lists the shifts of every roster of loc on dateISO, ordered by
// start time, followed by the day's totals.
func DayMessage(state entity.AppState, loc entity.Location, dateISO string) string {
	rosters := selector.RostersByDate(state, dateISO, loc.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Roster for %s* (%s)\n", loc.Name, WeekdayLabel(dateISO))

	if len(rosters) == 0 {
		b.WriteString("\nNo shifts rostered today.")
		return b.String()
	}

	var total selector.Stats
	for _, r := range rosters {
		b.WriteString("\n")
		if r.Title != "" {
			fmt.Fprintf(&b, "*%s*\n", r.Title)
		}
		shifts := append([]entity.Shift(nil), r.Shifts...)
		sort.SliceStable(shifts, func(i, j int) bool { return shifts[i].Start < shifts[j].Start })
		for _, sh := range shifts {
			fmt.Fprintf(&b, "• %s-%s %s, %s (%s)\n",
				sh.Start, sh.End,
				selector.StaffDisplayName(state, sh.StaffID),
				sh.Role,
				placeLabel(loc, sh),
			)
		}
		total = addStats(total, selector.RosterStats(r, state.Staff))
	}

	b.WriteString("\n" + totalsLine(total))
	return b.String()
}

// StatsMessage summarises hours and cost per roster of loc on dateISO.
func StatsMessage(state entity.AppState, loc entity.Location, dateISO string) string {
	rosters := selector.RostersByDate(state, dateISO, loc.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Stats for %s* (%s)\n", loc.Name, WeekdayLabel(dateISO))

	if len(rosters) == 0 {
		b.WriteString("\nNo rosters on this day.")
		return b.String()
	}

	var total selector.Stats
	for _, r := range rosters {
		stats := selector.RosterStats(r, state.Staff)
		title := r.Title
		if title == "" {
			title = "Roster"
		}
		fmt.Fprintf(&b, "• %s: %sh, $%.2f, %d shift(s)\n",
			title, FormatHours(stats.TotalHours), stats.TotalCost, stats.TotalShifts)
		total = addStats(total, stats)
	}

	b.WriteString("\n" + totalsLine(total))
	return b.String()
}

// LocationsMessage lists every location, marking the active one.
func LocationsMessage(locations []entity.Location, activeID string) string {
	if len(locations) == 0 {
		return "No locations yet."
	}

	var b strings.Builder
	b.WriteString("*Locations:*\n")
	for i, loc := range locations {
		marker := ""
		if loc.ID == activeID {
			marker = " (active)"
		}
		fmt.Fprintf(&b, "%d. %s%s, %d area(s)\n", i+1, loc.Name, marker, len(loc.Areas))
	}
	return b.String()
}

// StaffMessage lists the staff of a location.
func StaffMessage(loc entity.Location, staff []entity.StaffRecord) string {
	if len(staff) == 0 {
		return fmt.Sprintf("No staff linked to %s.", loc.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Staff at %s:*\n", loc.Name)
	for i, s := range staff {
		fmt.Fprintf(&b, "%d. %s, %s", i+1, s.Name, s.Role)
		if len(s.Availability) > 0 {
			days := make([]string, len(s.Availability))
			for j, d := range s.Availability {
				days[j] = string(d)
			}
			fmt.Fprintf(&b, " [%s]", strings.Join(days, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// UsageMessage shows how many shifts reference each area and section.
func UsageMessage(loc entity.Location, usage selector.Usage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Usage at %s:*\n", loc.Name)
	if len(loc.Areas) == 0 {
		b.WriteString("No areas.")
		return b.String()
	}
	for _, area := range loc.Areas {
		fmt.Fprintf(&b, "• %s: %d shift(s)\n", area.Name, usage.AreaCount(area.ID))
		for _, section := range area.Sections {
			fmt.Fprintf(&b, "    ◦ %s: %d\n", section, usage.SectionCount(area.ID, section))
		}
	}
	return b.String()
}

// WeekdayLabel renders "Monday 2026-10-19", or the input when it is not a
// date.
func WeekdayLabel(dateISO string) string {
	d, err := time.Parse(entity.DateLayout, dateISO)
	if err != nil {
		return dateISO
	}
	wd := int(d.Weekday())
	if wd == 0 {
		wd = domain.Sunday
	}
	return domain.WeekdayNames[wd] + " " + dateISO
}

// FormatHours renders hours without trailing zeros.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func placeLabel(loc entity.Location, sh entity.Shift) string {
	area, ok := loc.FindArea(sh.AreaID)
	if !ok {
		return sh.Section
	}
	return area.Name + " / " + sh.Section
}

func addStats(a, b selector.Stats) selector.Stats {
	return selector.Stats{
		TotalHours:  a.TotalHours + b.TotalHours,
		TotalCost:   a.TotalCost + b.TotalCost,
		TotalShifts: a.TotalShifts + b.TotalShifts,
	}
}

func totalsLine(s selector.Stats) string {
	return fmt.Sprintf("Totals: %sh, $%.2f, %d shift(s)",
		FormatHours(selector.Round2(s.TotalHours)),
		selector.Round2(s.TotalCost),
		s.TotalShifts,
	)
}

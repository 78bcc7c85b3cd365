package entity

// DateLayout is the layout of Roster.DateISO.
const DateLayout = "2006-01-02"

// TimeLayout is the layout of Shift.Start and Shift.End. Zero padded 24h
// times compare correctly as strings.
const TimeLayout = "15:04"

// Roster is the staffing plan for one location on one calendar day.
type Roster struct {
	ID          string  `json:"id" yaml:"id"`
	DateISO     string  `json:"dateISO" yaml:"dateISO"`
	LocationID  string  `json:"locationId" yaml:"locationId"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Shifts      []Shift `json:"shifts" yaml:"shifts"`
}

// Shift is one block of work inside a roster. AreaID, Section and StaffID
// are weak references resolved at read time.
type Shift struct {
	ID      string `json:"id" yaml:"id"`
	Role    string `json:"role" yaml:"role"`
	AreaID  string `json:"areaId" yaml:"areaId"`
	Section string `json:"section" yaml:"section"`
	StaffID string `json:"staffId,omitempty" yaml:"staffId,omitempty"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
}

// NewRosterInput is a roster without an id.
type NewRosterInput struct {
	DateISO     string  `json:"dateISO" yaml:"dateISO"`
	LocationID  string  `json:"locationId" yaml:"locationId"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Shifts      []Shift `json:"shifts" yaml:"shifts"`
}

// ShiftInput is what the shift editor submits. Every field but Notes is
// required.
type ShiftInput struct {
	Role    string `json:"role" validate:"nonblank"`
	AreaID  string `json:"areaId" validate:"nonblank"`
	Section string `json:"section" validate:"nonblank"`
	StaffID string `json:"staffId" validate:"nonblank"`
	Notes   string `json:"notes,omitempty"`
	Start   string `json:"start" validate:"nonblank"`
	End     string `json:"end" validate:"nonblank"`
}

// Shift builds a Shift with the given id from the input.
func (in ShiftInput) Shift(id string) Shift {
	return Shift{
		ID:      id,
		Role:    in.Role,
		AreaID:  in.AreaID,
		Section: in.Section,
		StaffID: in.StaffID,
		Notes:   in.Notes,
		Start:   in.Start,
		End:     in.End,
	}
}

// Roster builds a Roster with the given id from the input.
func (in NewRosterInput) Roster(id string) Roster {
	return Roster{
		ID:          id,
		DateISO:     in.DateISO,
		LocationID:  in.LocationID,
		Title:       in.Title,
		Description: in.Description,
		Shifts:      in.Shifts,
	}.Clone()
}

func (r Roster) Clone() Roster {
	if r.Shifts != nil {
		shifts := make([]Shift, len(r.Shifts))
		copy(shifts, r.Shifts)
		r.Shifts = shifts
	}
	return r
}

// FindShift returns the index of the shift with the given id, or -1.
func (r Roster) FindShift(id string) int {
	for i, s := range r.Shifts {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// CalendarDay is one cell of a month view.
type CalendarDay struct {
	DateISO    string `json:"dateISO"`
	InMonth    bool   `json:"inMonth"`
	ShiftCount int    `json:"shiftCount"`
}

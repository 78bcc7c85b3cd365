package entity

// AvailabilityDay is a short weekday name as shown on the staff form.
type AvailabilityDay string

const (
	Mon AvailabilityDay = "Mon"
	Tue AvailabilityDay = "Tue"
	Wed AvailabilityDay = "Wed"
	Thu AvailabilityDay = "Thu"
	Fri AvailabilityDay = "Fri"
	Sat AvailabilityDay = "Sat"
	Sun AvailabilityDay = "Sun"
)

// AvailabilityDays lists the valid days, Monday first.
var AvailabilityDays = []AvailabilityDay{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// Valid reports whether d is one of the seven known days.
func (d AvailabilityDay) Valid() bool {
	for _, day := range AvailabilityDays {
		if d == day {
			return true
		}
	}
	return false
}

// StaffRecord is a staff member. Locations are weak references: a location
// id may point at a location that no longer exists.
type StaffRecord struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Role         string            `json:"role" yaml:"role"`
	Email        string            `json:"email,omitempty" yaml:"email,omitempty"`
	Phone        string            `json:"phone,omitempty" yaml:"phone,omitempty"`
	PayRate      *float64          `json:"payRate,omitempty" yaml:"payRate,omitempty"`
	Availability []AvailabilityDay `json:"availability,omitempty" yaml:"availability,omitempty"`
	Locations    []string          `json:"locations" yaml:"locations"`
}

// NewStaffInput is a staff record without an id.
type NewStaffInput struct {
	Name         string            `json:"name" yaml:"name" validate:"nonblank"`
	Role         string            `json:"role" yaml:"role" validate:"nonblank"`
	Email        string            `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone        string            `json:"phone,omitempty" yaml:"phone,omitempty"`
	PayRate      *float64          `json:"payRate,omitempty" yaml:"payRate,omitempty" validate:"omitempty,gte=0"`
	Availability []AvailabilityDay `json:"availability,omitempty" yaml:"availability,omitempty"`
	Locations    []string          `json:"locations" yaml:"locations" validate:"min=1,dive,nonblank"`
}

// StaffPatch is a partial staff update; nil fields are left untouched.
type StaffPatch struct {
	Name         *string            `json:"name,omitempty"`
	Role         *string            `json:"role,omitempty"`
	Email        *string            `json:"email,omitempty"`
	Phone        *string            `json:"phone,omitempty"`
	PayRate      *float64           `json:"payRate,omitempty"`
	Availability *[]AvailabilityDay `json:"availability,omitempty"`
	Locations    *[]string          `json:"locations,omitempty"`
}

// WorksAt reports whether the staff member is linked to the location.
func (s StaffRecord) WorksAt(locationID string) bool {
	for _, id := range s.Locations {
		if id == locationID {
			return true
		}
	}
	return false
}

// Rate returns the pay rate, or zero when none is set.
func (s StaffRecord) Rate() float64 {
	if s.PayRate == nil {
		return 0
	}
	return *s.PayRate
}

func (s StaffRecord) Clone() StaffRecord {
	if s.PayRate != nil {
		rate := *s.PayRate
		s.PayRate = &rate
	}
	if s.Availability != nil {
		days := make([]AvailabilityDay, len(s.Availability))
		copy(days, s.Availability)
		s.Availability = days
	}
	s.Locations = cloneStrings(s.Locations)
	return s
}

// Record builds a StaffRecord with the given id from the input.
func (in NewStaffInput) Record(id string) StaffRecord {
	return StaffRecord{
		ID:           id,
		Name:         in.Name,
		Role:         in.Role,
		Email:        in.Email,
		Phone:        in.Phone,
		PayRate:      in.PayRate,
		Availability: in.Availability,
		Locations:    in.Locations,
	}.Clone()
}

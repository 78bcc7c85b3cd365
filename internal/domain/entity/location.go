package entity

// Location is a venue. It owns its areas.
type Location struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Areas   []Area `json:"areas" yaml:"areas"`
}

// Area is a part of a location (bar, kitchen, floor). Sections are plain
// names, identified by string equality within the area.
type Area struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Sections []string `json:"sections" yaml:"sections"`
}

// NewAreaInput describes an area that has no id yet.
type NewAreaInput struct {
	Name     string   `json:"name" yaml:"name" validate:"nonblank"`
	Sections []string `json:"sections" yaml:"sections" validate:"dive,nonblank"`
}

// NewLocationInput describes a location that has no id yet.
type NewLocationInput struct {
	Name    string         `json:"name" yaml:"name" validate:"nonblank"`
	Address string         `json:"address" yaml:"address" validate:"nonblank"`
	Areas   []NewAreaInput `json:"areas" yaml:"areas" validate:"dive"`
}

// LocationPatch is a partial update. Nil fields are left untouched and a
// non-nil Areas replaces the whole list.
type LocationPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Areas   *[]Area `json:"areas,omitempty"`
}

// FindArea returns the area with the given id.
func (l Location) FindArea(id string) (Area, bool) {
	for _, a := range l.Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// HasSection reports whether the area lists the given section name.
func (a Area) HasSection(name string) bool {
	for _, s := range a.Sections {
		if s == name {
			return true
		}
	}
	return false
}

func (a Area) Clone() Area {
	a.Sections = cloneStrings(a.Sections)
	return a
}

func (l Location) Clone() Location {
	if l.Areas != nil {
		areas := make([]Area, len(l.Areas))
		for i, a := range l.Areas {
			areas[i] = a.Clone()
		}
		l.Areas = areas
	}
	return l
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// LocationEdit is the full edited form of an existing location. Areas with
// an empty ID are new; existing areas missing from the list are removed.
type LocationEdit struct {
	Name    string     `json:"name" validate:"nonblank"`
	Address string     `json:"address" validate:"nonblank"`
	Areas   []AreaEdit `json:"areas" validate:"dive"`
}

// AreaEdit is one area of a LocationEdit.
type AreaEdit struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name" validate:"nonblank"`
	Sections []string `json:"sections" validate:"dive,nonblank"`
}

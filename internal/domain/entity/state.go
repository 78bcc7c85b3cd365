package entity

// AppState is the whole application state. It is replaced, never mutated in
// place, so a value obtained from the store stays consistent.
type AppState struct {
	Locations        []Location    `json:"locations"`
	Staff            []StaffRecord `json:"staff"`
	Rosters          []Roster      `json:"rosters"`
	ActiveLocationID string        `json:"activeLocationId,omitempty"`
	// Revision increases with every state-changing dispatch.
	Revision uint64 `json:"revision"`
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	out := AppState{
		ActiveLocationID: s.ActiveLocationID,
		Revision:         s.Revision,
		Locations:        make([]Location, len(s.Locations)),
		Staff:            make([]StaffRecord, len(s.Staff)),
		Rosters:          make([]Roster, len(s.Rosters)),
	}
	for i, l := range s.Locations {
		out.Locations[i] = l.Clone()
	}
	for i, st := range s.Staff {
		out.Staff[i] = st.Clone()
	}
	for i, r := range s.Rosters {
		out.Rosters[i] = r.Clone()
	}
	return out
}

package entity

import "time"

// TimesheetLine is one exported shift with names resolved and cost computed.
type TimesheetLine struct {
	ID         int64     `json:"id"`
	RosterID   string    `json:"rosterId"`
	ShiftID    string    `json:"shiftId"`
	DateISO    string    `json:"dateISO"`
	Location   string    `json:"location"`
	Area       string    `json:"area"`
	Section    string    `json:"section"`
	Staff      string    `json:"staff"`
	Role       string    `json:"role"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Hours      float64   `json:"hours"`
	Rate       float64   `json:"rate"`
	Cost       float64   `json:"cost"`
	ExportedAt time.Time `json:"exportedAt"`
}

// RosterSummary is the exported total of one roster.
type RosterSummary struct {
	RosterID    string    `json:"rosterId"`
	DateISO     string    `json:"dateISO"`
	Location    string    `json:"location"`
	Title       string    `json:"title,omitempty"`
	TotalHours  float64   `json:"totalHours"`
	TotalCost   float64   `json:"totalCost"`
	TotalShifts int       `json:"totalShifts"`
	ExportedAt  time.Time `json:"exportedAt"`
}

// ExportResult reports what a timesheet export wrote.
type ExportResult struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Rosters int    `json:"rosters"`
	Lines   int    `json:"lines"`
}

package domain

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrRosterNotFound   = errors.New("roster not found")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrNoActiveLocation = errors.New("no active location")
	ErrInvalidDateRange = errors.New("invalid date range")
)

package validation

import (
	"errors"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("validation failed")

// Violation codes.
const (
	CodeRequired         = "required"
	CodeTimeOrder        = "time_order"
	CodeInvalidFormat    = "invalid_format"
	CodeOutOfRange       = "out_of_range"
	CodeDuplicateArea    = "duplicate_area"
	CodeDuplicateSection = "duplicate_section"
	CodeAreaInUse        = "area_in_use"
	CodeSectionInUse     = "section_in_use"
	CodeLocationInUse    = "location_in_use"
	CodeEmptyRoster      = "empty_roster"
	CodeUnknownReference = "unknown_reference"
	CodeDuplicateID      = "duplicate_id"
)

// Messages shown to users for the fixed-text violations.
const (
	MsgEndAfterStart    = "end must be after start"
	MsgDuplicateArea    = "duplicate area name"
	MsgDuplicateSection = "duplicate section"
	MsgEmptyRoster      = "roster must have at least one shift"
	MsgDuplicateID      = "duplicate id"
)

// Error carries the violations of a rejected operation.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field != "" {
			msgs = append(msgs, v.Field+": "+v.Message)
			continue
		}
		msgs = append(msgs, v.Message)
	}
	return ErrInvalid.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Violations extracts the violations from err, if it is a validation error.
func Violations(err error) ([]Violation, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Violations, true
	}
	return nil, false
}

package validation

import "fmt"

// Violation is one failed rule.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result aggregates violations. The zero value is a passing result.
type Result struct {
	Violations []Violation `json:"violations,omitempty"`
}

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Add records a violation.
func (r *Result) Add(field, code, message string) {
	r.Violations = append(r.Violations, Violation{Field: field, Code: code, Message: message})
}

// Merge appends the violations of other.
func (r *Result) Merge(other Result) {
	r.Violations = append(r.Violations, other.Violations...)
}

// Has reports whether a violation with the given code was recorded.
func (r Result) Has(code string) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result, otherwise an *Error.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &Error{Violations: r.Violations}
}

func join(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	default:
		return prefix + "." + field
	}
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/validation"
)

// Error is the body of every non-2xx API response.
type Error struct {
	Status     int                    `json:"status"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

const (
	ErrCodeBadRequest = "bad_request"
	ErrCodeNotFound   = "not_found"
	ErrCodeInternal   = "internal_error"
	ErrCodeValidation = "validation_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// writeServiceError maps an error returned by the roster service to a
// response. fallback is the message used for unexpected errors.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if violations, ok := validation.Violations(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, Error{
			Status:     http.StatusUnprocessableEntity,
			Code:       ErrCodeValidation,
			Message:    "validation failed",
			Violations: violations,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrStaffNotFound),
		errors.Is(err, domain.ErrRosterNotFound),
		errors.Is(err, domain.ErrShiftNotFound),
		errors.Is(err, domain.ErrNoActiveLocation):
		writeNotFound(w, err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeBadRequest(w, err.Error())
	default:
		s.logger.Error(fallback, "error", err)
		writeInternalError(w, fallback)
	}
}

// decodeJSON reads the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

package workflow

import (
	"errors"

	"fir-portal/internal/docstore"
)

var (
	// ErrPolicyViolation is returned when the terms were not accepted.
	ErrPolicyViolation = errors.New("workflow: terms must be accepted")
	// ErrInvalidAttachment is returned for an attachment with a disallowed extension.
	ErrInvalidAttachment = errors.New("workflow: invalid attachment")
	// ErrInvalidSchedule is returned when date or time is missing.
	ErrInvalidSchedule = errors.New("workflow: date and time are required")
	// ErrNotAuthorized covers both a missing case and a case owned by someone else.
	ErrNotAuthorized = errors.New("workflow: case not found")
	// ErrUnauthenticated is returned when no principal is present.
	ErrUnauthenticated = errors.New("workflow: unauthenticated")
	// ErrIOFailure is returned when an attachment could not be stored.
	ErrIOFailure = errors.New("workflow: attachment storage failed")
	// ErrPersistence is returned when the primary store rejected a write.
	ErrPersistence = errors.New("workflow: could not save record")
)

// ErrorKind maps workflow errors to a stable logging label.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPolicyViolation):
		return "policy_violation"
	case errors.Is(err, ErrInvalidAttachment):
		return "invalid_attachment"
	case errors.Is(err, ErrInvalidSchedule):
		return "invalid_schedule"
	case errors.Is(err, ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrIOFailure):
		return "io_failure"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	case errors.Is(err, docstore.ErrUnavailable):
		return "store_unavailable"
	}
	return "unexpected"
}

// rejection reports whether err is a validation outcome rather than a failure.
func rejection(err error) bool {
	return errors.Is(err, ErrPolicyViolation) ||
		errors.Is(err, ErrInvalidAttachment) ||
		errors.Is(err, ErrInvalidSchedule) ||
		errors.Is(err, ErrNotAuthorized) ||
		errors.Is(err, ErrUnauthenticated)
}

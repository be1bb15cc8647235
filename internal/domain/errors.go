package domain

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses. Services wrap
// these with %w so callers can test with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already registered")
	ErrOrganizerNameTaken   = errors.New("organizer name already registered")
	ErrOrganizerNotFound    = errors.New("organizador no existe")
	ErrLocationNotFound     = errors.New("ubicación no existe")
	ErrNotOwner             = errors.New("resource owned by another account")
	ErrDuplicateReservation = errors.New("reservation already exists")
)

// ValidationError carries per-field messages for 400 responses.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return "validation failed: " + v[0].Field + ": " + v[0].Message
}

func IsValidation(err error) bool {
	var v ValidationErrors
	return errors.As(err, &v)
}

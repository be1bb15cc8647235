package domain

import (
	"strings"
	"time"
)

type Organizer struct {
	ID            int64     `json:"organizer_id"`
	OrganizerName string    `json:"organizer_name"`
	ContactHash   string    `json:"-"`
	OrganizerType *string   `json:"organizer_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrganizerRef is the public projection used by the catalog listing.
type OrganizerRef struct {
	ID            int64  `json:"organizer_id"`
	OrganizerName string `json:"organizer_name"`
}

type CreateOrganizerRequest struct {
	OrganizerName string  `json:"organizer_name"`
	Contact       string  `json:"contact"`
	OrganizerType *string `json:"organizer_type,omitempty"`
}

type OrganizerLoginRequest struct {
	OrganizerName string `json:"organizer_name"`
	Contact       string `json:"contact"`
}

func (r *CreateOrganizerRequest) Normalize() {
	r.OrganizerName = strings.TrimSpace(r.OrganizerName)
}

func (r *CreateOrganizerRequest) Validate() error {
	var errs ValidationErrors
	if r.OrganizerName == "" {
		errs = append(errs, ValidationError{Field: "organizer_name", Message: "is required"})
	}
	if r.Contact == "" {
		errs = append(errs, ValidationError{Field: "contact", Message: "is required"})
	} else if len(r.Contact) < 6 {
		errs = append(errs, ValidationError{Field: "contact", Message: "must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *OrganizerLoginRequest) Normalize() {
	r.OrganizerName = strings.TrimSpace(r.OrganizerName)
}

func (r *OrganizerLoginRequest) Validate() error {
	var errs ValidationErrors
	if r.OrganizerName == "" {
		errs = append(errs, ValidationError{Field: "organizer_name", Message: "is required"})
	}
	if r.Contact == "" {
		errs = append(errs, ValidationError{Field: "contact", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

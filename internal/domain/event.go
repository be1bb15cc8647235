package domain

import (
	"regexp"
	"strings"
	"time"
)

type Event struct {
	ID                int64     `json:"event_id"`
	EventName         string    `json:"event_name"`
	Description       string    `json:"description"`
	EventDate         string    `json:"event_date"` // YYYY-MM-DD
	StartTime         string    `json:"start_time"` // HH:mm
	EndTime           string    `json:"end_time"`   // HH:mm
	Price             float64   `json:"price"`
	Availability      int       `json:"availability"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
	Image             *string   `json:"image,omitempty"`
	Preference1       *string   `json:"preference_1,omitempty"`
	Preference2       *string   `json:"preference_2,omitempty"`
	Preference3       *string   `json:"preference_3,omitempty"`
	WeatherPreference *string   `json:"weather_preference,omitempty"`
	OrganizerID       int64     `json:"organizer_id"`
	LocationID        int64     `json:"location_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EventDetail joins the organizer and location rows the listing pages show
// next to each card.
type EventDetail struct {
	Event
	OrganizerName string `json:"organizer_name"`
	Address       string `json:"address"`
}

type CreateEventRequest struct {
	EventName         string
	Description       string
	EventDate         string
	StartTime         string
	EndTime           string
	Price             float64
	Availability      int
	Lat               float64
	Lng               float64
	Image             *string
	Preference1       *string
	Preference2       *string
	Preference3       *string
	WeatherPreference *string
	LocationID        int64
}

type UpdateEventRequest struct {
	EventName         *string
	Description       *string
	EventDate         *string
	StartTime         *string
	EndTime           *string
	Price             *float64
	Availability      *int
	Lat               *float64
	Lng               *float64
	Image             *string
	Preference1       *string
	Preference2       *string
	Preference3       *string
	WeatherPreference *string
	LocationID        *int64
}

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	descRegex = regexp.MustCompile(`^[\p{L}\d\s.,-]{10,500}$`)
)

// ValidDate reports whether s is a real YYYY-MM-DD calendar date, not just a
// string shaped like one.
func ValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func ValidTimeOfDay(s string) bool {
	return timeRegex.MatchString(s)
}

func (r *CreateEventRequest) Normalize() {
	r.EventName = strings.TrimSpace(r.EventName)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateEventRequest) Validate() error {
	var errs ValidationErrors
	if r.EventName == "" {
		errs = append(errs, ValidationError{Field: "event_name", Message: "is required"})
	}
	if !descRegex.MatchString(r.Description) {
		errs = append(errs, ValidationError{Field: "description", Message: "must be 10-500 characters (letters, digits, spaces, '.', ',' or '-')"})
	}
	if !ValidDate(r.EventDate) {
		errs = append(errs, ValidationError{Field: "event_date", Message: "must match YYYY-MM-DD"})
	}
	if !ValidTimeOfDay(r.StartTime) {
		errs = append(errs, ValidationError{Field: "start_time", Message: "must match HH:mm"})
	}
	if !ValidTimeOfDay(r.EndTime) {
		errs = append(errs, ValidationError{Field: "end_time", Message: "must match HH:mm"})
	}
	if r.Price < 0 {
		errs = append(errs, ValidationError{Field: "price", Message: "must not be negative"})
	}
	if r.Availability < 0 {
		errs = append(errs, ValidationError{Field: "availability", Message: "must not be negative"})
	}
	if r.LocationID == 0 {
		errs = append(errs, ValidationError{Field: "location_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateEventRequest) Validate() error {
	var errs ValidationErrors
	if r.Description != nil && !descRegex.MatchString(*r.Description) {
		errs = append(errs, ValidationError{Field: "description", Message: "must be 10-500 characters (letters, digits, spaces, '.', ',' or '-')"})
	}
	if r.EventDate != nil && !ValidDate(*r.EventDate) {
		errs = append(errs, ValidationError{Field: "event_date", Message: "must match YYYY-MM-DD"})
	}
	if r.StartTime != nil && !ValidTimeOfDay(*r.StartTime) {
		errs = append(errs, ValidationError{Field: "start_time", Message: "must match HH:mm"})
	}
	if r.EndTime != nil && !ValidTimeOfDay(*r.EndTime) {
		errs = append(errs, ValidationError{Field: "end_time", Message: "must match HH:mm"})
	}
	if r.Price != nil && *r.Price < 0 {
		errs = append(errs, ValidationError{Field: "price", Message: "must not be negative"})
	}
	if r.Availability != nil && *r.Availability < 0 {
		errs = append(errs, ValidationError{Field: "availability", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

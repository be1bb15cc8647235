package domain

import "time"

type ReservationStatus string

const (
	ReservationActive ReservationStatus = "active"
)

type Reservation struct {
	ID              int64             `json:"reservation_id"`
	UserID          int64             `json:"user_id"`
	EventID         int64             `json:"event_id"`
	TicketQuantity  int               `json:"ticket_quantity"`
	Status          ReservationStatus `json:"status"`
	ReservationDate time.Time         `json:"reservation_date"`
}

// ReservationWithEvent is what GET /reservations returns: the reservation
// plus the event it points at, so the client needs no second fetch.
type ReservationWithEvent struct {
	Reservation
	Event Event `json:"eventinfo"`
}

type CreateReservationRequest struct {
	EventID int64 `json:"eventId"`
}

func (r *CreateReservationRequest) Validate() error {
	if r.EventID <= 0 {
		return ValidationErrors{{Field: "eventId", Message: "is required"}}
	}
	return nil
}

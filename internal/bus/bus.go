package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/planventura/eventos-api/internal/logger"
)

// Publisher fans domain events out to interested consumers (notification
// workers, analytics). Publishing is fire-and-forget; request handling never
// blocks on a consumer.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

// Subjects
const (
	UserRegistered      = "user.registered"
	OrganizerRegistered = "organizer.registered"
	EventCreated        = "event.created"
	EventUpdated        = "event.updated"
	EventDeleted        = "event.deleted"
	ReservationCreated  = "reservation.created"
	ReservationCanceled = "reservation.canceled"
)

// Payloads
type UserRegisteredEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

type EventChangedEvent struct {
	EventID     int64  `json:"event_id"`
	OrganizerID int64  `json:"organizer_id"`
	EventName   string `json:"event_name"`
	EventDate   string `json:"event_date"`
}

type ReservationChangedEvent struct {
	ReservationID int64     `json:"reservation_id,omitempty"`
	UserID        int64     `json:"user_id"`
	EventID       int64     `json:"event_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher stands in when no NATS_URL is configured; the core flows
// carry no hard broker dependency.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }

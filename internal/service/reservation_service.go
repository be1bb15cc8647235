package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/planventura/eventos-api/internal/bus"
	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/logger"
	"github.com/planventura/eventos-api/internal/mailer"
	"github.com/planventura/eventos-api/internal/payments"
	"github.com/planventura/eventos-api/internal/repository"
)

// ReservationResult pairs the created reservation with the payment intent a
// priced event requires. Intent is nil for free events or when payments are
// not configured.
type ReservationResult struct {
	Reservation *domain.Reservation `json:"reservation"`
	Intent      *payments.Intent    `json:"payment_intent,omitempty"`
}

type ReservationService interface {
	Reserve(ctx context.Context, userID, eventID int64) (*ReservationResult, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.ReservationWithEvent, error)
	Cancel(ctx context.Context, userID, eventID int64) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	eventRepo       repository.EventRepository
	userRepo        repository.UserRepository
	intents         payments.Intents // nil when Stripe is not configured
	mailer          mailer.Service
	publisher       bus.Publisher
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	intents payments.Intents,
	mail mailer.Service,
	publisher bus.Publisher,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		intents:         intents,
		mailer:          mail,
		publisher:       publisher,
	}
}

func (s *reservationService) Reserve(ctx context.Context, userID, eventID int64) (*ReservationResult, error) {
	event, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}

	reservation, err := s.reservationRepo.Create(ctx, userID, eventID, 1)
	if err != nil {
		return nil, err
	}

	result := &ReservationResult{Reservation: reservation}

	if event.Price > 0 && s.intents != nil {
		amountCents := int64(math.Round(event.Price * 100))
		intent, err := s.intents.CreateIntent(ctx, amountCents, fmt.Sprintf("Reserva: %s", event.EventName))
		if err != nil {
			logger.ErrorContext(ctx, "failed to create payment intent",
				"error", err, "event_id", eventID, "user_id", userID)
		} else {
			result.Intent = intent
		}
	}

	if err := s.publisher.Publish(ctx, bus.ReservationCreated, bus.ReservationChangedEvent{
		ReservationID: reservation.ID,
		UserID:        userID,
		EventID:       eventID,
		OccurredAt:    time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish reservation.created", "error", err)
	}

	if user, uerr := s.userRepo.FindByID(ctx, userID); uerr == nil && user != nil {
		if merr := s.mailer.SendReservationConfirmation(user.Email, user.UserName, event.EventName, event.EventDate, 1); merr != nil {
			logger.WarnContext(ctx, "failed to send reservation confirmation", "error", merr, "user_id", userID)
		}
	}

	return result, nil
}

func (s *reservationService) ListForUser(ctx context.Context, userID int64) ([]domain.ReservationWithEvent, error) {
	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *reservationService) Cancel(ctx context.Context, userID, eventID int64) error {
	deleted, err := s.reservationRepo.DeleteByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	if err := s.publisher.Publish(ctx, bus.ReservationCanceled, bus.ReservationChangedEvent{
		UserID:     userID,
		EventID:    eventID,
		OccurredAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish reservation.canceled", "error", err)
	}

	return nil
}

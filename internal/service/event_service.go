package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planventura/eventos-api/internal/bus"
	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/logger"
	"github.com/planventura/eventos-api/internal/repository"
)

type EventService interface {
	Create(ctx context.Context, organizerID int64, req *domain.CreateEventRequest) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.EventDetail, error)
	List(ctx context.Context) ([]domain.EventDetail, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error)
	Update(ctx context.Context, id, organizerID int64, req *domain.UpdateEventRequest) (*domain.Event, error)
	Delete(ctx context.Context, id, organizerID int64) error
}

type eventService struct {
	eventRepo     repository.EventRepository
	organizerRepo repository.OrganizerRepository
	locationRepo  repository.LocationRepository
	publisher     bus.Publisher
}

func NewEventService(
	eventRepo repository.EventRepository,
	organizerRepo repository.OrganizerRepository,
	locationRepo repository.LocationRepository,
	publisher bus.Publisher,
) EventService {
	return &eventService{
		eventRepo:     eventRepo,
		organizerRepo: organizerRepo,
		locationRepo:  locationRepo,
		publisher:     publisher,
	}
}

func (s *eventService) Create(ctx context.Context, organizerID int64, req *domain.CreateEventRequest) (*domain.Event, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Relations are checked by lookup so a stale reference answers 404,
	// not a foreign-key 500. The organizer id comes from the session, but
	// the row may have been removed since the token was minted.
	if err := s.validateRelations(ctx, organizerID, req.LocationID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.Create(ctx, organizerID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if err := s.publisher.Publish(ctx, bus.EventCreated, bus.EventChangedEvent{
		EventID:     event.ID,
		OrganizerID: event.OrganizerID,
		EventName:   event.EventName,
		EventDate:   event.EventDate,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish event.created", "error", err, "event_id", event.ID)
	}

	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.EventDetail, error) {
	detail, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

func (s *eventService) List(ctx context.Context) ([]domain.EventDetail, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	events, err := s.eventRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizer events: %w", err)
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id, organizerID int64, req *domain.UpdateEventRequest) (*domain.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.eventRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.OrganizerID != organizerID {
		return nil, domain.ErrNotOwner
	}

	if req.LocationID != nil {
		location, err := s.locationRepo.FindByID(ctx, *req.LocationID)
		if err != nil {
			return nil, fmt.Errorf("failed to check location: %w", err)
		}
		if location == nil {
			return nil, domain.ErrLocationNotFound
		}
	}

	event, err := s.eventRepo.UpdateOwned(ctx, id, organizerID, req)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if event == nil {
		// Owned row vanished between the check and the scoped update.
		return nil, domain.ErrNotFound
	}

	if err := s.publisher.Publish(ctx, bus.EventUpdated, bus.EventChangedEvent{
		EventID:     event.ID,
		OrganizerID: event.OrganizerID,
		EventName:   event.EventName,
		EventDate:   event.EventDate,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish event.updated", "error", err, "event_id", event.ID)
	}

	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id, organizerID int64) error {
	deleted, err := s.eventRepo.DeleteOwned(ctx, id, organizerID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if !deleted {
		// Either no such event or it belongs to someone else; the caller
		// cannot tell which, on purpose.
		return domain.ErrNotFound
	}

	if err := s.publisher.Publish(ctx, bus.EventDeleted, bus.EventChangedEvent{
		EventID:     id,
		OrganizerID: organizerID,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish event.deleted", "error", err, "event_id", id)
	}

	return nil
}

func (s *eventService) validateRelations(ctx context.Context, organizerID, locationID int64) error {
	organizer, err := s.organizerRepo.FindByID(ctx, organizerID)
	if err != nil {
		return fmt.Errorf("failed to check organizer: %w", err)
	}
	if organizer == nil {
		return domain.ErrOrganizerNotFound
	}

	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return fmt.Errorf("failed to check location: %w", err)
	}
	if location == nil {
		return domain.ErrLocationNotFound
	}

	return nil
}

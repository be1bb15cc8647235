package service

import (
	"context"
	"fmt"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/repository"
)

// CatalogService serves the public reference listings the event form needs:
// who can organize and where things can happen.
type CatalogService interface {
	ListOrganizers(ctx context.Context) ([]domain.OrganizerRef, error)
	ListLocations(ctx context.Context) ([]domain.LocationRef, error)
}

type catalogService struct {
	organizerRepo repository.OrganizerRepository
	locationRepo  repository.LocationRepository
}

func NewCatalogService(organizerRepo repository.OrganizerRepository, locationRepo repository.LocationRepository) CatalogService {
	return &catalogService{organizerRepo: organizerRepo, locationRepo: locationRepo}
}

func (s *catalogService) ListOrganizers(ctx context.Context) ([]domain.OrganizerRef, error) {
	refs, err := s.organizerRepo.ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizers: %w", err)
	}
	return refs, nil
}

func (s *catalogService) ListLocations(ctx context.Context) ([]domain.LocationRef, error) {
	refs, err := s.locationRepo.ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return refs, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planventura/eventos-api/internal/domain"
)

type LocationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Location, error)
	ListRefs(ctx context.Context) ([]domain.LocationRef, error)
}

type locationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &locationRepository{pool: pool}
}

func (r *locationRepository) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	const q = `SELECT location_id, address, lat, lng FROM eventlocation WHERE location_id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var l domain.Location
	err := r.pool.QueryRow(ctx, q, id).Scan(&l.ID, &l.Address, &l.Lat, &l.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepository) ListRefs(ctx context.Context) ([]domain.LocationRef, error) {
	const q = `SELECT location_id, address FROM eventlocation ORDER BY address`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.LocationRef
	for rows.Next() {
		var ref domain.LocationRef
		if err := rows.Scan(&ref.ID, &ref.Address); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

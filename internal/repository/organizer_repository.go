package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planventura/eventos-api/internal/domain"
)

type OrganizerRepository interface {
	Create(ctx context.Context, req *domain.CreateOrganizerRequest, contactHash string) (*domain.Organizer, error)
	FindByName(ctx context.Context, name string) (*domain.Organizer, error)
	FindByID(ctx context.Context, id int64) (*domain.Organizer, error)
	ListRefs(ctx context.Context) ([]domain.OrganizerRef, error)
}

type organizerRepository struct {
	pool *pgxpool.Pool
}

func NewOrganizerRepository(pool *pgxpool.Pool) OrganizerRepository {
	return &organizerRepository{pool: pool}
}

const organizerCols = `organizer_id, organizer_name, contact, organizer_type, created_at, updated_at`

func scanOrganizer(row pgx.Row) (*domain.Organizer, error) {
	var o domain.Organizer
	err := row.Scan(&o.ID, &o.OrganizerName, &o.ContactHash, &o.OrganizerType, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *organizerRepository) Create(ctx context.Context, req *domain.CreateOrganizerRequest, contactHash string) (*domain.Organizer, error) {
	const q = `
		INSERT INTO organizer (organizer_name, contact, organizer_type)
		VALUES ($1, $2, $3)
		RETURNING ` + organizerCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	o, err := scanOrganizer(r.pool.QueryRow(ctx, q, req.OrganizerName, contactHash, req.OrganizerType))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrOrganizerNameTaken
		}
		return nil, err
	}
	return o, nil
}

func (r *organizerRepository) FindByName(ctx context.Context, name string) (*domain.Organizer, error) {
	const q = `SELECT ` + organizerCols + ` FROM organizer WHERE organizer_name = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	o, err := scanOrganizer(r.pool.QueryRow(ctx, q, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (r *organizerRepository) FindByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	const q = `SELECT ` + organizerCols + ` FROM organizer WHERE organizer_id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	o, err := scanOrganizer(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (r *organizerRepository) ListRefs(ctx context.Context) ([]domain.OrganizerRef, error) {
	const q = `SELECT organizer_id, organizer_name FROM organizer ORDER BY organizer_name`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.OrganizerRef
	for rows.Next() {
		var ref domain.OrganizerRef
		if err := rows.Scan(&ref.ID, &ref.OrganizerName); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

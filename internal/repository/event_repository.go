package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planventura/eventos-api/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, organizerID int64, req *domain.CreateEventRequest) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.EventDetail, error)
	List(ctx context.Context) ([]domain.EventDetail, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error)
	UpdateOwned(ctx context.Context, id, organizerID int64, req *domain.UpdateEventRequest) (*domain.Event, error)
	DeleteOwned(ctx context.Context, id, organizerID int64) (bool, error)
	Exists(ctx context.Context, id int64) (*domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

// Dates and times-of-day cross the API as validated strings; the columns stay
// DATE and TIME so ordering and comparisons happen in SQL.
const eventCols = `event_id, event_name, description,
to_char(event_date, 'YYYY-MM-DD'),
to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
price, availability, lat, lng, image,
preference_1, preference_2, preference_3, weather_preference,
organizer_id, location_id, created_at, updated_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.EventName, &e.Description,
		&e.EventDate, &e.StartTime, &e.EndTime,
		&e.Price, &e.Availability, &e.Lat, &e.Lng, &e.Image,
		&e.Preference1, &e.Preference2, &e.Preference3, &e.WeatherPreference,
		&e.OrganizerID, &e.LocationID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, organizerID int64, req *domain.CreateEventRequest) (*domain.Event, error) {
	const q = `
		INSERT INTO eventinfo (
			event_name, description, event_date, start_time, end_time,
			price, availability, lat, lng, image,
			preference_1, preference_2, preference_3, weather_preference,
			organizer_id, location_id
		) VALUES ($1, $2, $3::date, $4::time, $5::time, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + eventCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanEvent(r.pool.QueryRow(ctx, q,
		req.EventName, req.Description, req.EventDate, req.StartTime, req.EndTime,
		req.Price, req.Availability, req.Lat, req.Lng, req.Image,
		req.Preference1, req.Preference2, req.Preference3, req.WeatherPreference,
		organizerID, req.LocationID,
	))
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.EventDetail, error) {
	const q = `
		SELECT e.event_id, e.event_name, e.description,
			to_char(e.event_date, 'YYYY-MM-DD'),
			to_char(e.start_time, 'HH24:MI'), to_char(e.end_time, 'HH24:MI'),
			e.price, e.availability, e.lat, e.lng, e.image,
			e.preference_1, e.preference_2, e.preference_3, e.weather_preference,
			e.organizer_id, e.location_id, e.created_at, e.updated_at,
			o.organizer_name, l.address
		FROM eventinfo e
		JOIN organizer o ON o.organizer_id = e.organizer_id
		JOIN eventlocation l ON l.location_id = e.location_id
		WHERE e.event_id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var d domain.EventDetail
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&d.ID, &d.EventName, &d.Description,
		&d.EventDate, &d.StartTime, &d.EndTime,
		&d.Price, &d.Availability, &d.Lat, &d.Lng, &d.Image,
		&d.Preference1, &d.Preference2, &d.Preference3, &d.WeatherPreference,
		&d.OrganizerID, &d.LocationID, &d.CreatedAt, &d.UpdatedAt,
		&d.OrganizerName, &d.Address,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.EventDetail, error) {
	const q = `
		SELECT e.event_id, e.event_name, e.description,
			to_char(e.event_date, 'YYYY-MM-DD'),
			to_char(e.start_time, 'HH24:MI'), to_char(e.end_time, 'HH24:MI'),
			e.price, e.availability, e.lat, e.lng, e.image,
			e.preference_1, e.preference_2, e.preference_3, e.weather_preference,
			e.organizer_id, e.location_id, e.created_at, e.updated_at,
			o.organizer_name, l.address
		FROM eventinfo e
		JOIN organizer o ON o.organizer_id = e.organizer_id
		JOIN eventlocation l ON l.location_id = e.location_id
		ORDER BY e.event_date, e.start_time`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.EventDetail
	for rows.Next() {
		var d domain.EventDetail
		if err := rows.Scan(
			&d.ID, &d.EventName, &d.Description,
			&d.EventDate, &d.StartTime, &d.EndTime,
			&d.Price, &d.Availability, &d.Lat, &d.Lng, &d.Image,
			&d.Preference1, &d.Preference2, &d.Preference3, &d.WeatherPreference,
			&d.OrganizerID, &d.LocationID, &d.CreatedAt, &d.UpdatedAt,
			&d.OrganizerName, &d.Address,
		); err != nil {
			return nil, err
		}
		events = append(events, d)
	}

	return events, rows.Err()
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	const q = `SELECT ` + eventCols + ` FROM eventinfo WHERE organizer_id = $1 ORDER BY event_date DESC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.EventName, &e.Description,
			&e.EventDate, &e.StartTime, &e.EndTime,
			&e.Price, &e.Availability, &e.Lat, &e.Lng, &e.Image,
			&e.Preference1, &e.Preference2, &e.Preference3, &e.WeatherPreference,
			&e.OrganizerID, &e.LocationID, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// UpdateOwned mutates the row only when both id and owner match, so a valid
// session for another organizer can never reach it.
func (r *eventRepository) UpdateOwned(ctx context.Context, id, organizerID int64, req *domain.UpdateEventRequest) (*domain.Event, error) {
	const q = `
		UPDATE eventinfo
		SET
			event_name = COALESCE($3, event_name),
			description = COALESCE($4, description),
			event_date = COALESCE($5::date, event_date),
			start_time = COALESCE($6::time, start_time),
			end_time = COALESCE($7::time, end_time),
			price = COALESCE($8, price),
			availability = COALESCE($9, availability),
			lat = COALESCE($10, lat),
			lng = COALESCE($11, lng),
			image = COALESCE($12, image),
			preference_1 = COALESCE($13, preference_1),
			preference_2 = COALESCE($14, preference_2),
			preference_3 = COALESCE($15, preference_3),
			weather_preference = COALESCE($16, weather_preference),
			location_id = COALESCE($17, location_id),
			updated_at = now()
		WHERE event_id = $1 AND organizer_id = $2
		RETURNING ` + eventCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	e, err := scanEvent(r.pool.QueryRow(ctx, q, id, organizerID,
		req.EventName, req.Description, req.EventDate, req.StartTime, req.EndTime,
		req.Price, req.Availability, req.Lat, req.Lng, req.Image,
		req.Preference1, req.Preference2, req.Preference3, req.WeatherPreference,
		req.LocationID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// DeleteOwned is the scoped delete: both id and owner id in the predicate.
func (r *eventRepository) DeleteOwned(ctx context.Context, id, organizerID int64) (bool, error) {
	const q = `DELETE FROM eventinfo WHERE event_id = $1 AND organizer_id = $2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id, organizerID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *eventRepository) Exists(ctx context.Context, id int64) (*domain.Event, error) {
	const q = `SELECT ` + eventCols + ` FROM eventinfo WHERE event_id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	e, err := scanEvent(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

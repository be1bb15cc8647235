package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planventura/eventos-api/internal/domain"
)

type ReservationRepository interface {
	Create(ctx context.Context, userID, eventID int64, quantity int) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ReservationWithEvent, error)
	DeleteByUserAndEvent(ctx context.Context, userID, eventID int64) (bool, error)
}

type reservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &reservationRepository{pool: pool}
}

func (r *reservationRepository) Create(ctx context.Context, userID, eventID int64, quantity int) (*domain.Reservation, error) {
	const q = `
		INSERT INTO reservation (user_id, event_id, ticket_quantity, status, reservation_date)
		VALUES ($1, $2, $3, 'active', now())
		RETURNING reservation_id, user_id, event_id, ticket_quantity, status, reservation_date`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var res domain.Reservation
	err := r.pool.QueryRow(ctx, q, userID, eventID, quantity).Scan(
		&res.ID, &res.UserID, &res.EventID, &res.TicketQuantity, &res.Status, &res.ReservationDate,
	)
	if err != nil {
		// One reservation per (user, event); the unique constraint closes
		// the concurrent double-submit race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateReservation
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ReservationWithEvent, error) {
	const q = `
		SELECT res.reservation_id, res.user_id, res.event_id, res.ticket_quantity, res.status, res.reservation_date,
			e.event_id, e.event_name, e.description,
			to_char(e.event_date, 'YYYY-MM-DD'),
			to_char(e.start_time, 'HH24:MI'), to_char(e.end_time, 'HH24:MI'),
			e.price, e.availability, e.lat, e.lng, e.image,
			e.preference_1, e.preference_2, e.preference_3, e.weather_preference,
			e.organizer_id, e.location_id, e.created_at, e.updated_at
		FROM reservation res
		JOIN eventinfo e ON e.event_id = res.event_id
		WHERE res.user_id = $1
		ORDER BY res.reservation_date DESC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ReservationWithEvent
	for rows.Next() {
		var rw domain.ReservationWithEvent
		if err := rows.Scan(
			&rw.ID, &rw.UserID, &rw.EventID, &rw.TicketQuantity, &rw.Status, &rw.ReservationDate,
			&rw.Event.ID, &rw.Event.EventName, &rw.Event.Description,
			&rw.Event.EventDate, &rw.Event.StartTime, &rw.Event.EndTime,
			&rw.Event.Price, &rw.Event.Availability, &rw.Event.Lat, &rw.Event.Lng, &rw.Event.Image,
			&rw.Event.Preference1, &rw.Event.Preference2, &rw.Event.Preference3, &rw.Event.WeatherPreference,
			&rw.Event.OrganizerID, &rw.Event.LocationID, &rw.Event.CreatedAt, &rw.Event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rw)
	}

	return out, rows.Err()
}

func (r *reservationRepository) DeleteByUserAndEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	const q = `DELETE FROM reservation WHERE user_id = $1 AND event_id = $2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, userID, eventID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/timeutil"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a PostgreSQL-backed reservation ledger. The
// reservations table carries a gist exclusion constraint over
// (unit_id, date, occupied minute range) for non-cancelled rows, so a losing
// concurrent writer is rejected with ErrConflict even across processes.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reservationColumns = `
	id, unit_id, date, duration_class_id, start_time,
	customer_name, customer_email, customer_phone,
	total_price, status, created_at, is_manual, waiver_ref, session_id
`

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	startMinute, err := timeutil.TimeToMinutes(res.StartTime)
	if err != nil {
		return err
	}

	// duration_minutes is denormalized from the duration class at insert time
	// so the exclusion constraint can compute the occupied range from the row
	// alone. Same principle as the price: fixed at creation.
	const query = `
		INSERT INTO public.reservations
			(id, unit_id, date, duration_class_id, start_time, start_minute, duration_minutes,
			 customer_name, customer_email, customer_phone,
			 total_price, status, created_at, is_manual, waiver_ref, session_id)
		SELECT $1, $2, $3, $4, $5, $6, dc.duration_minutes,
		       $7, $8, $9, $10, $11, $12, $13, $14, $15
		FROM public.duration_classes dc
		WHERE dc.id = $4
	`
	ct, err := r.pool.Exec(ctx, query,
		res.ID, res.UnitID, res.Date, res.DurationClassID, res.StartTime, startMinute,
		res.CustomerName, res.CustomerEmail, res.CustomerPhone,
		res.TotalPrice, res.Status, res.CreatedAt, res.IsManual, res.WaiverRef, res.SessionID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation, pgerrcode.UniqueViolation:
				return ErrConflict
			}
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("create reservation failed: unknown duration class %q", res.DurationClassID)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := "SELECT " + reservationColumns + " FROM public.reservations WHERE id = $1"

	var res Reservation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.UnitID, &res.Date, &res.DurationClassID, &res.StartTime,
		&res.CustomerName, &res.CustomerEmail, &res.CustomerPhone,
		&res.TotalPrice, &res.Status, &res.CreatedAt, &res.IsManual, &res.WaiverRef, &res.SessionID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "unit_id", "date", "duration_class_id", "start_time",
		"customer_name", "customer_email", "customer_phone",
		"total_price", "status", "created_at", "is_manual", "waiver_ref", "session_id",
	).From("public.reservations")

	if filter.UnitID != "" {
		query = query.Where(squirrel.Eq{"unit_id": filter.UnitID})
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"date": filter.Date})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	query = query.OrderBy("created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.UnitID, &res.Date, &res.DurationClassID, &res.StartTime,
			&res.CustomerName, &res.CustomerEmail, &res.CustomerPhone,
			&res.TotalPrice, &res.Status, &res.CreatedAt, &res.IsManual, &res.WaiverRef, &res.SessionID,
		); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		out = append(out, &res)
	}
	return out, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error) {
	const query = `
		UPDATE public.reservations
		SET status = $2
		WHERE id = $1
	`
	ct, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *pgxRepository) UpdateSessionRef(ctx context.Context, ids []string, sessionID string) error {
	if len(ids) == 0 {
		return nil
	}
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("session_id", sessionID).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update session ref query failed: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update session ref failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservations").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservations query failed: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete reservations failed: %w", err)
	}
	return nil
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a PostgreSQL-backed catalog repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) ListUnits(ctx context.Context) ([]*Unit, error) {
	query, args, err := psql.Select("id", "name", "description", "image", "status").
		From("public.units").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list units query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units failed: %w", err)
	}
	defer rows.Close()

	var units []*Unit
	for rows.Next() {
		var u Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Description, &u.Image, &u.Status); err != nil {
			return nil, fmt.Errorf("scan unit failed: %w", err)
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}

func (r *pgxRepository) GetUnit(ctx context.Context, id string) (*Unit, error) {
	query, args, err := psql.Select("id", "name", "description", "image", "status").
		From("public.units").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get unit query failed: %w", err)
	}

	var u Unit
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Name, &u.Description, &u.Image, &u.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("get unit failed: %w", err)
	}
	return &u, nil
}

// ReplaceUnits overwrites the whole fleet table inside one transaction.
func (r *pgxRepository) ReplaceUnits(ctx context.Context, units []*Unit) error {
	return r.replaceAll(ctx, "public.units", func(tx pgx.Tx) error {
		for _, u := range units {
			query, args, err := psql.Insert("public.units").
				Columns("id", "name", "description", "image", "status").
				Values(u.ID, u.Name, u.Description, u.Image, u.Status).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert unit query failed: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("insert unit failed: %w", err)
			}
		}
		return nil
	})
}

func (r *pgxRepository) ListDurationClasses(ctx context.Context) ([]*DurationClass, error) {
	query, args, err := psql.Select("id", "label", "duration_minutes", "weekday_price", "weekend_price").
		From("public.duration_classes").
		OrderBy("duration_minutes").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list duration classes query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list duration classes failed: %w", err)
	}
	defer rows.Close()

	var classes []*DurationClass
	for rows.Next() {
		var dc DurationClass
		if err := rows.Scan(&dc.ID, &dc.Label, &dc.DurationMinutes, &dc.WeekdayPrice, &dc.WeekendPrice); err != nil {
			return nil, fmt.Errorf("scan duration class failed: %w", err)
		}
		classes = append(classes, &dc)
	}
	return classes, rows.Err()
}

func (r *pgxRepository) GetDurationClass(ctx context.Context, id string) (*DurationClass, error) {
	query, args, err := psql.Select("id", "label", "duration_minutes", "weekday_price", "weekend_price").
		From("public.duration_classes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get duration class query failed: %w", err)
	}

	var dc DurationClass
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&dc.ID, &dc.Label, &dc.DurationMinutes, &dc.WeekdayPrice, &dc.WeekendPrice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDurationClassNotFound
		}
		return nil, fmt.Errorf("get duration class failed: %w", err)
	}
	return &dc, nil
}

func (r *pgxRepository) ReplaceDurationClasses(ctx context.Context, classes []*DurationClass) error {
	return r.replaceAll(ctx, "public.duration_classes", func(tx pgx.Tx) error {
		for _, dc := range classes {
			query, args, err := psql.Insert("public.duration_classes").
				Columns("id", "label", "duration_minutes", "weekday_price", "weekend_price").
				Values(dc.ID, dc.Label, dc.DurationMinutes, dc.WeekdayPrice, dc.WeekendPrice).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert duration class query failed: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("insert duration class failed: %w", err)
			}
		}
		return nil
	})
}

func (r *pgxRepository) ListBlackoutDates(ctx context.Context) ([]*BlackoutDate, error) {
	query, args, err := psql.Select("id", "date", "reason").
		From("public.blackout_dates").
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blackout dates query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates failed: %w", err)
	}
	defer rows.Close()

	var dates []*BlackoutDate
	for rows.Next() {
		var bd BlackoutDate
		if err := rows.Scan(&bd.ID, &bd.Date, &bd.Reason); err != nil {
			return nil, fmt.Errorf("scan blackout date failed: %w", err)
		}
		dates = append(dates, &bd)
	}
	return dates, rows.Err()
}

func (r *pgxRepository) ReplaceBlackoutDates(ctx context.Context, dates []*BlackoutDate) error {
	return r.replaceAll(ctx, "public.blackout_dates", func(tx pgx.Tx) error {
		for _, bd := range dates {
			query, args, err := psql.Insert("public.blackout_dates").
				Columns("id", "date", "reason").
				Values(bd.ID, bd.Date, bd.Reason).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert blackout date query failed: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("insert blackout date failed: %w", err)
			}
		}
		return nil
	})
}

func (r *pgxRepository) GetSettings(ctx context.Context) (*Settings, error) {
	const query = `
		SELECT business_name, business_phone, business_email, business_address,
		       operating_hours_start, operating_hours_end
		FROM public.settings
		WHERE id = 1
	`
	var s Settings
	if err := r.pool.QueryRow(ctx, query).Scan(
		&s.BusinessName, &s.BusinessPhone, &s.BusinessEmail, &s.BusinessAddress,
		&s.OperatingHoursStart, &s.OperatingHoursEnd,
	); err != nil {
		return nil, fmt.Errorf("get settings failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error) {
	current, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	applySettingsPatch(current, patch)

	query, args, err := psql.Update("public.settings").
		Set("business_name", current.BusinessName).
		Set("business_phone", current.BusinessPhone).
		Set("business_email", current.BusinessEmail).
		Set("business_address", current.BusinessAddress).
		Set("operating_hours_start", current.OperatingHoursStart).
		Set("operating_hours_end", current.OperatingHoursEnd).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update settings query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update settings failed: %w", err)
	}
	return current, nil
}

// replaceAll truncates a catalog table and repopulates it within a single
// transaction, so readers never observe a half-replaced collection.
func (r *pgxRepository) replaceAll(ctx context.Context, table string, insert func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s failed: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

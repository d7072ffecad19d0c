package review

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

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	query, args, err := psql.Insert("public.reviews").
		Columns("id", "customer_name", "rating", "comment", "date", "approved").
		Values(rv.ID, rv.CustomerName, rv.Rating, rv.Comment, rv.Date, rv.Approved).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create review query failed: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, approvedOnly bool) ([]*Review, error) {
	query := psql.Select("id", "customer_name", "rating", "comment", "date", "approved").
		From("public.reviews").
		OrderBy("date DESC")
	if approvedOnly {
		query = query.Where(squirrel.Eq{"approved": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var out []*Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.Date, &rv.Approved); err != nil {
			return nil, fmt.Errorf("scan review failed: %w", err)
		}
		out = append(out, &rv)
	}
	return out, rows.Err()
}

func (r *pgxRepository) SetApproved(ctx context.Context, id string, approved bool) (*Review, error) {
	const query = `
		UPDATE public.reviews
		SET approved = $2
		WHERE id = $1
		RETURNING id, customer_name, rating, comment, date, approved
	`
	var rv Review
	if err := r.pool.QueryRow(ctx, query, id, approved).
		Scan(&rv.ID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.Date, &rv.Approved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update review failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete review query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

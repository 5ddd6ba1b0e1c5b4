package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/pkg/metric"
	"github.com/SouthBennett/pizza/pkg/storage/postgres"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresOrderRepository persists orders in the "orders" table. The
// email column carries a UNIQUE constraint; a violation surfaces as
// entity.ErrDuplicateEmail.
type PostgresOrderRepository struct {
	db      *postgres.Postgres
	metrics metric.Storage
}

func NewPostgresOrderRepository(db *postgres.Postgres, metrics metric.Storage) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db, metrics: metrics}
}

func (r *PostgresOrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	const op = "repository.order.Create"

	query := r.db.Builder.Insert(`"orders"`).
		Columns("fname", "lname", "email", "size", "method", "toppings", `"timestamp"`).
		Values(
			order.FirstName,
			order.LastName,
			order.Email,
			order.Size,
			order.Method,
			order.Toppings,
			order.CreatedAt,
		).
		Suffix(`RETURNING id, fname, lname, email, size, method, toppings, "timestamp"`)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	start := time.Now()
	result := &entity.Order{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&result.Email,
		&result.Size,
		&result.Method,
		&result.Toppings,
		&result.CreatedAt,
	)
	r.metrics.ObserveQuery("insert_order", time.Since(start))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrDuplicateEmail
		}
		r.metrics.IncrementFailures("insert_order")
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	// Comment is not persisted; carry it through for the confirmation page.
	result.Comment = order.Comment

	return result, nil
}

func (r *PostgresOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	const op = "repository.order.List"

	query := r.db.Builder.
		Select("id", "fname", "lname", "email", "size", "method", "toppings", `"timestamp"`).
		From(`"orders"`).
		OrderBy(`"timestamp" DESC`)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	start := time.Now()
	rows, err := r.db.Pool.Query(ctx, sql, args...)
	r.metrics.ObserveQuery("list_orders", time.Since(start))
	if err != nil {
		r.metrics.IncrementFailures("list_orders")
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order := &entity.Order{}
		if err = rows.Scan(
			&order.ID,
			&order.FirstName,
			&order.LastName,
			&order.Email,
			&order.Size,
			&order.Method,
			&order.Toppings,
			&order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		orders = append(orders, order)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return orders, nil
}

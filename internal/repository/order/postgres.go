package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"stylegenie-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const orderColumns = `
id::text, user_id, order_number, items, total_cents,
street, city, state, zip, country,
payment_method, payment_status, order_date, delivery_date,
status, cancellation_reason, shipping_cost_cents, tax_cents, discount_cents, created_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO orders (
    user_id, order_number, items, total_cents,
    street, city, state, zip, country,
    payment_method, payment_status, order_date,
    status, shipping_cost_cents, tax_cents, discount_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING ` + orderColumns
	created, err := scanOrder(r.pool.QueryRow(ctx, q,
		o.UserID,
		o.OrderNumber,
		itemsJSON,
		o.TotalCents,
		o.ShippingAddress.Street,
		o.ShippingAddress.City,
		o.ShippingAddress.State,
		o.ShippingAddress.Zip,
		o.ShippingAddress.Country,
		o.PaymentMethod,
		o.PaymentStatus,
		o.OrderDate,
		o.Status,
		o.ShippingCostCents,
		o.TaxCents,
		o.DiscountCents,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Printf("order repo: order number collision number=%s", o.OrderNumber)
			return nil, domain.ErrDuplicateOrderNumber
		}
		r.logger.Printf("order repo: create user_id=%s error=%v", o.UserID, err)
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY order_date DESC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY order_date DESC
`
	return r.list(ctx, q, userID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING ` + orderColumns
	o, err := scanOrder(r.pool.QueryRow(ctx, q, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: set status id=%s error=%v", id, err)
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON []byte
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.OrderNumber,
		&itemsJSON,
		&o.TotalCents,
		&o.ShippingAddress.Street,
		&o.ShippingAddress.City,
		&o.ShippingAddress.State,
		&o.ShippingAddress.Zip,
		&o.ShippingAddress.Country,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.OrderDate,
		&o.DeliveryDate,
		&o.Status,
		&o.CancellationReason,
		&o.ShippingCostCents,
		&o.TaxCents,
		&o.DiscountCents,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}

package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"stylegenie-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmailTaken is returned when the email already has an account.
var ErrEmailTaken = errors.New("email already registered")

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

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (full_name, mobile_number, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id::text, full_name, mobile_number, email, password_hash, created_at
`
	created, err := scanUser(r.pool.QueryRow(ctx, q, u.FullName, u.MobileNumber, strings.ToLower(u.Email), u.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		r.logger.Printf("user repo: create email=%s error=%v", u.Email, err)
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, full_name, mobile_number, email, password_hash, created_at
FROM users
WHERE id = $1
`
	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, full_name, mobile_number, email, password_hash, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1
`
	u, err := scanUser(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListWithOrderStats joins each user against their orders so the admin
// customers page gets order count, lifetime spend and last order date in one
// query instead of one lookup per user.
func (r *postgresRepo) ListWithOrderStats(ctx context.Context) ([]domain.UserOrderStats, error) {
	const q = `
SELECT u.id::text, u.full_name, u.mobile_number, u.email, u.password_hash, u.created_at,
       COUNT(o.id), COALESCE(SUM(o.total_cents), 0), MAX(o.order_date)
FROM users u
LEFT JOIN orders o ON o.user_id = u.id::text
GROUP BY u.id
ORDER BY u.created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("user repo: list with stats error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.UserOrderStats
	for rows.Next() {
		var s domain.UserOrderStats
		if err := rows.Scan(
			&s.ID, &s.FullName, &s.MobileNumber, &s.Email, &s.PasswordHash, &s.CreatedAt,
			&s.OrderCount, &s.TotalSpentCents, &s.LastOrderDate,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FullName, &u.MobileNumber, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

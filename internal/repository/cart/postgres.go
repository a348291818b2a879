package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"stylegenie-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. Line items live in a
// JSONB column on the cart row, so every mutation rewrites the whole array
// under a row lock; concurrent merges for the same user serialize on it.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
SELECT id::text, user_id, items, created_at, updated_at
FROM carts
WHERE user_id = $1
`
	return scanCart(r.pool.QueryRow(ctx, q, userID))
}

func (r *postgresRepo) AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	return r.mutate(ctx, userID, true, func(cart *domain.Cart) error {
		cart.Merge(item)
		return nil
	})
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, userID, productID, color, size string, quantity int) (*domain.Cart, error) {
	cart, err := r.mutate(ctx, userID, false, func(cart *domain.Cart) error {
		if !cart.SetQuantity(productID, color, size, quantity) {
			return domain.ErrItemNotFound
		}
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrItemNotFound
	}
	return cart, err
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, productID, color, size string) (*domain.Cart, error) {
	cart, err := r.mutate(ctx, userID, false, func(cart *domain.Cart) error {
		cart.RemoveItem(productID, color, size)
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		// No cart means nothing to remove; report the empty state.
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	return cart, err
}

func (r *postgresRepo) ClearItems(ctx context.Context, userID string) error {
	const q = `
UPDATE carts
SET items = '[]'::jsonb, updated_at = now()
WHERE user_id = $1
`
	_, err := r.pool.Exec(ctx, q, userID)
	if err != nil {
		r.logger.Printf("cart repo: clear user_id=%s error=%v", userID, err)
	}
	return err
}

// mutate loads the user's cart under FOR UPDATE, applies fn to the decoded
// line array and writes it back in the same transaction. With createMissing
// an empty cart row is inserted first; otherwise an absent cart surfaces as
// domain.ErrNotFound.
func (r *postgresRepo) mutate(ctx context.Context, userID string, createMissing bool, fn func(*domain.Cart) error) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if createMissing {
		if _, err := tx.Exec(ctx, `
INSERT INTO carts (user_id, items)
VALUES ($1, '[]'::jsonb)
ON CONFLICT (user_id) DO NOTHING
`, userID); err != nil {
			return nil, err
		}
	}

	cart, err := scanCart(tx.QueryRow(ctx, `
SELECT id::text, user_id, items, created_at, updated_at
FROM carts
WHERE user_id = $1
FOR UPDATE
`, userID))
	if err != nil {
		return nil, err
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
UPDATE carts
SET items = $1, updated_at = now()
WHERE id = $2
`, itemsJSON, cart.ID); err != nil {
		r.logger.Printf("cart repo: write user_id=%s error=%v", userID, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return cart, nil
}

func scanCart(row pgx.Row) (*domain.Cart, error) {
	var cart domain.Cart
	var itemsJSON []byte
	err := row.Scan(&cart.ID, &cart.UserID, &itemsJSON, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}

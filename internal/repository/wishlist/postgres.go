package wishlist

import (
	"context"
	"io"
	"log"

	"stylegenie-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. Membership is one row
// per (user, product), so toggling is a delete-then-insert with no
// read-modify-write window.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM wishlist_items
WHERE user_id = $1 AND product_id = $2
`, userID, productID)
	if err != nil {
		r.logger.Printf("wishlist repo: toggle delete user_id=%s error=%v", userID, err)
		return false, err
	}
	if cmd.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO wishlist_items (user_id, product_id)
VALUES ($1, $2)
ON CONFLICT (user_id, product_id) DO NOTHING
`, userID, productID); err != nil {
		r.logger.Printf("wishlist repo: toggle insert user_id=%s error=%v", userID, err)
		return false, err
	}
	return true, nil
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error) {
	rows, err := r.pool.Query(ctx, `
SELECT product_id
FROM wishlist_items
WHERE user_id = $1
ORDER BY added_at ASC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	w := domain.Wishlist{UserID: userID, ProductIDs: []string{}}
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return nil, err
		}
		w.ProductIDs = append(w.ProductIDs, productID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *postgresRepo) Contains(ctx context.Context, userID, productID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2
)
`, userID, productID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

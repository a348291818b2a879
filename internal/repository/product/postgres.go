package product

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

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `
id::text, name, COALESCE(description, ''), category,
regular_price_cents, sale_price_cents, stock, status,
images, colors, sizes, features, collection, lens_id, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	images, colors, sizes, features, err := marshalLists(p)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO products (
    id, name, description, category, regular_price_cents, sale_price_cents,
    stock, status, images, colors, sizes, features, collection, lens_id
) VALUES (
    COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()),
    $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING ` + productColumns
	created, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.Category, p.RegularPriceCents, p.SalePriceCents,
		p.Stock, p.Status, images, colors, sizes, features, p.Collection, p.LensID,
	))
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	images, colors, sizes, features, err := marshalLists(p)
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE products SET
    name = $2, description = NULLIF($3, ''), category = $4,
    regular_price_cents = $5, sale_price_cents = $6, stock = $7, status = $8,
    images = $9, colors = $10, sizes = $11, features = $12,
    collection = $13, lens_id = $14, updated_at = now()
WHERE id = $1
RETURNING ` + productColumns
	updated, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.Category, p.RegularPriceCents, p.SalePriceCents,
		p.Stock, p.Status, images, colors, sizes, features, p.Collection, p.LensID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalLists(p domain.Product) (images, colors, sizes, features []byte, err error) {
	if images, err = json.Marshal(emptyIfNil(p.Images)); err != nil {
		return
	}
	if colors, err = json.Marshal(emptyIfNil(p.Colors)); err != nil {
		return
	}
	if sizes, err = json.Marshal(emptyIfNil(p.Sizes)); err != nil {
		return
	}
	features, err = json.Marshal(emptyIfNil(p.Features))
	return
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var images, colors, sizes, features []byte
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.RegularPriceCents,
		&p.SalePriceCents,
		&p.Stock,
		&p.Status,
		&images,
		&colors,
		&sizes,
		&features,
		&p.Collection,
		&p.LensID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, pair := range []struct {
		raw []byte
		dst *[]string
	}{
		{images, &p.Images},
		{colors, &p.Colors},
		{sizes, &p.Sizes},
		{features, &p.Features},
	} {
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	ID         string
	Name       string
	Desc       string
	Category   string
	Collection string
	PriceCents int64
	SaleCents  *int64
	Stock      int
	Images     []string
	Colors     []string
	Sizes      []string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureUser(ctx, pool, "Demo Shopper", "demo@stylegenie.test", "demo1234"); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	sale := int64(3499)
	products := []productSeed{
		{
			ID:         "8f7c1a52-0000-4000-8000-000000000001",
			Name:       "Classic Oxford Shirt",
			Desc:       "Button-down oxford in breathable cotton",
			Category:   "shirts",
			Collection: "popular",
			PriceCents: 4999,
			SaleCents:  &sale,
			Stock:      40,
			Images:     []string{"/images/oxford-shirt.jpg"},
			Colors:     []string{"white", "blue"},
			Sizes:      []string{"S", "M", "L", "XL"},
		},
		{
			ID:         "8f7c1a52-0000-4000-8000-000000000002",
			Name:       "Canvas Low-Top Sneakers",
			Desc:       "Everyday sneakers with a rubber sole",
			Category:   "Shoes",
			Collection: "newArrivals",
			PriceCents: 6499,
			Stock:      25,
			Images:     []string{"/images/canvas-sneakers.jpg"},
			Colors:     []string{"black", "off-white"},
			Sizes:      []string{"7", "8", "9", "10"},
		},
		{
			ID:         "8f7c1a52-0000-4000-8000-000000000003",
			Name:       "Leather Belt",
			Desc:       "Full-grain leather with a brushed buckle",
			Category:   "Accessories",
			Collection: "featured",
			PriceCents: 2999,
			Stock:      60,
			Images:     []string{"/images/leather-belt.jpg"},
			Colors:     []string{"brown", "black"},
			Sizes:      []string{"32", "34", "36"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (full_name, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, name, email, string(hash))
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return err
	}
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO products (
    id, name, description, category, collection,
    regular_price_cents, sale_price_cents, stock, images, colors, sizes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    collection = EXCLUDED.collection,
    regular_price_cents = EXCLUDED.regular_price_cents,
    sale_price_cents = EXCLUDED.sale_price_cents,
    stock = EXCLUDED.stock,
    images = EXCLUDED.images,
    colors = EXCLUDED.colors,
    sizes = EXCLUDED.sizes,
    updated_at = now()
`
	_, err = pool.Exec(ctx, q,
		p.ID, p.Name, p.Desc, p.Category, p.Collection,
		p.PriceCents, p.SaleCents, p.Stock, images, colors, sizes,
	)
	return err
}

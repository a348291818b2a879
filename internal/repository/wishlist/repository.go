package wishlist

import (
	"context"

	"stylegenie-backend/internal/domain"
)

type Repository interface {
	// Toggle adds the product when absent and removes it when present,
	// reporting whether the product ended up in the wishlist.
	Toggle(ctx context.Context, userID, productID string) (added bool, err error)
	GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error)
	Contains(ctx context.Context, userID, productID string) (bool, error)
}

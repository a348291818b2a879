package cart

import (
	"context"

	"stylegenie-backend/internal/domain"
)

// Repository persists one cart document per user with its line items
// embedded. GetByUser returns domain.ErrNotFound when no cart row exists;
// callers treat that as an empty cart.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, productID, color, size string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID, color, size string) (*domain.Cart, error)
	ClearItems(ctx context.Context, userID string) error
}

package order

import (
	"context"

	"stylegenie-backend/internal/domain"
)

// Repository persists orders as self-contained documents: line items and the
// shipping address are embedded so an order never depends on the referenced
// products still existing.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

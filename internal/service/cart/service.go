package cart

import (
	"context"
	"errors"
	"time"

	"stylegenie-backend/internal/domain"
	"github.com/google/uuid"
)

// Service applies the cart rules: product lookup and price snapshotting at
// add-time, merge-by-variant, absolute quantity updates and idempotent
// removal. The repository is the only state; nothing survives in memory.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, productID, color, size string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID, color, size string) (*domain.Cart, error)
	ClearItems(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// AddItem validates the product, freezes its name/image/price into a line
// and merges it into the user's cart, creating the cart on first use.
// An unknown product surfaces as domain.ErrNotFound.
func (s *Service) AddItem(ctx context.Context, userID, productID, color, size string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := domain.CartItem{
		ID:             uuid.NewString(),
		ProductID:      product.ID,
		Name:           product.Name,
		Image:          product.MainImage(),
		UnitPriceCents: product.SnapshotPriceCents(),
		Color:          color,
		Size:           size,
		Quantity:       quantity,
		AddedAt:        time.Now().UTC(),
	}
	return s.repo.AddItem(ctx, userID, item)
}

// Get returns the user's cart, mapping an absent cart to a valid empty one.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID, color, size string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.repo.UpdateItemQuantity(ctx, userID, productID, color, size, quantity)
}

// RemoveItem drops the matching line. Removing what is not there succeeds.
func (s *Service) RemoveItem(ctx context.Context, userID, productID, color, size string) (*domain.Cart, error) {
	return s.repo.RemoveItem(ctx, userID, productID, color, size)
}

// Clear empties the user's cart without deleting the cart row.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.ClearItems(ctx, userID)
}

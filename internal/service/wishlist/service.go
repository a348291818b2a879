package wishlist

import (
	"context"

	"stylegenie-backend/internal/domain"
)

// Service wraps wishlist set membership. There is no wishlist document to
// create: the empty set is the default state for every user.
type Service struct {
	repo wishlistRepo
}

type wishlistRepo interface {
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error)
	Contains(ctx context.Context, userID, productID string) (bool, error)
}

func New(repo wishlistRepo) *Service {
	return &Service{repo: repo}
}

// Toggle flips the product's membership and reports whether it was added.
func (s *Service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	return s.repo.Toggle(ctx, userID, productID)
}

// Get returns the user's wishlist; an empty one when nothing is saved.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Contains reports whether the product is in the user's wishlist.
func (s *Service) Contains(ctx context.Context, userID, productID string) (bool, error) {
	return s.repo.Contains(ctx, userID, productID)
}

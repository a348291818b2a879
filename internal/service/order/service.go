package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"stylegenie-backend/internal/domain"
)

// Service converts carts into immutable orders and manages the status
// lifecycle afterwards.
type Service struct {
	repo     orderRepo
	cartRepo cartRepo
	logger   *log.Logger

	// Injected for deterministic tests.
	now     func() time.Time
	randInt func(n int) int
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type cartRepo interface {
	ClearItems(ctx context.Context, userID string) error
}

func New(repo orderRepo, cartRepo cartRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:     repo,
		cartRepo: cartRepo,
		logger:   logger,
		now:      time.Now,
		randInt:  rand.Intn,
	}
}

// CreateInput carries a checkout request. Items are the cart lines as the
// client saw them; TotalCents is the client-computed total and is stored as
// given rather than re-derived from the lines.
type CreateInput struct {
	UserID        string
	Items         []domain.OrderItem
	Address       domain.Address
	TotalCents    int64
	PaymentMethod string
}

// Create persists a new order from the cart lines and then empties the
// originating cart. The order is the durability boundary: a failed insert
// leaves the cart untouched, while a failed cart clear after a persisted
// order is logged and the order stands.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !in.Address.Complete() {
		return nil, domain.ErrIncompleteAddress
	}

	address := in.Address
	if address.Country == "" {
		address.Country = "India"
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "COD"
	}

	items := make([]domain.OrderItem, len(in.Items))
	copy(items, in.Items)

	order := domain.Order{
		UserID:          in.UserID,
		OrderNumber:     s.newOrderNumber(),
		Items:           items,
		TotalCents:      in.TotalCents,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		OrderDate:       s.now().UTC(),
		Status:          domain.OrderStatusPending,
	}

	created, err := s.repo.Create(ctx, order)
	if errors.Is(err, domain.ErrDuplicateOrderNumber) {
		// Collisions need the same millisecond and the same random suffix;
		// one regeneration is all the scheme promises.
		order.OrderNumber = s.newOrderNumber()
		created, err = s.repo.Create(ctx, order)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearItems(ctx, in.UserID); err != nil {
		s.logger.Printf("order service: cart clear failed after order %s: %v", created.OrderNumber, err)
	}
	return created, nil
}

// Get returns an order by id; absence is domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll returns every order, most recent first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// ListByUser returns a user's orders, most recent first. No orders is an
// empty list, not an error.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus overwrites the order's status. Any known status may replace any
// other; only enum membership is checked.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) newOrderNumber() string {
	return fmt.Sprintf("%s-%d-%d", domain.OrderNumberPrefix, s.now().UnixMilli(), s.randInt(1000))
}

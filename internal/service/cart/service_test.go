package cart

import (
	"context"
	"errors"
	"testing"

	"stylegenie-backend/internal/domain"
)

type stubRepo struct {
	cart       *domain.Cart
	getErr     error
	addErr     error
	updateErr  error
	removeErr  error
	clearErr   error
	lastItem   domain.CartItem
	lastUserID string
	lastColor  string
	lastSize   string
	lastQty    int
	cleared    bool
}

func (s *stubRepo) GetByUser(_ context.Context, userID string) (*domain.Cart, error) {
	s.lastUserID = userID
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.cart, nil
}

func (s *stubRepo) AddItem(_ context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	s.lastUserID = userID
	s.lastItem = item
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.cart, nil
}

func (s *stubRepo) UpdateItemQuantity(_ context.Context, userID, productID, color, size string, quantity int) (*domain.Cart, error) {
	s.lastUserID = userID
	s.lastColor = color
	s.lastSize = size
	s.lastQty = quantity
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.cart, nil
}

func (s *stubRepo) RemoveItem(_ context.Context, userID, productID, color, size string) (*domain.Cart, error) {
	s.lastUserID = userID
	s.lastColor = color
	s.lastSize = size
	if s.removeErr != nil {
		return nil, s.removeErr
	}
	return s.cart, nil
}

func (s *stubRepo) ClearItems(_ context.Context, userID string) error {
	s.cleared = true
	return s.clearErr
}

type stubProductRepo struct {
	product *domain.Product
	err     error
	lastID  string
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.lastID = id
	return s.product, s.err
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductRepo{})
	_, err := svc.AddItem(context.Background(), "u1", "p1", "red", "M", 0)
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestAddItemProductNotFound(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductRepo{err: domain.ErrNotFound})
	_, err := svc.AddItem(context.Background(), "u1", "p1", "red", "M", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	sale := int64(7999)
	product := &domain.Product{
		ID:                "p1",
		Name:              "Linen Shirt",
		RegularPriceCents: 9999,
		SalePriceCents:    &sale,
		Images:            []string{"http://img/front.jpg", "http://img/back.jpg"},
	}
	repo := &stubRepo{cart: &domain.Cart{UserID: "u1"}}
	svc := New(repo, &stubProductRepo{product: product})

	_, err := svc.AddItem(context.Background(), "u1", "p1", "red", "M", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := repo.lastItem
	if item.Name != "Linen Shirt" || item.Image != "http://img/front.jpg" {
		t.Fatalf("expected product snapshot in line, got %+v", item)
	}
	if item.UnitPriceCents != 7999 {
		t.Fatalf("expected sale price snapshot, got %d", item.UnitPriceCents)
	}
	if item.Color != "red" || item.Size != "M" || item.Quantity != 2 {
		t.Fatalf("unexpected variant fields: %+v", item)
	}
	if item.ID == "" {
		t.Fatal("expected generated line id")
	}
}

func TestGetAbsentCartIsEmptyState(t *testing.T) {
	svc := New(&stubRepo{getErr: domain.ErrNotFound}, &stubProductRepo{})
	cart, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.UserID != "u1" || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
	if cart.Items == nil {
		t.Fatal("expected non-nil items slice")
	}
}

func TestGetRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&stubRepo{getErr: boom}, &stubProductRepo{})
	_, err := svc.Get(context.Background(), "u1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestUpdateQuantityRejectsZero(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductRepo{})
	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", "red", "M", 0)
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	svc := New(&stubRepo{updateErr: domain.ErrItemNotFound}, &stubProductRepo{})
	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", "red", "M", 3)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateQuantityPassesVariant(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{UserID: "u1"}}
	svc := New(repo, &stubProductRepo{})
	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", "red", "M", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastColor != "red" || repo.lastSize != "M" || repo.lastQty != 4 {
		t.Fatalf("variant not forwarded: %+v", repo)
	}
}

func TestRemoveItemForwards(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{UserID: "u1", Items: []domain.CartItem{}}}
	svc := New(repo, &stubProductRepo{})
	cart, err := svc.RemoveItem(context.Background(), "u1", "p1", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart != repo.cart {
		t.Fatalf("unexpected cart: %+v", cart)
	}
}

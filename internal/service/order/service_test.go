package order

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"stylegenie-backend/internal/domain"
)

type stubOrderRepo struct {
	created    []domain.Order
	createErrs []error
	getOrder   *domain.Order
	getErr     error
	listed     []domain.Order
	listErr    error
	updated    *domain.Order
	updateErr  error
	lastStatus domain.OrderStatus
	lastID     string
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.created = append(s.created, o)
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	stored := o
	stored.ID = "order-1"
	return &stored, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getOrder, nil
}

func (s *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	return s.listed, s.listErr
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.listed, s.listErr
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	s.lastID = id
	s.lastStatus = status
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

type stubCartRepo struct {
	clearErr    error
	clearedUser string
	clearCalls  int
}

func (s *stubCartRepo) ClearItems(_ context.Context, userID string) error {
	s.clearedUser = userID
	s.clearCalls++
	return s.clearErr
}

func testItems() []domain.OrderItem {
	return []domain.OrderItem{{
		ProductID:      "P1",
		Name:           "Linen Shirt",
		Image:          "http://img/1.jpg",
		UnitPriceCents: 10000,
		Quantity:       5,
		Color:          "red",
		Size:           "M",
	}}
}

func testAddress() domain.Address {
	return domain.Address{Street: "1 Main St", City: "Pune", State: "MH", Zip: "411001"}
}

func newTestService(repo *stubOrderRepo, carts *stubCartRepo) *Service {
	svc := New(repo, carts, nil)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	svc.randInt = func(n int) int { return 42 }
	return svc
}

func TestCreateRejectsEmptyCart(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, &stubCartRepo{})
	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", Address: testAddress()})
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("no order must be created from an empty cart")
	}
}

func TestCreateRejectsIncompleteAddress(t *testing.T) {
	svc := newTestService(&stubOrderRepo{}, &stubCartRepo{})
	addr := testAddress()
	addr.City = ""
	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", Items: testItems(), Address: addr})
	if !errors.Is(err, domain.ErrIncompleteAddress) {
		t.Fatalf("expected ErrIncompleteAddress, got %v", err)
	}
}

func TestCreateOrderNumberPattern(t *testing.T) {
	repo := &stubOrderRepo{}
	carts := &stubCartRepo{}
	svc := newTestService(repo, carts)

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(), TotalCents: 50000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pattern := regexp.MustCompile(`^SG-\d+-\d{1,3}$`)
	if !pattern.MatchString(created.OrderNumber) {
		t.Fatalf("order number %q does not match pattern", created.OrderNumber)
	}
	if created.OrderNumber != "SG-1700000000000-42" {
		t.Fatalf("unexpected order number %q", created.OrderNumber)
	}
}

func TestCreateDefaultsAndSnapshot(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, &stubCartRepo{})

	input := CreateInput{UserID: "u1", Items: testItems(), Address: testAddress(), TotalCents: 50000}
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.OrderStatusPending || created.PaymentStatus != domain.PaymentStatusPending {
		t.Fatalf("expected pending status/payment, got %s/%s", created.Status, created.PaymentStatus)
	}
	if created.PaymentMethod != "COD" {
		t.Fatalf("expected default payment method, got %q", created.PaymentMethod)
	}
	if created.ShippingAddress.Country != "India" {
		t.Fatalf("expected default country, got %q", created.ShippingAddress.Country)
	}
	if created.TotalCents != 50000 {
		t.Fatalf("expected client total stored as given, got %d", created.TotalCents)
	}
	if len(created.Items) != 1 || created.Items[0].UnitPriceCents != 10000 || created.Items[0].Quantity != 5 {
		t.Fatalf("unexpected order lines: %+v", created.Items)
	}

	// The persisted lines are a copy, not an alias of the caller's slice.
	input.Items[0].Name = "mutated"
	if repo.created[0].Items[0].Name != "Linen Shirt" {
		t.Fatal("order lines must be independent of the input slice")
	}
}

func TestCreateClearsCartAfterPersist(t *testing.T) {
	carts := &stubCartRepo{}
	svc := newTestService(&stubOrderRepo{}, carts)
	_, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carts.clearedUser != "u1" || carts.clearCalls != 1 {
		t.Fatalf("expected cart clear for u1, got %+v", carts)
	}
}

func TestCreateFailedPersistLeavesCart(t *testing.T) {
	repo := &stubOrderRepo{createErrs: []error{errors.New("db down")}}
	carts := &stubCartRepo{}
	svc := newTestService(repo, carts)
	_, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(),
	})
	if err == nil {
		t.Fatal("expected persist error")
	}
	if carts.clearCalls != 0 {
		t.Fatal("cart must not be cleared when the order was not persisted")
	}
}

func TestCreateFailedClearStillReturnsOrder(t *testing.T) {
	carts := &stubCartRepo{clearErr: errors.New("clear failed")}
	svc := newTestService(&stubOrderRepo{}, carts)
	created, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(),
	})
	if err != nil {
		t.Fatalf("order durability must win over cart hygiene: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatalf("expected persisted order, got %+v", created)
	}
}

func TestCreateRetriesDuplicateOrderNumberOnce(t *testing.T) {
	repo := &stubOrderRepo{createErrs: []error{domain.ErrDuplicateOrderNumber}}
	svc := newTestService(repo, &stubCartRepo{})
	suffixes := []int{7, 8}
	svc.randInt = func(n int) int {
		v := suffixes[0]
		suffixes = suffixes[1:]
		return v
	}

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected exactly one retry, got %d attempts", len(repo.created))
	}
	if created.OrderNumber != "SG-1700000000000-8" {
		t.Fatalf("expected regenerated number, got %q", created.OrderNumber)
	}
}

func TestCreateRetriesWrappedDuplicate(t *testing.T) {
	repo := &stubOrderRepo{createErrs: []error{fmt.Errorf("insert order: %w", domain.ErrDuplicateOrderNumber)}}
	svc := newTestService(repo, &stubCartRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected a retry on a wrapped collision, got %d attempts", len(repo.created))
	}
}

func TestCreateSurfacesSecondCollision(t *testing.T) {
	repo := &stubOrderRepo{createErrs: []error{domain.ErrDuplicateOrderNumber, domain.ErrDuplicateOrderNumber}}
	carts := &stubCartRepo{}
	svc := newTestService(repo, carts)
	_, err := svc.Create(context.Background(), CreateInput{
		UserID: "u1", Items: testItems(), Address: testAddress(),
	})
	if !errors.Is(err, domain.ErrDuplicateOrderNumber) {
		t.Fatalf("expected ErrDuplicateOrderNumber, got %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected exactly two attempts, got %d", len(repo.created))
	}
	if carts.clearCalls != 0 {
		t.Fatal("cart must not be cleared after a failed create")
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	svc := newTestService(&stubOrderRepo{}, &stubCartRepo{})
	_, err := svc.SetStatus(context.Background(), "o1", "archived")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSetStatusFreeForm(t *testing.T) {
	// Any valid status may replace any other; delivered back to processing
	// included.
	repo := &stubOrderRepo{updated: &domain.Order{ID: "o1", Status: domain.OrderStatusProcessing}}
	svc := newTestService(repo, &stubCartRepo{})
	got, err := svc.SetStatus(context.Background(), "o1", domain.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.OrderStatusProcessing || repo.lastStatus != domain.OrderStatusProcessing {
		t.Fatalf("status not forwarded: %+v", repo)
	}
}

func TestSetStatusNotFound(t *testing.T) {
	svc := newTestService(&stubOrderRepo{updateErr: domain.ErrNotFound}, &stubCartRepo{})
	_, err := svc.SetStatus(context.Background(), "missing", domain.OrderStatusShipped)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"stylegenie-backend/internal/domain"
	ordersvc "stylegenie-backend/internal/service/order"

	"github.com/gin-gonic/gin"
)

type stubOrderStore struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderStore() *stubOrderStore {
	return &stubOrderStore{orders: map[string]*domain.Order{}}
}

func (s *stubOrderStore) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.nextID++
	o.ID = "order-" + strconv.Itoa(s.nextID)
	s.orders[o.ID] = &o
	return &o, nil
}

func (s *stubOrderStore) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *stubOrderStore) ListAll(_ context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (s *stubOrderStore) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *stubOrderStore) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	return o, nil
}

type noopCartClearer struct{}

func (noopCartClearer) ClearItems(context.Context, string) error { return nil }

func newOrderTestRouter(store *stubOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := ordersvc.New(store, noopCartClearer{}, nil)
	router := gin.New()
	router.POST("/api/orders/create", createOrderHandler(svc))
	router.GET("/api/orders", listOrdersHandler(svc))
	router.GET("/api/orders/:orderId", getOrderHandler(svc))
	router.PUT("/api/orders/:orderId", updateOrderStatusHandler(svc))
	router.GET("/api/users/:id/orders", listUserOrdersHandler(svc))
	return router
}

func TestCreateOrder_Success(t *testing.T) {
	store := newStubOrderStore()
	router := newOrderTestRouter(store)

	payload := `{
		"userId": "u1",
		"items": [{"productId":"p1","name":"Linen Shirt","unitPriceCents":4999,"quantity":2}],
		"address": {"street":"12 MG Road","city":"Bengaluru","state":"KA","zip":"560001"},
		"totalCents": 9998
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(store.orders))
	}
	for _, o := range store.orders {
		if o.ShippingAddress.Country != "India" {
			t.Fatalf("expected default country, got %q", o.ShippingAddress.Country)
		}
		if o.PaymentMethod != "COD" {
			t.Fatalf("expected default payment method, got %q", o.PaymentMethod)
		}
		if o.Status != domain.OrderStatusPending {
			t.Fatalf("expected pending status, got %q", o.Status)
		}
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	router := newOrderTestRouter(newStubOrderStore())

	payload := `{
		"userId": "u1",
		"items": [],
		"address": {"street":"12 MG Road","city":"Bengaluru","state":"KA","zip":"560001"},
		"totalCents": 100
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCreateOrder_IncompleteAddress(t *testing.T) {
	router := newOrderTestRouter(newStubOrderStore())

	payload := `{
		"userId": "u1",
		"items": [{"productId":"p1","name":"Linen Shirt","unitPriceCents":4999,"quantity":1}],
		"address": {"city":"Bengaluru"},
		"totalCents": 4999
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	router := newOrderTestRouter(newStubOrderStore())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	store := newStubOrderStore()
	store.orders["o1"] = &domain.Order{ID: "o1", Status: domain.OrderStatusPending}
	router := newOrderTestRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/o1", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.orders["o1"].Status != domain.OrderStatusShipped {
		t.Fatalf("expected shipped, got %q", store.orders["o1"].Status)
	}
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	store := newStubOrderStore()
	store.orders["o1"] = &domain.Order{ID: "o1", Status: domain.OrderStatusPending}
	router := newOrderTestRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/o1", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListUserOrders_NoneIsEmptyList(t *testing.T) {
	router := newOrderTestRouter(newStubOrderStore())

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var orders []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty list, got %d orders", len(orders))
	}
}

package domain

import "time"

// OrderNumberPrefix is the human-facing prefix of generated order numbers.
const OrderNumberPrefix = "SG"

// OrderStatus is the lifecycle label of an order. Transitions are not
// constrained beyond enum membership: any valid status may replace any
// other, which keeps the admin override behavior of the storefront.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// PaymentStatus labels the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Address is a shipping destination embedded in an order.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Complete reports whether all required address fields are populated.
// Country is optional and defaults at order creation.
func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != ""
}

// OrderItem is a deep copy of a cart line frozen at order creation. It must
// stay readable even if the referenced product is later changed or deleted.
type OrderItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Image          string `json:"image,omitempty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Color          string `json:"color,omitempty"`
	Size           string `json:"size,omitempty"`
}

// Order is the immutable record of a completed checkout. Only the status
// field mutates after creation.
type Order struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"userId"`
	OrderNumber        string        `json:"orderNumber"`
	Items              []OrderItem   `json:"items"`
	TotalCents         int64         `json:"totalCents"`
	ShippingAddress    Address       `json:"shippingAddress"`
	PaymentMethod      string        `json:"paymentMethod"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	OrderDate          time.Time     `json:"orderDate"`
	DeliveryDate       *time.Time    `json:"deliveryDate,omitempty"`
	Status             OrderStatus   `json:"status"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	ShippingCostCents  int64         `json:"shippingCostCents"`
	TaxCents           int64         `json:"taxCents"`
	DiscountCents      int64         `json:"discountCents"`
	CreatedAt          time.Time     `json:"createdAt"`
}

package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrItemNotFound indicates a cart line lookup missed (an absent cart counts too).
	ErrItemNotFound = errors.New("item not found in cart")
	// ErrInvalidQuantity is returned when a quantity below 1 is requested.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptyCart rejects order creation from an empty line list.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrIncompleteAddress rejects order creation without street/city/state/zip.
	ErrIncompleteAddress = errors.New("shipping address is incomplete")
	// ErrDuplicateOrderNumber surfaces an order number collision that survived a retry.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
	// ErrInvalidStatus rejects an order status outside the known set.
	ErrInvalidStatus = errors.New("invalid order status")
)

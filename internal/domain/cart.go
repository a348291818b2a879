package domain

import "time"

// Cart holds one user's open shopping cart. There is at most one cart per
// user; an absent cart is equivalent to an empty one.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is one product+variant line. Name, image and price are snapshots
// taken from the product at add-time and stay fixed afterwards.
type CartItem struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	Name           string    `json:"name"`
	Image          string    `json:"image"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Color          string    `json:"color,omitempty"`
	Size           string    `json:"size,omitempty"`
	Quantity       int       `json:"quantity"`
	AddedAt        time.Time `json:"addedAt"`
}

// SameVariant reports whether the line matches the (product, color, size)
// identity key. Two lines with the same key are the same logical line.
func (i CartItem) SameVariant(productID, color, size string) bool {
	return i.ProductID == productID && i.Color == color && i.Size == size
}

// Merge folds item into the cart: an existing line with the same variant key
// gets its quantity incremented, otherwise the item is appended as a new line.
func (c *Cart) Merge(item CartItem) {
	for idx := range c.Items {
		if c.Items[idx].SameVariant(item.ProductID, item.Color, item.Size) {
			c.Items[idx].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the matching line's quantity to an absolute value and
// reports whether a matching line existed. When color and size are both
// empty the product's first line matches regardless of variant, the same
// wildcard rule RemoveItem applies.
func (c *Cart) SetQuantity(productID, color, size string, quantity int) bool {
	wildcard := color == "" && size == ""
	for idx := range c.Items {
		if c.Items[idx].SameVariant(productID, color, size) ||
			(wildcard && c.Items[idx].ProductID == productID) {
			c.Items[idx].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem drops lines for the given product. When color and size are both
// empty every line of the product goes; otherwise only the exact variant.
// Removal of an absent line is a no-op.
func (c *Cart) RemoveItem(productID, color, size string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID == productID {
			if color == "" && size == "" {
				continue
			}
			if item.SameVariant(productID, color, size) {
				continue
			}
		}
		kept = append(kept, item)
	}
	c.Items = kept
}

// TotalCents sums unit price times quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}

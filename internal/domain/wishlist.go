package domain

// Wishlist is the set of product ids a user has saved. An absent wishlist is
// a valid empty state, never an error.
type Wishlist struct {
	UserID     string   `json:"userId"`
	ProductIDs []string `json:"productIds"`
}

// Contains reports whether the product is in the wishlist.
func (w Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

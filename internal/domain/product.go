package domain

import "time"

// ProductCategories and ProductCollections are the catalog taxonomy the
// storefront renders; input outside these sets is rejected at the boundary.
var (
	ProductCategories  = []string{"shirts", "Shoes", "Clothes", "Accessories"}
	ProductCollections = []string{"popular", "newArrivals", "featured", "specialOffers"}
)

// ProductStatus labels stock availability for display.
type ProductStatus string

const (
	ProductInStock    ProductStatus = "In Stock"
	ProductOutOfStock ProductStatus = "Out of Stock"
	ProductComingSoon ProductStatus = "Coming Soon"
)

type Product struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Category          string        `json:"category"`
	RegularPriceCents int64         `json:"regularPriceCents"`
	SalePriceCents    *int64        `json:"salePriceCents,omitempty"`
	Stock             int           `json:"stock"`
	Status            ProductStatus `json:"status"`
	Images            []string      `json:"images"`
	Colors            []string      `json:"colors"`
	Sizes             []string      `json:"sizes"`
	Features          []string      `json:"features"`
	Collection        string        `json:"collection,omitempty"`
	LensID            string        `json:"lensId,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// SnapshotPriceCents is the price frozen into cart lines at add-time: the
// sale price when one is set, the regular price otherwise.
func (p Product) SnapshotPriceCents() int64 {
	if p.SalePriceCents != nil {
		return *p.SalePriceCents
	}
	return p.RegularPriceCents
}

// MainImage is the image URL snapshotted into cart lines.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

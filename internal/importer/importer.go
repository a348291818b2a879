package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"stylegenie-backend/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter loads a storefront catalog export, a JSON array of product
// records with decimal prices, and inserts them as products.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

type jsonRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Collection   string   `json:"collection"`
	RegularPrice float64  `json:"regularPrice"`
	SalePrice    *float64 `json:"salePrice"`
	Stock        int      `json:"stock"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	Features     []string `json:"features"`
	LensID       string   `json:"lensId"`
}

// Run decodes the export and inserts every record, returning how many made
// it in. It stops at the first invalid record so a bad export is caught
// rather than half-applied silently.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var records []jsonRecord
	if err := json.NewDecoder(i.reader).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	imported := 0
	for _, rec := range records {
		p, err := toProduct(rec)
		if err != nil {
			return imported, fmt.Errorf("record %q: %w", rec.Name, err)
		}
		if _, err := i.productRepo.Create(ctx, p); err != nil {
			return imported, fmt.Errorf("insert %q: %w", rec.Name, err)
		}
		imported++
	}
	return imported, nil
}

func toProduct(rec jsonRecord) (domain.Product, error) {
	if rec.Name == "" {
		return domain.Product{}, fmt.Errorf("missing name")
	}
	if rec.Category == "" {
		return domain.Product{}, fmt.Errorf("missing category")
	}
	if rec.RegularPrice <= 0 {
		return domain.Product{}, fmt.Errorf("invalid price %v", rec.RegularPrice)
	}

	status := domain.ProductStatus(rec.Status)
	if status == "" {
		status = domain.ProductInStock
	}

	p := domain.Product{
		ID:                rec.ID,
		Name:              rec.Name,
		Description:       rec.Description,
		Category:          rec.Category,
		Collection:        rec.Collection,
		RegularPriceCents: toCents(rec.RegularPrice),
		Stock:             rec.Stock,
		Status:            status,
		Images:            emptyIfNil(rec.Images),
		Colors:            emptyIfNil(rec.Colors),
		Sizes:             emptyIfNil(rec.Sizes),
		Features:          emptyIfNil(rec.Features),
		LensID:            rec.LensID,
	}
	if rec.SalePrice != nil {
		if *rec.SalePrice <= 0 || *rec.SalePrice > rec.RegularPrice {
			return domain.Product{}, fmt.Errorf("invalid sale price %v", *rec.SalePrice)
		}
		cents := toCents(*rec.SalePrice)
		p.SalePriceCents = &cents
	}
	return p, nil
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

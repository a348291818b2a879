package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stylegenie-backend/internal/domain"
)

// ErrInvalidInput marks a rejected create/update payload; every validation
// failure wraps it so callers can tell bad input from a failed store.
var ErrInvalidInput = errors.New("invalid product")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// Service validates catalog input strictly at this boundary; nothing below
// it coerces types or fills in missing required fields.
type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

// Input is a create/update payload for a catalog product.
type Input struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	RegularPriceCents int64    `json:"regularPriceCents"`
	SalePriceCents    *int64   `json:"salePriceCents"`
	Stock             *int     `json:"stock"`
	Status            string   `json:"status"`
	Images            []string `json:"images"`
	Colors            []string `json:"colors"`
	Sizes             []string `json:"sizes"`
	Features          []string `json:"features"`
	Collection        string   `json:"collection"`
	LensID            string   `json:"lensId"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *p)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return s.repo.Update(ctx, *p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, invalid("category required")
	}
	if !contains(domain.ProductCategories, category) {
		return nil, invalid("unknown category")
	}
	if in.RegularPriceCents <= 0 {
		return nil, invalid("regular price required")
	}
	if in.SalePriceCents != nil {
		if *in.SalePriceCents < 0 {
			return nil, invalid("sale price must not be negative")
		}
		if *in.SalePriceCents > in.RegularPriceCents {
			return nil, invalid("sale price must be less than or equal to regular price")
		}
	}
	if in.Stock == nil {
		return nil, invalid("stock required")
	}
	if *in.Stock < 0 {
		return nil, invalid("stock must not be negative")
	}
	if in.Images == nil {
		return nil, invalid("images must be an array of image URLs")
	}
	collection := strings.TrimSpace(in.Collection)
	if collection != "" && !contains(domain.ProductCollections, collection) {
		return nil, invalid("unknown collection")
	}

	status := domain.ProductStatus(strings.TrimSpace(in.Status))
	switch status {
	case "":
		status = domain.ProductInStock
	case domain.ProductInStock, domain.ProductOutOfStock, domain.ProductComingSoon:
	default:
		return nil, invalid("unknown status")
	}

	return &domain.Product{
		Name:              name,
		Description:       strings.TrimSpace(in.Description),
		Category:          category,
		RegularPriceCents: in.RegularPriceCents,
		SalePriceCents:    in.SalePriceCents,
		Stock:             *in.Stock,
		Status:            status,
		Images:            in.Images,
		Colors:            in.Colors,
		Sizes:             in.Sizes,
		Features:          in.Features,
		Collection:        collection,
		LensID:            strings.TrimSpace(in.LensID),
	}, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

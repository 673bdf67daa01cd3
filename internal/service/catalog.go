package service

import (
	"context"
	"errors"
	"fmt"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/repository"
)

var ErrInvalidProduct = errors.New("invalid product")

type catalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) CatalogService {
	return &catalogService{products: products}
}

func (s *catalogService) ListProducts(ctx context.Context, category domain.Category, activeOnly bool) ([]domain.Product, error) {
	if category != "" && !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, category)
	}
	return s.products.List(ctx, repository.ProductFilter{Category: category, ActiveOnly: activeOnly})
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *catalogService) AddProduct(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p.Name, p.Category, p.Price, p.DiscountedPrice, p.Inventory); err != nil {
		return err
	}
	return s.products.Create(ctx, p)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error) {
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, *patch.Category)
	}
	if patch.Inventory != nil && *patch.Inventory < 0 {
		return nil, fmt.Errorf("%w: inventory must not be negative", ErrInvalidProduct)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	return s.products.Update(ctx, id, patch)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return s.products.Delete(ctx, id)
}

func validateProduct(name string, category domain.Category, price float64, discounted *float64, inventory int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if !domain.ValidCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, category)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if discounted != nil && *discounted > price {
		return fmt.Errorf("%w: discounted price exceeds base price", ErrInvalidProduct)
	}
	if inventory < 0 {
		return fmt.Errorf("%w: inventory must not be negative", ErrInvalidProduct)
	}
	return nil
}

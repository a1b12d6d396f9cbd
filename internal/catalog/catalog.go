package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Catalog is the read-only product/category collaborator. Nothing in
// the order flow writes to it.
type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
}

// MemoryCatalog serves a fixed product set from memory.
type MemoryCatalog struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
}

func NewMemoryCatalog(products []domain.Product, categories []domain.Category) *MemoryCatalog {
	return &MemoryCatalog{products: products, categories: categories}
}

// NewSeededCatalog returns a catalog pre-loaded with the shop's
// demo inventory.
func NewSeededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(seedProducts(), seedCategories())
}

func (c *MemoryCatalog) ListProducts(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Product, len(c.products))
	copy(result, c.products)
	return result, nil
}

func (c *MemoryCatalog) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (c *MemoryCatalog) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []domain.Product
	for _, p := range c.products {
		if p.Category == categoryID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (c *MemoryCatalog) ListFeatured(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []domain.Product
	for _, p := range c.products {
		if p.Featured {
			result = append(result, p)
		}
	}
	return result, nil
}

func (c *MemoryCatalog) ListCategories(_ context.Context) ([]domain.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Category, len(c.categories))
	copy(result, c.categories)
	return result, nil
}

func (c *MemoryCatalog) GetCategory(_ context.Context, id string) (*domain.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cat := range c.categories {
		if cat.ID == id {
			category := cat
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

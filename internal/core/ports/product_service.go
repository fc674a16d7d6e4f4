package ports

import (
	"context"

	"github.com/shopmesh/platform/internal/core/domain"
)

// CategorySummary describes one distinct category of the catalog.
type CategorySummary struct {
	Name  string
	Count int
	// AveragePrice is pre-formatted to two decimal places.
	AveragePrice string
}

// ProductStats aggregates the catalog for the stats endpoint. Money fields
// are pre-formatted to two decimal places.
type ProductStats struct {
	Total        int
	TotalValue   string
	AveragePrice string
	TotalStock   int
	ByCategory   map[string]int
}

// ProductService is the application boundary consumed by the HTTP handlers.
type ProductService interface {
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]CategorySummary, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) (*domain.Product, error)
	SetStock(ctx context.Context, id int, quantity int) (*domain.Product, error)
	ProductStats(ctx context.Context) (*ProductStats, error)
	ProductCount(ctx context.Context) (int, error)
}

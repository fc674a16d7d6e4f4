package ports

import (
	"context"

	"github.com/shopmesh/platform/internal/core/domain"
)

// ListProductsFilter narrows a catalog listing. All set filters are combined
// with logical AND.
type ListProductsFilter struct {
	// Category filters on case-insensitive exact match when non-empty.
	Category string
	// MinPrice / MaxPrice are inclusive bounds; nil means unbounded.
	MinPrice *float64
	MaxPrice *float64
	// Limit truncates the result to the first N records when positive,
	// applied after all other filters.
	Limit int
}

// CreateProductInput carries the fields of a new product. Description and
// Stock default to "" and 0.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
}

// UpdateProductInput carries a partial update. Nil fields are left untouched;
// a pointer to the zero value ("" or 0) is a real update.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
}

// ProductRepository is the storage boundary for the product catalog.
type ProductRepository interface {
	List(ctx context.Context, filter ListProductsFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) (*domain.Product, error)
	Count(ctx context.Context) (int, error)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shopmesh/platform/internal/api/metrics"
	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// SearchProducts matches query as a case-insensitive substring of name,
// description, or category.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, ports.ListProductsFilter{})
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ListCategories returns the distinct categories in order of first appearance
// with per-category count and average price.
func (s *ProductService) ListCategories(ctx context.Context) ([]ports.CategorySummary, error) {
	products, err := s.repo.List(ctx, ports.ListProductsFilter{})
	if err != nil {
		return nil, err
	}

	var names []string
	counts := make(map[string]int)
	sums := make(map[string]float64)
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			names = append(names, p.Category)
		}
		counts[p.Category]++
		sums[p.Category] += p.Price
	}

	summaries := make([]ports.CategorySummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, ports.CategorySummary{
			Name:         name,
			Count:        counts[name],
			AveragePrice: money(sums[name] / float64(counts[name])),
		})
	}
	return summaries, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "create").Inc()
	s.logger.Info().Int("product_id", product.ID).Str("category", product.Category).Msg("product created")
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "update").Inc()
	s.logger.Info().Int("product_id", product.ID).Msg("product updated")
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "delete").Inc()
	s.logger.Info().Int("product_id", product.ID).Msg("product deleted")
	return product, nil
}

// SetStock overwrites the stock level with an absolute quantity.
func (s *ProductService) SetStock(ctx context.Context, id int, quantity int) (*domain.Product, error) {
	product, err := s.repo.Update(ctx, id, ports.UpdateProductInput{Stock: &quantity})
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "stock").Inc()
	s.logger.Info().Int("product_id", product.ID).Int("stock", product.Stock).Msg("stock set")
	return product, nil
}

// ProductStats summarises the catalog. TotalValue is the sum of price×stock
// over all products.
func (s *ProductService) ProductStats(ctx context.Context) (*ports.ProductStats, error) {
	products, err := s.repo.List(ctx, ports.ListProductsFilter{})
	if err != nil {
		return nil, err
	}

	var totalValue, priceSum float64
	totalStock := 0
	byCategory := make(map[string]int)
	for _, p := range products {
		totalValue += p.Price * float64(p.Stock)
		priceSum += p.Price
		totalStock += p.Stock
		byCategory[p.Category]++
	}

	average := 0.0
	if len(products) > 0 {
		average = priceSum / float64(len(products))
	}

	return &ports.ProductStats{
		Total:        len(products),
		TotalValue:   money(totalValue),
		AveragePrice: money(average),
		TotalStock:   totalStock,
		ByCategory:   byCategory,
	}, nil
}

func (s *ProductService) ProductCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// money formats an amount to two decimal places.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

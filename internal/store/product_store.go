package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

// ProductStore is an insertion-ordered in-memory product collection with
// monotonically increasing ID assignment.
type ProductStore struct {
	mu     sync.RWMutex
	byID   map[int]*domain.Product
	order  []int
	nextID int
}

// NewProductStore builds a store preloaded with the seed catalog.
func NewProductStore() *ProductStore {
	s := &ProductStore{
		byID:   make(map[int]*domain.Product),
		nextID: 1,
	}
	now := time.Now().UTC()
	for _, p := range []domain.Product{
		{Name: "Laptop Pro 15", Description: "15-inch developer laptop", Price: 1299.99, Category: "Electronics", Stock: 45},
		{Name: "Wireless Mouse", Description: "Ergonomic 2.4GHz wireless mouse", Price: 24.99, Category: "Accessories", Stock: 150},
		{Name: "Mechanical Keyboard", Description: "Hot-swappable mechanical keyboard", Price: 89.99, Category: "Accessories", Stock: 80},
		{Name: "4K Monitor", Description: "27-inch 4K IPS display", Price: 349.99, Category: "Electronics", Stock: 60},
		{Name: "USB-C Dock", Description: "10-port USB-C docking station", Price: 149.99, Category: "Accessories", Stock: 25},
	} {
		p.ID = s.nextID
		p.CreatedAt = now
		s.byID[p.ID] = cloneProduct(&p)
		s.order = append(s.order, p.ID)
		s.nextID++
	}
	return s
}

// List returns all products in insertion order, narrowed by filter. Category
// matching is case-insensitive; price bounds are inclusive; the limit applies
// after filtering.
func (s *ProductStore) List(_ context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		products = append(products, *cloneProduct(p))
	}
	if filter.Limit > 0 && len(products) > filter.Limit {
		products = products[:filter.Limit]
	}
	return products, nil
}

func (s *ProductStore) FindByID(_ context.Context, id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

// Create inserts a new product. Non-positive prices are rejected, never
// clamped.
func (s *ProductStore) Create(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	p := &domain.Product{
		ID:          s.nextID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	s.nextID++

	return cloneProduct(p), nil
}

// Update overwrites only the supplied fields and stamps updatedAt. A pointer
// to "" or 0 is a real update; nil leaves the field untouched.
func (s *ProductStore) Update(_ context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if input.Price != nil && *input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now

	return cloneProduct(p), nil
}

// Delete removes and returns the record. The freed ID is never reassigned.
func (s *ProductStore) Delete(_ context.Context, id int) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return cloneProduct(p), nil
}

func (s *ProductStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}
